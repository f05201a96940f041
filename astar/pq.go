package astar

// nodePQ is a min-heap (priority queue) of *node, ordered by node.f ascending.
// We use the lazy decrease-key approach: when a cheaper route to an existing
// cell is found, a new *node is pushed. The outdated entry remains but is
// ignored when popped (checked against the closed set).
type nodePQ []*node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *node.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
