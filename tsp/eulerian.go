package tsp

// EulerianCircuit returns an Eulerian tour (circuit) of the undirected
// multigraph given by adjacency lists adj, starting and ending at vertex
// start. It implements Hierholzer's algorithm with an explicit stack:
// push the start vertex; while the stack top has an unused incident edge,
// consume it and push the far endpoint; when a vertex has no unused edges,
// pop it onto the output. The popped sequence is reversed to obtain the
// forward walk order.
//
// Precondition: every vertex of adj has even degree (guaranteed in the
// Christofides pipeline by MST ∪ matching); a multigraph violating this is
// an internal invariant violation and yields an unusable walk, which the
// downstream shortcutting step rejects.
//
// Complexity: O(E) time and space, where E counts multigraph edges.
func EulerianCircuit(adj [][]int, start int) []int {
	// Local copy of the edge lists so consumption never mutates the input.
	local := make([][]int, len(adj))
	var u int
	for u = 0; u < len(adj); u++ {
		local[u] = append([]int(nil), adj[u]...)
	}

	var (
		popped []int          // vertices in reverse finish order
		stack  = []int{start} // traversal stack, seeded with start
		v      int            // far endpoint of the consumed edge
		i      int            // scan index for the reverse-edge removal
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		if len(local[u]) == 0 {
			// No unused incident edges: retire u onto the output.
			popped = append(popped, u)
			stack = stack[:len(stack)-1]

			continue
		}
		// Consume one incident edge u→v.
		v = local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		// Remove the mirror entry v→u (one copy only — multi-edges keep the rest).
		for i = 0; i < len(local[v]); i++ {
			if local[v][i] == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)

				break
			}
		}
		stack = append(stack, v)
	}

	// Reverse the popped sequence to get the forward circuit.
	var j int
	for i, j = 0, len(popped)-1; i < j; i, j = i+1, j-1 {
		popped[i], popped[j] = popped[j], popped[i]
	}

	return popped
}
