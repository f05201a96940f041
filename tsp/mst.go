package tsp

import "math"

// MinimumSpanningTree computes a minimum spanning tree on the complete metric
// graph represented by the n×n distance matrix dist, using Prim's algorithm
// with a plain adjacency-matrix scan. It returns:
//
//	weight — total weight of the tree;
//	adj    — adjacency list (n slices) of the MST edges;
//	err    — ErrNonSquare / ErrDimensionMismatch for ill-shaped input, or
//	         ErrIncompleteGraph when +Inf entries disconnect the instance.
//
// The tree is grown from vertex 0 by repeatedly adding the minimum-weight
// edge connecting the tree to an unconnected vertex; ties are broken by the
// first-encountered minimum, so the tree is deterministic.
//
// Time:  O(n²).
// Space: O(n) working state plus the output adjacency lists.
func MinimumSpanningTree(dist [][]float64) (float64, [][]int, error) {
	n, err := validateDist(dist, true, true)
	if err != nil {
		return 0, nil, err
	}

	var (
		inMST    = make([]bool, n)    // vertices already in the tree
		bestCost = make([]float64, n) // cheapest edge weight into the tree
		parents  = make([]int, n)     // tree parent realizing bestCost
		adj      = make([][]int, n)   // output adjacency lists
		weight   float64              // accumulated tree weight
	)

	// 1) Initialization: all connection costs +Inf, no parents.
	var v int
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	// 2) Start growing from vertex 0.
	bestCost[0] = 0

	// 3) Grow the MST one vertex at a time.
	var (
		it   int     // growth iteration
		u    int     // vertex selected this iteration
		minW float64 // its connection cost
		p    int     // its tree parent
	)
	for it = 0; it < n; it++ {
		// (a) Find vertex u not in the tree with minimal bestCost[u].
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		// If no such u, the instance is disconnected.
		if u < 0 {
			return 0, nil, ErrIncompleteGraph
		}
		// (b) Add u to the tree and record the edge u↔parent.
		inMST[u] = true
		if parents[u] >= 0 {
			p = parents[u]
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
			weight += minW
		}
		// (c) Relax connection costs for the remaining vertices.
		for v = 0; v < n; v++ {
			if !inMST[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
				parents[v] = u
			}
		}
	}

	return round1e9(weight), adj, nil
}
