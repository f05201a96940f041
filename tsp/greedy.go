package tsp

import "math"

// NearestNeighbor builds a closed tour greedily: starting at vertex 0, it
// repeatedly extends the route to the nearest not-yet-visited vertex, then
// closes the tour back to 0. Ties are broken by the first-encountered
// minimum in vertex iteration order, keeping results deterministic.
//
// The construction always succeeds on a complete matrix and carries no
// optimality guarantee; it is used standalone as a fast baseline and as the
// seed tour for TwoOpt.
//
// Returns ErrIncompleteGraph when some step has no finite edge to any
// unvisited vertex (only possible with +Inf entries).
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist [][]float64) (TSResult, error) {
	n, err := validateDist(dist, false, true)
	if err != nil {
		return TSResult{}, err
	}

	visited := make([]bool, n)
	tour := make([]int, n+1)
	tour[0] = 0
	visited[0] = true

	var (
		step  int     // tour position being filled (1..n-1)
		cur   int     // current endpoint of the partial route
		v     int     // candidate next vertex
		best  int     // nearest unvisited vertex found so far
		bestD float64 // its distance from cur
		d     float64 // scratch distance
	)
	cur = 0
	for step = 1; step < n; step++ {
		best, bestD = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d = dist[cur][v]
			if d < bestD {
				bestD = d
				best = v
			}
		}
		if best < 0 || math.IsInf(bestD, 1) {
			return TSResult{}, ErrIncompleteGraph
		}
		tour[step] = best
		visited[best] = true
		cur = best
	}

	// Close the cycle back to the start.
	tour[n] = 0
	if math.IsInf(dist[cur][0], 1) {
		return TSResult{}, ErrIncompleteGraph
	}

	cost, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}
