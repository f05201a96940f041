package tsp

import "math"

// TSPExact solves the Travelling Salesman Problem exactly on a given
// distance matrix using the Held–Karp dynamic-programming algorithm.
//
// The input is an n×n matrix dist, where dist[i][j] is the cost to go
// from vertex i to j. A value of math.Inf(1) represents “no edge.”
// The diagonal dist[i][i] must be zero.
//
// It returns a TSResult containing:
//   - Tour: a slice of length n+1 of vertex indices, starting and ending at 0.
//   - Cost: total cycle cost, rounded to 1e-9.
//
// Or ErrIncompleteGraph if no Hamiltonian cycle exists.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// This implementation indexes subsets by bitmasks from 0…(1<<n)-1 and keeps
// the DP table flat: dp[mask][j] = minimum cost to start at 0, visit exactly
// the vertices in mask (mask&1 != 0), and end at j. A parallel parent table
// records the minimizing predecessor for path reconstruction. Both tables are
// solve-scoped and discarded after reconstruction. Ties are broken by the
// first-encountered minimum in vertex iteration order, so results are stable.
//
// Callers must cap n themselves (the engine dispatcher enforces n ≤ 20);
// larger instances are valid but exponential in time and space.
func TSPExact(dist [][]float64) (TSResult, error) {
	n, err := validateDist(dist, false, true)
	if err != nil {
		return TSResult{}, err
	}

	// Maximum subset mask: all n bits set.
	allMask := (1 << n) - 1

	// --- 1. Allocate DP and parent tables ---
	dp := make([][]float64, 1<<n)
	parent := make([][]int, 1<<n)

	var (
		mask int // subset bitmask
		j    int // endpoint vertex
		k    int // candidate predecessor
	)
	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = math.Inf(1) // initialize to +∞
			parent[mask][j] = -1      // “no predecessor”
		}
	}
	// Base case: mask with only bit 0 set, cost to be at 0 is 0.
	startMask := 1 << 0
	dp[startMask][0] = 0

	// --- 2. Fill DP for all masks that include vertex 0 ---
	var (
		prevMask int     // mask with endpoint j removed
		c        float64 // edge weight k→j
		cand     float64 // candidate cost ending at j via k
	)
	for mask = 0; mask <= allMask; mask++ {
		// Skip subsets that don't include the start vertex 0.
		if mask&startMask == 0 {
			continue
		}
		// For each possible endpoint j ≠ 0 in this subset.
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue // j not in subset
			}
			prevMask = mask ^ (1 << j)
			// Try all possible k that led to j.
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue // k not in prevMask
				}
				c = dist[k][j]
				if math.IsInf(c, 1) {
					continue // no edge k→j
				}
				cand = dp[prevMask][k] + c
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// --- 3. Close the tour by returning to 0 ---
	var (
		bestCost = math.Inf(1)
		last     = -1
		total    float64
	)
	for j = 1; j < n; j++ {
		c = dist[j][0]
		if math.IsInf(c, 1) {
			continue // no edge back to start
		}
		total = dp[allMask][j] + c
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		return TSResult{}, ErrIncompleteGraph
	}

	// --- 4. Reconstruct tour by walking predecessors backward ---
	// A missing table entry cannot occur on a fully connected point set; if it
	// does, reconstruction must stop rather than loop — it is a defect, and we
	// surface it as ErrIncompleteGraph instead of returning a corrupted path.
	tour := make([]int, n+1)
	tour[n] = 0 // return to start
	mask = allMask
	j = last

	var (
		i int // tour position being filled
		p int // predecessor of j under mask
	)
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		p = parent[mask][j]
		if p < 0 {
			return TSResult{}, ErrIncompleteGraph
		}
		mask ^= 1 << j
		j = p
	}
	if j != 0 {
		// The predecessor chain must terminate at the fixed start vertex.
		return TSResult{}, ErrIncompleteGraph
	}
	tour[0] = 0

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}
