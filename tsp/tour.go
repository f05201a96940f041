// Package tsp — tour utilities shared by exact/heuristic solvers.
//
// This file contains compact, allocation-conscious utilities that operate
// purely on tour structure (index sequences), without depending on distance
// matrices. Provided helpers:
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given vertex.
//   - ShortcutEulerianToHamiltonian: skip revisits in an Eulerian sequence.
//   - reverseSegmentInPlace: in-place segment reversal (2-opt core).
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for all helpers; in-place mutations avoid extra allocations.
package tsp

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int // position in the tour prefix
		v int // vertex at position i
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh copy of the tour shifted so that
// out[0] == start and out[n] == start. The input may be either a closed tour
// (len==n+1) or a raw cycle (len==n, no closing vertex); in the raw case the
// closing start is appended.
//
// Pre-conditions:
//   - start must appear within the first n elements of tour.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}

	// Determine n (number of unique vertices).
	var n int
	if len(tour) >= 2 && tour[0] == tour[len(tour)-1] {
		n = len(tour) - 1
	} else {
		n = len(tour)
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	// Find start in the first n entries.
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	// Build rotated copy and close it.
	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// reverseSegmentInPlace reverses the inclusive segment tour[i..k] in place,
// keeping the closing vertex intact. This is the primitive used by 2-opt.
//
// Contracts:
//   - The tour is closed: len(tour)==n+1 and tour[0]==tour[n].
//   - Indices satisfy: 1 ≤ i < k ≤ n-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(tour []int, i, k int) error {
	var n = len(tour) - 1
	if n < 2 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// ShortcutEulerianToHamiltonian converts an Eulerian vertex sequence (with
// revisits) into a Hamiltonian cycle by emitting each vertex only the first
// time it is seen, then closing the tour. This is the standard shortcutting
// step in Christofides; the triangle inequality guarantees skipping a revisit
// never lengthens the walk.
//
//	Input:  euler — a vertex sequence of arbitrary length (often O(E)).
//	        n     — number of unique vertices (0..n-1).
//	        start — required starting vertex of the resulting tour.
//
// Returns:
//   - tour of length n+1 with tour[0]==tour[n]==start,
//   - ErrDimensionMismatch if euler misses some vertices or has out-of-range entries,
//   - ErrStartOutOfRange if start is invalid.
//
// Complexity: O(len(euler) + n) time, O(n) space.
func ShortcutEulerianToHamiltonian(euler []int, n int, start int) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	cycle := make([]int, 0, n) // collect first occurrences

	var (
		idx int // position within euler
		v   int // vertex at position idx
	)
	for idx = 0; idx < len(euler); idx++ {
		v = euler[idx]
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		if !visited[v] {
			visited[v] = true
			cycle = append(cycle, v)
		}
	}

	// Ensure all vertices were seen exactly once.
	if len(cycle) != n {
		return nil, ErrDimensionMismatch
	}

	// Rotate to start and close.
	var (
		i int
		p = -1
	)
	for i = 0; i < n; i++ {
		if cycle[i] == start {
			p = i
			break
		}
	}
	if p == -1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = cycle[(p+i)%n]
	}
	tour[n] = start

	return tour, nil
}
