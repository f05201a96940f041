// Package tsp - validation utilities shared by exact/heuristic solvers.
//
// This file contains small, tight helpers that validate distance matrices
// (shape, diagonal, negativity, ∞, symmetry). Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.
package tsp

import "math"

// symTol is a structural tolerance for symmetry/diagonal checks.
// It is independent from TwoOptOptions.Eps (which governs "improvement").
const symTol = 1e-12

// validateDist performs full matrix validation:
//   - non-nil, square, n ≥ 2,
//   - diagonal ≈ 0 (|a_ii| ≤ symTol), finite,
//   - no negative off-diagonal distances,
//   - if !allowInf: reject ±Inf off-diagonal,
//   - if symmetric: |a_ij − a_ji| ≤ symTol,
//   - NaN anywhere is invalid.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDist(dist [][]float64, symmetric bool, allowInf bool) (int, error) {
	// Stage 1: shape checks (non-nil, square, non-trivial).
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := len(dist)
	if n == 0 {
		return 0, ErrDimensionMismatch
	}
	if n == 1 {
		// Trivial n==1 instance: the dispatcher short-circuits it upstream;
		// the solvers themselves require n ≥ 2.
		return 0, ErrDimensionMismatch
	}

	var (
		i, j     int     // loop indices
		aij, aji float64 // matrix entries a[i][j] and a[j][i]
		abs      float64 // scratch for |value|
	)

	// Row lengths: every row must span exactly n columns.
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}

	// Diagonal: a_ii ≈ 0 within symTol, finite.
	for i = 0; i < n; i++ {
		aij = dist[i][i]
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrDimensionMismatch
		}
		abs = aij
		if abs < 0 {
			abs = -abs // abs(a_ii)
		}
		if abs > symTol {
			return 0, ErrDimensionMismatch
		}
	}

	// Off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal already checked
			}
			aij = dist[i][j]
			if math.IsNaN(aij) {
				return 0, ErrDimensionMismatch
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
			if math.IsInf(aij, 0) && !allowInf {
				return 0, ErrIncompleteGraph
			}
		}
	}

	// Symmetry (if required).
	if symmetric {
		for i = 0; i < n; i++ { // upper triangle
			for j = i + 1; j < n; j++ { // avoid double work
				aij = dist[i][j]
				aji = dist[j][i]
				abs = aij - aji
				if abs < 0 {
					abs = -abs // |a_ij − a_ji|
				}
				if abs > symTol && !(math.IsInf(aij, 1) && math.IsInf(aji, 1)) {
					return 0, ErrDimensionMismatch
				}
			}
		}
	}

	return n, nil
}
