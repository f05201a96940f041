// Package tsp - 2-opt local search engine.
//
// TwoOpt performs deterministic pass-based 2-opt on a closed tour.
// For a pair of non-adjacent edges (a,b)=(T[i−1],T[i]) and (c,d)=(T[k],T[k+1])
// the move replaces them with (a,c) and (b,d) by reversing the segment [i..k];
// Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), accepted when Δ < −Eps.
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Strict sentinel errors only (see types.go). No fmt.Errorf in hot paths.
//   - Full sweeps: a pass scans every (i,k) pair and applies improving moves
//     as it finds them; passes repeat until one completes without improvement
//     or MaxPasses is reached. The pass cap bounds worst-case runtime on
//     pathological inputs and is a deliberate non-optimality trade-off.
//   - The Eps tolerance (default 1e-4) rejects floating-point near-ties that
//     would otherwise oscillate forever.
//   - Cost stabilized to 1e−9 via round1e9.
//
// Contracts:
//   - dist is n×n with the usual validity rules (see validate.go).
//   - seed is a Hamiltonian cycle over [0..n-1]; it may be passed open
//     (len==n, no closing vertex) or closed (len==n+1). The returned tour is
//     always closed and starts where the seed started.
//   - The returned cost is never greater than the seed's cost.
//
// Complexity:
//   - One pass: O(n²) candidate checks; each accepted move costs O(k−i).
//   - Overall: O(passes·n²) time; O(n) extra space.
package tsp

import "math"

// TwoOpt runs deterministic pass-based 2-opt starting from seed.
// Returns the improved closed tour (same start) and its stabilized cost.
func TwoOpt(dist [][]float64, seed []int, opts TwoOptOptions) ([]int, float64, error) {
	n, err := validateDist(dist, false, true)
	if err != nil {
		return nil, 0, err
	}
	if len(seed) == 0 {
		return nil, 0, ErrDimensionMismatch
	}

	// Normalize the seed to a closed tour starting at seed[0]; this accepts
	// both the open Nearest-Neighbor path and an already-closed cycle.
	start := seed[0]
	cur, err := RotateTourToStart(seed, start)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidateTour(cur, n, start); err != nil {
		return nil, 0, err
	}

	// Baseline cost with strict checks (rejects +Inf/NaN on existing edges).
	cost, err := TourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	// Policy knobs.
	eps := opts.Eps
	if eps < 0 {
		// A negative epsilon would invert the acceptance rule Δ < −eps.
		return nil, 0, ErrDimensionMismatch
	}
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	var (
		pass       int     // completed full sweeps
		improved   bool    // whether the current pass applied any move
		i, k       int     // candidate cut indices, 1 ≤ i < k ≤ n−1
		a, b, c, d int     // boundary endpoints around (i,k)
		wab, wcd   float64 // weights of the edges being removed
		wac, wbd   float64 // weights of the edges being added
		delta      float64 // candidate improvement (negative is good)
	)
	for pass = 0; pass < maxPasses; pass++ {
		improved = false

		// Scan all candidate pairs (i,k) with 1 ≤ i < k ≤ n−1; the removed
		// edges (T[i−1],T[i]) and (T[k],T[k+1]) are non-adjacent by design.
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[k+1]

				wab = dist[a][b]
				wcd = dist[c][d]
				wac = dist[a][c]
				wbd = dist[b][d]

				// If the new edges do not exist, reject this candidate.
				if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
					continue
				}

				// Δ = new − old; accept strictly improving beyond tolerance.
				delta = (wac + wbd) - (wab + wcd)
				if delta < -eps {
					if err = reverseSegmentInPlace(cur, i, k); err != nil {
						return nil, 0, err
					}
					cost += delta
					improved = true
				}
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighborhood.
			break
		}
	}

	// Recompute from scratch to shed the accumulated Δ rounding noise.
	cost, err = TourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	// Defensive: keep invariants tight and explicit before returning.
	if verr := ValidateTour(cur, n, start); verr != nil {
		return nil, 0, verr
	}

	return cur, cost, nil
}
