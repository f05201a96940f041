// Package tsp provides Travelling Salesman Problem solvers over a dense
// distance matrix ([][]float64).
//
// It includes three tour constructions and one refinement:
//
//   - TSPExact — Held–Karp dynamic programming; provably optimal.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ)
//
//   - Supports “missing” edges via math.Inf(1).
//
//   - NearestNeighbor — greedy construction from vertex 0.
//
//   - Complexity: O(n²); always returns a valid tour, no optimality bound.
//
//   - TwoOpt — pass-based local search refining a seed tour.
//
//   - Complexity: O(passes·n²); never returns a tour worse than its seed.
//
//   - TSPApprox — Christofides' approximation pipeline
//     (Prim MST → odd-degree matching → Eulerian circuit → shortcut).
//
//   - Complexity: O(n²) on dense metric instances.
//
// All solvers fix vertex 0 as the start/closure of the returned cycle:
// for n vertices, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
//
// Design principles:
//   - Deterministic: ties broken by first-encountered minimum in iteration
//     order; no RNG anywhere in the package.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf in hot paths.
//   - Pure functions: every solve call allocates its own transient tables and
//     discards them on return; concurrent calls need no locking.
//   - Stable cost: all returned costs are rounded to 1e−9 to prevent FP drift.
//
// A distance of math.Inf(1) signals “no direct edge.” If no tour exists,
// TSPExact returns ErrIncompleteGraph. Christofides additionally requires a
// symmetric metric matrix (guaranteed when distances are Euclidean); the
// formal 1.5·OPT bound assumes a true minimum-weight perfect matching, and
// the greedy substitute used here makes it a best-effort heuristic only.
package tsp
