// Package engine is the dispatch surface of tourkit: it maps an algorithm
// selector to the matching solver, converts between Points and the index
// tours the tsp package works on, and measures per-solve wall-clock cost.
//
// Call surface:
//
//   - Solve(points, algo) → RouteResult: run one solver.
//   - CompareAll(points)  → []RouteResult: run every eligible solver,
//     one result per algorithm, unranked (ranking is a caller concern).
//   - SamplePoints()      → the fixed 8-point demo set.
//
// Selector values: exact-dp | nearest-neighbor | 2-opt | christofides | astar.
//
// Degradation rules (the engine favors graceful degradation over failure):
//
//   - exact-dp with more than MaxExactPoints points is transparently
//     substituted by Nearest Neighbor; the result is relabeled and its
//     Substituted flag set — callers must not assume the returned Algorithm
//     label matches the originally requested selector.
//   - Degenerate inputs (0 or 1 points) yield a zero-distance trivial result
//     with no solver iteration.
//   - A* that cannot reach a stop falls back to the straight line for that
//     segment (see the astar package); the engine surfaces it unchanged.
//
// Every solve call is synchronous, pure, and call-scoped: no shared mutable
// state, no caches, no cancellation. Concurrent Solve calls are safe.
package engine
