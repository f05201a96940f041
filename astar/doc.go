// Package astar implements heuristic-guided shortest-path search between 2D
// points on an obstacle-aware grid, plus multi-stop route stitching.
//
// The search walks a conceptually unbounded grid clamped to a configurable
// extent, moving in 8 directions with a fixed step of 2 grid units. It
// maintains an open set of candidate nodes scored by f = g + h (g =
// accumulated cost from the start, h = Euclidean distance to the goal — an
// admissible heuristic, since the straight line never overestimates the true
// remaining cost) and a closed set of finalized cell keys. Nodes are ordered
// by a min-heap priority queue with the lazy decrease-key strategy: shorter
// rediscoveries push duplicates, stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O(C log C) where C is the number of in-bounds cells.
//   - Space: O(C) for the open and closed sets.
//
// Degradation contract ("always succeeds"):
//
//   - If the open set is exhausted without reaching the goal, FindPath
//     returns the direct two-point straight line start→goal instead of an
//     error, with Fallback set on the result. Callers that must distinguish
//     a computed path from the fallback check that flag; the path itself is
//     always usable.
//
// Multi-stop mode:
//
//   - RouteThrough runs pairwise searches between consecutive points and a
//     final search back to the first point, concatenating segments (dropping
//     each segment's duplicated leading point) and summing distances.
//
// No RNG, no logging, no shared state: every call owns its open/closed sets
// and discards them on return, so concurrent calls are safe without locking.
package astar
