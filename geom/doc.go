// Package geom defines the planar primitives shared by every tourkit solver:
// the immutable Point value and the Euclidean distance functions.
//
// Design principles:
//
//   - Points are immutable once created; solvers only reorder references.
//   - Distance is pure, total, symmetric, and satisfies the triangle
//     inequality — the property Christofides' approximation bound relies on.
//   - RouteLength sums consecutive pairwise distances and is 0 for paths of
//     length ≤ 1, so degenerate inputs never need special casing upstream.
//
// Complexity:
//
//   - Distance:    O(1)
//   - RouteLength: O(n) for a path of n points
package geom
