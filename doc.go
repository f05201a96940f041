// Package tourkit is a route-solving engine for small planar instances of
// the Travelling Salesman Problem, plus an obstacle-aware grid pathfinder.
//
// 🚀 What is tourkit?
//
//	A compact, deterministic library that brings together:
//		• Geometry primitives: immutable 2D points, Euclidean distance, route length
//		• Exact solving: Held–Karp bitmask dynamic programming (optimal, n ≲ 20)
//		• Greedy construction: Nearest Neighbor baseline tours
//		• Local search: pass-based 2-opt refinement with a strict tolerance
//		• Approximation: Christofides (Prim MST → odd matching → Euler → shortcut)
//		• Pathfinding: grid A* with 8-directional movement and a direct-line fallback
//		• Dispatch: a single Solve/CompareAll surface with per-result timing
//
// ✨ Why choose tourkit?
//
//   - Deterministic – identical inputs always reproduce identical tours
//   - Graceful – oversized exact requests downgrade, unreachable goals fall back
//   - Pure Go – no cgo; solvers are side-effect-free and safe to call concurrently
//   - Honest labels – substituted and fallback results say so
//
// Everything is organized under four subpackages:
//
//	geom/   — Point, Distance, RouteLength
//	tsp/    — index-tour solvers over a dense distance matrix
//	astar/  — grid A* between points, single-pair and multi-stop
//	engine/ — algorithm selector, RouteResult, sample point set
//
// Quick ASCII example:
//
//	    A(0,0)───B(3,0)
//	       \      /
//	        C(0,4)
//
//	the optimal closed tour A→B→C→A has length 3 + 5 + 4 = 12.
//
// Dive into the per-package docs for contracts, complexity notes and the
// exact degradation rules each solver guarantees.
//
//	go get github.com/maplab/tourkit
package tourkit
