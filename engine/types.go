package engine

import (
	"errors"

	"github.com/maplab/tourkit/geom"
)

// Algorithm selects a solver. The set is closed: every value maps to one
// dedicated pure function, and unknown values are rejected up front.
type Algorithm string

const (
	// ExactDP is Held–Karp dynamic programming (optimal, n ≤ MaxExactPoints).
	ExactDP Algorithm = "exact-dp"

	// NearestNeighbor is the greedy O(n²) construction.
	NearestNeighbor Algorithm = "nearest-neighbor"

	// TwoOpt refines the Nearest-Neighbor tour by pass-based edge swaps.
	TwoOpt Algorithm = "2-opt"

	// Christofides is the MST → matching → Euler → shortcut approximation.
	Christofides Algorithm = "christofides"

	// AStar stitches a multi-stop route with grid A* between consecutive stops.
	AStar Algorithm = "astar"
)

// MaxExactPoints is the exact solver's size ceiling. Above it the dispatcher
// transparently substitutes Nearest Neighbor (Held–Karp is exponential; 20
// points already means 20·2²⁰ DP states).
const MaxExactPoints = 20

// Result labels. The substituted label deliberately differs from
// LabelExactDP so a downgraded result is recognizable by its label alone.
const (
	LabelExactDP         = "Exact DP"
	LabelNearestNeighbor = "Nearest Neighbor"
	LabelTwoOpt          = "2-Opt"
	LabelChristofides    = "Christofides"
	LabelAStar           = "A*"
	LabelSubstituted     = "Nearest Neighbor (substituted for Exact DP)"
)

// ErrUnknownAlgorithm is returned for a selector outside the closed set.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm selector")

// RouteResult is the outcome of one solve call. It is produced fresh per
// call, never mutated after return, and owned by the caller.
type RouteResult struct {
	// Path is the ordered point sequence. Closed-tour solvers start and end
	// it at the first input point; A* paths additionally contain the grid
	// waypoints between stops.
	Path []geom.Point

	// Distance is the non-negative total length of Path.
	Distance float64

	// TimeMs is the non-negative wall-clock compute cost in milliseconds.
	TimeMs float64

	// Algorithm labels the solver that actually produced the result, which
	// differs from the requested one after a substitution.
	Algorithm string

	// Substituted reports that the requested solver was downgraded
	// (exact-dp over the size ceiling) — a structured complement to the
	// relabeled Algorithm string.
	Substituted bool

	// Fallback reports that at least one A* segment used the straight-line
	// fallback instead of a computed grid path.
	Fallback bool
}
