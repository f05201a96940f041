package astar

import "github.com/maplab/tourkit/geom"

const (
	// DefaultExtent is the half-width of the clamped search area: cells with
	// |x| > extent or |y| > extent are out of bounds.
	DefaultExtent = 100

	// DefaultStep is the grid step, in grid units, of a single move.
	DefaultStep = 2.0

	// goalRadius is the arrival tolerance: a node within this Euclidean
	// distance of the goal terminates the search. It must stay below the
	// step size, or the search would overshoot its own termination test.
	goalRadius = 1.0
)

// Cell is a grid-cell key: node coordinates rounded to the nearest integer.
// The closed set and the obstacle set are both keyed by Cell.
type Cell struct {
	X, Y int
}

// Options configures a grid search.
//
// Extent    – half-width of the search area (must be > 0; else DefaultExtent).
// Step      – move length in grid units (must be > 0; else DefaultStep).
// Obstacles – set of impassable cells; nil means an open grid.
//
// Invalid values are normalized to defaults rather than rejected: the
// pathfinder's contract is to always produce a usable result.
type Options struct {
	Extent    int
	Step      float64
	Obstacles map[Cell]struct{}
}

// DefaultOptions returns an open-grid configuration with DefaultExtent and
// DefaultStep and no obstacles.
func DefaultOptions() Options {
	return Options{
		Extent: DefaultExtent,
		Step:   DefaultStep,
	}
}

// normalize clamps invalid option values back to their defaults.
func (o Options) normalize() Options {
	if o.Extent <= 0 {
		o.Extent = DefaultExtent
	}
	if o.Step <= 0 {
		o.Step = DefaultStep
	}

	return o
}

// PathResult is the outcome of a grid search.
//
// Path holds the start point, the expanded grid waypoints, and the goal
// point. Distance is the accumulated g-cost of the found path (or the
// straight-line distance when Fallback is set). Fallback reports that the
// goal was unreachable and the direct two-point path was substituted.
type PathResult struct {
	Path     []geom.Point
	Distance float64
	Fallback bool
}
