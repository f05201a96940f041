package engine

import (
	"time"

	"github.com/maplab/tourkit/astar"
	"github.com/maplab/tourkit/geom"
	"github.com/maplab/tourkit/tsp"
)

// allAlgorithms is the closed selector set in CompareAll's output order.
var allAlgorithms = []Algorithm{ExactDP, NearestNeighbor, TwoOpt, Christofides, AStar}

// Solve runs the solver selected by algo over points and returns its result.
//
// Rules:
//   - Unknown selectors return ErrUnknownAlgorithm.
//   - 0 or 1 points yield a trivial zero-distance result with no iteration.
//   - exact-dp with len(points) > MaxExactPoints silently downgrades to
//     Nearest Neighbor; the result carries LabelSubstituted and
//     Substituted=true.
//
// The returned RouteResult is fresh and owned by the caller; points are
// never mutated, only reordered into the result path.
func Solve(points []geom.Point, algo Algorithm) (RouteResult, error) {
	label, err := labelFor(algo)
	if err != nil {
		return RouteResult{}, err
	}

	// Degenerate inputs: nothing to solve, distance 0 by definition.
	if len(points) <= 1 {
		return RouteResult{
			Path:      append([]geom.Point(nil), points...),
			Algorithm: label,
		}, nil
	}

	started := time.Now()

	var res RouteResult
	switch algo {
	case ExactDP:
		if len(points) > MaxExactPoints {
			// Transparent downgrade: Held–Karp is exponential past the
			// ceiling. The relabeled result makes the substitution visible.
			res, err = solveTour(points, tsp.NearestNeighbor)
			res.Algorithm = LabelSubstituted
			res.Substituted = true
		} else {
			res, err = solveTour(points, tsp.TSPExact)
			res.Algorithm = LabelExactDP
		}

	case NearestNeighbor:
		res, err = solveTour(points, tsp.NearestNeighbor)
		res.Algorithm = LabelNearestNeighbor

	case TwoOpt:
		res, err = solveTour(points, twoOptSeeded)
		res.Algorithm = LabelTwoOpt

	case Christofides:
		res, err = solveTour(points, tsp.TSPApprox)
		res.Algorithm = LabelChristofides

	case AStar:
		grid := astar.RouteThrough(points, astar.DefaultOptions())
		res = RouteResult{
			Path:      grid.Path,
			Distance:  grid.Distance,
			Algorithm: LabelAStar,
			Fallback:  grid.Fallback,
		}
	}
	if err != nil {
		return RouteResult{}, err
	}

	res.TimeMs = float64(time.Since(started)) / float64(time.Millisecond)

	return res, nil
}

// CompareAll runs every algorithm over the same points and returns one
// result per algorithm, unranked. exact-dp is skipped (not substituted) when
// the point count exceeds MaxExactPoints, so the output never contains two
// Nearest-Neighbor entries.
func CompareAll(points []geom.Point) ([]RouteResult, error) {
	out := make([]RouteResult, 0, len(allAlgorithms))

	var (
		algo Algorithm
		res  RouteResult
		err  error
	)
	for _, algo = range allAlgorithms {
		if algo == ExactDP && len(points) > MaxExactPoints {
			continue
		}
		res, err = Solve(points, algo)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

// twoOptSeeded builds the Nearest-Neighbor seed and refines it with the
// default 2-opt policy (eps 1e-4, pass cap 1000).
func twoOptSeeded(dist [][]float64) (tsp.TSResult, error) {
	seed, err := tsp.NearestNeighbor(dist)
	if err != nil {
		return tsp.TSResult{}, err
	}

	tour, cost, err := tsp.TwoOpt(dist, seed.Tour, tsp.DefaultTwoOptOptions())
	if err != nil {
		return tsp.TSResult{}, err
	}

	return tsp.TSResult{Tour: tour, Cost: cost}, nil
}

// solveTour runs a matrix-based solver and maps its index tour back onto
// the caller's points.
func solveTour(points []geom.Point, solver func([][]float64) (tsp.TSResult, error)) (RouteResult, error) {
	res, err := solver(distanceMatrix(points))
	if err != nil {
		return RouteResult{}, err
	}

	path := make([]geom.Point, len(res.Tour))
	var i int
	for i = 0; i < len(res.Tour); i++ {
		path[i] = points[res.Tour[i]]
	}

	return RouteResult{
		Path:     path,
		Distance: res.Cost,
	}, nil
}

// distanceMatrix builds the symmetric Euclidean matrix the tsp solvers
// consume. The zero diagonal and symmetry it guarantees are exactly the
// metric preconditions Christofides validates.
//
// Complexity: O(n²) time and space.
func distanceMatrix(points []geom.Point) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = geom.Distance(points[i], points[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist
}

// labelFor maps a selector to its result label, rejecting unknown values.
func labelFor(algo Algorithm) (string, error) {
	switch algo {
	case ExactDP:
		return LabelExactDP, nil
	case NearestNeighbor:
		return LabelNearestNeighbor, nil
	case TwoOpt:
		return LabelTwoOpt, nil
	case Christofides:
		return LabelChristofides, nil
	case AStar:
		return LabelAStar, nil
	default:
		return "", ErrUnknownAlgorithm
	}
}
