package engine_test

import (
	"fmt"
	"testing"

	"github.com/maplab/tourkit/engine"
	"github.com/maplab/tourkit/geom"
	"github.com/stretchr/testify/require"
)

// tourAlgorithms are the solvers whose result is a closed tour over the
// input points (A* inserts grid waypoints and is asserted separately).
var tourAlgorithms = []engine.Algorithm{
	engine.ExactDP,
	engine.NearestNeighbor,
	engine.TwoOpt,
	engine.Christofides,
}

// triangle345 is the 3-4-5 right triangle: every Hamiltonian cycle over it
// has length exactly 12, so all tour solvers must agree.
func triangle345() []geom.Point {
	return []geom.Point{
		{ID: "a", Name: "A", X: 0, Y: 0},
		{ID: "b", Name: "B", X: 3, Y: 0},
		{ID: "c", Name: "C", X: 0, Y: 4},
	}
}

// gridPoints lays n points on a spacing-4 lattice, all distinct and all
// exactly reachable by the default step-2 grid walker.
func gridPoints(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = geom.Point{
			ID:   fmt.Sprintf("p%02d", i),
			Name: fmt.Sprintf("Stop %d", i),
			X:    float64((i % 5) * 4),
			Y:    float64((i / 5) * 4),
		}
	}

	return pts
}

// requireClosedTour asserts the fundamental tour shape: len(points)+1 stops,
// starting and ending at the first input point, every input visited once.
func requireClosedTour(t *testing.T, points []geom.Point, path []geom.Point) {
	t.Helper()

	require.Len(t, path, len(points)+1)
	require.Equal(t, points[0].ID, path[0].ID)
	require.Equal(t, points[0].ID, path[len(path)-1].ID)

	seen := make(map[string]int, len(points))
	for _, p := range path[:len(path)-1] {
		seen[p.ID]++
	}
	for _, p := range points {
		require.Equal(t, 1, seen[p.ID], "point %s must be visited exactly once", p.ID)
	}
}

func TestSolve_ClosedTourProperties(t *testing.T) {
	points := engine.SamplePoints()

	for _, algo := range tourAlgorithms {
		res, err := engine.Solve(points, algo)
		require.NoError(t, err, "algo %s", algo)

		requireClosedTour(t, points, res.Path)
		require.GreaterOrEqual(t, res.Distance, 0.0)
		require.GreaterOrEqual(t, res.TimeMs, 0.0)
		require.False(t, res.Substituted)
		require.False(t, res.Fallback)
	}
}

func TestSolve_ExactIsNeverBeaten(t *testing.T) {
	points := engine.SamplePoints()

	exact, err := engine.Solve(points, engine.ExactDP)
	require.NoError(t, err)
	require.Equal(t, engine.LabelExactDP, exact.Algorithm)

	for _, algo := range tourAlgorithms[1:] {
		res, rerr := engine.Solve(points, algo)
		require.NoError(t, rerr)
		require.LessOrEqual(t, exact.Distance, res.Distance+1e-9,
			"exact tour must not lose to %s", algo)
	}
}

func TestSolve_TriangleScenario(t *testing.T) {
	// With three points every cycle is the same triangle, so each tour
	// solver reports the identical perimeter.
	points := triangle345()

	for _, algo := range tourAlgorithms {
		res, err := engine.Solve(points, algo)
		require.NoError(t, err, "algo %s", algo)
		require.Equal(t, 12.0, res.Distance)
		requireClosedTour(t, points, res.Path)
	}
}

func TestSolve_CollinearPoints(t *testing.T) {
	// Four stops on a line: the optimal loop sweeps out and back, length 6.
	points := []geom.Point{
		{ID: "p0", X: 0, Y: 0},
		{ID: "p1", X: 1, Y: 0},
		{ID: "p2", X: 2, Y: 0},
		{ID: "p3", X: 3, Y: 0},
	}

	for _, algo := range tourAlgorithms {
		res, err := engine.Solve(points, algo)
		require.NoError(t, err, "algo %s", algo)
		require.Equal(t, 6.0, res.Distance)
	}
}

func TestSolve_SubstitutesAboveExactCeiling(t *testing.T) {
	points := gridPoints(engine.MaxExactPoints + 1)

	res, err := engine.Solve(points, engine.ExactDP)
	require.NoError(t, err)
	require.True(t, res.Substituted)
	require.Equal(t, engine.LabelSubstituted, res.Algorithm)
	requireClosedTour(t, points, res.Path)

	// The substitution is literal: same tour as a direct greedy solve.
	greedy, err := engine.Solve(points, engine.NearestNeighbor)
	require.NoError(t, err)
	require.Equal(t, greedy.Distance, res.Distance)
}

func TestSolve_AStarRoute(t *testing.T) {
	points := engine.SamplePoints()

	res, err := engine.Solve(points, engine.AStar)
	require.NoError(t, err)
	require.Equal(t, engine.LabelAStar, res.Algorithm)
	require.False(t, res.Fallback)
	require.Positive(t, res.Distance)

	// The stitched route is closed over the first stop; the grid waypoints
	// in between make it longer than the point count.
	require.Equal(t, points[0].ID, res.Path[0].ID)
	require.Equal(t, points[0].ID, res.Path[len(res.Path)-1].ID)
	require.Greater(t, len(res.Path), len(points))
}

func TestSolve_DegenerateInputs(t *testing.T) {
	// Empty input: nothing to route.
	res, err := engine.Solve(nil, engine.TwoOpt)
	require.NoError(t, err)
	require.Empty(t, res.Path)
	require.Zero(t, res.Distance)
	require.Equal(t, engine.LabelTwoOpt, res.Algorithm)

	// Single point: the route is the point itself, distance 0.
	only := geom.Point{ID: "solo", X: 7, Y: -3}
	res, err = engine.Solve([]geom.Point{only}, engine.ExactDP)
	require.NoError(t, err)
	require.Equal(t, []geom.Point{only}, res.Path)
	require.Zero(t, res.Distance)
	require.False(t, res.Substituted)
}

func TestSolve_UnknownAlgorithm(t *testing.T) {
	_, err := engine.Solve(engine.SamplePoints(), engine.Algorithm("simulated-annealing"))
	require.ErrorIs(t, err, engine.ErrUnknownAlgorithm)

	_, err = engine.Solve(nil, engine.Algorithm(""))
	require.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

func TestSolve_Deterministic(t *testing.T) {
	points := engine.SamplePoints()

	for _, algo := range tourAlgorithms {
		first, err := engine.Solve(points, algo)
		require.NoError(t, err)

		for run := 0; run < 3; run++ {
			res, rerr := engine.Solve(points, algo)
			require.NoError(t, rerr)
			require.Equal(t, first.Path, res.Path, "algo %s", algo)
			require.Equal(t, first.Distance, res.Distance, "algo %s", algo)
		}
	}
}

func TestCompareAll_SmallInstance(t *testing.T) {
	points := engine.SamplePoints()

	results, err := engine.CompareAll(points)
	require.NoError(t, err)
	require.Len(t, results, 5)

	labels := make([]string, len(results))
	for i, res := range results {
		labels[i] = res.Algorithm
		require.False(t, res.Substituted)
		require.GreaterOrEqual(t, res.Distance, 0.0)
		require.GreaterOrEqual(t, res.TimeMs, 0.0)
	}
	require.Equal(t, []string{
		engine.LabelExactDP,
		engine.LabelNearestNeighbor,
		engine.LabelTwoOpt,
		engine.LabelChristofides,
		engine.LabelAStar,
	}, labels)

	// The exact entry is the cheapest of the tour entries.
	exact := results[0].Distance
	for _, res := range results[1:4] {
		require.LessOrEqual(t, exact, res.Distance+1e-9)
	}
}

func TestCompareAll_SkipsExactAboveCeiling(t *testing.T) {
	points := gridPoints(engine.MaxExactPoints + 1)

	results, err := engine.CompareAll(points)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Skipped means skipped: no exact entry, no substituted stand-in.
	for _, res := range results {
		require.NotEqual(t, engine.LabelExactDP, res.Algorithm)
		require.NotEqual(t, engine.LabelSubstituted, res.Algorithm)
		require.False(t, res.Substituted)
	}
	require.Equal(t, engine.LabelNearestNeighbor, results[0].Algorithm)
}
