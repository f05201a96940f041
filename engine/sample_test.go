package engine_test

import (
	"testing"

	"github.com/maplab/tourkit/engine"
	"github.com/stretchr/testify/require"
)

func TestSamplePoints_FixtureShape(t *testing.T) {
	points := engine.SamplePoints()
	require.Len(t, points, 8)

	ids := make(map[string]struct{}, len(points))
	for _, p := range points {
		require.NotEmpty(t, p.ID)
		require.NotEmpty(t, p.Name)
		_, dup := ids[p.ID]
		require.False(t, dup, "duplicate id %s", p.ID)
		ids[p.ID] = struct{}{}
	}
}

func TestSamplePoints_ReturnsFreshCopy(t *testing.T) {
	first := engine.SamplePoints()
	first[0].ID = "clobbered"
	first[0].X = 9999

	second := engine.SamplePoints()
	require.NotEqual(t, "clobbered", second[0].ID)
	require.NotEqual(t, 9999.0, second[0].X)
}

func TestSamplePoints_SolvableByEveryAlgorithm(t *testing.T) {
	// The demo set is the documented entry point; it must clear the exact
	// ceiling and route cleanly end to end.
	points := engine.SamplePoints()
	require.LessOrEqual(t, len(points), engine.MaxExactPoints)

	results, err := engine.CompareAll(points)
	require.NoError(t, err)
	require.Len(t, results, 5)
}
