package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/maplab/tourkit/tsp"
)

// randPoints returns n points uniformly scattered over a side×side square,
// seeded for reproducible benchmark inputs.
func randPoints(n int, side float64, seed int64) [][2]float64 {
	rnd := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = [2]float64{rnd.Float64() * side, rnd.Float64() * side}
	}

	return pts
}

// BenchmarkTSPExact_N12 measures Held–Karp on a 12-vertex instance
// (2¹² masks × 12 endpoints ≈ 49k DP cells).
func BenchmarkTSPExact_N12(b *testing.B) {
	dist := euclid(randPoints(12, 100, 42))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tsp.TSPExact(dist)
	}
}

// BenchmarkTSPExact_N16 is near the practical ceiling for the exact solver.
func BenchmarkTSPExact_N16(b *testing.B) {
	dist := euclid(randPoints(16, 100, 42))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tsp.TSPExact(dist)
	}
}

// BenchmarkNearestNeighbor_N500 measures the O(n²) greedy construction.
func BenchmarkNearestNeighbor_N500(b *testing.B) {
	dist := euclid(randPoints(500, 1000, 7))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tsp.NearestNeighbor(dist)
	}
}

// BenchmarkTwoOpt_N200 measures full 2-opt refinement of a greedy seed.
func BenchmarkTwoOpt_N200(b *testing.B) {
	dist := euclid(randPoints(200, 500, 7))
	seed, err := tsp.NearestNeighbor(dist)
	if err != nil {
		b.Fatalf("seed construction failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = tsp.TwoOpt(dist, seed.Tour, tsp.DefaultTwoOptOptions())
	}
}

// BenchmarkTSPApprox_N200 measures the MST + matching + Eulerian pipeline.
func BenchmarkTSPApprox_N200(b *testing.B) {
	dist := euclid(randPoints(200, 500, 7))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tsp.TSPApprox(dist)
	}
}
