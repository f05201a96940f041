// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating production code.
package tsp_test

import (
	"math"
	"testing"
)

// euclid builds a symmetric metric from 2D points with zero diagonal.
func euclid(pts [][2]float64) [][]float64 {
	n := len(pts)
	a := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}

	// Fill upper triangle with Euclidean distances, mirror to lower triangle.
	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Hypot(dx, dy) // stable sqrt(dx*dx+dy*dy)
			a[i][j] = d
			a[j][i] = d
		}
	}

	return a
}

// makeCycleDist builds ring distances: dist(i,j) = min(|i-j|, n-|i-j|).
// The optimal cycle cost on such an instance is exactly n.
func makeCycleDist(n int) [][]float64 {
	dist := make([][]float64, n)
	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return dist
}

// circlePoints places n points uniformly on a circle of the given radius.
func circlePoints(n int, radius float64) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i     int
		theta float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n) // uniform angle
		pts[i] = [2]float64{radius * math.Cos(theta), radius * math.Sin(theta)}
	}

	return pts
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}
