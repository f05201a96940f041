package geom

import (
	"math"

	"github.com/google/uuid"
)

// Point is an immutable named location in the plane.
//
// ID is a unique, stable token identifying the point across solve calls;
// Name is a human-readable display label. Solvers never mutate a Point,
// they only reorder references to points.
type Point struct {
	ID   string  // unique, stable identity token
	Name string  // display name
	X, Y float64 // planar coordinates
}

// NewPoint builds a Point with the given display name and coordinates,
// minting a fresh UUID for its identity. Use a struct literal instead when
// the caller already owns a stable ID (e.g. the fixed sample set).
func NewPoint(name string, x, y float64) Point {
	return Point{
		ID:   uuid.NewString(),
		Name: name,
		X:    x,
		Y:    y,
	}
}

// Distance returns the Euclidean distance between p and q:
// sqrt((p.X−q.X)² + (p.Y−q.Y)²), computed via math.Hypot for stability.
//
// Properties: pure, total, symmetric, non-negative, and metric
// (triangle inequality holds).
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RouteLength returns the sum of consecutive pairwise distances along path.
// A path of length 0 or 1 has no edges, so its length is 0.
//
// The closing edge is NOT implied: callers representing a closed tour must
// repeat the starting point at the end of path.
//
// Complexity: O(n) time, O(1) space.
func RouteLength(path []Point) float64 {
	if len(path) < 2 {
		return 0
	}

	var (
		sum float64 // accumulated length
		i   int     // loop iterator
	)
	for i = 0; i < len(path)-1; i++ {
		sum += Distance(path[i], path[i+1])
	}

	return sum
}
