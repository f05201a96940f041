package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/maplab/tourkit/geom"
)

// neighborOffsets enumerates the 8 movement directions as unit multipliers;
// each is scaled by Options.Step during expansion.
var neighborOffsets = [8][2]float64{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// node is one open-set entry: a grid position with its accumulated cost,
// heuristic score, and parent pointer for path reconstruction.
type node struct {
	x, y   float64 // grid position (start offset + whole steps)
	g      float64 // accumulated cost from the start
	f      float64 // g + Euclidean heuristic to the goal
	parent *node   // predecessor on the cheapest known path
}

// FindPath searches for a path from start to goal on the clamped grid,
// avoiding opts.Obstacles, using 8-directional moves of opts.Step units.
//
// Termination: the first node popped within goalRadius of the goal wins; its
// path is reconstructed via parent pointers, the terminal node is snapped to
// the goal point itself, and the node's g-cost is reported as the distance.
//
// Degradation: when the open set is exhausted (goal walled off or off the
// step lattice), the result is the direct two-point path start→goal with the
// straight-line distance and Fallback=true — never an error.
//
// Complexity: O(C log C) time over C in-bounds cells, O(C) space.
func FindPath(start, goal geom.Point, opts Options) PathResult {
	opts = opts.normalize()

	// Trivial arrival: the start already satisfies the goal test.
	if geom.Distance(start, goal) <= goalRadius {
		return PathResult{
			Path:     []geom.Point{start, goal},
			Distance: 0,
		}
	}

	var (
		open   = make(nodePQ, 0, 64)       // min-heap ordered by f
		closed = make(map[Cell]struct{})   // finalized cell keys
		root   = &node{x: start.X, y: start.Y}
	)
	root.f = math.Hypot(goal.X-start.X, goal.Y-start.Y) // g=0 ⇒ f=h
	heap.Init(&open)
	heap.Push(&open, root)

	var (
		cur  *node   // node being expanded
		key  Cell    // its cell key
		i    int     // neighbor offset index
		nx   float64 // neighbor x
		ny   float64 // neighbor y
		step float64 // move cost for the current offset
		h    float64 // heuristic at the neighbor
	)
	for open.Len() > 0 {
		cur = heap.Pop(&open).(*node)

		// Lazy decrease-key: skip entries whose cell was already finalized.
		key = cellOf(cur.x, cur.y)
		if _, ok := closed[key]; ok {
			continue
		}
		closed[key] = struct{}{}

		// Goal test: within the arrival radius, reconstruct and return.
		if math.Hypot(goal.X-cur.x, goal.Y-cur.y) <= goalRadius {
			return PathResult{
				Path:     reconstruct(cur, start, goal),
				Distance: cur.g,
			}
		}

		// Expand the 8 neighbors, skipping out-of-bounds, obstacle-occupied,
		// and finalized cells.
		for i = 0; i < len(neighborOffsets); i++ {
			nx = cur.x + neighborOffsets[i][0]*opts.Step
			ny = cur.y + neighborOffsets[i][1]*opts.Step
			key = cellOf(nx, ny)

			if key.X < -opts.Extent || key.X > opts.Extent ||
				key.Y < -opts.Extent || key.Y > opts.Extent {
				continue // clamped: outside the configured extent
			}
			if _, ok := opts.Obstacles[key]; ok {
				continue // obstacle-occupied cell
			}
			if _, ok := closed[key]; ok {
				continue // already finalized
			}

			step = math.Hypot(nx-cur.x, ny-cur.y) // Step or Step·√2
			h = math.Hypot(goal.X-nx, goal.Y-ny)
			heap.Push(&open, &node{
				x:      nx,
				y:      ny,
				g:      cur.g + step,
				f:      cur.g + step + h,
				parent: cur,
			})
		}
	}

	// Open set exhausted: the goal is unreachable within the clamped grid.
	// Deliberate "always succeeds" contract — substitute the straight line.
	return PathResult{
		Path:     []geom.Point{start, goal},
		Distance: geom.Distance(start, goal),
		Fallback: true,
	}
}

// RouteThrough stitches a closed multi-stop route: pairwise FindPath between
// consecutive points plus a final segment back to the first point. Each
// segment's duplicated leading point is dropped during concatenation, and
// segment distances are summed. Fallback is set when any segment fell back.
//
// Degenerate inputs (0 or 1 points) return a trivial zero-distance result.
//
// Complexity: k+1 searches for k+1 segments over k points.
func RouteThrough(points []geom.Point, opts Options) PathResult {
	if len(points) == 0 {
		return PathResult{}
	}
	if len(points) == 1 {
		return PathResult{Path: []geom.Point{points[0]}}
	}

	var (
		out PathResult
		seg PathResult
		i   int
		to  geom.Point
	)
	for i = 0; i < len(points); i++ {
		if i == len(points)-1 {
			to = points[0] // closing segment back to the first point
		} else {
			to = points[i+1]
		}
		seg = FindPath(points[i], to, opts)

		if i == 0 {
			out.Path = append(out.Path, seg.Path...)
		} else {
			// Drop the duplicated leading point of every later segment.
			out.Path = append(out.Path, seg.Path[1:]...)
		}
		out.Distance += seg.Distance
		out.Fallback = out.Fallback || seg.Fallback
	}

	return out
}

// cellOf maps a grid position to its cell key by rounding each coordinate.
func cellOf(x, y float64) Cell {
	return Cell{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
	}
}

// reconstruct walks parent pointers from the winning node back to the root,
// reverses the chain, and emits geom.Points: the original start point first,
// minted waypoints for the interior nodes, and the goal point last (the
// winning node is within goalRadius of it, so the snap is lossless for
// routing purposes).
func reconstruct(end *node, start, goal geom.Point) []geom.Point {
	// Collect the chain root→end by walking backwards first.
	var chain []*node
	for n := end; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	// Reverse in place to forward order.
	var i, j int
	for i, j = 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	path := make([]geom.Point, 0, len(chain)+1)
	path = append(path, start)
	for i = 1; i < len(chain)-1; i++ {
		path = append(path, waypoint(chain[i].x, chain[i].y))
	}
	path = append(path, goal) // winning node snapped onto the goal point

	return path
}

// waypoint mints an intermediate path point; its ID is the "x,y" cell-style
// key, stable across identical searches.
func waypoint(x, y float64) geom.Point {
	return geom.Point{
		ID: fmt.Sprintf("%g,%g", x, y),
		X:  x,
		Y:  y,
	}
}
