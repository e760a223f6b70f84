package polyline

import (
	"sort"

	"github.com/osuushi/cdt/sweep"
)

// Where two edges of a path cross. Both edges get a copy of the crossing, so
// walking the path passes each one twice.
type crossing struct {
	id    int
	t     float64 // position along the edge it is stored on
	point sweep.Point
}

// Split breaks a closed path whose edges cross each other into closed loops
// that don't, splitting at every crossing point. A figure eight comes back as
// its two lobes. Loops with fewer than three points are dropped.
//
// Edges that overlap along a line are not split, since they have no single
// crossing point. If the last point repeats the first, it is treated as the
// closing vertex rather than a separate one.
func Split(points []sweep.Point) [][]sweep.Point {
	points = dropRepeats(points)
	if len(points) < 3 {
		return nil
	}
	n := len(points)

	crossings := make([][]crossing, n)
	nextID := 0
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// Adjacent through the closing edge
				continue
			}
			c, d := points[j], points[(j+1)%n]
			t, u, ok := intersect(a, b, c, d)
			if !ok {
				continue
			}
			// Edges meeting at a vertex of one of them are split there too. The
			// crossing then coincides with that vertex, and dropRepeats folds
			// them together below.
			p := sweep.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
			crossings[i] = append(crossings[i], crossing{nextID, t, p})
			crossings[j] = append(crossings[j], crossing{nextID, u, p})
			nextID++
		}
	}
	if nextID == 0 {
		return [][]sweep.Point{append([]sweep.Point(nil), points...)}
	}

	// Walk the path with a stack. Reaching a crossing that is already on the
	// stack closes a loop: everything above it comes off as one shape.
	type entry struct {
		point sweep.Point
		id    int // crossing id, or -1 for a path vertex
	}
	var stack []entry
	onStack := make(map[int]int)
	var shapes [][]sweep.Point

	emit := func(entries []entry) {
		shape := make([]sweep.Point, len(entries))
		for i, e := range entries {
			shape[i] = e.point
		}
		shape = dropRepeats(shape)
		if len(shape) >= 3 {
			shapes = append(shapes, shape)
		}
	}

	for i := 0; i < n; i++ {
		stack = append(stack, entry{points[i], -1})
		along := crossings[i]
		sort.SliceStable(along, func(a, b int) bool { return along[a].t < along[b].t })
		for _, x := range along {
			if at, ok := onStack[x.id]; ok {
				emit(stack[at:])
				for _, e := range stack[at+1:] {
					if e.id >= 0 {
						delete(onStack, e.id)
					}
				}
				stack = stack[:at+1]
				continue
			}
			onStack[x.id] = len(stack)
			stack = append(stack, entry{x.point, x.id})
		}
	}
	emit(stack)

	return shapes
}

// Segment intersection by parameter: a + t(b-a) == c + u(d-c). Parallel
// segments never intersect here, even when they overlap.
func intersect(a, b, c, d sweep.Point) (t, u float64, ok bool) {
	rx, ry := b.X-a.X, b.Y-a.Y
	sx, sy := d.X-c.X, d.Y-c.Y
	denom := rx*sy - ry*sx
	if denom == 0 {
		return 0, 0, false
	}
	qx, qy := c.X-a.X, c.Y-a.Y
	t = (qx*sy - qy*sx) / denom
	u = (qx*ry - qy*rx) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}

// Drop consecutive equal points, including a last point equal to the first.
func dropRepeats(points []sweep.Point) []sweep.Point {
	result := make([]sweep.Point, 0, len(points))
	for _, p := range points {
		if len(result) > 0 && result[len(result)-1] == p {
			continue
		}
		result = append(result, p)
	}
	for len(result) > 1 && result[len(result)-1] == result[0] {
		result = result[:len(result)-1]
	}
	return result
}
