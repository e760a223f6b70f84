package sweep

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Reject polylines the sweep can't handle. Everything checked here is cheap
// compared to the sweep itself, except the simplicity check, which can be
// turned off.
func validatePolyline(points []*Point, checkSimple bool) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrDegenerateInput, "polyline has %d points, need at least 3", len(points))
	}

	identity := make(PointSet, len(points))
	coordinates := make(map[[2]float64]int, len(points))
	for i, p := range points {
		if p == nil {
			return errors.Wrapf(ErrDegenerateInput, "point %d is nil", i)
		}
		if !isFinite(p.X) || !isFinite(p.Y) {
			return errors.Wrapf(ErrDegenerateInput, "point %d has non-finite coordinates %v", i, *p)
		}

		next := points[CircularIndex(i+1, len(points))]
		if next != nil && next.X == p.X && next.Y == p.Y {
			return errors.Wrapf(ErrDegenerateInput, "points %d and %d coincide at %v", i, CircularIndex(i+1, len(points)), *p)
		}

		if identity.Contains(p) {
			return errors.Wrapf(ErrDuplicatePoint, "point %d appears twice in the polyline", i)
		}
		identity.Add(p)

		key := [2]float64{p.X, p.Y}
		if j, ok := coordinates[key]; ok {
			return errors.Wrapf(ErrDuplicatePoint, "points %d and %d are both at %v", j, i, *p)
		}
		coordinates[key] = i
	}

	if allCollinear(points) {
		return errors.Wrap(ErrDegenerateInput, "all points are collinear")
	}

	if checkSimple {
		if i, j, ok := findIntersection(points); ok {
			return errors.Wrapf(
				ErrNonSimplePolyline,
				"edge %d (%v-%v) intersects edge %d (%v-%v)",
				i, *points[i], *points[CircularIndex(i+1, len(points))],
				j, *points[j], *points[CircularIndex(j+1, len(points))],
			)
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Test every point against the line from the first point to the point farthest
// from it. Using the farthest point keeps the test meaningful when the first
// two points happen to be very close together.
func allCollinear(points []*Point) bool {
	origin := points[0]
	var far *Point
	var farDistance float64
	for _, p := range points[1:] {
		d := math.Hypot(p.X-origin.X, p.Y-origin.Y)
		if d > farDistance {
			far, farDistance = p, d
		}
	}
	if far == nil {
		return true
	}
	for _, p := range points {
		if p == origin || p == far {
			continue
		}
		if Orient2d(origin, far, p) != Collinear {
			return false
		}
	}
	return true
}

// Find a pair of polyline edges that touch anywhere other than the vertex
// shared by consecutive edges, testing each edge against every edge whose x
// range overlaps its own. That is quadratic for long or jagged edges, so
// findIntersection only falls back on it.
func findIntersectionByPairs(points []*Point) (int, int, bool) {
	n := len(points)
	segments := make([]*segment, n)
	for i, a := range points {
		segments[i] = newSegment(i, a, points[CircularIndex(i+1, n)])
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].left.X < segments[j].left.X
	})

	for i, s := range segments {
		for _, o := range segments[i+1:] {
			if o.left.X > s.right.X {
				break
			}
			if segmentsConflict(s, o, n) {
				return orderedPair(s, o)
			}
		}
	}
	return 0, 0, false
}

func orderedPair(s, o *segment) (int, int, bool) {
	if s.index > o.index {
		return o.index, s.index, true
	}
	return s.index, o.index, true
}

func segmentsConflict(s, o *segment, n int) bool {
	switch {
	case CircularIndex(s.index+1, n) == o.index:
		return foldsBack(s.a, s.b, o.b)
	case CircularIndex(o.index+1, n) == s.index:
		return foldsBack(o.a, o.b, s.b)
	}
	return SegmentsIntersect(s.a, s.b, o.a, o.b)
}

// Consecutive edges a-b and b-c only conflict when c doubles back along a-b.
func foldsBack(a, b, c *Point) bool {
	if Orient2d(a, b, c) != Collinear {
		return false
	}
	return (a.X-b.X)*(c.X-b.X)+(a.Y-b.Y)*(c.Y-b.Y) > 0
}
