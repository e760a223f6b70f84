package sweep

import (
	"sort"

	"github.com/google/btree"
)

// The simplicity check is a Shamos-Hoey sweep. A vertical line moves left to
// right, and the edges it crosses are kept in bottom to top order. Until the
// first intersection that order never changes, and the leftmost intersection
// is between two edges that are neighbors in it at some point. So each edge
// only needs testing against its neighbors when it enters or leaves, which
// makes the check O(n log n).
//
// Vertical edges have no place in the order. Each is tested against the other
// vertical edges in its column and against the ordered edges crossing its span.

const statusDegree = 8

// A polyline edge. a and b are in polyline order, left and right in sweep
// order.
type segment struct {
	index       int
	a, b        *Point
	left, right *Point
}

func newSegment(index int, a, b *Point) *segment {
	s := &segment{index: index, a: a, b: b, left: a, right: b}
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		s.left, s.right = b, a
	}
	return s
}

func (s *segment) vertical() bool {
	return s.left.X == s.right.X
}

// Which of two edges the sweep reaches first. Edges leaving the same point go
// by index.
func startsBefore(s, o *segment) bool {
	if s.left.X != o.left.X {
		return s.left.X < o.left.X
	}
	if s.left.Y != o.left.Y {
		return s.left.Y < o.left.Y
	}
	return s.index < o.index
}

// Order of two edges crossed by the sweep line at the same time. Where the later
// edge starts is tested against the line through the earlier one. When it
// starts right on that line, it goes by where it heads instead. The answer is
// the same anywhere both edges are crossed, so it doesn't depend on where the
// sweep is.
func segmentBelow(s, o *segment) bool {
	if s == o {
		return false
	}
	earlier, later := s, o
	if startsBefore(o, s) {
		earlier, later = o, s
	}

	var above bool
	if earlier.vertical() {
		above = true
	} else {
		switch Orient2d(earlier.left, earlier.right, later.left) {
		case CCW:
			above = true
		case CW:
			above = false
		default:
			switch Orient2d(earlier.left, earlier.right, later.right) {
			case CCW:
				above = true
			case CW:
				above = false
			default:
				// Overlapping, which is a conflict the neighbor test reports
				above = later.index > earlier.index
			}
		}
	}
	if later == o {
		return above
	}
	return !above
}

// Everything that happens when the sweep line reaches one x.
type column struct {
	x         float64
	starts    []*segment
	verticals []*segment
	ends      []*segment
}

type simplicitySweep struct {
	n      int
	status *btree.BTreeG[*segment]
	// Number of edge pairs tested
	tests int
}

// Find a pair of polyline edges that touch anywhere other than the vertex
// shared by consecutive edges. The indexes are those of the first point of
// each edge, lower first.
func findIntersection(points []*Point) (int, int, bool) {
	w := &simplicitySweep{
		n:      len(points),
		status: btree.NewG(statusDegree, segmentBelow),
	}
	i, j, found, ok := w.run(points)
	if !ok {
		return findIntersectionByPairs(points)
	}
	return i, j, found
}

// Returns ok=false if the status lost track of an edge, which takes input
// degenerate enough that the orientation tests contradict each other.
func (w *simplicitySweep) run(points []*Point) (i, j int, found, ok bool) {
	for _, c := range columnsOf(points) {
		for _, s := range c.starts {
			if o := w.insert(s); o != nil {
				i, j, found = orderedPair(s, o)
				return i, j, found, true
			}
		}

		var top *segment
		for _, v := range c.verticals {
			if top != nil && v.left.Y <= top.right.Y && w.conflict(top, v) {
				i, j, found = orderedPair(top, v)
				return i, j, found, true
			}
			if top == nil || v.right.Y > top.right.Y {
				top = v
			}
			if o := w.crossing(v); o != nil {
				i, j, found = orderedPair(v, o)
				return i, j, found, true
			}
		}

		for _, s := range c.ends {
			below, above, removed := w.remove(s)
			if !removed {
				return 0, 0, false, false
			}
			if below != nil {
				i, j, found = orderedPair(below, above)
				return i, j, found, true
			}
		}
	}
	return 0, 0, false, true
}

// Bucket the edges by the x where they enter and leave the sweep, in x order.
func columnsOf(points []*Point) []*column {
	n := len(points)
	byX := make(map[float64]*column)
	at := func(x float64) *column {
		c, ok := byX[x]
		if !ok {
			c = &column{x: x}
			byX[x] = c
		}
		return c
	}
	for i, a := range points {
		s := newSegment(i, a, points[CircularIndex(i+1, n)])
		if s.vertical() {
			c := at(s.left.X)
			c.verticals = append(c.verticals, s)
			continue
		}
		c := at(s.left.X)
		c.starts = append(c.starts, s)
		c = at(s.right.X)
		c.ends = append(c.ends, s)
	}

	columns := make([]*column, 0, len(byX))
	for _, c := range byX {
		byStart := func(list []*segment) func(i, j int) bool {
			return func(i, j int) bool { return startsBefore(list[i], list[j]) }
		}
		sort.Slice(c.starts, byStart(c.starts))
		sort.Slice(c.verticals, byStart(c.verticals))
		sort.Slice(c.ends, func(i, j int) bool {
			a, b := c.ends[i], c.ends[j]
			if a.right.Y != b.right.Y {
				return a.right.Y < b.right.Y
			}
			return a.index < b.index
		})
		columns = append(columns, c)
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].x < columns[j].x })
	return columns
}

func (w *simplicitySweep) conflict(s, o *segment) bool {
	w.tests++
	return segmentsConflict(s, o, w.n)
}

// The edges right below and right above s in the status, which must hold s.
func (w *simplicitySweep) neighbors(s *segment) (below, above *segment) {
	w.status.DescendLessOrEqual(s, func(o *segment) bool {
		if o == s {
			return true
		}
		below = o
		return false
	})
	w.status.AscendGreaterOrEqual(s, func(o *segment) bool {
		if o == s {
			return true
		}
		above = o
		return false
	})
	return below, above
}

// Add s to the status, returning a neighbor it conflicts with.
func (w *simplicitySweep) insert(s *segment) *segment {
	w.status.ReplaceOrInsert(s)
	below, above := w.neighbors(s)
	if below != nil && w.conflict(below, s) {
		return below
	}
	if above != nil && w.conflict(s, above) {
		return above
	}
	return nil
}

// Take s out of the status. The two edges around it become neighbors; if they
// conflict, they are returned.
func (w *simplicitySweep) remove(s *segment) (below, above *segment, removed bool) {
	below, above = w.neighbors(s)
	if item, ok := w.status.Delete(s); !ok || item != s {
		return nil, nil, false
	}
	if below != nil && above != nil && w.conflict(below, above) {
		return below, above, true
	}
	return nil, nil, true
}

// An ordered edge that conflicts with the vertical edge v. Only edges crossing
// the column between v's ends can, and those are consecutive in the status,
// starting from v's lower end.
func (w *simplicitySweep) crossing(v *segment) *segment {
	pivot := &segment{index: -1, left: v.left, right: v.left}
	var hit *segment
	w.status.AscendGreaterOrEqual(pivot, func(o *segment) bool {
		if Orient2d(o.left, o.right, v.right) == CW {
			// o passes above the top of v
			return false
		}
		if w.conflict(v, o) {
			hit = o
			return false
		}
		return true
	})
	return hit
}
