package sweep

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This is
// only used for presentation and tests; the predicates use Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This is the sweep order,
// and it lets us assume Y values are never equal.
func (p *Point) Below(otherPoint *Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) Above(otherPoint *Point) bool {
	return otherPoint.Below(p)
}

// Construct an edge from two polyline neighbors, putting the lower point in P.
// Returns nil if the points coincide.
func NewEdge(a, b *Point) *Edge {
	if a.X == b.X && a.Y == b.Y {
		return nil
	}
	if a.Below(b) {
		return &Edge{P: a, Q: b}
	}
	return &Edge{P: b, Q: a}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Signed area of a closed point loop. Positive means counterclockwise.
func SignedArea(points []*Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (s *triangleStack) Push(t *Triangle) {
	*s = append(*s, t)
}

func (s *triangleStack) Pop() *Triangle {
	if len(*s) == 0 {
		return nil
	}
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t
}

func (s *triangleStack) Empty() bool {
	return len(*s) == 0
}

func (set PointSet) Add(p *Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p *Point) bool {
	_, ok := set[p]
	return ok
}
