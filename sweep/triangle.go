package sweep

// A triangle in the mesh. Vertices are always stored counterclockwise. Index i
// of Neighbors, Constrained and Delaunay all refer to the edge opposite vertex
// i.
//
// The CW/CCW helpers are relative to a vertex. The point CCW of a vertex is the
// next one in counterclockwise order, and the neighbor CCW of a vertex is the
// triangle you reach by rotating counterclockwise around it. For vertex 0,
// NeighborCCW is neighbor 2 and NeighborCW is neighbor 1.
type Triangle struct {
	Points    [3]*Point
	Neighbors [3]TriangleID

	// Whether the edge is a constraint segment of the input polyline.
	Constrained [3]bool
	// Scratch flags used during legalization to mark edges that were just
	// flipped, so the recursion doesn't flip them straight back.
	Delaunay [3]bool

	// Set by the final flood fill for triangles inside the polygon.
	Interior bool

	id TriangleID
}

func newTriangle(a, b, c *Point) *Triangle {
	return &Triangle{
		Points:    [3]*Point{a, b, c},
		Neighbors: [3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
	}
}

func (t *Triangle) ID() TriangleID {
	return t.id
}

// The three vertices, in counterclockwise order.
func (t *Triangle) A() *Point { return t.Points[0] }
func (t *Triangle) B() *Point { return t.Points[1] }
func (t *Triangle) C() *Point { return t.Points[2] }

func (t *Triangle) Contains(p *Point) bool {
	return p == t.Points[0] || p == t.Points[1] || p == t.Points[2]
}

func (t *Triangle) ContainsEdge(p, q *Point) bool {
	return t.Contains(p) && t.Contains(q)
}

// Index of the vertex, or -1 if the triangle doesn't have it.
func (t *Triangle) Index(p *Point) int {
	switch p {
	case t.Points[0]:
		return 0
	case t.Points[1]:
		return 1
	case t.Points[2]:
		return 2
	}
	return -1
}

// Index of the edge (p, q), in either direction, which is the index of the
// opposite vertex. Returns -1 if pq is not an edge of the triangle.
func (t *Triangle) EdgeIndex(p, q *Point) int {
	switch p {
	case t.Points[0]:
		if q == t.Points[1] {
			return 2
		} else if q == t.Points[2] {
			return 1
		}
	case t.Points[1]:
		if q == t.Points[2] {
			return 0
		} else if q == t.Points[0] {
			return 2
		}
	case t.Points[2]:
		if q == t.Points[0] {
			return 1
		} else if q == t.Points[1] {
			return 0
		}
	}
	return -1
}

// Index of p, panicking with an internal error if it's not a vertex. All the
// CW/CCW helpers below are only ever called with a vertex of the triangle.
func (t *Triangle) mustIndex(p *Point) int {
	i := t.Index(p)
	if i < 0 {
		fatalf(ErrInternalInvariant, "point %v is not a vertex of %s", p, t)
	}
	return i
}

// The vertex clockwise of p.
func (t *Triangle) PointCW(p *Point) *Point {
	return t.Points[CircularIndex(t.mustIndex(p)+2, 3)]
}

// The vertex counterclockwise of p.
func (t *Triangle) PointCCW(p *Point) *Point {
	return t.Points[CircularIndex(t.mustIndex(p)+1, 3)]
}

// The vertex of t opposite the edge it shares with other, where p is the vertex
// of other opposite that edge.
func (t *Triangle) OppositePoint(other *Triangle, p *Point) *Point {
	return t.PointCW(other.PointCW(p))
}

func (t *Triangle) NeighborAcross(p *Point) TriangleID {
	return t.Neighbors[t.mustIndex(p)]
}

func (t *Triangle) NeighborCW(p *Point) TriangleID {
	return t.Neighbors[CircularIndex(t.mustIndex(p)+1, 3)]
}

func (t *Triangle) NeighborCCW(p *Point) TriangleID {
	return t.Neighbors[CircularIndex(t.mustIndex(p)+2, 3)]
}

func (t *Triangle) ConstrainedAcross(p *Point) bool {
	return t.Constrained[t.mustIndex(p)]
}

func (t *Triangle) ConstrainedCW(p *Point) bool {
	return t.Constrained[CircularIndex(t.mustIndex(p)+1, 3)]
}

func (t *Triangle) ConstrainedCCW(p *Point) bool {
	return t.Constrained[CircularIndex(t.mustIndex(p)+2, 3)]
}

func (t *Triangle) setConstrainedCW(p *Point, v bool) {
	t.Constrained[CircularIndex(t.mustIndex(p)+1, 3)] = v
}

func (t *Triangle) setConstrainedCCW(p *Point, v bool) {
	t.Constrained[CircularIndex(t.mustIndex(p)+2, 3)] = v
}

func (t *Triangle) delaunayCW(p *Point) bool {
	return t.Delaunay[CircularIndex(t.mustIndex(p)+1, 3)]
}

func (t *Triangle) delaunayCCW(p *Point) bool {
	return t.Delaunay[CircularIndex(t.mustIndex(p)+2, 3)]
}

func (t *Triangle) setDelaunayCW(p *Point, v bool) {
	t.Delaunay[CircularIndex(t.mustIndex(p)+1, 3)] = v
}

func (t *Triangle) setDelaunayCCW(p *Point, v bool) {
	t.Delaunay[CircularIndex(t.mustIndex(p)+2, 3)] = v
}

// Mark the edge pq as a constraint. Does nothing if pq isn't an edge.
func (t *Triangle) MarkConstrainedEdge(p, q *Point) {
	if i := t.EdgeIndex(p, q); i >= 0 {
		t.Constrained[i] = true
	}
}

// Record other as the neighbor across edge pq.
func (t *Triangle) markNeighborEdge(p, q *Point, other TriangleID) {
	i := t.EdgeIndex(p, q)
	if i < 0 {
		fatalf(ErrInternalInvariant, "%s has no edge %v-%v", t, p, q)
	}
	t.Neighbors[i] = other
}

// Link t and other across their shared edge, in both directions. Silently does
// nothing if they don't share an edge.
func (t *Triangle) MarkNeighbor(other *Triangle) {
	switch {
	case other.ContainsEdge(t.Points[1], t.Points[2]):
		t.Neighbors[0] = other.id
		other.markNeighborEdge(t.Points[1], t.Points[2], t.id)
	case other.ContainsEdge(t.Points[0], t.Points[2]):
		t.Neighbors[1] = other.id
		other.markNeighborEdge(t.Points[0], t.Points[2], t.id)
	case other.ContainsEdge(t.Points[0], t.Points[1]):
		t.Neighbors[2] = other.id
		other.markNeighborEdge(t.Points[0], t.Points[1], t.id)
	}
}

func (t *Triangle) clearNeighbors() {
	t.Neighbors = [3]TriangleID{NoTriangle, NoTriangle, NoTriangle}
}

func (t *Triangle) clearDelaunay() {
	t.Delaunay = [3]bool{}
}

// Rotate the triangle clockwise around oldPoint, replacing the vertex
// counterclockwise of it with newPoint. This is half of an edge flip; the other
// triangle of the pair gets the mirrored call.
func (t *Triangle) rotate(oldPoint, newPoint *Point) {
	switch oldPoint {
	case t.Points[0]:
		t.Points[1] = t.Points[0]
		t.Points[0] = t.Points[2]
		t.Points[2] = newPoint
	case t.Points[1]:
		t.Points[2] = t.Points[1]
		t.Points[1] = t.Points[0]
		t.Points[0] = newPoint
	case t.Points[2]:
		t.Points[0] = t.Points[2]
		t.Points[2] = t.Points[1]
		t.Points[1] = newPoint
	default:
		fatalf(ErrInternalInvariant, "cannot rotate %s around foreign point %v", t, oldPoint)
	}
}

// Signed area. Positive for counterclockwise triangles.
func (t *Triangle) SignedArea() float64 {
	a, b, c := t.Points[0], t.Points[1], t.Points[2]
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

func (t *Triangle) IsCCW() bool {
	return Orient2d(t.Points[0], t.Points[1], t.Points[2]) == CCW
}
