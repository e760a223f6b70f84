package sweep

// The triangle arena. Triangles are only ever appended; a triangle's ID is its
// index, and it stays valid for the life of the context. The arena holds
// pointers so that a *Triangle obtained from it survives later appends.
type mesh struct {
	triangles []*Triangle
}

func (m *mesh) add(a, b, c *Point) *Triangle {
	t := newTriangle(a, b, c)
	t.id = TriangleID(len(m.triangles))
	m.triangles = append(m.triangles, t)
	return t
}

// Look up a triangle by ID. NoTriangle gives nil.
func (m *mesh) triangle(id TriangleID) *Triangle {
	if id == NoTriangle {
		return nil
	}
	if int(id) < 0 || int(id) >= len(m.triangles) {
		fatalf(ErrInternalInvariant, "triangle id %d out of range", id)
	}
	return m.triangles[id]
}

func (m *mesh) len() int {
	return len(m.triangles)
}

// Flip the diagonal shared by t and ot, where p is the vertex of t opposite the
// diagonal and op is the vertex of ot opposite it:
//
//	  p +-----+            p +-----+
//	    |    /|              |\    |
//	    |   / |      ->      | \   |
//	    |  /  |              |  \  |
//	    | /   |              |   \ |
//	    +-----+ op           +-----+ op
//
// Both triangles stay counterclockwise. The outer neighbor links and the
// constrained/delaunay flags of the four outer edges move with their edges.
func (m *mesh) rotatePair(t *Triangle, p *Point, ot *Triangle, op *Point) {
	n1 := m.triangle(t.NeighborCCW(p))
	n2 := m.triangle(t.NeighborCW(p))
	n3 := m.triangle(ot.NeighborCCW(op))
	n4 := m.triangle(ot.NeighborCW(op))

	ce1 := t.ConstrainedCCW(p)
	ce2 := t.ConstrainedCW(p)
	ce3 := ot.ConstrainedCCW(op)
	ce4 := ot.ConstrainedCW(op)

	de1 := t.delaunayCCW(p)
	de2 := t.delaunayCW(p)
	de3 := ot.delaunayCCW(op)
	de4 := ot.delaunayCW(op)

	t.rotate(p, op)
	ot.rotate(op, p)

	ot.setDelaunayCCW(p, de1)
	t.setDelaunayCW(p, de2)
	t.setDelaunayCCW(op, de3)
	ot.setDelaunayCW(op, de4)

	ot.setConstrainedCCW(p, ce1)
	t.setConstrainedCW(p, ce2)
	t.setConstrainedCCW(op, ce3)
	ot.setConstrainedCW(op, ce4)

	// Rewire. MarkNeighbor works out which side each neighbor belongs on.
	t.clearNeighbors()
	ot.clearNeighbors()
	if n1 != nil {
		ot.MarkNeighbor(n1)
	}
	if n2 != nil {
		t.MarkNeighbor(n2)
	}
	if n3 != nil {
		t.MarkNeighbor(n3)
	}
	if n4 != nil {
		ot.MarkNeighbor(n4)
	}
	t.MarkNeighbor(ot)
}

// Make constrained flags agree across every shared edge. Fills create
// triangles next to constraint edges without copying the flag over, and
// legalization only copies it lazily, so this runs once before the interior
// flood fill relies on the flags.
func (m *mesh) syncConstrainedEdges() {
	for _, t := range m.triangles {
		for i := 0; i < 3; i++ {
			ot := m.triangle(t.Neighbors[i])
			if ot == nil {
				continue
			}
			p, q := t.Points[(i+1)%3], t.Points[(i+2)%3]
			oi := ot.EdgeIndex(p, q)
			if oi < 0 {
				fatalf(ErrInternalInvariant, "neighbor %s of %s does not share edge %v-%v", ot, t, p, q)
			}
			if t.Constrained[i] || ot.Constrained[oi] {
				t.Constrained[i] = true
				ot.Constrained[oi] = true
			}
		}
	}
}
