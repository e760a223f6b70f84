package sweep

// Edge events force a constraint edge into the mesh once its upper endpoint has
// been swept. First the front below the edge is filled, so that every triangle
// the edge crosses is already in the mesh. Then we walk from the upper endpoint
// towards the lower one, flipping the diagonals the edge crosses until the edge
// itself shows up as a triangle side.

type edgeEvent struct {
	// The edge being inserted. This is a copy: when the edge runs through a
	// vertex, Q moves down to that vertex as the upper part gets marked.
	constrained Edge
	// Whether the lower endpoint is to the right of the upper one.
	right bool
}

func (c *Context) edgeEventForEdge(edge *Edge, n *node) {
	c.edgeEvent.constrained = *edge
	c.edgeEvent.right = edge.P.X > edge.Q.X
	e := &c.edgeEvent.constrained

	if c.isEdgeSideOfTriangle(c.triangleBelow(n), e.P, e.Q) {
		return
	}

	// Do all the filling first. Mixing fills into the flip process would avoid
	// some work, but some cases need both.
	if c.edgeEvent.right {
		c.fillRightAboveEdgeEvent(e, n)
	} else {
		c.fillLeftAboveEdgeEvent(e, n)
	}
	c.edgeEventStep(e.P, e.Q, c.triangleBelow(n), e.Q)
}

// If ep-eq is already a side of t, mark it constrained on both sides.
func (c *Context) isEdgeSideOfTriangle(t *Triangle, ep, eq *Point) bool {
	i := t.EdgeIndex(ep, eq)
	if i < 0 {
		return false
	}
	t.Constrained[i] = true
	if ot := c.mesh.triangle(t.Neighbors[i]); ot != nil {
		ot.MarkConstrainedEdge(ep, eq)
	}
	return true
}

// Rotate around p, which is always eq, until we find the triangle whose far
// side the edge crosses, then start flipping.
func (c *Context) edgeEventStep(ep, eq *Point, t *Triangle, p *Point) {
	for steps := 0; ; steps++ {
		if t == nil {
			fatalf(ErrInternalInvariant, "edge event %v-%v walked off the mesh at %v", ep, eq, p)
		}
		if steps > c.mesh.len() {
			fatalf(ErrInternalInvariant, "edge event %v-%v is circling %v", ep, eq, p)
		}
		if c.isEdgeSideOfTriangle(t, ep, eq) {
			return
		}

		p1 := t.PointCCW(p)
		o1 := Orient2d(eq, p1, ep)
		if o1 == Collinear {
			t = c.splitCollinearEdge(t, eq, p1, p)
			eq, p = p1, p1
			continue
		}

		p2 := t.PointCW(p)
		o2 := Orient2d(eq, p2, ep)
		if o2 == Collinear {
			t = c.splitCollinearEdge(t, eq, p2, p)
			eq, p = p2, p2
			continue
		}

		if o1 != o2 {
			// This triangle's far side crosses the edge.
			c.flipEdgeEvent(ep, eq, t, p)
			return
		}

		// Both far vertices are on the same side of the edge, so turn towards
		// it.
		if o1 == CW {
			t = c.mesh.triangle(t.NeighborCCW(p))
		} else {
			t = c.mesh.triangle(t.NeighborCW(p))
		}
	}
}

// The edge runs straight through mid, a vertex of t. Mark the upper part up to
// mid, and carry on with the rest from the triangle across from p.
func (c *Context) splitCollinearEdge(t *Triangle, eq, mid, p *Point) *Triangle {
	if !t.ContainsEdge(eq, mid) {
		fatalf(ErrNonSimplePolyline, "vertex %v lies on constraint edge through %v", mid, eq)
	}
	t.MarkConstrainedEdge(eq, mid)
	if ot := c.mesh.triangle(t.Neighbors[t.EdgeIndex(eq, mid)]); ot != nil {
		ot.MarkConstrainedEdge(eq, mid)
	}
	c.edgeEvent.constrained.Q = mid
	return c.mesh.triangle(t.NeighborAcross(p))
}

// Flip the edge t shares with the triangle across from p. If the resulting
// quadrilateral isn't convex enough to flip, scan ahead for a vertex that can
// serve as an intermediate target.
func (c *Context) flipEdgeEvent(ep, eq *Point, t *Triangle, p *Point) {
	for {
		ot := c.mesh.triangle(t.NeighborAcross(p))
		if ot == nil {
			fatalf(ErrInternalInvariant, "no triangle across from %v in %s", p, t)
		}
		op := ot.OppositePoint(t, p)

		if t.ConstrainedAcross(p) || ot.ConstrainedAcross(op) {
			fatalf(ErrNonSimplePolyline,
				"constraint edge %v-%v crosses constraint edge %v-%v",
				ep, eq, t.PointCCW(p), t.PointCW(p),
			)
		}

		if !InScanArea(p, t.PointCCW(p), t.PointCW(p), op) {
			newP := c.nextFlipPoint(ep, eq, ot, op)
			c.flipScanEdgeEvent(ep, eq, t, ot, newP)
			c.edgeEventStep(ep, eq, t, p)
			return
		}

		c.mesh.rotatePair(t, p, ot, op)
		c.mapTriangleToNodes(t)
		c.mapTriangleToNodes(ot)

		if p == eq && op == ep {
			// The edge is in. Only mark and legalize when it's the real
			// constraint, rather than a stepping stone from a scan.
			if eq == c.edgeEvent.constrained.Q && ep == c.edgeEvent.constrained.P {
				t.MarkConstrainedEdge(ep, eq)
				ot.MarkConstrainedEdge(ep, eq)
				c.legalize(t)
				c.legalize(ot)
			}
			return
		}

		o := Orient2d(eq, op, ep)
		if o == Collinear {
			fatalf(ErrNonSimplePolyline, "vertex %v lies on constraint edge %v-%v", op, ep, eq)
		}
		t = c.nextFlipTriangle(o, t, ot, p, op)
	}
}

// After a flip, one of the pair no longer touches the edge. Legalize that one,
// without letting it undo the flip, and continue with the other.
func (c *Context) nextFlipTriangle(o Orientation, t, ot *Triangle, p, op *Point) *Triangle {
	if o == CCW {
		c.legalizeAfterFlip(ot, p, op)
		return t
	}
	c.legalizeAfterFlip(t, p, op)
	return ot
}

func (c *Context) legalizeAfterFlip(t *Triangle, p, op *Point) {
	i := t.EdgeIndex(p, op)
	if i < 0 {
		fatalf(ErrInternalInvariant, "%s lost edge %v-%v after a flip", t, p, op)
	}
	t.Delaunay[i] = true
	c.legalize(t)
	t.clearDelaunay()
}

// Which vertex of ot to aim for next when scanning: the one on the other side
// of the edge from op.
func (c *Context) nextFlipPoint(ep, eq *Point, ot *Triangle, op *Point) *Point {
	switch Orient2d(eq, op, ep) {
	case CW:
		return ot.PointCCW(op)
	case CCW:
		return ot.PointCW(op)
	}
	fatalf(ErrNonSimplePolyline, "vertex %v lies on constraint edge %v-%v", op, ep, eq)
	return nil
}

// Walk along the edge from flipTriangle looking for a vertex inside the wedge at
// eq. Once found, flip towards that vertex first, which makes room for the
// flips that were blocked.
func (c *Context) flipScanEdgeEvent(ep, eq *Point, flipTriangle, t *Triangle, p *Point) {
	for steps := 0; ; steps++ {
		if steps > c.mesh.len() {
			fatalf(ErrInternalInvariant, "flip scan for %v-%v did not terminate", ep, eq)
		}
		ot := c.mesh.triangle(t.NeighborAcross(p))
		if ot == nil {
			fatalf(ErrInternalInvariant, "flip scan for %v-%v ran off the mesh at %s", ep, eq, t)
		}
		op := ot.OppositePoint(t, p)

		p1 := flipTriangle.PointCCW(eq)
		p2 := flipTriangle.PointCW(eq)
		if InScanArea(eq, p1, p2, op) {
			c.flipEdgeEvent(eq, op, ot, op)
			return
		}

		p = c.nextFlipPoint(ep, eq, ot, op)
		t = ot
	}
}

// Filling under the edge before flipping. The right and left variants mirror
// each other.

func (c *Context) fillRightAboveEdgeEvent(e *Edge, n *node) {
	for n.next.point.X < e.P.X {
		if Orient2d(e.Q, n.next.point, e.P) == CCW {
			// Next node is below the edge
			c.fillRightBelowEdgeEvent(e, n)
		} else {
			n = n.next
		}
	}
}

func (c *Context) fillRightBelowEdgeEvent(e *Edge, n *node) {
	for n.point.X < e.P.X {
		if Orient2d(n.point, n.next.point, n.next.next.point) == CCW {
			c.fillRightConcaveEdgeEvent(e, n)
			return
		}
		before := c.mesh.len()
		c.fillRightConvexEdgeEvent(e, n)
		if c.mesh.len() == before {
			fatalf(ErrInternalInvariant, "stuck filling right of %v below edge %v-%v", n.point, e.P, e.Q)
		}
	}
}

func (c *Context) fillRightConcaveEdgeEvent(e *Edge, n *node) {
	c.fill(n.next)
	if n.next.point == e.P {
		return
	}
	if Orient2d(e.Q, n.next.point, e.P) == CCW &&
		Orient2d(n.point, n.next.point, n.next.next.point) == CCW {
		// Next is below the edge and concave
		c.fillRightConcaveEdgeEvent(e, n)
	}
}

func (c *Context) fillRightConvexEdgeEvent(e *Edge, n *node) {
	if n.next.next.next == nil {
		return
	}
	if Orient2d(n.next.point, n.next.next.point, n.next.next.next.point) == CCW {
		c.fillRightConcaveEdgeEvent(e, n.next)
	} else if Orient2d(e.Q, n.next.next.point, e.P) == CCW {
		// Convex, but still below the edge
		c.fillRightConvexEdgeEvent(e, n.next)
	}
}

func (c *Context) fillLeftAboveEdgeEvent(e *Edge, n *node) {
	for n.prev.point.X > e.P.X {
		if Orient2d(e.Q, n.prev.point, e.P) == CW {
			// Previous node is below the edge
			c.fillLeftBelowEdgeEvent(e, n)
		} else {
			n = n.prev
		}
	}
}

func (c *Context) fillLeftBelowEdgeEvent(e *Edge, n *node) {
	for n.point.X > e.P.X {
		if Orient2d(n.point, n.prev.point, n.prev.prev.point) == CW {
			c.fillLeftConcaveEdgeEvent(e, n)
			return
		}
		before := c.mesh.len()
		c.fillLeftConvexEdgeEvent(e, n)
		if c.mesh.len() == before {
			fatalf(ErrInternalInvariant, "stuck filling left of %v below edge %v-%v", n.point, e.P, e.Q)
		}
	}
}

func (c *Context) fillLeftConcaveEdgeEvent(e *Edge, n *node) {
	c.fill(n.prev)
	if n.prev.point == e.P {
		return
	}
	if Orient2d(e.Q, n.prev.point, e.P) == CW &&
		Orient2d(n.point, n.prev.point, n.prev.prev.point) == CW {
		// Previous is below the edge and concave
		c.fillLeftConcaveEdgeEvent(e, n)
	}
}

func (c *Context) fillLeftConvexEdgeEvent(e *Edge, n *node) {
	if n.prev.prev.prev == nil {
		return
	}
	if Orient2d(n.prev.point, n.prev.prev.point, n.prev.prev.prev.point) == CW {
		c.fillLeftConcaveEdgeEvent(e, n.prev)
	} else if Orient2d(e.Q, n.prev.prev.point, e.P) == CW {
		// Convex, but still below the edge
		c.fillLeftConvexEdgeEvent(e, n.prev)
	}
}
