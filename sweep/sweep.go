package sweep

import "math"

// The sweep proper. Points are visited in sweep order. Each one is joined to the
// front with a new triangle (the point event), and then every constraint edge
// ending at it is forced into the mesh (the edge events). The front is kept
// from developing deep pockets by filling small holes and basins as it goes.

const (
	// A front vertex is only filled while the hole it makes is narrower than
	// this.
	holeAngle = math.Pi / 2
	// Basins steeper than this get filled eagerly.
	basinAngle = 3 * math.Pi / 4
)

// A run of front nodes that dips and then rises again.
type basin struct {
	left, bottom, right *node
	width               float64
	leftHighest         bool
}

// Start the front with one triangle between the lowest point and the two
// sentinels.
func (c *Context) createAdvancingFront() {
	first := c.order[0]
	t := c.mesh.add(first, c.head, c.tail)

	head := &node{point: c.head, triangle: t.id}
	middle := &node{point: first, triangle: t.id}
	tail := &node{point: c.tail, triangle: NoTriangle}

	c.front = newAdvancingFront(head, tail)
	c.front.insertAfter(head, middle)
}

func (c *Context) sweepPoints() {
	for _, p := range c.order[1:] {
		n := c.pointEvent(p)
		for _, edge := range c.upperEdges[p] {
			c.edgeEventForEdge(edge, n)
		}
	}
}

func (c *Context) pointEvent(p *Point) *node {
	n := c.front.locateNode(p.X)
	if n == nil || n.next == nil {
		fatalf(ErrInternalInvariant, "no front interval contains x=%v", p.X)
	}
	newNode := c.newFrontTriangle(p, n)

	// p landed straight above n, which leaves n at the bottom of a vertical
	// notch in the front.
	if p.X == n.point.X {
		c.fill(n)
	}

	c.fillAdvancingFront(newNode)
	return newNode
}

// Add a triangle between p and the front edge starting at n, and put p on the
// front.
func (c *Context) newFrontTriangle(p *Point, n *node) *node {
	t := c.mesh.add(p, n.point, n.next.point)
	t.MarkNeighbor(c.triangleBelow(n))

	newNode := &node{point: p, triangle: NoTriangle}
	c.front.insertAfter(n, newNode)

	if !c.legalize(t) {
		c.mapTriangleToNodes(t)
	}
	return newNode
}

// Fill the hole at n with a triangle over n.prev and n.next, and take n off the
// front.
func (c *Context) fill(n *node) {
	t := c.mesh.add(n.prev.point, n.point, n.next.point)

	// Constraint flags on the new inner edges are picked up during
	// legalization, and made consistent before the flood fill.
	t.MarkNeighbor(c.triangleBelow(n.prev))
	t.MarkNeighbor(c.triangleBelow(n))

	c.front.remove(n)

	if !c.legalize(t) {
		c.mapTriangleToNodes(t)
	}
}

// The triangle under the front edge starting at n.
func (c *Context) triangleBelow(n *node) *Triangle {
	t := c.mesh.triangle(n.triangle)
	if t == nil {
		fatalf(ErrInternalInvariant, "front node %v has no triangle below it", n.point)
	}
	return t
}

// Point every front node that sits on a boundary edge of t at t.
func (c *Context) mapTriangleToNodes(t *Triangle) {
	for i := 0; i < 3; i++ {
		if t.Neighbors[i] != NoTriangle {
			continue
		}
		if n := c.front.locatePoint(t.PointCW(t.Points[i])); n != nil {
			n.triangle = t.id
		}
	}
}

// Fill in holes on either side of a new front node, then basins to its right.
func (c *Context) fillAdvancingFront(n *node) {
	for next := n.next; next.next != nil; next = next.next {
		if largeHoleDontFill(next) {
			break
		}
		c.fill(next)
	}

	for prev := n.prev; prev.prev != nil; prev = prev.prev {
		if largeHoleDontFill(prev) {
			break
		}
		c.fill(prev)
	}

	if n.next != nil && n.next.next != nil {
		if basinAngleAt(n) < basinAngle {
			c.fillBasin(n)
		}
	}
}

// Should the front vertex at n be left alone? It's filled only when the hole
// angle at n is at most 90 degrees, or when a wider angle would still close up
// against the nodes one step further out.
func largeHoleDontFill(n *node) bool {
	next := n.next
	prev := n.prev
	if !angleExceeds90Degrees(n.point, next.point, prev.point) {
		return false
	}
	if angleIsNegative(n.point, next.point, prev.point) {
		return true
	}

	// Only angles on the same side as the new point count.
	if next2 := next.next; next2 != nil &&
		!angleExceedsPlus90DegreesOrIsNegative(n.point, next2.point, prev.point) {
		return false
	}
	if prev2 := prev.prev; prev2 != nil &&
		!angleExceedsPlus90DegreesOrIsNegative(n.point, next.point, prev2.point) {
		return false
	}
	return true
}

func angleIsNegative(origin, pa, pb *Point) bool {
	return angle(origin, pa, pb) < 0
}

func angleExceeds90Degrees(origin, pa, pb *Point) bool {
	a := angle(origin, pa, pb)
	return a > holeAngle || a < -holeAngle
}

func angleExceedsPlus90DegreesOrIsNegative(origin, pa, pb *Point) bool {
	a := angle(origin, pa, pb)
	return a > holeAngle || a < 0
}

// The slope angle from n.next.next up to n.
func basinAngleAt(n *node) float64 {
	ax := n.point.X - n.next.next.point.X
	ay := n.point.Y - n.next.next.point.Y
	return math.Atan2(ay, ax)
}

func (c *Context) fillBasin(n *node) {
	b := &c.basin
	if Orient2d(n.point, n.next.point, n.next.next.point) == CCW {
		b.left = n.next.next
	} else {
		b.left = n.next
	}

	// Walk down to the bottom of the basin, then up its right side.
	b.bottom = b.left
	for b.bottom.next != nil && b.bottom.point.Y >= b.bottom.next.point.Y {
		b.bottom = b.bottom.next
	}
	if b.bottom == b.left {
		return
	}

	b.right = b.bottom
	for b.right.next != nil && b.right.point.Y < b.right.next.point.Y {
		b.right = b.right.next
	}
	if b.right == b.bottom {
		return
	}

	b.width = b.right.point.X - b.left.point.X
	b.leftHighest = b.left.point.Y > b.right.point.Y

	c.fillBasinFrom(b.bottom)
}

// Fill the basin upwards from n, always continuing from the lower side, until
// it gets shallow or closes.
func (c *Context) fillBasinFrom(n *node) {
	b := &c.basin
	for !c.isShallow(n) {
		c.fill(n)

		switch {
		case n.prev == b.left && n.next == b.right:
			return
		case n.prev == b.left:
			if Orient2d(n.point, n.next.point, n.next.next.point) == CW {
				return
			}
			n = n.next
		case n.next == b.right:
			if Orient2d(n.point, n.prev.point, n.prev.prev.point) == CCW {
				return
			}
			n = n.prev
		case n.prev.point.Y < n.next.point.Y:
			n = n.prev
		default:
			n = n.next
		}
	}
}

func (c *Context) isShallow(n *node) bool {
	var height float64
	if c.basin.leftHighest {
		height = c.basin.left.point.Y - n.point.Y
	} else {
		height = c.basin.right.point.Y - n.point.Y
	}
	return c.basin.width > height
}

// Restore the Delaunay property around t by flipping any edge whose opposite
// vertex falls inside t's circumcircle, recursing into the flipped pair.
// Reports whether any flip happened; if so, the front nodes have already been
// remapped to the new triangles.
func (c *Context) legalize(t *Triangle) bool {
	for i := 0; i < 3; i++ {
		if t.Delaunay[i] {
			continue
		}
		ot := c.mesh.triangle(t.Neighbors[i])
		if ot == nil {
			continue
		}

		p := t.Points[i]
		op := ot.OppositePoint(t, p)
		oi := ot.mustIndex(op)

		// Constrained edges are never flipped, and edges flagged Delaunay are
		// only flagged during this recursion. Either side may be the one that
		// knows about a constraint.
		if t.Constrained[i] || ot.Constrained[oi] || ot.Delaunay[oi] {
			constrained := t.Constrained[i] || ot.Constrained[oi]
			t.Constrained[i] = constrained
			ot.Constrained[oi] = constrained
			continue
		}

		if !InCircle(p, t.PointCCW(p), t.PointCW(p), op) {
			continue
		}

		t.Delaunay[i] = true
		ot.Delaunay[oi] = true

		c.mesh.rotatePair(t, p, ot, op)

		// The flip leaves four new edges to check. Each triangle is mapped to
		// the front only once, by whichever level of the recursion finished
		// with it.
		if !c.legalize(t) {
			c.mapTriangleToNodes(t)
		}
		if !c.legalize(ot) {
			c.mapTriangleToNodes(ot)
		}

		// These flags only mean something until the next triangle or point is
		// added.
		t.Delaunay[i] = false
		ot.Delaunay[oi] = false
		return true
	}
	return false
}
