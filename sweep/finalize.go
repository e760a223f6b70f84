package sweep

import "go.uber.org/zap"

// Once every point is swept, the mesh covers the whole convex region spanned by
// the sentinels. The polygon is the part of it enclosed by constraint edges.

func (c *Context) finalizePolygon() {
	c.mesh.syncConstrainedEdges()
	c.meshClean(c.interiorSeed())
	flips := c.restoreDelaunay()
	c.log.Debug("finalized",
		zap.Int("interior", len(c.interior)),
		zap.Int("delaunayFlips", flips),
	)
}

// A triangle just inside the polygon. Every polyline edge is in the mesh, and
// the polygon lies on its left when the polyline winds counterclockwise, on its
// right otherwise. Triangles are counterclockwise too, so the seed is the one
// that has a polyline edge in the polygon's direction.
func (c *Context) interiorSeed() *Triangle {
	n := len(c.points)
	ccw := SignedArea(c.points) > 0
	inward := make(map[[2]*Point]bool, n)
	for i, p := range c.points {
		q := c.points[CircularIndex(i+1, n)]
		if ccw {
			inward[[2]*Point{p, q}] = true
		} else {
			inward[[2]*Point{q, p}] = true
		}
	}

	for _, t := range c.mesh.triangles {
		for i := 0; i < 3; i++ {
			side := [2]*Point{t.Points[i], t.Points[(i+1)%3]}
			if inward[side] && t.Constrained[(i+2)%3] {
				return t
			}
		}
	}
	fatalf(ErrInternalInvariant, "no polyline edge made it into the mesh")
	return nil
}

// Flood fill from seed across unconstrained edges, collecting the interior.
func (c *Context) meshClean(seed *Triangle) {
	stack := triangleStack{seed}
	for !stack.Empty() {
		t := stack.Pop()
		if t == nil || t.Interior {
			continue
		}

		if t.Contains(c.head) || t.Contains(c.tail) {
			fatalf(ErrInternalInvariant, "interior flood fill escaped the polygon at %s", t)
		}
		t.Interior = true
		c.interior = append(c.interior, t)

		for i := 0; i < 3; i++ {
			if !t.Constrained[i] {
				stack.Push(c.mesh.triangle(t.Neighbors[i]))
			}
		}
	}
}

// Flips made while inserting constraint edges skip legalization on one side,
// and the front fills only legalize locally. Sweep the interior until every
// unconstrained edge between two interior triangles passes the circle test.
// Returns the number of flips.
func (c *Context) restoreDelaunay() int {
	n := len(c.interior) + 1
	maxPasses := n * n
	flips := 0
	for pass := 0; ; pass++ {
		if pass > maxPasses {
			fatalf(ErrInternalInvariant, "Delaunay restoration did not settle after %d passes", pass)
		}
		flipped := false
		for _, t := range c.interior {
			for i := 0; i < 3; i++ {
				if t.Constrained[i] {
					continue
				}
				ot := c.mesh.triangle(t.Neighbors[i])
				if ot == nil || !ot.Interior {
					continue
				}
				p := t.Points[i]
				op := ot.OppositePoint(t, p)
				if InCircle(p, t.PointCCW(p), t.PointCW(p), op) {
					c.mesh.rotatePair(t, p, ot, op)
					flipped = true
					flips++
				}
			}
		}
		if !flipped {
			break
		}
	}

	for _, t := range c.interior {
		t.clearDelaunay()
	}
	return flips
}
