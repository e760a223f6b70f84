package sweep

import (
	"fmt"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/cdt/dbg"
	"github.com/pkg/errors"
)

func (p *Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

func (e *Edge) String() string {
	return fmt.Sprintf("%v→%v", e.P, e.Q)
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s #%d %v %v %v <N: %s, %s, %s>",
		t.DbgName(),
		t.id,
		t.Points[0], t.Points[1], t.Points[2],
		neighborName(t.Neighbors[0]),
		neighborName(t.Neighbors[1]),
		neighborName(t.Neighbors[2]),
	)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.Interior {
		name = aurora.Green(name).String()
	} else if Equal(t.SignedArea(), 0) { // Sliver
		name = aurora.Red(name).String()
	} else {
		name = aurora.Cyan(name).String()
	}
	return name
}

func neighborName(id TriangleID) string {
	if id == NoTriangle {
		return "Ø"
	}
	return "#" + strconv.Itoa(int(id))
}

func (n *node) String() string {
	return fmt.Sprintf("Node %s %v ▽ %s", dbg.Name(n), n.point, neighborName(n.triangle))
}

// Verify the mesh and front invariants: neighbor links are symmetric and agree
// on the shared edge, constrained flags match across each shared edge, every
// triangle is counterclockwise, and the front is in x order with an index that
// matches the list.
func (c *Context) Check() error {
	for _, t := range c.mesh.triangles {
		if !t.IsCCW() {
			return errors.Wrapf(ErrInternalInvariant, "%s is not counterclockwise", t)
		}
		for i := 0; i < 3; i++ {
			if t.Neighbors[i] == NoTriangle {
				continue
			}
			if int(t.Neighbors[i]) >= c.mesh.len() || t.Neighbors[i] < 0 {
				return errors.Wrapf(ErrInternalInvariant, "%s has dangling neighbor", t)
			}
			ot := c.mesh.triangles[t.Neighbors[i]]
			p, q := t.Points[(i+1)%3], t.Points[(i+2)%3]
			oi := ot.EdgeIndex(p, q)
			if oi < 0 {
				return errors.Wrapf(ErrInternalInvariant, "%s and neighbor %s share no edge %v-%v", t, ot, p, q)
			}
			if ot.Neighbors[oi] != t.id {
				return errors.Wrapf(ErrInternalInvariant, "%s links to %s but not back", t, ot)
			}
			if ot.Constrained[oi] != t.Constrained[i] {
				return errors.Wrapf(ErrInternalInvariant, "%s and %s disagree on whether %v-%v is constrained", t, ot, p, q)
			}
		}
	}

	if c.front == nil {
		return nil
	}
	count := 0
	for n := c.front.head; n != nil; n = n.next {
		count++
		if n.next != nil {
			if n.next.prev != n {
				return errors.Wrapf(ErrInternalInvariant, "front link %s -> %s is one way", n, n.next)
			}
			if !nodeLess(n, n.next) {
				return errors.Wrapf(ErrInternalInvariant, "front is out of order at %s", n)
			}
		} else if n != c.front.tail {
			return errors.Wrapf(ErrInternalInvariant, "front ends at %s instead of the tail", n)
		}
		if c.front.locatePoint(n.point) != n {
			return errors.Wrapf(ErrInternalInvariant, "front index lost %s", n)
		}
	}
	if count != c.front.len() {
		return errors.Wrapf(ErrInternalInvariant, "front has %d nodes but its index has %d", count, c.front.len())
	}
	return nil
}
