package sweep

import (
	"sort"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// How far outside the bounding box the head and tail sentinels sit, as a
// fraction of its width and height.
const kAlpha = 0.3

type State int

const (
	Fresh State = iota
	Triangulating
	Triangulated
	Failed
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Triangulating:
		return "triangulating"
	case Triangulated:
		return "triangulated"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// A Context holds everything about one triangulation of one polyline. It is
// not safe for concurrent use, but separate contexts are independent.
type Context struct {
	// Input points in polyline order, and the same points in sweep order.
	points []*Point
	order  []*Point

	edges []*Edge
	// Edges by their upper endpoint. The engine never writes to the caller's
	// points, so this lives here rather than on Point.
	upperEdges map[*Point][]*Edge

	head, tail *Point

	mesh     mesh
	front    *advancingFront
	interior []*Triangle

	basin     basin
	edgeEvent edgeEvent

	state State
	err   error

	opts options
	log  *zap.Logger
}

// Build a context for the closed polyline through points. The points are
// referenced, not copied, and must not be modified while the context is in use.
func NewContext(points []*Point, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validatePolyline(points, o.checkSimple); err != nil {
		o.logger.Debug("rejected polyline", zap.Int("points", len(points)), zap.Error(err))
		return nil, err
	}

	c := &Context{
		points:     append([]*Point(nil), points...),
		upperEdges: make(map[*Point][]*Edge, len(points)),
		opts:       o,
		log:        o.logger,
	}
	c.initSentinels()
	c.initOrder()
	c.initEdges()

	c.log.Debug("created context",
		zap.Int("points", len(c.points)),
		zap.Int("edges", len(c.edges)),
		zap.Stringer("head", c.head),
		zap.Stringer("tail", c.tail),
	)
	return c, nil
}

// Place the head and tail sentinels below the bounding box, far enough to
// either side that the initial front spans every input x.
func (c *Context) initSentinels() {
	rect := r2.EmptyRect()
	for _, p := range c.points {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	size := rect.Size()
	dx := kAlpha * size.X
	dy := kAlpha * size.Y
	c.head = &Point{X: rect.X.Lo - dx, Y: rect.Y.Lo - dy}
	c.tail = &Point{X: rect.X.Hi + dx, Y: rect.Y.Lo - dy}
}

func (c *Context) initOrder() {
	c.order = append([]*Point(nil), c.points...)
	sort.SliceStable(c.order, func(i, j int) bool {
		return c.order[i].Below(c.order[j])
	})
}

func (c *Context) initEdges() {
	n := len(c.points)
	c.edges = make([]*Edge, 0, n)
	for i, p := range c.points {
		edge := NewEdge(p, c.points[CircularIndex(i+1, n)])
		c.edges = append(c.edges, edge)
		c.upperEdges[edge.Q] = append(c.upperEdges[edge.Q], edge)
	}
}

// Run the sweep. A context can be triangulated once. If triangulation fails,
// the context is left in the Failed state and only good for inspecting the
// error.
func (c *Context) Triangulate() (err error) {
	if c.state != Fresh {
		return errors.Wrapf(ErrInvalidState, "cannot triangulate a %s context", c.state)
	}
	c.state = Triangulating
	c.log.Debug("triangulating", zap.Int("points", len(c.points)))

	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
		if err != nil {
			c.state = Failed
			c.err = err
			c.log.Warn("triangulation failed", zap.Error(err))
			return
		}
		c.state = Triangulated
		c.log.Info("triangulated",
			zap.Int("points", len(c.points)),
			zap.Int("triangles", len(c.interior)),
			zap.Int("allocated", c.mesh.len()),
		)
	}()

	c.createAdvancingFront()
	c.sweepPoints()
	c.finalizePolygon()

	if c.opts.checkInvariants {
		if err := c.Check(); err != nil {
			return err
		}
	}
	return nil
}

// The interior triangles, in the order the flood fill found them. The slice is
// a fresh copy on every call; the triangles themselves belong to the context.
func (c *Context) Triangles() ([]*Triangle, error) {
	if c.state != Triangulated {
		return nil, errors.Wrapf(ErrInvalidState, "cannot get triangles from a %s context", c.state)
	}
	return append([]*Triangle(nil), c.interior...), nil
}

func (c *Context) State() State {
	return c.state
}

// The error that moved the context to Failed, if any.
func (c *Context) Err() error {
	return c.err
}

// Input points in polyline order.
func (c *Context) Points() []*Point {
	return c.points
}

// Constraint edges, one per polyline segment, in polyline order.
func (c *Context) Edges() []*Edge {
	return c.edges
}

// Every triangle the sweep allocated, including the ones outside the polygon.
// Mostly useful for debugging and drawing.
func (c *Context) AllTriangles() []*Triangle {
	return c.mesh.triangles
}

func (c *Context) Head() *Point { return c.head }
func (c *Context) Tail() *Point { return c.tail }
