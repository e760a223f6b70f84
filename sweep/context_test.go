package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewContextRejects(t *testing.T) {
	shared := &Point{5, 5}
	cases := []struct {
		name   string
		points []*Point
		kind   error
	}{
		{"no points", nil, ErrDegenerateInput},
		{"two points", pointsOf(0, 0, 1, 1), ErrDegenerateInput},
		{"nil point", []*Point{{0, 0}, nil, {1, 1}}, ErrDegenerateInput},
		{"NaN", pointsOf(0, 0, 1, math.NaN(), 1, 1), ErrDegenerateInput},
		{"infinity", pointsOf(0, 0, math.Inf(1), 0, 1, 1), ErrDegenerateInput},
		{"consecutive coincident", pointsOf(0, 0, 1, 0, 1, 0, 0, 1), ErrDegenerateInput},
		{"wrapping coincident", pointsOf(0, 0, 1, 0, 0, 1, 0, 0), ErrDegenerateInput},
		{"collinear", pointsOf(0, 0, 1, 1, 2, 2, 3, 3), ErrDegenerateInput},
		{"collinear horizontal", pointsOf(0, 0, 5, 0, 2, 0), ErrDegenerateInput},
		{"duplicate coordinates", pointsOf(0, 0, 2, 0, 1, 1, 2, 2, 1, 1, 0, 2), ErrDuplicatePoint},
		{"same point twice", []*Point{shared, {0, 0}, {10, 0}, shared, {10, 10}, {0, 10}}, ErrDuplicatePoint},
		{"bowtie", pointsOf(0, 0, 1, 1, 1, 0, 0, 1), ErrNonSimplePolyline},
		{"vertex on edge", pointsOf(0, 0, 4, 0, 4, 4, 2, 0, 0, 4), ErrNonSimplePolyline},
		{"fold back", pointsOf(0, 0, 4, 0, 2, 0, 2, 3), ErrNonSimplePolyline},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, err := NewContext(c.points)
			assert.Nil(t, ctx)
			assert.ErrorIs(t, err, c.kind)
			assert.Equal(t, c.kind, Kind(err))
		})
	}
}

func TestNewContextAcceptsTinyPolygons(t *testing.T) {
	for _, points := range [][]*Point{
		pointsOf(0, 0, 1e-7, 0, 1e-7, 1e-7, 0, 1e-7),
		pointsOf(1e-12, 1e-12, 2e-12, 1e-12, 1.5e-12, 3e-12),
	} {
		_, err := NewContext(points)
		assert.NoError(t, err)
	}
}

func TestNewContextSimplicityCheckCanBeDisabled(t *testing.T) {
	bowtie := pointsOf(0, 0, 1, 1, 1, 0, 0, 1)
	ctx, err := NewContext(bowtie, WithSimplicityCheck(false))
	require.NoError(t, err)

	// The sweep still notices when it has to flip a constraint.
	err = ctx.Triangulate()
	assert.ErrorIs(t, err, ErrNonSimplePolyline)
	assert.Equal(t, Failed, ctx.State())
	assert.Equal(t, err, ctx.Err())
}

func TestNewContextSetup(t *testing.T) {
	points := pointsOf(0, 0, 10, 0, 10, 5, 0, 5)
	ctx, err := NewContext(points)
	require.NoError(t, err)

	assert.Equal(t, Fresh, ctx.State())
	assert.Equal(t, points, ctx.Points())

	// Sentinels sit below the box and beyond it on either side
	assert.InDelta(t, -3.0, ctx.Head().X, 1e-12)
	assert.InDelta(t, -1.5, ctx.Head().Y, 1e-12)
	assert.InDelta(t, 13.0, ctx.Tail().X, 1e-12)
	assert.InDelta(t, -1.5, ctx.Tail().Y, 1e-12)

	// Sweep order is by y, then x
	assert.Equal(t, []*Point{points[0], points[1], points[3], points[2]}, ctx.order)

	// One edge per segment, each attached to its upper end
	require.Len(t, ctx.Edges(), 4)
	for _, e := range ctx.Edges() {
		assert.True(t, e.P.Below(e.Q))
		assert.Contains(t, ctx.upperEdges[e.Q], e)
	}
	assert.Len(t, ctx.upperEdges[points[0]], 0)
	assert.Len(t, ctx.upperEdges[points[2]], 2)
}

func TestStateMachine(t *testing.T) {
	ctx, err := NewContext(pointsOf(0, 0, 1, 0, 1, 1, 0, 1))
	require.NoError(t, err)

	_, err = ctx.Triangles()
	assert.ErrorIs(t, err, ErrInvalidState, "no triangles before triangulating")

	require.NoError(t, ctx.Triangulate())
	assert.Equal(t, Triangulated, ctx.State())

	err = ctx.Triangulate()
	assert.ErrorIs(t, err, ErrInvalidState, "triangulating twice")
	assert.Equal(t, Triangulated, ctx.State(), "a rejected second call leaves the result alone")

	first, err := ctx.Triangles()
	require.NoError(t, err)
	second, err := ctx.Triangles()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	first[0] = nil
	assert.NotNil(t, second[0], "each call returns its own slice")
}

func TestFailedContextIsTerminal(t *testing.T) {
	ctx, err := NewContext(pointsOf(0, 0, 1, 1, 1, 0, 0, 1), WithSimplicityCheck(false))
	require.NoError(t, err)
	require.Error(t, ctx.Triangulate())

	_, err = ctx.Triangles()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, ctx.Triangulate(), ErrInvalidState)
	assert.Equal(t, Failed, ctx.State())
}

func TestContextLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, err := NewContext(pointsOf(0, 0, 1, 0, 1, 1, 0, 1), WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NoError(t, ctx.Triangulate())

	assert.Equal(t, 1, logs.FilterMessage("created context").Len())
	done := logs.FilterMessage("triangulated").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].ContextMap()["triangles"])

	_, err = NewContext(pointsOf(0, 0, 1, 1), WithLogger(zap.New(core)))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("rejected polyline").Len())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "fresh", Fresh.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}
