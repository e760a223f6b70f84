package sweep

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient2d(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{1, 0}

	cases := []struct {
		c    *Point
		want Orientation
	}{
		{&Point{0.5, 1}, CCW},
		{&Point{0.5, -1}, CW},
		{&Point{2, 0}, Collinear},
		{&Point{-3, 0}, Collinear},
		{&Point{0.5, 1e-14}, CCW},
		{&Point{0.5, -1e-300}, CW},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v is %s", c.c, c.want), func(t *testing.T) {
			assert.Equal(t, c.want, Orient2d(a, b, c.c))
		})
	}
}

func TestOrient2dRoundingIsCollinear(t *testing.T) {
	// None of these are exactly collinear once rounded to floats, but the
	// determinant only picks up rounding noise.
	a, b, c := &Point{0.1, 0.3}, &Point{0.2, 0.6}, &Point{0.3, 0.9}
	assert.Equal(t, Collinear, Orient2d(a, b, c))
	assert.Equal(t, Collinear, Orient2d(c, a, b))
}

func TestOrient2dIsScaleFree(t *testing.T) {
	for _, scale := range []float64{1e-9, 1e-3, 1, 1e6} {
		a, b := &Point{0, 0}, &Point{scale, 0}
		assert.Equal(t, CCW, Orient2d(a, b, &Point{scale / 2, scale * 1e-9}), "scale %g", scale)
		assert.Equal(t, CW, Orient2d(a, b, &Point{scale / 2, -scale * 1e-9}), "scale %g", scale)
		assert.Equal(t, Collinear, Orient2d(a, b, &Point{2 * scale, 0}), "scale %g", scale)
		assert.Equal(t, Collinear, Orient2d(a, &Point{scale, scale}, &Point{3 * scale, 3 * scale}), "scale %g", scale)
	}
}

func TestOrient2dPermutations(t *testing.T) {
	a, b, c := &Point{0, 0}, &Point{3, 1}, &Point{1, 2}
	assert.Equal(t, CCW, Orient2d(a, b, c))
	assert.Equal(t, CCW, Orient2d(b, c, a))
	assert.Equal(t, CCW, Orient2d(c, a, b))
	assert.Equal(t, CW, Orient2d(a, c, b))
	assert.Equal(t, CW, Orient2d(c, b, a))
	assert.Equal(t, CW, Orient2d(b, a, c))
}

func TestInCircle(t *testing.T) {
	// Right triangle; its circumcircle is centered on the hypotenuse midpoint.
	a, b, c := &Point{0, 0}, &Point{2, 0}, &Point{0, 2}

	t.Run("point across the far edge inside", func(t *testing.T) {
		assert.True(t, InCircle(c, a, b, &Point{1, -0.3}))
	})
	t.Run("far point outside", func(t *testing.T) {
		assert.False(t, InCircle(c, a, b, &Point{3, 3}))
	})
	t.Run("cocircular point is not inside", func(t *testing.T) {
		assert.False(t, InCircle(c, a, b, &Point{2, 2}))
		assert.False(t, InCircle(a, b, c, &Point{2, 2}))
	})
	t.Run("point outside the wedge is rejected", func(t *testing.T) {
		// Inside the circle, but not between the two edges at c, so the edge
		// opposite c can't be flipped towards it.
		assert.False(t, InCircle(c, a, b, &Point{1.9, 1.9}))
	})
}

func TestInCircleRegularPolygon(t *testing.T) {
	// Every vertex of a regular polygon is on one circle. Rounding noise must
	// never make one look inside.
	for n := 4; n <= 64; n *= 2 {
		points := regularPolygon(n, 1000)
		for i := 3; i < n; i++ {
			assert.False(t, InCircle(points[0], points[1], points[2], points[i]), "n=%d i=%d", n, i)
			assert.False(t, InCircle(points[i], points[0], points[1], points[2]), "n=%d i=%d", n, i)
		}
	}
}

func TestInScanArea(t *testing.T) {
	pa := &Point{0, 0}
	pb := &Point{1, 1}
	pc := &Point{-1, 1}
	assert.True(t, InScanArea(pa, pb, pc, &Point{0, 2}))
	assert.False(t, InScanArea(pa, pb, pc, &Point{3, 2}))
	assert.False(t, InScanArea(pa, pb, pc, &Point{-3, 2}))
	// On the boundary ray
	assert.False(t, InScanArea(pa, pb, pc, &Point{2, 2}))
}

func TestAngle(t *testing.T) {
	origin := &Point{0, 0}
	assert.InDelta(t, math.Pi/2, angle(origin, &Point{1, 0}, &Point{0, 1}), 1e-12)
	assert.InDelta(t, -math.Pi/2, angle(origin, &Point{0, 1}, &Point{1, 0}), 1e-12)
	assert.InDelta(t, math.Pi, angle(origin, &Point{1, 0}, &Point{-1, 0}), 1e-12)
}

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d *Point
		want       bool
	}{
		{"crossing", &Point{0, 0}, &Point{2, 2}, &Point{0, 2}, &Point{2, 0}, true},
		{"disjoint", &Point{0, 0}, &Point{1, 0}, &Point{0, 1}, &Point{1, 1}, false},
		{"touching at endpoint", &Point{0, 0}, &Point{1, 0}, &Point{1, 0}, &Point{2, 1}, true},
		{"T junction", &Point{0, 0}, &Point{2, 0}, &Point{1, 0}, &Point{1, 1}, true},
		{"collinear overlap", &Point{0, 0}, &Point{2, 0}, &Point{1, 0}, &Point{3, 0}, true},
		{"collinear apart", &Point{0, 0}, &Point{1, 0}, &Point{2, 0}, &Point{3, 0}, false},
		{"would cross if extended", &Point{0, 0}, &Point{1, 1}, &Point{3, 0}, &Point{2, 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SegmentsIntersect(c.a, c.b, c.c, c.d))
			assert.Equal(t, c.want, SegmentsIntersect(c.c, c.d, c.a, c.b))
		})
	}
}

func TestBelow(t *testing.T) {
	assert.True(t, (&Point{5, 0}).Below(&Point{0, 1}))
	assert.True(t, (&Point{0, 1}).Below(&Point{1, 1}))
	assert.False(t, (&Point{1, 1}).Below(&Point{0, 1}))
	assert.True(t, (&Point{1, 1}).Above(&Point{0, 1}))
}

func TestNewEdge(t *testing.T) {
	low, high := &Point{3, 0}, &Point{0, 2}
	for _, e := range []*Edge{NewEdge(low, high), NewEdge(high, low)} {
		assert.Same(t, low, e.P)
		assert.Same(t, high, e.Q)
	}

	left, right := &Point{0, 1}, &Point{1, 1}
	e := NewEdge(right, left)
	assert.Same(t, left, e.P, "equal y puts the left point first")

	assert.Nil(t, NewEdge(&Point{1, 1}, &Point{1, 1}))
}

func TestSignedArea(t *testing.T) {
	square := pointsOf(0, 0, 1, 0, 1, 1, 0, 1)
	assert.InDelta(t, 1.0, SignedArea(square), 1e-12)
	assert.InDelta(t, -1.0, SignedArea(reversed(square)), 1e-12)
}
