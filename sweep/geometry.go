package sweep

import "math"

// Predicates used by the sweep. They are pure functions of their arguments and
// all of them share the same collinearity band, so that no two call sites can
// disagree about which side of a line a point is on.

type Orientation int

const (
	CW Orientation = iota
	CCW
	Collinear
)

func (o Orientation) String() string {
	switch o {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	}
	return "collinear"
}

// Rounding error bound of the orientation determinant, relative to the sum of
// the magnitudes of its two products (Shewchuk's ccwerrboundA). A determinant
// within the bound may have its sign decided by rounding alone, so it
// classifies as collinear. The band scales with the input, so a polygon
// triangulates the same at any size.
const Epsilon = (3 + 16*machineEpsilon) * machineEpsilon

// Half an ulp of 1.
const machineEpsilon = 0x1p-53

// InCircle only reports a point inside when the determinant clears this
// fraction of its own magnitude. Cocircular points (every regular polygon) would
// otherwise flip back and forth on rounding noise.
const InCircleTolerance = 1e-10

// Orientation of the triangle (pa, pb, pc), from the sign of (pb-pa)×(pc-pa).
func Orient2d(pa, pb, pc *Point) Orientation {
	detLeft := (pa.X - pc.X) * (pb.Y - pc.Y)
	detRight := (pa.Y - pc.Y) * (pb.X - pc.X)
	switch determinantSign(detLeft, detRight) {
	case 1:
		return CCW
	case -1:
		return CW
	}
	return Collinear
}

// Sign of detLeft - detRight, or 0 when it lies within the rounding band.
func determinantSign(detLeft, detRight float64) int {
	det := detLeft - detRight
	bound := Epsilon * (math.Abs(detLeft) + math.Abs(detRight))
	switch {
	case det > bound:
		return 1
	case det < -bound:
		return -1
	}
	return 0
}

// Does pd lie strictly inside the circumcircle of the counterclockwise triangle
// (pa, pb, pc)? The engine always calls this with pa being the vertex opposite
// the shared edge, so the first two sub-determinants double as a cheap check
// that pd is on the far side of both edges at pa. If it isn't, the quadrilateral
// is not convex and the edge can't be flipped anyway.
func InCircle(pa, pb, pc, pd *Point) bool {
	adx := pa.X - pd.X
	ady := pa.Y - pd.Y
	bdx := pb.X - pd.X
	bdy := pb.Y - pd.Y

	oabd := adx*bdy - bdx*ady
	if oabd <= 0 {
		return false
	}

	cdx := pc.X - pd.X
	cdy := pc.Y - pd.Y

	ocad := cdx*ady - adx*cdy
	if ocad <= 0 {
		return false
	}

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*ocad + clift*oabd
	permanent := alift*math.Abs(bdxcdy-cdxbdy) + blift*ocad + clift*oabd
	return det > InCircleTolerance*permanent
}

// Is pd inside the wedge at pa spanned by pb and pc? Edge events use this to
// decide whether the quadrilateral around a crossed edge is convex enough to
// flip.
func InScanArea(pa, pb, pc, pd *Point) bool {
	oadb := determinantSign((pa.X-pb.X)*(pd.Y-pb.Y), (pd.X-pb.X)*(pa.Y-pb.Y))
	if oadb >= 0 {
		return false
	}

	oadc := determinantSign((pa.X-pc.X)*(pd.Y-pc.Y), (pd.X-pc.X)*(pa.Y-pc.Y))
	return oadc > 0
}

// Signed angle at origin from pa to pb, in (-π, π].
func angle(origin, pa, pb *Point) float64 {
	ax := pa.X - origin.X
	ay := pa.Y - origin.Y
	bx := pb.X - origin.X
	by := pb.Y - origin.Y
	return math.Atan2(ax*by-ay*bx, ax*bx+ay*by)
}

// Do the closed segments ab and cd share any point?
func SegmentsIntersect(a, b, c, d *Point) bool {
	o1 := Orient2d(a, b, c)
	o2 := Orient2d(a, b, d)
	o3 := Orient2d(c, d, a)
	o4 := Orient2d(c, d, b)

	if o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear {
		return o1 != o2 && o3 != o4
	}

	// Touching and overlapping cases
	return (o1 == Collinear && onSegment(a, b, c)) ||
		(o2 == Collinear && onSegment(a, b, d)) ||
		(o3 == Collinear && onSegment(c, d, a)) ||
		(o4 == Collinear && onSegment(c, d, b))
}

// Assuming p is collinear with ab, is it within the segment's bounding box?
func onSegment(a, b, p *Point) bool {
	return p.X <= math.Max(a.X, b.X) && p.X >= math.Min(a.X, b.X) &&
		p.Y <= math.Max(a.Y, b.Y) && p.Y >= math.Min(a.Y, b.Y)
}
