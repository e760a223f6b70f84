package sweep

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of a polyline is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polyline.
// 2. Every polyline edge is the side of exactly one triangle.
// 3. Every triangle is counterclockwise.
// 4. The sum of the areas of all triangles equals the area of the polygon.
// 5. There are exactly n-2 triangles, which together with 4 rules out overlap.
// 6. Every edge shared by two triangles is either constrained or locally Delaunay.
func AssertValidTriangulation(t *testing.T, points []*Point, triangles []*Triangle) {
	t.Helper()

	polyPoints := make(PointSet)
	for _, p := range points {
		polyPoints.Add(p)
	}
	trianglePoints := make(PointSet)
	for _, tri := range triangles {
		for _, p := range tri.Points {
			trianglePoints.Add(p)
		}
	}
	require.True(t, samePoints(polyPoints, trianglePoints), "set of points in the triangles must equal the set of points in the polyline")

	var triangleArea float64
	segmentCounts := make(map[normalizedSegment]int)
	for _, tri := range triangles {
		require.True(t, tri.IsCCW(), "clockwise triangle: %s", tri)
		triangleArea += tri.SignedArea()
		segmentCounts[newNormalizedSegment(tri.A(), tri.B())]++
		segmentCounts[newNormalizedSegment(tri.B(), tri.C())]++
		segmentCounts[newNormalizedSegment(tri.C(), tri.A())]++
	}

	for i, p1 := range points {
		p2 := points[CircularIndex(i+1, len(points))]
		require.Equal(t, 1, segmentCounts[newNormalizedSegment(p1, p2)], "polyline edge %v-%v must be the side of exactly one triangle", p1, p2)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bboxArea := (maxX - minX) * (maxY - minY)
	require.InDelta(t, math.Abs(SignedArea(points)), triangleArea, 1e-9*bboxArea, "sum of the areas of all triangles must equal the area of the polygon")

	require.Len(t, triangles, len(points)-2)

	interior := make(map[*Triangle]bool, len(triangles))
	for _, tri := range triangles {
		interior[tri] = true
	}
	byEdge := make(map[normalizedSegment][]*Triangle)
	for _, tri := range triangles {
		for i := 0; i < 3; i++ {
			seg := newNormalizedSegment(tri.Points[(i+1)%3], tri.Points[(i+2)%3])
			byEdge[seg] = append(byEdge[seg], tri)
		}
	}
	boundary := make(map[normalizedSegment]bool, len(points))
	for i, p1 := range points {
		boundary[newNormalizedSegment(p1, points[CircularIndex(i+1, len(points))])] = true
	}
	for seg, pair := range byEdge {
		if len(pair) != 2 || boundary[seg] {
			continue
		}
		tri, other := pair[0], pair[1]
		i := tri.EdgeIndex(seg.lower, seg.upper)
		p := tri.Points[i]
		op := other.Points[other.EdgeIndex(seg.lower, seg.upper)]
		require.False(t, InCircle(p, tri.PointCCW(p), tri.PointCW(p), op),
			"edge %v-%v between %s and %s is not Delaunay", seg.lower, seg.upper, tri, other)
	}
}

// Used in the helper above, this is a "normalized" line segment, where the
// "lower" point (accounting for lexicographic adjustment) is always first
type normalizedSegment struct {
	lower, upper *Point
}

func newNormalizedSegment(a, b *Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

func samePoints(a, b PointSet) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b.Contains(p) {
			return false
		}
	}
	return true
}

// Build a point list from coordinate pairs.
func pointsOf(coords ...float64) []*Point {
	points := make([]*Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, &Point{coords[i], coords[i+1]})
	}
	return points
}

func reversed(points []*Point) []*Point {
	result := make([]*Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}

// Triangulate points and return the interior triangles, failing the test on
// any error.
func mustTriangulate(t *testing.T, points []*Point, opts ...Option) []*Triangle {
	t.Helper()
	ctx, err := NewContext(points, append([]Option{WithInvariantChecks(true)}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, ctx.Triangulate())
	triangles, err := ctx.Triangles()
	require.NoError(t, err)
	return triangles
}

func regularPolygon(n int, radius float64) []*Point {
	points := make([]*Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = &Point{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return points
}

func starPolygon(points int, outer, inner float64) []*Point {
	result := make([]*Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/float64(points)
		result = append(result, &Point{r * math.Cos(a), r * math.Sin(a)})
	}
	return result
}
