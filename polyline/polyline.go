// Package polyline collects and cleans up the closed point loops that the
// sweep triangulates.
package polyline

import (
	"github.com/osuushi/cdt/sweep"
)

// A Builder accumulates the vertices of one closed polyline, in order. The
// closing edge from the last point back to the first is implied.
type Builder struct {
	points []*sweep.Point
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Start a builder from existing coordinates. The points are copied.
func FromPoints(points []sweep.Point) *Builder {
	b := &Builder{points: make([]*sweep.Point, 0, len(points))}
	for _, p := range points {
		b.Add(p.X, p.Y)
	}
	return b
}

func (b *Builder) Add(x, y float64) *Builder {
	b.points = append(b.points, &sweep.Point{X: x, Y: y})
	return b
}

func (b *Builder) Len() int {
	return len(b.points)
}

// The points added so far. The slice is shared with the builder.
func (b *Builder) Points() []*sweep.Point {
	return b.points
}

// Hand the points over to a new sweep context. The builder is emptied whether
// or not the context could be created, so the points are never shared between
// a builder and a context.
func (b *Builder) Build(opts ...sweep.Option) (*sweep.Context, error) {
	points := b.points
	b.points = nil
	return sweep.NewContext(points, opts...)
}

// Pointers to copies of points, as the sweep wants them.
func Pointers(points []sweep.Point) []*sweep.Point {
	result := make([]*sweep.Point, len(points))
	for i := range points {
		p := points[i]
		result[i] = &p
	}
	return result
}

// Values of points, dropping nils.
func Values(points []*sweep.Point) []sweep.Point {
	result := make([]sweep.Point, 0, len(points))
	for _, p := range points {
		if p != nil {
			result = append(result, *p)
		}
	}
	return result
}
