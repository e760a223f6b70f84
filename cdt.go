// Constrained Delaunay triangulation of simple polygons for Go.
//
// This package takes a simple polygon, which may be non-convex, and converts
// it into triangles using only the polygon's own points. Every polygon edge is
// kept as a triangle side, and every other triangle side satisfies the
// Delaunay condition, so the result avoids needlessly thin triangles.
//
// For more control over the process, such as logging or reusing a context for
// inspection, use the sweep package directly.
package cdt

import (
	"github.com/osuushi/cdt/polyline"
	"github.com/osuushi/cdt/sweep"
	"github.com/pkg/errors"
)

type Point = sweep.Point
type Triangle = sweep.Triangle
type Option = sweep.Option

var (
	ErrDegenerateInput   = sweep.ErrDegenerateInput
	ErrDuplicatePoint    = sweep.ErrDuplicatePoint
	ErrNonSimplePolyline = sweep.ErrNonSimplePolyline
	ErrInvalidState      = sweep.ErrInvalidState
	ErrInternalInvariant = sweep.ErrInternalInvariant
)

// Triangulate a simple closed polyline. The points may wind either way, and
// the polyline is closed implicitly, so the last point should not repeat the
// first.
//
// The triangles refer to the given points, and always wind counterclockwise.
func Triangulate(points []*Point, opts ...Option) (result []*Triangle, err error) {
	defer func() {
		recoveredErr := sweep.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	ctx, err := sweep.NewContext(points, opts...)
	if err != nil {
		return nil, err
	}
	if err := ctx.Triangulate(); err != nil {
		return nil, err
	}
	return ctx.Triangles()
}

// Triangulate an arbitrary traced path, such as the outline of a filled plot
// area. The path is simplified, then split into simple loops wherever it
// crosses itself, and each loop is triangulated on its own.
//
// Loops that collapse to nothing (too few points, or all on one line) are
// skipped. Any other failure aborts the whole path.
func TriangulateShapes(points []Point, opts ...Option) ([]*Triangle, error) {
	var result []*Triangle
	for i, shape := range polyline.Split(polyline.Simplify(points)) {
		triangles, err := Triangulate(polyline.Pointers(shape), opts...)
		if errors.Is(err, ErrDegenerateInput) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		result = append(result, triangles...)
	}
	return result, nil
}
