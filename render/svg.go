package render

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/cdt/sweep"
)

const (
	interiorStyle = "fill:rgb(0,128,0);stroke:rgb(0,255,255);stroke-width:1"
	exteriorStyle = "fill:none;stroke:rgb(77,77,77);stroke-width:1"
	outlineStyle  = "fill:none;stroke:rgb(0,0,0);stroke-width:2"
)

// SVG works in whole pixels, so pick a scale that keeps the shape's detail.
func SVG(w io.Writer, scene Scene, scale float64) {
	v := NewViewport(scene, scale)
	canvas := svg.New(w)
	canvas.Start(v.Width(), v.Height())
	canvas.Rect(0, 0, v.Width(), v.Height(), "fill:rgb(255,255,255)")

	for _, t := range scene.Exterior {
		xs, ys := screenPoints(v, t.Points[:])
		canvas.Polygon(xs, ys, exteriorStyle)
	}
	for _, t := range scene.Triangles {
		xs, ys := screenPoints(v, t.Points[:])
		canvas.Polygon(xs, ys, interiorStyle)
	}
	if len(scene.Outline) > 0 {
		xs, ys := screenPoints(v, scene.Outline)
		canvas.Polygon(xs, ys, outlineStyle)
	}
	canvas.End()
}

func screenPoints(v Viewport, points []*sweep.Point) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		x, y := v.ToScreen(p)
		xs[i] = int(math.Round(x))
		ys[i] = int(math.Round(y))
	}
	return xs, ys
}
