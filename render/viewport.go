// Package render draws triangulations, as PNG (optionally straight to an
// iTerm-style terminal) or as SVG.
package render

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/cdt/sweep"
)

const DefaultPadding = 10

// What to draw. Exterior triangles are the ones the sweep built outside the
// polygon; they are only drawn if given.
type Scene struct {
	Outline   []*sweep.Point
	Triangles []*sweep.Triangle
	Exterior  []*sweep.Triangle
}

// Scene for a triangulated context, including the exterior triangles when
// withExterior is set.
func SceneOf(ctx *sweep.Context, withExterior bool) (Scene, error) {
	triangles, err := ctx.Triangles()
	if err != nil {
		return Scene{}, err
	}
	scene := Scene{Outline: ctx.Points(), Triangles: triangles}
	if withExterior {
		for _, t := range ctx.AllTriangles() {
			if !t.Interior {
				scene.Exterior = append(scene.Exterior, t)
			}
		}
	}
	return scene, nil
}

// Maps polygon space, with y up, onto image space, with y down and the
// bounding box inset by a padding.
type Viewport struct {
	bounds  r2.Rect
	scale   float64
	padding float64
}

func NewViewport(scene Scene, scale float64) Viewport {
	bounds := r2.EmptyRect()
	add := func(p *sweep.Point) {
		bounds = bounds.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	for _, p := range scene.Outline {
		add(p)
	}
	for _, t := range scene.Triangles {
		for _, p := range t.Points {
			add(p)
		}
	}
	for _, t := range scene.Exterior {
		for _, p := range t.Points {
			add(p)
		}
	}
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{})
	}
	return Viewport{bounds: bounds, scale: scale, padding: DefaultPadding}
}

func (v Viewport) Width() int {
	return int(math.Ceil(v.scale*v.bounds.X.Length() + 2*v.padding))
}

func (v Viewport) Height() int {
	return int(math.Ceil(v.scale*v.bounds.Y.Length() + 2*v.padding))
}

func (v Viewport) ToScreen(p *sweep.Point) (x, y float64) {
	x = v.padding + v.scale*(p.X-v.bounds.X.Lo)
	y = v.padding + v.scale*(v.bounds.Y.Hi-p.Y)
	return x, y
}

// Pick a scale so the larger side of the scene spans size pixels.
func FitScale(scene Scene, size float64) float64 {
	v := NewViewport(scene, 1)
	extent := math.Max(v.bounds.X.Length(), v.bounds.Y.Length())
	if extent == 0 {
		return 1
	}
	return size / extent
}
