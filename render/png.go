package render

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/cdt/sweep"
	"github.com/pkg/errors"
)

func drawContext(scene Scene, scale float64) *gg.Context {
	v := NewViewport(scene, scale)
	width, height := v.Width(), v.Height()

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	triangle := func(t *sweep.Triangle) {
		x, y := v.ToScreen(t.Points[0])
		c.MoveTo(x, y)
		for _, p := range t.Points[1:] {
			x, y := v.ToScreen(p)
			c.LineTo(x, y)
		}
		c.ClosePath()
	}

	c.SetLineWidth(1)
	for _, t := range scene.Exterior {
		triangle(t)
		c.SetRGB(0.3, 0.3, 0.3)
		c.Stroke()
	}
	for _, t := range scene.Triangles {
		triangle(t)
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	if len(scene.Outline) > 0 {
		c.SetLineWidth(2)
		x, y := v.ToScreen(scene.Outline[0])
		c.MoveTo(x, y)
		for _, p := range scene.Outline[1:] {
			x, y := v.ToScreen(p)
			c.LineTo(x, y)
		}
		c.ClosePath()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}
	return c
}

func PNG(w io.Writer, scene Scene, scale float64) error {
	return errors.Wrap(drawContext(scene, scale).EncodePNG(w), "encoding png")
}

// Show the scene inline in a terminal that speaks the iTerm image protocol.
func Preview(w io.Writer, scene Scene, scale float64) error {
	file, err := os.CreateTemp("", "cdt-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(file.Name())
	file.Close()

	if err := drawContext(scene, scale).SavePNG(file.Name()); err != nil {
		return errors.Wrap(err, "saving preview")
	}
	return errors.Wrap(imgcat.CatFile(file.Name(), w), "printing preview")
}
