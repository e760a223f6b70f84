package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/cdt/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareScene(t *testing.T, withExterior bool) Scene {
	t.Helper()
	ctx, err := sweep.NewContext([]*sweep.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}})
	require.NoError(t, err)
	require.NoError(t, ctx.Triangulate())
	scene, err := SceneOf(ctx, withExterior)
	require.NoError(t, err)
	return scene
}

func TestViewport(t *testing.T) {
	scene := squareScene(t, false)
	v := NewViewport(scene, 10)

	assert.Equal(t, 40+2*DefaultPadding, v.Width())
	assert.Equal(t, 20+2*DefaultPadding, v.Height())

	// y flips, so the bottom left corner lands at the bottom of the image
	x, y := v.ToScreen(&sweep.Point{X: 0, Y: 0})
	assert.Equal(t, float64(DefaultPadding), x)
	assert.Equal(t, float64(20+DefaultPadding), y)
	x, y = v.ToScreen(&sweep.Point{X: 4, Y: 2})
	assert.Equal(t, float64(40+DefaultPadding), x)
	assert.Equal(t, float64(DefaultPadding), y)
}

func TestViewportEmptyScene(t *testing.T) {
	v := NewViewport(Scene{}, 3)
	assert.Equal(t, 2*DefaultPadding, v.Width())
	assert.Equal(t, 1.0, FitScale(Scene{}, 500))
}

func TestFitScale(t *testing.T) {
	assert.InDelta(t, 125.0, FitScale(squareScene(t, false), 500), 1e-12)
}

func TestSceneOf(t *testing.T) {
	scene := squareScene(t, true)
	assert.Len(t, scene.Triangles, 2)
	assert.NotEmpty(t, scene.Exterior)
	for _, tri := range scene.Exterior {
		assert.False(t, tri.Interior)
	}

	ctx, err := sweep.NewContext([]*sweep.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, err)
	_, err = SceneOf(ctx, false)
	assert.ErrorIs(t, err, sweep.ErrInvalidState)
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, squareScene(t, true), 10))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40+2*DefaultPadding, img.Bounds().Dx())
	assert.Equal(t, 20+2*DefaultPadding, img.Bounds().Dy())

	// Inside the shape, away from any edge, is filled green
	r, g, b, _ := img.At(DefaultPadding+20, DefaultPadding+17).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, g)
	assert.Zero(t, b)
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	SVG(&buf, squareScene(t, false), 10)

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	polygons := root.FindAll("polygon")
	// Two triangles and the outline
	require.Len(t, polygons, 3)
	assert.Equal(t, outlineStyle, polygons[2].Attributes["style"])
	assert.Equal(t, []string{"10,30", "50,30", "50,10", "10,10"}, strings.Fields(polygons[2].Attributes["points"]))
}
