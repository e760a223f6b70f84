package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/cdt"
	"github.com/osuushi/cdt/polyline"
	"github.com/osuushi/cdt/render"
	"github.com/osuushi/cdt/sweep"
	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a polygon and print or draw the result. Input on stdin (or in
// the named file) is either newline separated points in the form "x y", or an
// SVG document whose first polygon is used. The polygon may wind either way.
var (
	app = kingpin.New("cdt", "Constrained Delaunay triangulation of a simple polygon.")

	input   = app.Arg("input", "Polygon file. Reads stdin if omitted.").File()
	format  = app.Flag("format", "Input format.").Default("auto").Enum("auto", "text", "svg")
	output  = app.Flag("output", "Write here instead of stdout.").Short('o').String()
	draw    = app.Flag("render", "Output format.").Default("text").Enum("text", "svg", "png")
	size    = app.Flag("size", "Size in pixels of the larger side of a drawing.").Default("800").Float64()
	preview = app.Flag("preview", "Also show the result inline in the terminal (iTerm image protocol).").Bool()
	outside = app.Flag("exterior", "Draw the triangles the sweep built outside the polygon too.").Bool()
	shapes  = app.Flag("shapes", "Treat the input as a traced path: simplify it and split it where it crosses itself.").Bool()
	noCheck = app.Flag("no-simplicity-check", "Skip the up front self-intersection check.").Bool()
	verbose = app.Flag("verbose", "Log what the sweep is doing.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()

	in := io.Reader(os.Stdin)
	if *input != nil {
		defer (*input).Close()
		in = *input
	}
	points, err := readPoints(in, *format)
	app.FatalIfError(err, "reading polygon")
	logger.Info("read polygon", zap.Int("points", len(points)))

	opts := []sweep.Option{
		sweep.WithLogger(logger),
		sweep.WithSimplicityCheck(!*noCheck),
	}
	scene, err := triangulate(points, opts)
	app.FatalIfError(err, "triangulating")
	fmt.Fprintf(os.Stderr, "%s %d points into %d triangles\n",
		aurora.Green("triangulated"), len(points), len(scene.Triangles))

	out := io.Writer(os.Stdout)
	if *output != "" {
		file, err := os.Create(*output)
		app.FatalIfError(err, "creating output")
		defer file.Close()
		out = file
	}

	scale := render.FitScale(scene, *size)
	switch *draw {
	case "text":
		writeTriangles(out, scene.Triangles)
	case "svg":
		render.SVG(out, scene, scale)
	case "png":
		app.FatalIfError(render.PNG(out, scene, scale), "drawing")
	}

	if *preview {
		app.FatalIfError(render.Preview(os.Stderr, scene, scale), "previewing")
	}
}

func triangulate(points []*sweep.Point, opts []sweep.Option) (render.Scene, error) {
	if *shapes {
		triangles, err := cdt.TriangulateShapes(polyline.Values(points), opts...)
		return render.Scene{Outline: points, Triangles: triangles}, err
	}

	ctx, err := sweep.NewContext(points, opts...)
	if err != nil {
		return render.Scene{}, err
	}
	if err := ctx.Triangulate(); err != nil {
		return render.Scene{}, err
	}
	return render.SceneOf(ctx, *outside)
}

// One triangle per line, as "x1 y1 x2 y2 x3 y3", counterclockwise.
func writeTriangles(w io.Writer, triangles []*sweep.Triangle) {
	for _, t := range triangles {
		fmt.Fprintf(w, "%s %s %s %s %s %s\n",
			format64(t.A().X), format64(t.A().Y),
			format64(t.B().X), format64(t.B().Y),
			format64(t.C().X), format64(t.C().Y),
		)
	}
}

func format64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
