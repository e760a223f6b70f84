package main

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/cdt/sweep"
	"github.com/pkg/errors"
)

// Read a polygon as text, one "x y" point per line. Blank lines and lines
// starting with # are skipped. Commas work as separators too, so "x,y" is
// fine.
func readText(in io.Reader) ([]*sweep.Point, error) {
	points := []*sweep.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "reading points")
}

func parsePoint(s string) (*sweep.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 2 {
		return nil, errors.Errorf("expected two coordinates in %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad x in %q", s)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad y in %q", s)
	}
	return &sweep.Point{X: x, Y: y}, nil
}

// Read the first <polygon> of an SVG document.
func readSVG(in io.Reader) ([]*sweep.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("svg has no polygon")
	}

	fields := strings.Fields(strings.ReplaceAll(polygons[0].Attributes["points"], ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("polygon has an odd number of coordinates (%d)", len(fields))
	}
	points := make([]*sweep.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i] + " " + fields[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i/2)
		}
		points = append(points, point)
	}
	return points, nil
}

// Read points in the given format: "text", "svg", or "auto" to sniff for an
// SVG document.
func readPoints(in io.Reader, format string) ([]*sweep.Point, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if format == "auto" {
		format = "text"
		if bytes.Contains(data, []byte("<svg")) {
			format = "svg"
		}
	}
	switch format {
	case "svg":
		return readSVG(bytes.NewReader(data))
	case "text":
		return readText(bytes.NewReader(data))
	default:
		return nil, errors.Errorf("unknown input format %q", format)
	}
}
