package polyline

import "github.com/osuushi/cdt/sweep"

type runAxis int

const (
	noRun runAxis = iota
	xRun          // points share an x coordinate
	yRun          // points share a y coordinate
)

// Simplify drops repeated points, and collapses every run of points that lie on
// one vertical or horizontal line down to the run's two ends. Paths traced off
// a pixel grid are full of such runs, and the interior points would otherwise
// end up as collinear vertices on the boundary.
//
// The first and last points always survive, even if they are equal. Comparison
// is exact.
func Simplify(points []sweep.Point) []sweep.Point {
	if len(points) == 0 {
		return nil
	}

	var result []sweep.Point
	run := noRun
	var runAt float64

	for i := 1; i < len(points); i++ {
		before, p := points[i-1], points[i]
		if before == p {
			continue
		}

		keep := false
		switch run {
		case noRun:
			if before.X == p.X {
				run, runAt = xRun, before.X
			} else if before.Y == p.Y {
				run, runAt = yRun, before.Y
			}
			// Start of a run, or an isolated corner
			keep = true
		case xRun:
			if p.X != runAt {
				// A horizontal run can start right where the vertical one ends
				if before.Y == p.Y {
					run, runAt = yRun, before.Y
				} else {
					run = noRun
				}
				keep = true
			}
		case yRun:
			if p.Y != runAt {
				if before.X == p.X {
					run, runAt = xRun, before.X
				} else {
					run = noRun
				}
				keep = true
			}
		}

		if keep {
			result = append(result, before)
		}
	}

	return append(result, points[len(points)-1])
}
