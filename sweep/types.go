package sweep

// Note that all points involved with the triangulation are pointers. Two points
// are the same point only if they are the same pointer, and the engine never
// modifies a point it was given. Coordinates are compared only by the
// predicates.
type Point struct {
	X float64
	Y float64
}

// A constraint segment of the input polyline. P is always the lower endpoint
// and Q the upper one (with the usual lexicographic tiebreak for equal Y
// values), so Q is the point whose sweep triggers the edge event.
type Edge struct {
	P, Q *Point
}

// Triangles are addressed by their index in the context's triangle arena.
// Neighbor links hold IDs rather than pointers.
type TriangleID int32

// Sentinel for "no neighbor".
const NoTriangle TriangleID = -1

// Work list for walks over the mesh.
type triangleStack []*Triangle

type PointSet map[*Point]struct{}
