package sweep

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors up and down all the recursive operations of the sweep would
// add a ton of complexity to the code. Instead, we use panics, and the public
// API recovers to convert to an error.

var (
	// Fewer than three vertices, coincident consecutive vertices, non-finite
	// coordinates, or every vertex on one line.
	ErrDegenerateInput = errors.New("degenerate input")
	// Two vertices with identical coordinates.
	ErrDuplicatePoint = errors.New("duplicate point")
	// Two constraint edges intersect away from a shared endpoint.
	ErrNonSimplePolyline = errors.New("polyline is not simple")
	// Triangulate called twice, or triangles requested before triangulation.
	ErrInvalidState = errors.New("invalid state")
	// The sweep caught itself in an inconsistent state. This is a bug, not a
	// problem with the input.
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// The panic payload raised by fatalf. Anything else reaching the recover is
// re-panicked, except runtime errors, which can only mean the sweep is broken.
type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError of the given kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(kind, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		if runtimeError, ok := r.(runtime.Error); ok {
			return errors.Wrap(ErrInternalInvariant, runtimeError.Error())
		}
		panic(r)
	}
	return nil
}

// Classify an error returned by the engine as one of the sentinel kinds above.
// Returns nil for nil and for errors that didn't come from the engine.
func Kind(err error) error {
	for _, kind := range []error{
		ErrDegenerateInput,
		ErrDuplicatePoint,
		ErrNonSimplePolyline,
		ErrInvalidState,
		ErrInternalInvariant,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
