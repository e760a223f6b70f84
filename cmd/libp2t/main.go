// Command libp2t builds the triangulator as a C shared library:
//
//	go build -buildmode=c-shared -o libp2t.so ./cmd/libp2t
//
// Handles are uintptr_t values, with 0 meaning "none". Functions that can fail
// return one of the status codes below, and p2t_last_error describes the most
// recent failure.
//
//	0 ok
//	1 degenerate input
//	2 duplicate point
//	3 non-simple polyline
//	4 invalid state
//	5 internal invariant
//	6 invalid handle
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/osuushi/cdt/capi"
	"go.uber.org/zap"
)

var registry = capi.NewRegistry(nil)

func main() {}

//export p2t_polyline_new
func p2t_polyline_new() C.uintptr_t {
	return C.uintptr_t(registry.PolylineNew())
}

//export p2t_polyline_add_point
func p2t_polyline_add_point(polyline C.uintptr_t, x, y C.double) C.int {
	return C.int(registry.PolylineAddPoint(capi.Handle(polyline), float64(x), float64(y)))
}

//export p2t_polyline_free
func p2t_polyline_free(polyline C.uintptr_t) C.int {
	return C.int(registry.PolylineFree(capi.Handle(polyline)))
}

// Consumes the polyline. Returns 0 if the polyline can't be triangulated.
//
//export p2t_cdt_new
func p2t_cdt_new(polyline C.uintptr_t) C.uintptr_t {
	cdt, _ := registry.CDTNew(capi.Handle(polyline))
	return C.uintptr_t(cdt)
}

//export p2t_cdt_triangulate
func p2t_cdt_triangulate(cdt C.uintptr_t) C.int {
	return C.int(registry.CDTTriangulate(capi.Handle(cdt)))
}

// Returns 0 unless the context has been triangulated successfully.
//
//export p2t_cdt_get_triangles
func p2t_cdt_get_triangles(cdt C.uintptr_t) C.uintptr_t {
	list, _ := registry.CDTGetTriangles(capi.Handle(cdt))
	return C.uintptr_t(list)
}

//export p2t_cdt_free
func p2t_cdt_free(cdt C.uintptr_t) C.int {
	return C.int(registry.CDTFree(capi.Handle(cdt)))
}

//export p2t_triangles_count
func p2t_triangles_count(triangles C.uintptr_t) C.size_t {
	count, _ := registry.TrianglesCount(capi.Handle(triangles))
	return C.size_t(count)
}

//export p2t_triangles_get_triangle
func p2t_triangles_get_triangle(triangles C.uintptr_t, i C.size_t) C.uintptr_t {
	if i > math.MaxInt32 {
		// Out of range either way, and must not wrap when converted to int
		i = math.MaxInt32
	}
	triangle, _ := registry.TrianglesGetTriangle(capi.Handle(triangles), int(i))
	return C.uintptr_t(triangle)
}

//export p2t_triangles_free
func p2t_triangles_free(triangles C.uintptr_t) C.int {
	return C.int(registry.TrianglesFree(capi.Handle(triangles)))
}

// Writes through x and y only on success. Either may be NULL.
//
//export p2t_triangle_get_point
func p2t_triangle_get_point(triangle C.uintptr_t, i C.size_t, x, y *C.double) C.int {
	if i > 2 {
		i = 3
	}
	px, py, code := registry.TriangleGetPoint(capi.Handle(triangle), int(i))
	if code != capi.OK {
		return C.int(code)
	}
	if x != nil {
		*x = C.double(px)
	}
	if y != nil {
		*y = C.double(py)
	}
	return C.int(code)
}

// Copies the last error message into buf, truncated and NUL terminated like
// snprintf, and returns the full message length.
//
//export p2t_last_error
func p2t_last_error(buf *C.char, size C.size_t) C.size_t {
	message := registry.LastError()
	if buf != nil && size > 0 {
		out := unsafe.Slice((*byte)(unsafe.Pointer(buf)), terminatedLen(uint64(size), message))
		copy(out, message)
		out[len(out)-1] = 0
	}
	return C.size_t(len(message))
}

// How many bytes of a size byte buffer a NUL terminated copy of message
// touches. Only that much of the buffer is ever sliced, however large the
// caller says it is.
func terminatedLen(size uint64, message string) int {
	if size > uint64(len(message)) {
		return len(message) + 1
	}
	return int(size)
}

// Nonzero sends debug logs to stderr.
//
//export p2t_set_verbose
func p2t_set_verbose(verbose C.int) {
	if verbose == 0 {
		registry.SetLogger(nil)
		return
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	registry.SetLogger(logger)
}
