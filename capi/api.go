package capi

import (
	"github.com/osuushi/cdt/polyline"
	"github.com/osuushi/cdt/sweep"
	"github.com/pkg/errors"
)

func (r *Registry) PolylineNew() Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.issue(&polylineObject{builder: polyline.NewBuilder()})
}

func (r *Registry) PolylineAddPoint(h Handle, x, y float64) Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	pl, err := lookup[*polylineObject](r, h, "polyline")
	if err != nil {
		return r.fail("polyline_add_point", err)
	}
	pl.builder.Add(x, y)
	return OK
}

func (r *Registry) PolylineFree(h Handle) Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := lookup[*polylineObject](r, h, "polyline"); err != nil {
		return r.fail("polyline_free", err)
	}
	delete(r.objects, h)
	return OK
}

// Build a context from a polyline. The polyline handle is consumed either way;
// on failure the handle returned is 0.
func (r *Registry) CDTNew(h Handle) (Handle, Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pl, err := lookup[*polylineObject](r, h, "polyline")
	if err != nil {
		return 0, r.fail("cdt_new", err)
	}
	delete(r.objects, h)

	ctx, err := pl.builder.Build(sweep.WithLogger(r.log))
	if err != nil {
		return 0, r.fail("cdt_new", err)
	}
	return r.issue(&cdtObject{ctx: ctx, triangles: make(map[*sweep.Triangle]Handle)}), OK
}

// Run the sweep. The registry lock is not held while it runs, so separate
// contexts can triangulate in parallel.
func (r *Registry) CDTTriangulate(h Handle) Code {
	r.mu.Lock()
	cdt, err := lookup[*cdtObject](r, h, "context")
	r.mu.Unlock()
	if err != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.fail("cdt_triangulate", err)
	}

	err = cdt.ctx.Triangulate()

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		return r.fail("cdt_triangulate", err)
	}
	return OK
}

// Take a new snapshot of the interior triangles. Triangle handles are issued
// once per triangle, so every snapshot of a context shares them.
func (r *Registry) CDTGetTriangles(h Handle) (Handle, Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cdt, err := lookup[*cdtObject](r, h, "context")
	if err != nil {
		return 0, r.fail("cdt_get_triangles", err)
	}
	triangles, err := cdt.ctx.Triangles()
	if err != nil {
		return 0, r.fail("cdt_get_triangles", err)
	}

	snapshot := &snapshotObject{triangles: make([]Handle, len(triangles))}
	for i, t := range triangles {
		th, ok := cdt.triangles[t]
		if !ok {
			th = r.issue(&triangleObject{triangle: t})
			cdt.triangles[t] = th
		}
		snapshot.triangles[i] = th
	}
	return r.issue(snapshot), OK
}

// Free a context along with every triangle handle it issued. Snapshots taken
// from it stay alive but their triangles can no longer be read.
func (r *Registry) CDTFree(h Handle) Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	cdt, err := lookup[*cdtObject](r, h, "context")
	if err != nil {
		return r.fail("cdt_free", err)
	}
	for _, th := range cdt.triangles {
		delete(r.objects, th)
	}
	delete(r.objects, h)
	return OK
}

func (r *Registry) TrianglesCount(h Handle) (int, Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot, err := lookup[*snapshotObject](r, h, "triangle list")
	if err != nil {
		return 0, r.fail("triangles_count", err)
	}
	return len(snapshot.triangles), OK
}

// Get the i'th triangle of a snapshot. An index out of range selects no
// triangle, and is reported as an invalid handle.
func (r *Registry) TrianglesGetTriangle(h Handle, i int) (Handle, Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot, err := lookup[*snapshotObject](r, h, "triangle list")
	if err != nil {
		return 0, r.fail("triangles_get_triangle", err)
	}
	if i < 0 || i >= len(snapshot.triangles) {
		err := errors.Wrapf(ErrInvalidHandle, "index %d out of range [0, %d)", i, len(snapshot.triangles))
		return 0, r.fail("triangles_get_triangle", err)
	}
	th := snapshot.triangles[i]
	if _, err := lookup[*triangleObject](r, th, "triangle"); err != nil {
		return 0, r.fail("triangles_get_triangle", errors.Wrap(err, "context was freed"))
	}
	return th, OK
}

func (r *Registry) TrianglesFree(h Handle) Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := lookup[*snapshotObject](r, h, "triangle list"); err != nil {
		return r.fail("triangles_free", err)
	}
	delete(r.objects, h)
	return OK
}

// Read vertex i (0, 1 or 2) of a triangle. Vertices come in counterclockwise
// order.
func (r *Registry) TriangleGetPoint(h Handle, i int) (x, y float64, code Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tri, err := lookup[*triangleObject](r, h, "triangle")
	if err != nil {
		return 0, 0, r.fail("triangle_get_point", err)
	}
	if i < 0 || i > 2 {
		err := errors.Wrapf(ErrInvalidHandle, "vertex index %d out of range [0, 3)", i)
		return 0, 0, r.fail("triangle_get_point", err)
	}
	p := tri.triangle.Points[i]
	return p.X, p.Y, OK
}
