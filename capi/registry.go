// Package capi drives the sweep through opaque integer handles, with the
// ownership rules of the p2t_* C functions. It holds all of the bookkeeping, so
// cmd/libp2t is left with type conversion only.
//
// Ownership:
//   - A polyline is owned by the caller until CDTNew consumes it, after which
//     its handle is invalid, even when CDTNew fails.
//   - A context owns its triangles. Triangle handles are views that stay valid
//     until the context is freed.
//   - A triangle list (snapshot) is owned by the caller. Freeing it leaves the
//     triangle handles alone.
package capi

import (
	"fmt"
	"sync"

	"github.com/osuushi/cdt/polyline"
	"github.com/osuushi/cdt/sweep"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Handle 0 is never issued, so it can stand for "no object" on the C side.
type Handle uintptr

type polylineObject struct {
	builder *polyline.Builder
}

type cdtObject struct {
	ctx       *sweep.Context
	triangles map[*sweep.Triangle]Handle
}

type snapshotObject struct {
	triangles []Handle
}

type triangleObject struct {
	triangle *sweep.Triangle
}

// A Registry maps handles to the objects behind them. It is safe for
// concurrent use, though each context must still only be driven from one
// goroutine at a time.
type Registry struct {
	mu        sync.Mutex
	next      Handle
	objects   map[Handle]interface{}
	lastError string
	log       *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		objects: make(map[Handle]interface{}),
		log:     log,
	}
}

// Replace the logger used for the registry and for contexts created after the
// call.
func (r *Registry) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log
}

// Describes the most recent failure, or is empty if nothing has failed yet.
// Like errno, it is not cleared by later successes.
func (r *Registry) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastError
}

// Number of live handles of every kind.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.objects)
}

// Must hold r.mu
func (r *Registry) issue(object interface{}) Handle {
	r.next++
	r.objects[r.next] = object
	return r.next
}

// Must hold r.mu
func (r *Registry) fail(op string, err error) Code {
	code := CodeOf(err)
	r.lastError = fmt.Sprintf("%s: %v", op, err)
	r.log.Debug("call failed", zap.String("op", op), zap.Stringer("code", code), zap.Error(err))
	return code
}

// Must hold r.mu
func lookup[T any](r *Registry, h Handle, kind string) (T, error) {
	object, ok := r.objects[h].(T)
	if !ok {
		return object, errors.Wrapf(ErrInvalidHandle, "%d is not a live %s", h, kind)
	}
	return object, nil
}
