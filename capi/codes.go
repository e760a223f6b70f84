package capi

import (
	"github.com/osuushi/cdt/sweep"
	"github.com/pkg/errors"
)

// Status code returned across the C boundary. The values are part of the ABI.
type Code int32

const (
	OK Code = iota
	DegenerateInput
	DuplicatePoint
	NonSimplePolyline
	InvalidState
	InternalInvariant
	InvalidHandle
)

var ErrInvalidHandle = errors.New("invalid handle")

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case DegenerateInput:
		return "degenerate input"
	case DuplicatePoint:
		return "duplicate point"
	case NonSimplePolyline:
		return "non-simple polyline"
	case InvalidState:
		return "invalid state"
	case InternalInvariant:
		return "internal invariant"
	case InvalidHandle:
		return "invalid handle"
	default:
		return "unknown"
	}
}

// Classify an error by the code the C caller sees. Errors of no known kind are
// reported as internal failures.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	if errors.Is(err, ErrInvalidHandle) {
		return InvalidHandle
	}
	switch sweep.Kind(err) {
	case sweep.ErrDegenerateInput:
		return DegenerateInput
	case sweep.ErrDuplicatePoint:
		return DuplicatePoint
	case sweep.ErrNonSimplePolyline:
		return NonSimplePolyline
	case sweep.ErrInvalidState:
		return InvalidState
	default:
		return InternalInvariant
	}
}
