package sweep

import "go.uber.org/zap"

type options struct {
	logger          *zap.Logger
	checkSimple     bool
	checkInvariants bool
}

func defaultOptions() options {
	return options{
		logger:      zap.NewNop(),
		checkSimple: true,
	}
}

type Option func(*options)

// Log context construction and the outcome of each triangulation. The default
// logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}

// Check up front that no two polyline edges intersect. This is on by default.
// Without it, most crossings are still caught when the sweep tries to flip a
// constraint edge, but some produce a wrong triangulation instead.
func WithSimplicityCheck(enabled bool) Option {
	return func(o *options) {
		o.checkSimple = enabled
	}
}

// Verify mesh and front invariants after the sweep, failing with
// ErrInternalInvariant if any are broken. This is for debugging the engine.
func WithInvariantChecks(enabled bool) Option {
	return func(o *options) {
		o.checkInvariants = enabled
	}
}
