package stockroom

import "go.uber.org/zap"

// Option configures a World at construction time.
type Option func(*World)

// WithLogger installs a logger for registration and step lifecycle events.
// The default is zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		w.log = log
	}
}

// WithWorkerLimit caps the number of systems a step may execute
// concurrently. Values below one are ignored.
func WithWorkerLimit(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.workers = n
		}
	}
}
