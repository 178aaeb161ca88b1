package runner

import "log/slog"

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithBoard publishes every snapshot on board before drawing it.
func WithBoard(board *SnapshotBoard) Option {
	return func(r *Runner) {
		r.Board = board
	}
}
