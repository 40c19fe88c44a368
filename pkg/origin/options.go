package origin

import "log/slog"

// LoopOption configures a Loop.
type LoopOption func(*loopOptions)

type loopOptions struct {
	name   string
	logger *slog.Logger
}

// WithName sets the loop name used in logs.
func WithName(name string) LoopOption {
	return func(o *loopOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the loop logger.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(o *loopOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
