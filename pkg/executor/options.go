package executor

import "log/slog"

// Option configures an executor.
type Option func(*options)

type options struct {
	poolSize int
	name     string
	logger   *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		name:   "executor",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPoolSize sets the number of pool workers. Ignored by other strategies.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithName sets the executor name used in logs.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the executor logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
