package validator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/valid/pkg/executor"
	"github.com/dmitrymomot/valid/pkg/logger"
)

// FatalHandler receives errors that break the validation contract. It runs on
// the goroutine where the error happened. Nothing is delivered for the value.
type FatalHandler func(ctx context.Context, err error)

// Option configures a Validator.
type Option func(*options)

type options struct {
	strategy executor.Strategy
	poolSize int
	exec     executor.Executor
	name     string
	logger   *slog.Logger
	fatal    FatalHandler
}

func newOptions(opts []Option) options {
	o := options{
		strategy: executor.StrategyPool,
		name:     "validator",
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fatal == nil {
		o.fatal = panicHandler(o.logger)
	}
	return o
}

// WithStrategy selects the execution strategy. Empty values are ignored.
func WithStrategy(s executor.Strategy) Option {
	return func(o *options) {
		if s != "" {
			o.strategy = s
		}
	}
}

// WithPoolSize sets the worker count of the pool strategy.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithExecutor runs validations on exec instead of building one from the
// strategy. The validator does not close an executor it did not build.
func WithExecutor(exec executor.Executor) Option {
	return func(o *options) {
		if exec != nil {
			o.exec = exec
		}
	}
}

// WithName sets the component name used in logs.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the validator logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFatalHandler replaces the default handler, which logs and panics.
func WithFatalHandler(h FatalHandler) Option {
	return func(o *options) {
		if h != nil {
			o.fatal = h
		}
	}
}

func panicHandler(log *slog.Logger) FatalHandler {
	return func(ctx context.Context, err error) {
		log.ErrorContext(ctx, "validation contract violated", logger.Error(err))
		panic(fmt.Errorf("validator: %w", err))
	}
}

// CallOption configures a single Validate call.
type CallOption func(*callOptions)

type callOptions struct {
	notifier Notifier
}

// WithObserver forwards the result to n after the callback, on the origin.
func WithObserver(n Notifier) CallOption {
	return func(o *callOptions) {
		if n != nil {
			o.notifier = n
		}
	}
}
