package executor

import (
	"context"
	"runtime"
)

// Job is a unit of work. ctx belongs to the executor: for inline execution it
// is the submitter's context, for workers it is the worker's own context.
type Job func(ctx context.Context)

// Executor runs jobs according to its Strategy.
type Executor interface {
	// Execute submits job. It returns ErrClosed after Close.
	Execute(ctx context.Context, job Job) error

	// Close stops accepting jobs and waits for the submitted ones to finish.
	// It must not be called from inside a job.
	Close() error

	Strategy() Strategy
}

// New builds the executor for strategy. Pool size comes from WithPoolSize and
// defaults to runtime.GOMAXPROCS(0).
func New(strategy Strategy, opts ...Option) (Executor, error) {
	o := newOptions(opts)

	switch strategy {
	case StrategyInline:
		return NewInline(), nil
	case StrategySingle:
		return newWorkers(StrategySingle, 1, o), nil
	case StrategyPool:
		size := o.poolSize
		if size <= 0 {
			size = runtime.GOMAXPROCS(0)
		}
		return newWorkers(StrategyPool, size, o), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
