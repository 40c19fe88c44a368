package executor

import (
	"context"
	"sync/atomic"
)

// Inline runs every job synchronously inside Execute.
type Inline struct {
	closed atomic.Bool
}

var _ Executor = (*Inline)(nil)

// NewInline returns an executor that runs each job on the caller's goroutine
// before Execute returns. The job receives the caller's context.
func NewInline() *Inline {
	return &Inline{}
}

func (e *Inline) Execute(ctx context.Context, job Job) error {
	if job == nil {
		return ErrNilJob
	}
	if e.closed.Load() {
		return ErrClosed
	}
	job(ctx)
	return nil
}

func (e *Inline) Close() error {
	e.closed.Store(true)
	return nil
}

func (e *Inline) Strategy() Strategy {
	return StrategyInline
}
