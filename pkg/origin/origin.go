package origin

import (
	"context"
	"sync/atomic"
)

// Task is a unit of work run on an origin. ctx identifies the running task:
// Context.IsCurrent(ctx) reports true for as long as the task executes.
type Task func(ctx context.Context)

// Context is a serialized execution context that validation results are
// delivered to. Tasks posted to it run one at a time, in posting order.
type Context interface {
	// Post schedules task to run on the origin.
	Post(task Task) error

	// IsCurrent reports whether ctx belongs to a task executing on the origin right now.
	IsCurrent(ctx context.Context) bool
}

// token marks one task execution. A context carrying a token is current only
// while its owner is executing that very token.
type token struct {
	owner any
}

type ctxKey struct {
	owner any
}

// tracker records which token an origin is executing.
type tracker struct {
	current atomic.Pointer[token]
}

// enter returns the task context for a new execution and the function that ends it.
func (t *tracker) enter(ctx context.Context, owner any) (context.Context, func()) {
	tok := &token{owner: owner}
	prev := t.current.Swap(tok)
	return context.WithValue(ctx, ctxKey{owner: owner}, tok), func() {
		t.current.Store(prev)
	}
}

func (t *tracker) isCurrent(ctx context.Context, owner any) bool {
	if ctx == nil {
		return false
	}
	tok, ok := ctx.Value(ctxKey{owner: owner}).(*token)
	return ok && tok == t.current.Load()
}

// Do runs task on o and waits for it to finish. When ctx already belongs to o
// the task runs inline. If ctx is done first Do returns its error, but the
// posted task still runs later.
func Do(ctx context.Context, o Context, task Task) error {
	if o.IsCurrent(ctx) {
		task(ctx)
		return nil
	}

	done := make(chan struct{})
	if err := o.Post(func(taskCtx context.Context) {
		defer close(done)
		task(taskCtx)
	}); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
