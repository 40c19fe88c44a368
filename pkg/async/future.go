package async

import (
	"context"
	"sync"
	"time"
)

// Future is the eventual result of a computation completed by someone else.
// It is resolved exactly once; later resolutions are ignored.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Resolve completes a Future. Only the first call has an effect.
type Resolve[U any] func(result U, err error)

// NewPromise returns a pending Future together with the function that
// completes it. The resolve function is safe to call from any goroutine and
// only its first call takes effect.
//
// Example:
//
//	future, resolve := async.NewPromise[int]()
//	go func() { resolve(42, nil) }()
//	n, err := future.Await()
func NewPromise[U any]() (*Future[U], Resolve[U]) {
	f := &Future[U]{done: make(chan struct{})}
	return f, f.resolve
}

// Completed returns a Future that is already resolved with result and err.
// Awaiting it never blocks.
func Completed[U any](result U, err error) *Future[U] {
	f, resolve := NewPromise[U]()
	resolve(result, err)
	return f
}

func (f *Future[U]) resolve(result U, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future is resolved.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until the future is resolved or ctx is done.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout is like Await but gives up with ErrTimeout after timeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done is closed once the future is resolved.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the future is resolved, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll awaits every future in order and stops at the first error,
// returning the results gathered so far.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
