package executor

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/valid/pkg/logger"
)

// Workers is a fixed set of goroutines draining one FIFO queue. With a single
// worker jobs also complete in submission order.
type Workers struct {
	strategy Strategy
	size     int
	name     string
	logger   *slog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Job
	closed bool

	group     *errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

var _ Executor = (*Workers)(nil)

// NewSingle starts an executor with one worker. Jobs run one at a time in
// submission order, off the submitting goroutine.
//
// Parameters:
//   - opts: Name and logger used in the executor's log records
//
// Returns:
//   - *Workers: A running executor; call Close to drain and stop it
func NewSingle(opts ...Option) *Workers {
	return newWorkers(StrategySingle, 1, newOptions(opts))
}

// NewPool starts an executor with size workers sharing one FIFO queue.
// Non-positive sizes fall back to one. Jobs may run concurrently and finish in
// any order.
//
// Parameters:
//   - size: Number of worker goroutines
//   - opts: Name and logger used in the executor's log records
//
// Returns:
//   - *Workers: A running executor; call Close to drain and stop it
func NewPool(size int, opts ...Option) *Workers {
	if size <= 0 {
		size = 1
	}
	return newWorkers(StrategyPool, size, newOptions(opts))
}

func newWorkers(strategy Strategy, size int, o options) *Workers {
	w := &Workers{
		strategy: strategy,
		size:     size,
		name:     o.name,
		logger:   o.logger,
	}
	w.cond = sync.NewCond(&w.mu)

	group, ctx := errgroup.WithContext(context.Background())
	w.group = group
	for i := range size {
		group.Go(func() error {
			w.work(ctx, i)
			return nil
		})
	}

	w.logger.Debug("executor started",
		logger.Component(w.name),
		logger.Strategy(string(strategy)),
		slog.Int("workers", size))
	return w
}

// Execute queues job. The caller's ctx is not handed to the job; workers
// run jobs with their own context.
func (w *Workers) Execute(_ context.Context, job Job) error {
	if job == nil {
		return ErrNilJob
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.queue = append(w.queue, job)
	w.cond.Signal()
	return nil
}

// Close stops intake, lets the workers finish every queued job, and waits for them.
func (w *Workers) Close() error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		pending := len(w.queue)
		w.cond.Broadcast()
		w.mu.Unlock()

		w.logger.Debug("executor stopping, waiting for queued jobs",
			logger.Component(w.name),
			logger.Strategy(string(w.strategy)),
			logger.Count(pending))

		w.closeErr = w.group.Wait()

		w.logger.Debug("executor stopped",
			logger.Component(w.name),
			logger.Strategy(string(w.strategy)))
	})
	return w.closeErr
}

func (w *Workers) Strategy() Strategy {
	return w.strategy
}

// Size returns the number of workers.
func (w *Workers) Size() int {
	return w.size
}

// Pending returns the number of jobs waiting for a worker.
func (w *Workers) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

func (w *Workers) work(ctx context.Context, id int) {
	workerCtx := context.WithValue(ctx, workerKey{}, id)
	for {
		job, ok := w.next()
		if !ok {
			return
		}
		job(workerCtx)
	}
}

// next blocks until a job is available. It reports false once the executor
// is closed and the queue is empty.
func (w *Workers) next() (Job, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for len(w.queue) == 0 && !w.closed {
		w.cond.Wait()
	}
	if len(w.queue) == 0 {
		return nil, false
	}

	job := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	return job, true
}

type workerKey struct{}

// WorkerID returns the index of the worker running the job that received ctx.
// It reports false for contexts that did not come from a worker, such as the
// submitter's context passed through by the inline executor.
func WorkerID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(workerKey{}).(int)
	return id, ok
}
