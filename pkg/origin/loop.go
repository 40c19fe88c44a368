package origin

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/valid/pkg/logger"
)

// Loop is an event loop: a single goroutine running posted tasks in FIFO
// order. Tasks may be posted before Run is called; they wait in an unbounded
// queue.
type Loop struct {
	name   string
	logger *slog.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	running bool
	stopped bool

	tracker tracker
}

var _ Context = (*Loop)(nil)

// NewLoop creates a loop that is not yet running.
func NewLoop(opts ...LoopOption) *Loop {
	o := loopOptions{
		name:   "origin",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	l := &Loop{
		name:   o.name,
		logger: o.logger,
	}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Post queues task. It fails with ErrStopped once the loop has shut down.
func (l *Loop) Post(task Task) error {
	if task == nil {
		return ErrNilTask
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return ErrStopped
	}
	l.queue = append(l.queue, task)
	l.cond.Signal()
	return nil
}

func (l *Loop) IsCurrent(ctx context.Context) bool {
	return l.tracker.isCurrent(ctx, l)
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Run executes tasks on the calling goroutine until ctx is done. On shutdown
// the loop stops accepting tasks, runs everything still queued, and returns
// nil. Tasks receive a context that carries ctx values but is never cancelled.
// A stopped loop cannot be restarted.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return ErrAlreadyRunning
	}
	if l.stopped {
		l.mu.Unlock()
		return ErrStopped
	}
	l.running = true
	l.mu.Unlock()

	stopWake := context.AfterFunc(ctx, func() {
		l.mu.Lock()
		l.cond.Broadcast()
		l.mu.Unlock()
	})
	defer stopWake()

	base := context.WithoutCancel(ctx)
	l.logger.DebugContext(ctx, "origin loop started", logger.Component(l.name))

	for {
		task, ok := l.next(ctx)
		if !ok {
			break
		}
		l.run(base, task)
	}

	drained := l.drain(base)
	l.logger.DebugContext(base, "origin loop stopped",
		logger.Component(l.name),
		logger.Count(drained))
	return nil
}

// next blocks until a task is queued or ctx is done.
func (l *Loop) next(ctx context.Context) (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for len(l.queue) == 0 && ctx.Err() == nil {
		l.cond.Wait()
	}
	if ctx.Err() != nil {
		l.stopped = true
		return nil, false
	}

	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}

// drain runs the tasks left in the queue after shutdown.
func (l *Loop) drain(base context.Context) int {
	l.mu.Lock()
	pending := l.queue
	l.queue = nil
	l.running = false
	l.mu.Unlock()

	for _, task := range pending {
		l.run(base, task)
	}
	return len(pending)
}

func (l *Loop) run(base context.Context, task Task) {
	taskCtx, exit := l.tracker.enter(base, l)
	defer exit()
	task(taskCtx)
}
