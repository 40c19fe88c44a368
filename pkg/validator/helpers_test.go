package validator_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/executor"
	"github.com/dmitrymomot/valid/pkg/messages"
	"github.com/dmitrymomot/valid/pkg/origin"
	"github.com/dmitrymomot/valid/pkg/rules"
)

const waitTimeout = 5 * time.Second

var catalog = messages.NewBuilder().
	Add(rules.KeyMandatoryField, "required").
	Add(rules.KeyMinLengthNotReached, "too short").
	Add(rules.KeyMaxLengthExceeded, "too long").
	Add(rules.KeyRegexNotSatisfied, "wrong format").
	Build()

// nameRules requires 3 to 10 characters.
func nameRules(t *testing.T) *constraint.Set {
	t.Helper()
	set, err := constraint.NewSet(
		rules.MustBuild(rules.Mandatory(true, catalog, rules.WithPriority(0))),
		rules.MustBuild(rules.MinLength(3, catalog, rules.WithPriority(1))),
		rules.MustBuild(rules.MaxLength(10, catalog, rules.WithPriority(2))),
	)
	require.NoError(t, err)
	return set
}

// startLoop runs an origin loop until the test ends.
func startLoop(t *testing.T) *origin.Loop {
	t.Helper()

	loop := origin.NewLoop(origin.WithName(t.Name()))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = loop.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})
	return loop
}

// onOrigin runs fn on o and waits for it.
func onOrigin(t *testing.T, o origin.Context, fn func(ctx context.Context)) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	require.NoError(t, origin.Do(ctx, o, fn))
}

// flush waits until every task posted to o so far has run.
func flush(t *testing.T, o origin.Context) {
	t.Helper()
	onOrigin(t, o, func(context.Context) {})
}

func wait[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(waitTimeout):
		require.FailNow(t, "timed out waiting for delivery")
	}
	var zero T
	return zero
}

type delivery struct {
	value    constraint.Value
	result   constraint.Result
	onOrigin bool
	called   bool
}

// collector records deliveries and checks they happen on the origin.
type collector struct {
	origin origin.Context
	ch     chan delivery
}

func newCollector(o origin.Context, size int) *collector {
	return &collector{origin: o, ch: make(chan delivery, size)}
}

func (c *collector) callback(ctx context.Context, value constraint.Value, result constraint.Result) {
	c.ch <- delivery{value: value, result: result, onOrigin: c.origin.IsCurrent(ctx), called: true}
}

// manualExecutor holds jobs until run is called.
type manualExecutor struct {
	mu   sync.Mutex
	jobs []executor.Job
}

func (m *manualExecutor) Execute(_ context.Context, job executor.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
	return nil
}

func (m *manualExecutor) Close() error { return nil }

func (m *manualExecutor) Strategy() executor.Strategy { return executor.StrategyPool }

// run executes the held jobs off any origin.
func (m *manualExecutor) run() {
	m.mu.Lock()
	jobs := m.jobs
	m.jobs = nil
	m.mu.Unlock()

	for _, job := range jobs {
		job(context.Background())
	}
}

type evaluation struct {
	worker   int
	onWorker bool
	onOrigin bool
}

// tracingExecutor records where each job starts before running it.
type tracingExecutor struct {
	executor.Executor
	origin origin.Context
	ch     chan evaluation
}

func newTracingExecutor(t *testing.T, o origin.Context, strategy executor.Strategy, size int) *tracingExecutor {
	t.Helper()
	exec, err := executor.New(strategy, executor.WithPoolSize(4))
	require.NoError(t, err)
	t.Cleanup(func() { _ = exec.Close() })
	return &tracingExecutor{Executor: exec, origin: o, ch: make(chan evaluation, size)}
}

func (e *tracingExecutor) Execute(ctx context.Context, job executor.Job) error {
	return e.Executor.Execute(ctx, func(jobCtx context.Context) {
		id, ok := executor.WorkerID(jobCtx)
		e.ch <- evaluation{worker: id, onWorker: ok, onOrigin: e.origin.IsCurrent(jobCtx)}
		job(jobCtx)
	})
}

// fatalRecorder captures errors routed to the fatal handler.
type fatalRecorder struct {
	mu   sync.Mutex
	errs []error
}

func (f *fatalRecorder) handle(_ context.Context, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

func (f *fatalRecorder) all() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]error(nil), f.errs...)
}

var strategies = []executor.Strategy{executor.StrategyInline, executor.StrategySingle, executor.StrategyPool}

func assertOnOrigin(t *testing.T, d delivery) {
	t.Helper()
	assert.True(t, d.called)
	assert.True(t, d.onOrigin, "callback must run on the origin")
}
