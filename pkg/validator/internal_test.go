package validator

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/executor"
	"github.com/dmitrymomot/valid/pkg/messages"
	"github.com/dmitrymomot/valid/pkg/origin"
	"github.com/dmitrymomot/valid/pkg/rules"
)

func TestLifecycleTransitions(t *testing.T) {
	t.Parallel()

	var l lifecycle
	assert.Equal(t, StateIdle, l.current())

	require.NoError(t, l.transition(StateDispatched))
	require.NoError(t, l.transition(StateRunning))

	err := l.transition(StateDispatched)
	assert.True(t, IsTransitionError(err))

	require.NoError(t, l.transition(StateCompleted))
	assert.True(t, l.current().Terminal())

	err = l.transition(StateCompleted)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StateCompleted, te.From)
	assert.Equal(t, StateCompleted, te.To)
	assert.Equal(t, "invalid validation lifecycle transition from completed to completed", err.Error())
}

func TestLifecycleCompletesOnce(t *testing.T) {
	t.Parallel()

	var l lifecycle
	require.NoError(t, l.transition(StateDispatched))
	require.NoError(t, l.transition(StateRunning))

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.transition(StateCompleted) == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	assert.True(t, CanTransition(StateIdle, StateDispatched))
	assert.True(t, CanTransition(StateDispatched, StateFailed))
	assert.True(t, CanTransition(StateRunning, StateFailed))
	assert.False(t, CanTransition(StateIdle, StateRunning))
	assert.False(t, CanTransition(StateFailed, StateCompleted))
	assert.Equal(t, "unknown", State(42).String())
}

func TestDeliverRoutesLifecycleErrors(t *testing.T) {
	t.Parallel()

	completed := func(t *testing.T) *invocation {
		t.Helper()
		inv := &invocation{
			value: constraint.NewText("a", "name"),
			callback: func(context.Context, constraint.Value, constraint.Result) {
				t.Error("callback must not run twice")
			},
		}
		require.NoError(t, inv.lifecycle.transition(StateDispatched))
		require.NoError(t, inv.lifecycle.transition(StateRunning))
		require.NoError(t, inv.lifecycle.transition(StateCompleted))
		return inv
	}

	t.Run("async invocation fails its future", func(t *testing.T) {
		t.Parallel()

		var fatal []error
		v, err := New(origin.NewSync(), WithStrategy(executor.StrategyInline),
			WithFatalHandler(func(_ context.Context, err error) { fatal = append(fatal, err) }))
		require.NoError(t, err)

		inv := completed(t)
		var failed error
		inv.fail = func(err error) { failed = err }

		v.deliver(context.Background(), inv, constraint.Pass())
		assert.True(t, IsTransitionError(failed))
		assert.Empty(t, fatal)
	})

	t.Run("plain invocation goes to the fatal handler", func(t *testing.T) {
		t.Parallel()

		var fatal []error
		v, err := New(origin.NewSync(), WithStrategy(executor.StrategyInline),
			WithFatalHandler(func(_ context.Context, err error) { fatal = append(fatal, err) }))
		require.NoError(t, err)

		v.deliver(context.Background(), completed(t), constraint.Pass())
		require.Len(t, fatal, 1)
		assert.True(t, IsTransitionError(fatal[0]))
	})
}

// TestMetrics is not parallel: it reads process-wide counters.
func TestMetrics(t *testing.T) {
	msgs := messages.New(map[string]string{rules.KeyMinLengthNotReached: "too short"})
	set := constraint.MustSet(rules.MustBuild(rules.MinLength(2, msgs)))

	o := origin.NewSync()
	v, err := New(o, WithStrategy(executor.StrategyInline), WithFatalHandler(func(context.Context, error) {}))
	require.NoError(t, err)
	bulk, err := NewBulk(v)
	require.NoError(t, err)

	valid := validationsTotal.WithLabelValues("inline", "valid")
	notValid := validationsTotal.WithLabelValues("inline", "not_valid")
	contract := failuresTotal.WithLabelValues("inline", reasonContract)
	bulkInvalid := bulkRunsTotal.WithLabelValues(string(AtLeastOneNotValid))

	beforeValid := testutil.ToFloat64(valid)
	beforeNotValid := testutil.ToFloat64(notValid)
	beforeContract := testutil.ToFloat64(contract)
	beforeBulk := testutil.ToFloat64(bulkInvalid)
	beforeUpdates := testutil.ToFloat64(observerUpdatesTotal)

	ctx := context.Background()
	err = origin.Do(ctx, o, func(ctx context.Context) {
		noop := func(context.Context, constraint.Value, constraint.Result) {}
		require.NoError(t, v.Validate(ctx, constraint.NewText("ok", ""), set, noop))
		require.NoError(t, v.Validate(ctx, constraint.NewText("x", ""), set, noop))
		require.NoError(t, v.Validate(ctx, constraint.NewField(1, ""), set, noop))

		items := map[constraint.Value]*constraint.Set{
			constraint.NewText("ab", ""): set,
			constraint.NewText("a", ""):  set,
		}
		require.NoError(t, bulk.ValidateCollection(ctx, items, func(context.Context, Aggregate) {}))

		field := constraint.NewText("a", "")
		obs, err := NewObserver(ctx, o, map[constraint.Value]*constraint.Set{field: set}, func(context.Context, Aggregate) {})
		require.NoError(t, err)
		obs.Notify(ctx, field, constraint.Pass())
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(valid)-beforeValid)
	assert.Equal(t, 3.0, testutil.ToFloat64(notValid)-beforeNotValid)
	assert.Equal(t, 1.0, testutil.ToFloat64(contract)-beforeContract)
	assert.Equal(t, 2.0, testutil.ToFloat64(bulkInvalid)-beforeBulk)
	assert.Equal(t, 1.0, testutil.ToFloat64(observerUpdatesTotal)-beforeUpdates)
}
