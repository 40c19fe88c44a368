package executor_test

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/executor"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    executor.Strategy
		wantErr bool
	}{
		{"inline", executor.StrategyInline, false},
		{"SYNC", executor.StrategyInline, false},
		{"single", executor.StrategySingle, false},
		{" serial ", executor.StrategySingle, false},
		{"pool", executor.StrategyPool, false},
		{"threads", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := executor.ParseStrategy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, executor.ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	var s executor.Strategy
	require.NoError(t, s.UnmarshalText([]byte("Pool")))
	assert.Equal(t, executor.StrategyPool, s)
	assert.Error(t, s.UnmarshalText([]byte("nope")))
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, s := range []executor.Strategy{executor.StrategyInline, executor.StrategySingle, executor.StrategyPool} {
		exec, err := executor.New(s)
		require.NoError(t, err)
		assert.Equal(t, s, exec.Strategy())
		require.NoError(t, exec.Close())
	}

	pool, err := executor.New(executor.StrategyPool)
	require.NoError(t, err)
	defer pool.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.(*executor.Workers).Size())

	sized, err := executor.New(executor.StrategyPool, executor.WithPoolSize(3))
	require.NoError(t, err)
	defer sized.Close()
	assert.Equal(t, 3, sized.(*executor.Workers).Size())

	_, err = executor.New("threads")
	assert.ErrorIs(t, err, executor.ErrUnknownStrategy)
}

func TestInline(t *testing.T) {
	t.Parallel()

	exec := executor.NewInline()
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "caller")

	var got any
	require.NoError(t, exec.Execute(ctx, func(jobCtx context.Context) {
		got = jobCtx.Value(key{})
	}))
	assert.Equal(t, "caller", got, "inline jobs run synchronously with the caller's context")

	assert.ErrorIs(t, exec.Execute(ctx, nil), executor.ErrNilJob)
	require.NoError(t, exec.Close())
	assert.ErrorIs(t, exec.Execute(ctx, func(context.Context) {}), executor.ErrClosed)
}

func TestSingleCompletesInOrder(t *testing.T) {
	t.Parallel()

	exec := executor.NewSingle()
	var mu sync.Mutex
	var order []int
	for i := range 200 {
		require.NoError(t, exec.Execute(context.Background(), func(context.Context) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	require.NoError(t, exec.Close())

	require.Len(t, order, 200)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestWorkersUseTheirOwnContext(t *testing.T) {
	t.Parallel()

	exec := executor.NewPool(2)
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "caller")

	done := make(chan struct{})
	var value any
	var worker int
	var onWorker bool
	require.NoError(t, exec.Execute(ctx, func(jobCtx context.Context) {
		defer close(done)
		value = jobCtx.Value(key{})
		worker, onWorker = executor.WorkerID(jobCtx)
	}))
	<-done
	require.NoError(t, exec.Close())

	assert.Nil(t, value)
	assert.True(t, onWorker)
	assert.GreaterOrEqual(t, worker, 0)
	assert.Less(t, worker, 2)

	_, onWorker = executor.WorkerID(context.Background())
	assert.False(t, onWorker)
}

func TestPoolRunsConcurrently(t *testing.T) {
	t.Parallel()

	const size = 4
	exec := executor.NewPool(size)
	defer exec.Close()

	var running, peak atomic.Int32
	release := make(chan struct{})
	var wg sync.WaitGroup
	for range size {
		wg.Add(1)
		require.NoError(t, exec.Execute(context.Background(), func(context.Context) {
			defer wg.Done()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			running.Add(-1)
		}))
	}

	assert.Eventually(t, func() bool { return peak.Load() == size }, 5*time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()
}

func TestCloseDrainsQueue(t *testing.T) {
	t.Parallel()

	exec := executor.NewPool(2)
	var ran atomic.Int32
	for range 50 {
		require.NoError(t, exec.Execute(context.Background(), func(context.Context) {
			time.Sleep(time.Millisecond)
			ran.Add(1)
		}))
	}

	require.NoError(t, exec.Close())
	assert.Equal(t, int32(50), ran.Load())
	assert.Zero(t, exec.Pending())

	assert.ErrorIs(t, exec.Execute(context.Background(), func(context.Context) {}), executor.ErrClosed)
	assert.NoError(t, exec.Close(), "close is idempotent")
}
