// Package executor runs validation jobs according to an execution strategy.
//
// Three strategies are supported:
//   - inline: the job runs synchronously inside Execute, with the submitter's context.
//   - single: one dedicated worker goroutine; jobs run and complete in submission order.
//   - pool:   a fixed number of workers (GOMAXPROCS by default) sharing one FIFO queue.
//
// Single and pool share the Workers implementation; a single executor is a
// pool of one. Workers are supervised by an errgroup and run jobs with their
// own context, never the submitter's, so a job can tell it is off the
// submitter's origin.
//
// # Usage
//
//	exec, err := executor.New(executor.StrategyPool, executor.WithPoolSize(4))
//	if err != nil {
//	    return err
//	}
//	defer exec.Close()
//
//	_ = exec.Execute(ctx, func(ctx context.Context) {
//	    // runs on a worker
//	})
//
// Close stops intake (later Execute calls return ErrClosed) and blocks until
// every queued job has finished. Jobs are not recovered: a panicking job
// crashes the process.
package executor
