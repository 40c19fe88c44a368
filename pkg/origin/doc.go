// Package origin models the execution context that validation results are
// delivered back to, such as a UI thread or an actor mailbox.
//
// An origin is anything implementing Context: it accepts tasks with Post and
// runs them one at a time, and it can tell with IsCurrent whether a
// context.Context belongs to a task it is executing right now. Identity travels
// in the context value of each task, so it works no matter which goroutine
// asks.
//
// Two implementations are provided:
//   - Loop runs tasks on a dedicated goroutine (the one calling Run) in FIFO order.
//   - Sync runs tasks immediately on the posting goroutine under a mutex.
//
// Do posts a task and waits for it, running it inline when the caller is
// already on the origin.
//
// # Usage
//
//	loop := origin.NewLoop(origin.WithName("ui"))
//	go loop.Run(ctx)
//
//	_ = origin.Do(ctx, loop, func(ctx context.Context) {
//	    // runs on the loop; loop.IsCurrent(ctx) == true here
//	})
//
// # Caveats
//
// A task that blocks waiting for another task posted to the same origin will
// deadlock the origin. Contexts captured inside a task stop being current as
// soon as the task returns.
package origin
