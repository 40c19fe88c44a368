// Package async provides a small generic Future type for results that are
// produced on one goroutine and consumed on another.
//
// A Future is created pending with NewPromise, which also returns the Resolve
// function that completes it. The producer calls Resolve once; any number of
// consumers may wait with Await, AwaitContext or AwaitWithTimeout, select on
// Done, or poll with IsComplete.
//
// # Usage
//
//	future, resolve := async.NewPromise[int]()
//	go func() {
//	    resolve(compute())
//	}()
//
//	n, err := future.AwaitWithTimeout(time.Second)
//
// WaitAll collects the results of several futures, stopping at the first error.
//
// # Caveats
//
// Awaiting blocks the calling goroutine. Code that runs on an event loop must
// not await a future that is itself resolved by a task posted to the same
// loop, or the loop deadlocks.
package async
