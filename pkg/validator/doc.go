// Package validator runs constraint sets against values off the caller's
// execution context and delivers every result back on it.
//
// The caller's execution context is an origin.Context: a UI thread, an actor
// mailbox, or any serialized task queue. Validation must be started from a
// task running on the origin; the result callback is always invoked there as
// well, whichever strategy did the work.
//
// # Architecture
//
//   - Validator dispatches one value at a time on an executor (inline, a
//     single FIFO worker, or a pool). When the executing context is the origin
//     the result is delivered synchronously; otherwise it is posted to the
//     origin. Each invocation moves through Idle, Dispatched, Running and
//     Completed (or Failed), so a result is delivered at most once.
//   - Bulk fans a collection of (value, set) pairs out over a Validator and
//     fans the results back in, reporting one Aggregate per call.
//     Aggregate.Err turns the failed values into FieldErrors keyed by tag.
//   - Observer keeps a live Aggregate over a fixed collection whose members
//     are revalidated individually, e.g. as a user edits form fields.
//
// # Usage
//
//	loop := origin.NewLoop()
//	go loop.Run(ctx)
//
//	v, err := validator.New(loop, validator.WithStrategy(executor.StrategyPool))
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
//	_ = origin.Do(ctx, loop, func(ctx context.Context) {
//	    _ = v.Validate(ctx, email, emailRules, func(ctx context.Context, value constraint.Value, r constraint.Result) {
//	        // on the loop again
//	    })
//	})
//
// # Configuration
//
// Config is read from VALID_STRATEGY (inline, single or pool; pool by default)
// and VALID_POOL_SIZE (0 means GOMAXPROCS). See NewFromConfig.
//
// # Error Handling
//
// Validation failures are ordinary results with StatusNotValid. Errors are
// reserved for broken wiring:
//   - Starting validation off the origin panics with ErrNotOnOrigin.
//   - Nil arguments return ErrNilValue, ErrNilSet or ErrNilCallback.
//   - A constraint rejecting the payload type or reporting an undeclared key is
//     wrapped in ErrContractViolation and handed to the FatalHandler on the
//     goroutine where it happened. The default handler logs and panics.
//     ValidateAsync and ValidateCollectionAsync resolve their futures with the
//     error instead.
//
// # Metrics
//
// Delivered results, latencies, failures, bulk runs and observer updates are
// exported as Prometheus metrics prefixed with valid_ on the default registry.
package validator
