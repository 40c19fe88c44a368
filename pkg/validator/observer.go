package validator

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/executor"
	"github.com/dmitrymomot/valid/pkg/logger"
	"github.com/dmitrymomot/valid/pkg/origin"
)

// Observer keeps a live aggregate over a fixed collection of values that are
// revalidated one by one. Pass it to Validate with WithObserver.
type Observer struct {
	notifyMu sync.Mutex
	mu       sync.RWMutex
	results  map[constraint.Value]constraint.Result
	notValid int
	callback BulkCallback
	logger   *slog.Logger
	name     string
}

var _ Notifier = (*Observer)(nil)

// NewObserver seeds an observer by validating every item once. It must be
// called on the origin. Seeding runs inline, so the observer is complete when
// the constructor returns; cb is not called for the seed.
//
// opts configure the seeding validator (logger, name, fatal handler); any
// strategy option is ignored. A contract violation during seeding is returned
// as the error.
func NewObserver(ctx context.Context, o origin.Context, items map[constraint.Value]*constraint.Set, cb BulkCallback, opts ...Option) (*Observer, error) {
	if o == nil {
		return nil, ErrNilOrigin
	}
	if !o.IsCurrent(ctx) {
		panic(ErrNotOnOrigin)
	}
	if cb == nil {
		return nil, ErrNilCallback
	}

	seeder, err := New(o, append(opts[:len(opts):len(opts)], WithExecutor(executor.NewInline()))...)
	if err != nil {
		return nil, err
	}
	bulk, err := NewBulk(seeder)
	if err != nil {
		return nil, err
	}

	var (
		seed    *Aggregate
		seedErr error
	)
	err = bulk.validateCollection(ctx, items,
		func(_ context.Context, aggregate Aggregate) {
			seed = &aggregate
		},
		func(err error) {
			if seedErr == nil {
				seedErr = err
			}
		})
	switch {
	case err != nil:
		return nil, err
	case seedErr != nil:
		return nil, seedErr
	case seed == nil:
		return nil, ErrSeedIncomplete
	}

	obs := &Observer{
		results:  seed.Results,
		callback: cb,
		logger:   seeder.logger,
		name:     seeder.name,
	}
	for _, r := range seed.Results {
		if !r.Valid() {
			obs.notValid++
		}
	}
	return obs, nil
}

// Notify folds a new result into the aggregate. Values the observer does not
// track and results equal to the stored one are ignored. Otherwise the stored
// result is replaced, the counters move if the status flipped, and the
// callback runs with a copy of the results. Notifications are serialized, so
// callbacks observe updates in order. The callback may read the observer but
// must not notify it, either directly or through an inline validation that
// carries WithObserver for the same observer.
func (o *Observer) Notify(ctx context.Context, value constraint.Value, result constraint.Result) {
	o.notifyMu.Lock()
	defer o.notifyMu.Unlock()

	aggregate, changed := o.update(value, result)
	if !changed {
		return
	}

	observerUpdatesTotal.Inc()
	o.logger.DebugContext(ctx, "observer updated",
		logger.Component(o.name),
		logger.Tag(value.Tag()),
		logger.Status(string(aggregate.Status)))

	o.callback(ctx, aggregate)
}

func (o *Observer) update(value constraint.Value, result constraint.Result) (Aggregate, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	prev, tracked := o.results[value]
	if !tracked || prev == result {
		return Aggregate{}, false
	}

	o.results[value] = result
	switch {
	case prev.Valid() && !result.Valid():
		o.notValid++
	case !prev.Valid() && result.Valid():
		o.notValid--
	}
	return o.aggregateLocked(), true
}

// Status returns the current collection status.
func (o *Observer) Status() CollectionStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return statusOf(o.notValid)
}

// Results returns a copy of the latest result per value.
func (o *Observer) Results() map[constraint.Value]constraint.Result {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return maps.Clone(o.results)
}

// Aggregate returns the current status together with a copy of the results.
func (o *Observer) Aggregate() Aggregate {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.aggregateLocked()
}

// Len returns the number of tracked values.
func (o *Observer) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.results)
}

func (o *Observer) aggregateLocked() Aggregate {
	return Aggregate{
		Status:  statusOf(o.notValid),
		Results: maps.Clone(o.results),
	}
}
