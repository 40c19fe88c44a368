package validator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/valid/pkg/async"
	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/logger"
)

// CollectionStatus summarizes the results of a collection of values.
type CollectionStatus string

const (
	AllValid           CollectionStatus = "all_valid"
	AtLeastOneNotValid CollectionStatus = "at_least_one_not_valid"
)

// Aggregate is the combined outcome over a collection of values.
// Results is keyed by value identity.
type Aggregate struct {
	Status  CollectionStatus
	Results map[constraint.Value]constraint.Result
}

func (a Aggregate) Valid() bool {
	return a.Status == AllValid
}

// NotValid returns the values whose latest result is not valid.
func (a Aggregate) NotValid() []constraint.Value {
	var out []constraint.Value
	for value, result := range a.Results {
		if !result.Valid() {
			out = append(out, value)
		}
	}
	return out
}

func statusOf(notValid int) CollectionStatus {
	if notValid == 0 {
		return AllValid
	}
	return AtLeastOneNotValid
}

// BulkCallback receives the aggregate of a collection on the origin. The map
// is a copy owned by the callback.
type BulkCallback func(ctx context.Context, aggregate Aggregate)

// Bulk validates collections of independent values and reports once per
// collection.
type Bulk struct {
	v *Validator
}

func NewBulk(v *Validator) (*Bulk, error) {
	if v == nil {
		return nil, ErrNilValidator
	}
	return &Bulk{v: v}, nil
}

// ValidateCollection validates every value against its set and calls cb
// exactly once, on the origin, after all of them have reported. An empty
// collection reports AllValid immediately.
//
// Each call counts its results on its own, so overlapping calls never mix.
// Every value and set is checked before anything is dispatched. If dispatch
// fails midway the error is returned and cb is never called.
func (b *Bulk) ValidateCollection(ctx context.Context, items map[constraint.Value]*constraint.Set, cb BulkCallback) error {
	return b.validateCollection(ctx, items, cb, nil)
}

// ValidateCollectionAsync is ValidateCollection with the aggregate returned as
// a future. Contract violations resolve the future with an error.
func (b *Bulk) ValidateCollectionAsync(ctx context.Context, items map[constraint.Value]*constraint.Set) *async.Future[Aggregate] {
	future, resolve := async.NewPromise[Aggregate]()
	err := b.validateCollection(ctx, items,
		func(_ context.Context, aggregate Aggregate) {
			resolve(aggregate, nil)
		},
		func(err error) {
			resolve(Aggregate{}, err)
		})
	if err != nil {
		resolve(Aggregate{}, err)
	}
	return future
}

func (b *Bulk) validateCollection(ctx context.Context, items map[constraint.Value]*constraint.Set, cb BulkCallback, fail func(error)) error {
	if !b.v.origin.IsCurrent(ctx) {
		panic(ErrNotOnOrigin)
	}
	if cb == nil {
		return ErrNilCallback
	}
	for value, set := range items {
		if value == nil {
			return ErrNilValue
		}
		if set == nil {
			return fmt.Errorf("%w: value %q", ErrNilSet, value.Tag())
		}
	}

	runID := uuid.New()
	log := b.v.logger.With(logger.Component(b.v.name), logger.RunID(runID.String()))
	log.DebugContext(ctx, "bulk validation started", logger.Count(len(items)))

	t := &tally{
		expected: len(items),
		results:  make(map[constraint.Value]constraint.Result, len(items)),
		callback: cb,
		logger:   log,
	}
	if len(items) == 0 {
		t.complete(ctx)
		return nil
	}

	for value, set := range items {
		err := b.v.dispatch(ctx, &invocation{
			value:    value,
			set:      set,
			callback: t.record,
			fail:     fail,
		})
		if err != nil {
			return fmt.Errorf("bulk validation %s: %w", runID, err)
		}
	}
	return nil
}

// tally counts the results of one collection run.
type tally struct {
	mu       sync.Mutex
	expected int
	valid    int
	notValid int
	results  map[constraint.Value]constraint.Result
	done     bool
	callback BulkCallback
	logger   *slog.Logger
}

func (t *tally) record(ctx context.Context, value constraint.Value, result constraint.Result) {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return
	}
	t.results[value] = result
	if result.Valid() {
		t.valid++
	} else {
		t.notValid++
	}
	if t.valid+t.notValid < t.expected {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.complete(ctx)
}

func (t *tally) complete(ctx context.Context) {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return
	}
	t.done = true
	aggregate := Aggregate{
		Status:  statusOf(t.notValid),
		Results: maps.Clone(t.results),
	}
	t.mu.Unlock()

	bulkRunsTotal.WithLabelValues(string(aggregate.Status)).Inc()
	t.logger.DebugContext(ctx, "bulk validation completed",
		logger.Status(string(aggregate.Status)),
		logger.Count(len(aggregate.Results)))
	t.callback(ctx, aggregate)
}
