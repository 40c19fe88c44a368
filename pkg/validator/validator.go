package validator

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/valid/pkg/async"
	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/executor"
	"github.com/dmitrymomot/valid/pkg/logger"
	"github.com/dmitrymomot/valid/pkg/origin"
)

// Callback receives a validation result. It always runs on the origin; ctx
// belongs to the origin task, so the callback may start further validations.
type Callback func(ctx context.Context, value constraint.Value, result constraint.Result)

// Notifier follows validation results after the callback has run.
// Observer implements it.
type Notifier interface {
	Notify(ctx context.Context, value constraint.Value, result constraint.Result)
}

// Validator evaluates values against constraint sets on an executor and
// delivers every result back on its origin.
type Validator struct {
	origin  origin.Context
	exec    executor.Executor
	ownExec bool
	name    string
	logger  *slog.Logger
	fatal   FatalHandler
	seq     atomic.Uint64
}

// New builds a validator bound to o. Without WithExecutor it creates and owns
// an executor for the configured strategy (pool by default).
func New(o origin.Context, opts ...Option) (*Validator, error) {
	if o == nil {
		return nil, ErrNilOrigin
	}

	op := newOptions(opts)
	exec, ownExec := op.exec, false
	if exec == nil {
		var err error
		exec, err = executor.New(op.strategy,
			executor.WithPoolSize(op.poolSize),
			executor.WithName(op.name),
			executor.WithLogger(op.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create executor: %w", err)
		}
		ownExec = true
	}

	return &Validator{
		origin:  o,
		exec:    exec,
		ownExec: ownExec,
		name:    op.name,
		logger:  op.logger,
		fatal:   op.fatal,
	}, nil
}

// NewFromConfig builds a validator from cfg. opts are applied after the
// configuration and win over it.
func NewFromConfig(o origin.Context, cfg Config, opts ...Option) (*Validator, error) {
	return New(o, append(cfg.Options(), opts...)...)
}

func (v *Validator) Strategy() executor.Strategy {
	return v.exec.Strategy()
}

func (v *Validator) Origin() origin.Context {
	return v.origin
}

// Close releases the executor if the validator created it. Results already
// computed are still posted to the origin.
func (v *Validator) Close() error {
	if !v.ownExec {
		return nil
	}
	return v.exec.Close()
}

// Validate evaluates value against set and hands the result to cb on the
// origin. Completion may be synchronous (inline strategy) or later; callers
// must not rely on either.
//
// ctx must belong to a task running on the origin, otherwise Validate panics
// with ErrNotOnOrigin. The payload is read before Validate returns.
func (v *Validator) Validate(ctx context.Context, value constraint.Value, set *constraint.Set, cb Callback, opts ...CallOption) error {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	return v.dispatch(ctx, &invocation{
		value:    value,
		set:      set,
		callback: cb,
		notifier: co.notifier,
	})
}

// ValidateAsync is Validate with the result returned as a future. The future
// resolves when the result is delivered on the origin, or with an error when
// the validation breaks the constraint contract or cannot be dispatched.
// Contract errors go to the future instead of the fatal handler.
//
// Never await the future on the origin unless the strategy is inline: the
// delivery it waits for needs the origin.
func (v *Validator) ValidateAsync(ctx context.Context, value constraint.Value, set *constraint.Set, opts ...CallOption) *async.Future[constraint.Result] {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}

	future, resolve := async.NewPromise[constraint.Result]()
	err := v.dispatch(ctx, &invocation{
		value: value,
		set:   set,
		callback: func(_ context.Context, _ constraint.Value, result constraint.Result) {
			resolve(result, nil)
		},
		notifier: co.notifier,
		fail: func(err error) {
			resolve(constraint.Result{}, err)
		},
	})
	if err != nil {
		resolve(constraint.Result{}, err)
	}
	return future
}

// invocation is one value travelling through the validator.
type invocation struct {
	id       uint64
	value    constraint.Value
	payload  any
	set      *constraint.Set
	callback Callback
	notifier Notifier

	// fail, when set, receives contract and delivery errors instead of the
	// fatal handler.
	fail func(error)

	started   time.Time
	lifecycle lifecycle
}

func (v *Validator) dispatch(ctx context.Context, inv *invocation) error {
	if !v.origin.IsCurrent(ctx) {
		panic(ErrNotOnOrigin)
	}
	switch {
	case inv.value == nil:
		return ErrNilValue
	case inv.set == nil:
		return ErrNilSet
	case inv.callback == nil:
		return ErrNilCallback
	}

	inv.id = v.seq.Add(1)
	inv.payload = inv.value.Payload()
	inv.started = time.Now()
	if err := inv.lifecycle.transition(StateDispatched); err != nil {
		return err
	}

	if err := v.exec.Execute(ctx, func(execCtx context.Context) {
		v.run(execCtx, inv)
	}); err != nil {
		_ = inv.lifecycle.transition(StateFailed)
		return fmt.Errorf("failed to dispatch validation: %w", err)
	}
	return nil
}

// run evaluates on the executor and routes the result to the origin.
func (v *Validator) run(execCtx context.Context, inv *invocation) {
	execCtx = logger.WithInvocationID(execCtx, inv.id)
	if err := inv.lifecycle.transition(StateRunning); err != nil {
		v.abort(execCtx, inv, err)
		return
	}

	result, err := constraint.Evaluate(inv.payload, inv.set)
	if err != nil {
		failuresTotal.WithLabelValues(v.Strategy().String(), reasonContract).Inc()
		v.abort(execCtx, inv, fmt.Errorf("%w: value %q: %w", ErrContractViolation, inv.value.Tag(), err))
		return
	}

	if v.origin.IsCurrent(execCtx) {
		v.deliver(execCtx, inv, result)
		return
	}

	if err := v.origin.Post(func(originCtx context.Context) {
		v.deliver(logger.WithInvocationID(originCtx, inv.id), inv, result)
	}); err != nil {
		failuresTotal.WithLabelValues(v.Strategy().String(), reasonUndelivered).Inc()
		v.logger.WarnContext(execCtx, "dropping validation result",
			logger.Component(v.name),
			logger.Tag(inv.value.Tag()),
			logger.Error(err))
		_ = inv.lifecycle.transition(StateFailed)
		if inv.fail != nil {
			inv.fail(fmt.Errorf("%w: %w", ErrUndelivered, err))
		}
	}
}

// deliver runs on the origin. The lifecycle guarantees it completes an
// invocation at most once.
func (v *Validator) deliver(ctx context.Context, inv *invocation, result constraint.Result) {
	if err := inv.lifecycle.transition(StateCompleted); err != nil {
		v.abort(ctx, inv, err)
		return
	}

	strategy := v.Strategy().String()
	elapsed := time.Since(inv.started)
	validationsTotal.WithLabelValues(strategy, string(result.Status)).Inc()
	validationDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())

	v.logger.DebugContext(ctx, "validation delivered",
		logger.Component(v.name),
		logger.Strategy(strategy),
		logger.Tag(inv.value.Tag()),
		logger.Status(string(result.Status)),
		logger.Duration(elapsed))

	inv.callback(ctx, inv.value, result)
	if inv.notifier != nil {
		inv.notifier.Notify(ctx, inv.value, result)
	}
}

func (v *Validator) abort(ctx context.Context, inv *invocation, err error) {
	_ = inv.lifecycle.transition(StateFailed)
	if inv.fail != nil {
		v.logger.DebugContext(ctx, "validation failed",
			logger.Component(v.name),
			logger.Tag(inv.value.Tag()),
			logger.Error(err))
		inv.fail(err)
		return
	}
	v.fatal(ctx, err)
}
