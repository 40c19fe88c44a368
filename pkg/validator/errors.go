package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOnOrigin is the panic value raised when validation starts off the origin context.
	ErrNotOnOrigin = errors.New("validation must be started on the origin context")

	// ErrNilOrigin is returned when a validator is built without an origin.
	ErrNilOrigin = errors.New("origin context cannot be nil")

	// ErrNilValue is returned when validating a nil value.
	ErrNilValue = errors.New("value cannot be nil")

	// ErrNilSet is returned when validating against a nil constraint set.
	ErrNilSet = errors.New("constraint set cannot be nil")

	// ErrNilCallback is returned when no callback is supplied.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrNilValidator is returned when a bulk validator wraps nothing.
	ErrNilValidator = errors.New("validator cannot be nil")

	// ErrContractViolation wraps errors raised by constraints while evaluating:
	// a payload of the wrong type or an undeclared error key.
	ErrContractViolation = errors.New("constraint contract violated")

	// ErrUndelivered is reported when a result cannot be posted back to the origin.
	ErrUndelivered = errors.New("validation result could not be delivered to the origin")

	// ErrSeedIncomplete is returned when an observer's seed run did not report back
	// before the constructor returned.
	ErrSeedIncomplete = errors.New("observer seed validation did not complete")
)

// TransitionError reports an invocation moving between lifecycle states in a
// way the lifecycle does not allow, such as delivering a result twice.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid validation lifecycle transition from %s to %s", e.From, e.To)
}

func NewTransitionError(from, to State) *TransitionError {
	return &TransitionError{
		From: from,
		To:   to,
	}
}

func IsTransitionError(err error) bool {
	var e *TransitionError
	return errors.As(err, &e)
}
