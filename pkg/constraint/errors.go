package constraint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySet is returned when a set is built without constraints.
	ErrEmptySet = errors.New("constraint set must contain at least one constraint")

	// ErrNilConstraint is returned when a nil constraint is added to a set.
	ErrNilConstraint = errors.New("constraint cannot be nil")

	// ErrDuplicateExclusive is returned when a second exclusive constraint is added to a set.
	ErrDuplicateExclusive = errors.New("exclusive constraint already present in set")

	// ErrNoKeys is returned when a constraint declares no error-message keys.
	ErrNoKeys = errors.New("constraint must declare at least one error key")

	// ErrNilCheck is returned when a constraint definition has no check function.
	ErrNilCheck = errors.New("constraint check function cannot be nil")

	// ErrNilMessages is returned when a constraint definition has no message source.
	ErrNilMessages = errors.New("constraint message source cannot be nil")

	// ErrUndeclaredKey is returned when a check reports a key the constraint never declared.
	ErrUndeclaredKey = errors.New("constraint reported an undeclared error key")
)

// TypeMismatchError reports a payload whose runtime type is not the type a
// constraint validates. It signals broken wiring, not invalid input.
type TypeMismatchError struct {
	Constraint string
	Expected   string
	Actual     string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("constraint %q cannot validate a %s payload: expected %s", e.Constraint, e.Actual, e.Expected)
}

func NewTypeMismatchError(constraint, expected, actual string) *TypeMismatchError {
	return &TypeMismatchError{
		Constraint: constraint,
		Expected:   expected,
		Actual:     actual,
	}
}

func IsTypeMismatch(err error) bool {
	var e *TypeMismatchError
	return errors.As(err, &e)
}

// MissingMessageError reports declared error keys that the message source
// cannot resolve. Suggestions maps a missing key to the closest known key.
type MissingMessageError struct {
	Constraint  string
	Keys        []string
	Suggestions map[string]string
}

func (e *MissingMessageError) Error() string {
	parts := make([]string, 0, len(e.Keys))
	for _, key := range e.Keys {
		if s, ok := e.Suggestions[key]; ok {
			parts = append(parts, fmt.Sprintf("%s (did you mean %s?)", key, s))
			continue
		}
		parts = append(parts, key)
	}
	return fmt.Sprintf("constraint %q has no message for: %s", e.Constraint, strings.Join(parts, ", "))
}

func IsMissingMessage(err error) bool {
	var e *MissingMessageError
	return errors.As(err, &e)
}
