package rules

import "errors"

var (
	ErrNegativeLength = errors.New("length bound cannot be negative")
	ErrInvalidPattern = errors.New("invalid regular expression")
	ErrInvalidRange   = errors.New("range minimum is greater than maximum")
	ErrInvalidTag     = errors.New("invalid validation tag")
	ErrUnknownRule    = errors.New("unknown rule type")
	ErrInvalidBound   = errors.New("rule value has the wrong type")
)
