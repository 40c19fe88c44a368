package cli

import "errors"

var (
	ErrInvalidForm       = errors.New("invalid form")
	ErrNoMessageSource   = errors.New("no message source: set --messages or --redis-url")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrValidationAborted = errors.New("validation aborted")
)
