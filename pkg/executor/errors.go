package executor

import "errors"

var (
	// ErrClosed is returned when submitting to an executor that has been closed.
	ErrClosed = errors.New("executor is closed")

	// ErrUnknownStrategy is returned for strategy names that are not recognized.
	ErrUnknownStrategy = errors.New("unknown execution strategy")

	// ErrNilJob is returned when submitting a nil job.
	ErrNilJob = errors.New("job cannot be nil")
)
