package origin

import "errors"

var (
	// ErrAlreadyRunning is returned by Loop.Run when the loop already has a runner.
	ErrAlreadyRunning = errors.New("origin loop is already running")

	// ErrStopped is returned when posting to a loop that has shut down.
	ErrStopped = errors.New("origin loop is stopped")

	// ErrNilTask is returned when posting a nil task.
	ErrNilTask = errors.New("origin task cannot be nil")
)
