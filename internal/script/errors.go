package script

import "errors"

// Errors for script execution.
var (
	// ErrStateClosed is returned when running code on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrTimeout is returned when a script exceeds its time limit.
	ErrTimeout = errors.New("lua execution timeout")

	// ErrNoView is returned when a state is created without a view.
	ErrNoView = errors.New("no current view")
)
