package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoDocument indicates a script was run before a file was opened.
	ErrNoDocument = errors.New("no document open")

	// ErrAlreadyOpen indicates Open was called twice.
	ErrAlreadyOpen = errors.New("document already open")

	// ErrShutdown indicates the application has been shut down.
	ErrShutdown = errors.New("application shut down")
)

// OperationError records which operation failed and on what.
type OperationError struct {
	Op     string // Operation name (e.g., "open", "run script", "write")
	Target string // File path or script name
	Err    error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
