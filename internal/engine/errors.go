package engine

import "errors"

// Errors returned by session operations.
var (
	// ErrSessionClosed indicates an operation on a closed session.
	ErrSessionClosed = errors.New("session is closed")

	// ErrViewNotFound indicates a view that does not belong to the session.
	ErrViewNotFound = errors.New("view not found")

	// ErrViewClosed indicates a view that has already been closed.
	ErrViewClosed = errors.New("view is closed")

	// ErrBookmarkNotFound indicates no bookmark has the requested id.
	ErrBookmarkNotFound = errors.New("bookmark not found")
)
