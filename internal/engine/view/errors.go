package view

import "errors"

// ErrClosed indicates an edit through a view that has been closed.
var ErrClosed = errors.New("view is closed")
