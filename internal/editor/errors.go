package editor

import "errors"

// ErrSurfaceNotEditable is returned from New when the bound display
// surface is nil or does not accept edits. Construction is the engine's
// only fallible operation; callers treat this as fatal.
var ErrSurfaceNotEditable = errors.New("editor: surface is not editable")

// InitError wraps a construction failure with the component that caused it.
type InitError struct {
	// Component names the part of the engine that failed to initialize.
	Component string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return "editor: initializing " + e.Component + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}
