package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoFields is returned when the wizard has nothing to edit.
	ErrNoFields = errors.New("tui: wizard has no fields")
)
