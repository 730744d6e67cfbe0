package editor

import "errors"

var (
	// ErrNoEditor is returned when no editor is configured anywhere.
	ErrNoEditor = errors.New(
		"no editor configured: run 'fcf editor <name>' or set the EDITOR environment variable",
	)
	// ErrEmptyPath is returned when the launcher is asked to open an empty path.
	ErrEmptyPath = errors.New("path to edit must not be empty")
)
