package fsutil

import "errors"

// File permissions.
const (
	dirPermUserGroupRX = 0o750
	filePermUserRW     = 0o600
)

var (
	// ErrEmptyOutputPath is returned when a write or create targets an empty path.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	// ErrIsDirectory is returned when a file operation targets an existing directory.
	ErrIsDirectory = errors.New("path is a directory")
)
