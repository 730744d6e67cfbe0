package store

import "errors"

var (
	// ErrBindingNotFound is returned when a key has no bound path.
	ErrBindingNotFound = errors.New("binding does not exist")
	// ErrMalformedConfig is returned when a non-empty config document is not valid JSON
	// of the expected shape. The document is left untouched.
	ErrMalformedConfig = errors.New("malformed config document")
	// ErrEmptyKey is returned when a binding key is empty.
	ErrEmptyKey = errors.New("binding key must not be empty")
	// ErrNilConfig is returned when Save is called without a config.
	ErrNilConfig = errors.New("config must not be nil")
)
