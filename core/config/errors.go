package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("nil config pointer")

	// ErrFailedToParse wraps env parsing failures (missing required
	// variables, unparsable values).
	ErrFailedToParse = errors.New("failed to parse config from environment")
)
