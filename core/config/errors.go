package config

import "errors"

// Error variables define configuration loading failures.
var (
	// ErrNilConfig indicates Load was called with a nil pointer.
	ErrNilConfig = errors.New("config target must be a non-nil pointer")

	// ErrParseFailed indicates environment variables could not be parsed into
	// the target struct, typically a missing required variable or a malformed
	// value. The underlying parser error is joined for inspection.
	ErrParseFailed = errors.New("failed to parse environment config")
)
