package static

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryRead = errors.New("directory read failed")

	errNotDirectory = errors.New("not a directory")
)

// DirectoryReadError reports a failure while enumerating or reading the
// static tree: a missing or unreadable directory, or a file that could not
// be read. Path is relative to the walked root except for the root itself.
//
// Unwrap exposes both ErrDirectoryRead and the underlying filesystem error,
// so errors.Is works against either.
type DirectoryReadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("directory read failed: %s: %v", e.Path, e.Err)
}

// Unwrap supports errors.Is/As against the sentinel and the cause.
func (e *DirectoryReadError) Unwrap() []error {
	return []error{ErrDirectoryRead, e.Err}
}
