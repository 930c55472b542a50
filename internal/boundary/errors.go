package boundary

import (
	"errors"
	"fmt"
)

// -- Error Types --

// RootError is returned when the boundary root is invalid.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid boundary root %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

// ResolveError is returned when a path cannot be canonicalised.
type ResolveError struct {
	Path  string
	Cause error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("failed to resolve path %s: %v", e.Path, e.Cause)
}
func (e *ResolveError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrOutsideBoundary = errors.New("path is outside the home directory boundary")
	ErrNotADirectory   = errors.New("not a directory")
)
