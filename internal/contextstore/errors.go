package contextstore

import (
	"errors"
)

// -- Sentinels --

var (
	ErrAccessDenied = errors.New("access denied: outside home directory")
	ErrNotFound     = errors.New("no matching files")
	ErrNotAFile     = errors.New("not a regular file")
	ErrTooLarge     = errors.New("file too large")
	ErrBinaryFile   = errors.New("binary file not supported")
	ErrReadFailure  = errors.New("failed to read file")
)
