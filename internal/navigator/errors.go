package navigator

import "errors"

// -- Sentinels --

var (
	ErrNotFound      = errors.New("path not found")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotAFile      = errors.New("not a file")
)
