package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
