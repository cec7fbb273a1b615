package list

import "errors"

var (
	// ErrInvalidConfig signals an invalid list configuration.
	ErrInvalidConfig = errors.New("list: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid logical index.
	ErrIndexOutOfBounds = errors.New("list: index out of bounds")
	// ErrCapacityExceeded signals that a list cannot grow any further.
	ErrCapacityExceeded = errors.New("list: capacity exceeded")
)
