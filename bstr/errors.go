package bstr

import "errors"

var (
	// ErrReleased signals use of a byte-string after it has been released.
	ErrReleased = errors.New("bstr: byte-string has been released")
)
