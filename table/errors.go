package table

import "errors"

var (
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("table: illegal arguments")
)
