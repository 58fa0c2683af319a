package life

import "errors"

var (
	// ErrInvalidArgument indicates malformed grid dimensions.
	ErrInvalidArgument = errors.New("life: invalid argument")
	// ErrOutOfRange indicates a cell coordinate outside the grid.
	ErrOutOfRange = errors.New("life: coordinate out of range")
)
