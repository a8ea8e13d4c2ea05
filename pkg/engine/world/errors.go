package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a board size is not positive
	ErrInvalidSize = errors.New("invalid board size")

	// ErrInconsistentState marks an internal invariant violation
	ErrInconsistentState = errors.New("inconsistent board state")

	// ErrStaleRef is returned when a CellRef belongs to another grid generation
	ErrStaleRef = fmt.Errorf("%w: cell reference from another board generation", ErrInconsistentState)
)
