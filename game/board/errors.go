package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWidth = errors.New("board width must be positive")
	ErrForeignCell  = errors.New("cell does not belong to this board")
)

// OutOfBoundsError is the panic value of the unchecked accessors.
type OutOfBoundsError struct {
	I, J  int
	Width int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside a board of width %d", e.I, e.J, e.Width)
}
