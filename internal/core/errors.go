package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfBounds is returned when a read, write or stamp addresses a cell
// outside the grid.
var ErrOutOfBounds = errors.New("core: coordinate out of bounds")

// BoundsError records the offending coordinate.
type BoundsError struct {
	Row  int
	Col  int
	Size int
}

func newBoundsError(row, col, size int) *BoundsError {
	return &BoundsError{Row: row, Col: col, Size: size}
}

// NewBoundsError builds a BoundsError for callers that validate coordinates
// themselves before touching a grid.
func NewBoundsError(row, col, size int) error {
	return newBoundsError(row, col, size)
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) not in [0,%d)", ErrOutOfBounds, e.Row, e.Col, e.Size)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
