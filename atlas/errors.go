package atlas

import (
	"errors"
	"fmt"
)

// ErrInvalidCellSize is matched by every *CellSizeError.
var ErrInvalidCellSize = errors.New("atlas: invalid cell size")

// CellSizeError reports a glyph cell whose larger side falls outside
// [Min, Max], or a cell with an empty side.
type CellSizeError struct {
	Width, Height int
	Min, Max      int
}

func (e *CellSizeError) Error() string {
	return fmt.Sprintf("atlas: invalid cell size: [width: %d, height: %d], bounds: [minimum: %d, maximum: %d]",
		e.Width, e.Height, e.Min, e.Max)
}

func (e *CellSizeError) Is(target error) bool {
	return target == ErrInvalidCellSize
}
