package gridgraph

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/core"
)

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = fmt.Errorf("gridgraph: input grid must have at least one row and one column: %w", core.ErrInvalidInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("gridgraph: all rows must have the same length: %w", core.ErrInvalidInput)
	// ErrDimensionMismatch indicates cost and label grids of different shapes.
	ErrDimensionMismatch = fmt.Errorf("gridgraph: cost and label grids differ in shape: %w", core.ErrInvalidInput)
	// ErrInvalidCost indicates a negative or non-finite cost outside the NoData value.
	ErrInvalidCost = fmt.Errorf("gridgraph: cost must be finite and non-negative: %w", core.ErrInvalidInput)
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = fmt.Errorf("gridgraph: cell size must be positive and finite: %w", core.ErrInvalidInput)
)
