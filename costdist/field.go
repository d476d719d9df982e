package costdist

import (
	"fmt"
	"math"
	"slices"

	"github.com/johnpfay/PatchConnect/gridgraph"
)

// Field is the output of Solve: one cumulative cost per cell in row-major
// order, plus an optional predecessor array.
//
// Dist[i] is +Inf for cells no source reaches (or that lie beyond MaxCost).
// Prev[i] is the previous cell on a least-cost path to i, i itself for
// source cells and -1 for unreached cells. Prev is nil unless Solve was run
// WithTraceback.
type Field struct {
	Width, Height int
	Dist          []float64
	Prev          []int
}

// At returns the cumulative cost at column x, row y.
func (f *Field) At(x, y int) float64 { return f.Dist[y*f.Width+x] }

// Reached reports whether cell i has a finite cumulative cost.
func (f *Field) Reached(i int) bool { return !math.IsInf(f.Dist[i], 1) }

// Traceback returns the least-cost path that ends at cell target, ordered
// from the source cell to target (both included).
//
// Errors: ErrNoTraceback if the field has no predecessors, ErrCellOutOfRange
// for a bad index and ErrUnreachable if target was never reached.
// Complexity: O(path length).
func (f *Field) Traceback(target int) ([]gridgraph.Cell, error) {
	if f.Prev == nil {
		return nil, ErrNoTraceback
	}
	if target < 0 || target >= len(f.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrCellOutOfRange, target)
	}
	if !f.Reached(target) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, target)
	}

	var path []gridgraph.Cell
	for c := target; ; c = f.Prev[c] {
		path = append(path, gridgraph.Cell{X: c % f.Width, Y: c / f.Width})
		if f.Prev[c] == c {
			break
		}
	}
	slices.Reverse(path)

	return path, nil
}
