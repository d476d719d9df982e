// Package gridgraph provides utilities to treat a cost raster and a patch
// raster as an implicit graph of cells. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8) with geometric step lengths
//   - Barrier cells (cost NoData) that are never traversed
//   - Patch discovery, areas and fragment analysis
package gridgraph

import (
	"fmt"
	"math"
	"sort"
)

// NewGrid constructs a Grid from non-empty, rectangular cost and label grids of
// identical shape. It deep-copies the input to ensure immutability.
//
// Returns ErrEmptyGrid if either grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrDimensionMismatch if the two
// grids differ in shape, ErrInvalidCost for a negative or non-finite cost that
// is not CostNoData, and ErrBadCellSize for a bad cell size.
//
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cost [][]float64, labels [][]int, opts GridOptions) (*Grid, error) {
	if opts.CellSize <= 0 || math.IsNaN(opts.CellSize) || math.IsInf(opts.CellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, opts.CellSize)
	}
	h, w, err := shapeOf(len(cost), func(y int) int { return len(cost[y]) })
	if err != nil {
		return nil, fmt.Errorf("cost grid: %w", err)
	}
	lh, lw, err := shapeOf(len(labels), func(y int) int { return len(labels[y]) })
	if err != nil {
		return nil, fmt.Errorf("label grid: %w", err)
	}
	if h != lh || w != lw {
		return nil, fmt.Errorf("%w: cost %dx%d, labels %dx%d", ErrDimensionMismatch, w, h, lw, lh)
	}

	gg := &Grid{
		Width:    w,
		Height:   h,
		CellSize: opts.CellSize,
		Conn:     opts.Conn,
		cost:     make([]float64, w*h),
		labels:   make([]int, w*h),
		barrier:  make([]bool, w*h),
		noData:   opts.LabelNoData,
	}
	// Deep copy with validation, row-major.
	nanBarrier := math.IsNaN(opts.CostNoData)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			c := cost[y][x]
			switch {
			case c == opts.CostNoData || (nanBarrier && math.IsNaN(c)):
				gg.barrier[i] = true
			case c < 0 || math.IsNaN(c) || math.IsInf(c, 0):
				return nil, fmt.Errorf("%w: cell (%d,%d) cost=%v", ErrInvalidCost, x, y, c)
			default:
				gg.cost[i] = c
			}
			gg.labels[i] = labels[y][x]
		}
	}
	if opts.Conn == Conn8 {
		gg.neighborOffsets = conn8Offsets
	} else {
		gg.neighborOffsets = conn4Offsets
	}
	gg.discoverPatches()

	return gg, nil
}

// Uniform builds a Grid whose every cell costs 1, so cumulative costs become
// geometric path lengths (the Euclidean fallback when no cost surface exists).
// Complexity: O(W×H).
func Uniform(labels [][]int, opts GridOptions) (*Grid, error) {
	cost := make([][]float64, len(labels))
	for y, row := range labels {
		cost[y] = make([]float64, len(row))
		for x := range row {
			cost[y][x] = 1
		}
	}

	return NewGrid(cost, labels, opts)
}

// shapeOf validates that a 2D slice is non-empty and rectangular.
func shapeOf(rows int, rowLen func(int) int) (h, w int, err error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w = rowLen(0)
	for y := 1; y < rows; y++ {
		if rowLen(y) != w {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, rowLen(y), w)
		}
	}

	return rows, w, nil
}

// discoverPatches scans labels in row-major order and groups cells by id.
func (gg *Grid) discoverPatches() {
	byID := make(map[int][]int)
	for i, l := range gg.labels {
		if !gg.isPatchLabel(l) {
			continue
		}
		byID[l] = append(byID[l], i)
	}
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	cellArea := gg.CellSize * gg.CellSize
	gg.patches = make([]Patch, len(ids))
	gg.patchIndex = make(map[int]int, len(ids))
	for k, id := range ids {
		cells := byID[id]
		gg.patches[k] = Patch{ID: id, Cells: cells, Area: float64(len(cells)) * cellArea}
		gg.patchIndex[id] = k
	}
}

func (gg *Grid) isPatchLabel(l int) bool {
	return l != gg.noData && l > 0
}

// Len returns the number of cells W×H.
func (gg *Grid) Len() int { return gg.Width * gg.Height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets for gg.Conn.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *Grid) NeighborOffsets() []Offset {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *Grid) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// CellAt converts a row-major index to a Cell.
func (gg *Grid) CellAt(idx int) Cell {
	x, y := gg.Coordinate(idx)
	return Cell{X: x, Y: y}
}

// Cost returns the movement cost of cell idx (0 for barriers; check Barrier).
func (gg *Grid) Cost(idx int) float64 { return gg.cost[idx] }

// Barrier reports whether cell idx is impassable.
func (gg *Grid) Barrier(idx int) bool { return gg.barrier[idx] }

// Label returns the raw label of cell idx.
func (gg *Grid) Label(idx int) int { return gg.labels[idx] }

// PatchAt returns the patch id of cell idx and whether the cell belongs to one.
func (gg *Grid) PatchAt(idx int) (int, bool) {
	l := gg.labels[idx]
	return l, gg.isPatchLabel(l)
}

// Patches returns all patches sorted by id. The slice is shared; callers must
// not modify it.
func (gg *Grid) Patches() []Patch { return gg.patches }

// PatchIDs returns the sorted patch ids.
func (gg *Grid) PatchIDs() []int {
	ids := make([]int, len(gg.patches))
	for i, p := range gg.patches {
		ids[i] = p.ID
	}

	return ids
}

// Patch looks up a patch by id.
func (gg *Grid) Patch(id int) (Patch, bool) {
	k, ok := gg.patchIndex[id]
	if !ok {
		return Patch{}, false
	}

	return gg.patches[k], true
}

// Areas returns patch id → area in squared map units.
func (gg *Grid) Areas() map[int]float64 {
	out := make(map[int]float64, len(gg.patches))
	for _, p := range gg.patches {
		out[p.ID] = p.Area
	}

	return out
}
