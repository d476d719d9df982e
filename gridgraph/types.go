// Package gridgraph defines core types, options and defaults for the raster
// model consumed by the cost-distance solver.
package gridgraph

import "math"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Default sentinels, matching the usual raster export convention.
const (
	DefaultNoData   = -9999
	DefaultCellSize = 1.0
)

// Cell addresses a single grid cell: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Offset is a neighbor displacement together with its step length measured
// in cell widths (1 for orthogonal moves, √2 for diagonal ones).
type Offset struct {
	DX, DY int
	Length float64
}

// Patch is a habitat unit: every cell carrying the same positive label.
type Patch struct {
	// ID is the label value shared by the cells.
	ID int
	// Cells lists the row-major indices of the patch, ascending.
	Cells []int
	// Area is len(Cells) × CellSize², in squared map units.
	Area float64
}

// Hectares converts Area from square metres to hectares.
func (p Patch) Hectares() float64 { return p.Area / 10000.0 }

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// CellSize is the physical width of one (square) cell.
	CellSize float64
	// LabelNoData marks cells that belong to no patch. Non-positive labels
	// are treated as background as well.
	LabelNoData int
	// CostNoData marks impassable cells. NaN selects "NaN cells are barriers".
	CostNoData float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with default settings:
// CellSize=1, LabelNoData=-9999, CostNoData=-9999, Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		CellSize:    DefaultCellSize,
		LabelNoData: DefaultNoData,
		CostNoData:  DefaultNoData,
		Conn:        Conn8,
	}
}

// Grid is an immutable pair of cost and label rasters. Cells are stored in
// row-major order: index = y*Width + x.
type Grid struct {
	Width, Height int
	CellSize      float64
	Conn          Connectivity

	cost            []float64
	labels          []int
	barrier         []bool
	noData          int
	patches         []Patch
	patchIndex      map[int]int
	neighborOffsets []Offset
}

var (
	conn4Offsets = []Offset{{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1}}
	conn8Offsets = []Offset{
		{0, -1, 1}, {1, -1, math.Sqrt2}, {1, 0, 1}, {1, 1, math.Sqrt2},
		{0, 1, 1}, {-1, 1, math.Sqrt2}, {-1, 0, 1}, {-1, -1, math.Sqrt2},
	}
)
