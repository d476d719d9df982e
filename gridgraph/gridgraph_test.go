package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/gridgraph"
)

const nd = gridgraph.DefaultNoData

//----------------------------------------------------------------------------//
// NewGrid validation
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged, mismatched
// and invalid-cost inputs.
func TestNewGrid_Errors(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	cases := []struct {
		name   string
		cost   [][]float64
		labels [][]int
		opts   gridgraph.GridOptions
		err    error
	}{
		{"EmptyRows", [][]float64{}, [][]int{}, opts, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, [][]int{{}}, opts, gridgraph.ErrEmptyGrid},
		{"NonRectangularCost", [][]float64{{1, 2}, {3}}, [][]int{{1, 2}, {3, 4}}, opts, gridgraph.ErrNonRectangular},
		{"NonRectangularLabels", [][]float64{{1, 2}, {3, 4}}, [][]int{{1, 2}, {3}}, opts, gridgraph.ErrNonRectangular},
		{"Mismatch", [][]float64{{1, 2}}, [][]int{{1}, {2}}, opts, gridgraph.ErrDimensionMismatch},
		{"NegativeCost", [][]float64{{1, -2}}, [][]int{{1, 2}}, opts, gridgraph.ErrInvalidCost},
		{"NaNCost", [][]float64{{1, math.NaN()}}, [][]int{{1, 2}}, opts, gridgraph.ErrInvalidCost},
		{"InfCost", [][]float64{{math.Inf(1), 1}}, [][]int{{1, 2}}, opts, gridgraph.ErrInvalidCost},
		{"ZeroCellSize", [][]float64{{1}}, [][]int{{1}}, gridgraph.GridOptions{}, gridgraph.ErrBadCellSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.cost, tc.labels, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestNewGrid_BarriersAndCopy(t *testing.T) {
	cost := [][]float64{
		{1, nd, 3},
		{4, 5, 6},
	}
	labels := [][]int{
		{1, nd, 2},
		{nd, 0, 2},
	}
	gg, err := gridgraph.NewGrid(cost, labels, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.True(t, gg.Barrier(gg.Index(1, 0)))
	assert.False(t, gg.Barrier(gg.Index(0, 0)))
	assert.Equal(t, 6.0, gg.Cost(gg.Index(2, 1)))

	// Mutating the input after construction must not leak into the grid.
	cost[1][2] = 99
	labels[0][0] = 7
	assert.Equal(t, 6.0, gg.Cost(gg.Index(2, 1)))
	assert.Equal(t, 1, gg.Label(0))
}

func TestNewGrid_NaNNoData(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.CostNoData = math.NaN()
	gg, err := gridgraph.NewGrid([][]float64{{1, math.NaN()}}, [][]int{{1, 2}}, opts)
	require.NoError(t, err)
	assert.True(t, gg.Barrier(1))
}

//----------------------------------------------------------------------------//
// Geometry helpers
//----------------------------------------------------------------------------//

func TestInBoundsIndexCoordinate(t *testing.T) {
	gg, err := gridgraph.Uniform([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		x, y := gg.Coordinate(gg.Index(xy[0], xy[1]))
		assert.Equal(t, xy, [2]int{x, y})
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 1}, gg.CellAt(5))
}

func TestNeighborOffsets(t *testing.T) {
	labels := [][]int{{1}}
	opts := gridgraph.DefaultGridOptions()
	g8, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)
	require.Len(t, g8.NeighborOffsets(), 8)
	for _, o := range g8.NeighborOffsets() {
		if o.DX != 0 && o.DY != 0 {
			assert.Equal(t, math.Sqrt2, o.Length)
		} else {
			assert.Equal(t, 1.0, o.Length)
		}
	}

	opts.Conn = gridgraph.Conn4
	g4, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)
	assert.Len(t, g4.NeighborOffsets(), 4)
}

//----------------------------------------------------------------------------//
// Patches
//----------------------------------------------------------------------------//

func TestPatches(t *testing.T) {
	labels := [][]int{
		{3, 3, nd, 1},
		{nd, 0, nd, 1},
		{3, nd, nd, nd},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = 30
	gg, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, gg.PatchIDs())
	p3, ok := gg.Patch(3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 8}, p3.Cells)
	assert.Equal(t, 3*900.0, p3.Area)
	assert.InDelta(t, 0.27, p3.Hectares(), 1e-12)

	_, ok = gg.Patch(0)
	assert.False(t, ok, "label 0 is background")
	id, ok := gg.PatchAt(3)
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	assert.Equal(t, map[int]float64{1: 1800, 3: 2700}, gg.Areas())
}

func TestFragments(t *testing.T) {
	labels := [][]int{
		{5, 5, 0, 0},
		{0, 0, 5, 0},
		{0, 0, 0, 0},
		{5, 0, 0, 0},
	}
	opts := gridgraph.DefaultGridOptions()
	g8, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)
	// Diagonal contact joins (1,0) and (2,1) under Conn8.
	assert.Equal(t, [][]int{{0, 1, 6}, {12}}, g8.Fragments(5))

	opts.Conn = gridgraph.Conn4
	g4, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)
	assert.Len(t, g4.Fragments(5), 3)
	assert.Nil(t, g4.Fragments(42))
}

func TestDigest(t *testing.T) {
	labels := [][]int{{1, 0}, {0, 2}}
	opts := gridgraph.DefaultGridOptions()
	a, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)
	b, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.Len(t, a.Digest(), 64)

	opts.CellSize = 2
	c, err := gridgraph.Uniform(labels, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), c.Digest())
}
