package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpfay/PatchConnect/builder"
	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/gridgraph"
)

func TestLandscape_Deterministic(t *testing.T) {
	a, err := builder.Generate(builder.WithSize(40, 30), builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Generate(builder.WithSize(40, 30), builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Generate(builder.WithSize(40, 30), builder.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Cost, c.Cost)
}

// TestLandscape_Invariants checks shape, cost range, habitat cost and
// row-major label numbering over a few seeds.
func TestLandscape_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		l, err := builder.Generate(
			builder.WithSize(50, 40),
			builder.WithSeed(seed),
			builder.WithCostRange(2, 20),
			builder.WithPatchLevel(0.65),
		)
		require.NoError(t, err)
		require.Len(t, l.Cost, 40)
		require.Len(t, l.Labels, 40)

		nextNew := 1
		for y := 0; y < l.Height; y++ {
			require.Len(t, l.Cost[y], 50)
			for x := 0; x < l.Width; x++ {
				c, lab := l.Cost[y][x], l.Labels[y][x]
				assert.GreaterOrEqual(t, c, 2.0)
				assert.LessOrEqual(t, c, 20.0)
				if lab <= 0 {
					assert.Equal(t, gridgraph.DefaultNoData, lab)
					continue
				}
				assert.Equal(t, 2.0, c, "habitat costs the minimum")
				// A label is either already seen or exactly the next one.
				assert.LessOrEqual(t, lab, nextNew, "seed %d cell (%d,%d)", seed, x, y)
				if lab == nextNew {
					nextNew++
				}
			}
		}
		assert.Equal(t, l.NumPatches, nextNew-1)
	}
}

func TestLandscape_GridMatchesPatches(t *testing.T) {
	l, err := builder.Generate(builder.WithSize(48, 48), builder.WithSeed(3), builder.WithPatchLevel(0.6), builder.WithCellSize(30))
	require.NoError(t, err)

	g, err := l.Grid()
	require.NoError(t, err)
	assert.Len(t, g.Patches(), l.NumPatches)
	assert.Equal(t, 30.0, g.CellSize)
	for _, p := range g.Patches() {
		assert.Len(t, g.Fragments(p.ID), 1, "generated patch %d is one blob", p.ID)
	}
}

func TestLandscape_PatchLevelExtremes(t *testing.T) {
	none, err := builder.Generate(builder.WithSize(10, 10), builder.WithPatchLevel(1.01))
	require.NoError(t, err)
	assert.Zero(t, none.NumPatches)

	all, err := builder.Generate(builder.WithSize(10, 10), builder.WithPatchLevel(0))
	require.NoError(t, err)
	assert.Equal(t, 1, all.NumPatches)
	assert.Equal(t, 1, all.Labels[9][9])
}

func TestLandscape_MinPatchCells(t *testing.T) {
	base, err := builder.Generate(builder.WithSize(60, 60), builder.WithSeed(11), builder.WithPatchLevel(0.7))
	require.NoError(t, err)
	big, err := builder.Generate(builder.WithSize(60, 60), builder.WithSeed(11), builder.WithPatchLevel(0.7), builder.WithMinPatchCells(25))
	require.NoError(t, err)
	assert.LessOrEqual(t, big.NumPatches, base.NumPatches)

	g, err := big.Grid()
	require.NoError(t, err)
	for _, p := range g.Patches() {
		assert.GreaterOrEqual(t, len(p.Cells), 25)
	}
}

func TestLandscape_Validation(t *testing.T) {
	cases := []struct {
		name string
		opt  builder.BuilderOption
		want error
	}{
		{"ZeroWidth", builder.WithSize(0, 5), builder.ErrBadSize},
		{"NegativeHeight", builder.WithSize(5, -1), builder.ErrBadSize},
		{"ZeroScale", builder.WithNoiseScale(0), builder.ErrOptionViolation},
		{"InvertedCost", builder.WithCostRange(5, 1), builder.ErrOptionViolation},
		{"NegativeCost", builder.WithCostRange(-1, 1), builder.ErrOptionViolation},
		{"ZeroCellSize", builder.WithCellSize(0), builder.ErrOptionViolation},
		{"NegativeMinCells", builder.WithMinPatchCells(-2), builder.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Generate(tc.opt)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestWithConnectivity_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { builder.WithConnectivity(gridgraph.Connectivity(9)) })
}
