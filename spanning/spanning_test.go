package spanning_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/spanning"
)

// buildTriangle constructs the triangle 1-2 (500), 2-3 (700), 1-3 (1400).
// Its MST is {1-2, 2-3} with total 1200.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build(nil, []core.Edge{
		{From: 1, To: 2, Cost: 500},
		{From: 2, To: 3, Cost: 700},
		{From: 1, To: 3, Cost: 1400},
	})
	require.NoError(t, err)

	return g
}

// buildMediumGraph creates a connected graph on patches 1..n: a chain with
// costs in [1, 11) plus extra random links with costs in [1, 101).
// The generator is seeded so the graph is the same on every run.
func buildMediumGraph(t testing.TB, n, extra int, seed uint64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, 42))

	edges := make([]core.Edge, 0, n-1+extra)
	for i := 2; i <= n; i++ {
		edges = append(edges, core.Edge{From: i - 1, To: i, Cost: 1 + 10*r.Float64()})
	}
	for i := 0; i < extra; {
		u, w := 1+r.IntN(n), 1+r.IntN(n)
		if u == w {
			continue
		}
		edges = append(edges, core.Edge{From: u, To: w, Cost: 1 + 100*r.Float64()})
		i++
	}
	g, err := core.Build(nil, edges)
	require.NoError(t, err)

	return g
}

func TestKruskal_Triangle(t *testing.T) {
	edges, total := spanning.Kruskal(buildTriangle(t).View())
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Cost: 500},
		{From: 2, To: 3, Cost: 700},
	}, edges)
	assert.Equal(t, 1200.0, total)
}

func TestPrim_Triangle(t *testing.T) {
	for _, root := range []int{1, 2, 3} {
		edges, total, err := spanning.Prim(buildTriangle(t).View(), root)
		require.NoError(t, err)
		assert.Equal(t, 1200.0, total, "root %d", root)
		assert.ElementsMatch(t, []core.Edge{
			{From: 1, To: 2, Cost: 500},
			{From: 2, To: 3, Cost: 700},
		}, edges, "root %d", root)
	}
}

// TestKruskal_Forest verifies that a disconnected view yields one tree per
// component and that isolated patches add nothing.
func TestKruskal_Forest(t *testing.T) {
	g, err := core.Build([]int{9}, []core.Edge{
		{From: 1, To: 2, Cost: 3},
		{From: 2, To: 3, Cost: 1},
		{From: 1, To: 3, Cost: 2},
		{From: 5, To: 6, Cost: 4},
	})
	require.NoError(t, err)

	edges, total := spanning.Kruskal(g.View())
	assert.Equal(t, []core.Edge{
		{From: 2, To: 3, Cost: 1},
		{From: 1, To: 3, Cost: 2},
		{From: 5, To: 6, Cost: 4},
	}, edges)
	assert.Equal(t, 7.0, total)

	// |forest| = |V| - components
	assert.Len(t, edges, g.Order()-g.View().ComponentCount())
}

// TestPrim_OnlyRootComponent verifies that Prim spans the root's component and
// nothing else.
func TestPrim_OnlyRootComponent(t *testing.T) {
	g, err := core.Build([]int{9}, []core.Edge{
		{From: 1, To: 2, Cost: 3},
		{From: 5, To: 6, Cost: 4},
	})
	require.NoError(t, err)

	edges, total, err := spanning.Prim(g.View(), 6)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 5, To: 6, Cost: 4}}, edges)
	assert.Equal(t, 4.0, total)

	edges, total, err = spanning.Prim(g.View(), 9)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestSpanning_ThresholdView(t *testing.T) {
	v := buildTriangle(t).View().WithinThreshold(600)
	edges, total := spanning.Kruskal(v)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Cost: 500}}, edges)
	assert.Equal(t, 500.0, total)
}

func TestSpanning_WithoutNode(t *testing.T) {
	v, err := buildTriangle(t).View().Without(2)
	require.NoError(t, err)

	edges, total := spanning.Kruskal(v)
	assert.Equal(t, []core.Edge{{From: 1, To: 3, Cost: 1400}}, edges)
	assert.Equal(t, 1400.0, total)

	_, _, err = spanning.Prim(v, 2)
	assert.ErrorIs(t, err, core.ErrNodeExcluded)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestPrim_UnknownRoot(t *testing.T) {
	_, _, err := spanning.Prim(buildTriangle(t).View(), 42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestPrimMatchesKruskal compares the total cost of both algorithms on random
// connected graphs.
func TestPrimMatchesKruskal(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		g := buildMediumGraph(t, 60, 150, seed)
		v := g.View()

		kEdges, kTotal := spanning.Kruskal(v)
		pEdges, pTotal, err := spanning.Prim(v, 1)
		require.NoError(t, err)

		assert.Len(t, kEdges, g.Order()-1, "seed %d", seed)
		assert.Len(t, pEdges, g.Order()-1, "seed %d", seed)
		assert.InDelta(t, kTotal, pTotal, 1e-9, "seed %d", seed)
		for _, e := range pEdges {
			assert.Less(t, e.From, e.To)
		}
	}
}

func TestCompute_Dispatch(t *testing.T) {
	v := buildTriangle(t).View()

	_, total, err := spanning.Compute(v)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, total)

	_, total, err = spanning.Compute(v, spanning.WithMethod(spanning.MethodPrim), spanning.WithRoot(3))
	require.NoError(t, err)
	assert.Equal(t, 1200.0, total)

	_, _, err = spanning.Compute(v, spanning.WithMethod(spanning.MethodPrim))
	assert.ErrorIs(t, err, spanning.ErrNoRoot)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, _, err = spanning.Compute(v, spanning.WithMethod("boruvka"))
	assert.ErrorIs(t, err, spanning.ErrUnknownMethod)
}
