package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/internal/store"
	"github.com/johnpfay/PatchConnect/sweep"
)

func openDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	id, err := db.CreateRun(ctx, "abc123", "triangle", map[string]any{"workers": 2})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	edges := []core.Edge{
		{From: 2, To: 3, Cost: 700},
		{From: 1, To: 2, Cost: 500},
		{From: 1, To: 3, Cost: 1400.25},
	}
	require.NoError(t, db.SaveEdges(ctx, id, edges))
	require.NoError(t, db.SaveThresholds(ctx, id, []sweep.Snapshot{{Threshold: 0, Components: 3}, {Threshold: 500, Components: 2, Diameter: 500}}))
	require.NoError(t, db.SaveSensitivity(ctx, id, []sweep.NodeSensitivity{{ID: 2, Cut: true, DiameterDelta: 2}}))
	require.NoError(t, db.SaveAttributes(ctx, id, []connectivity.PatchAttributes{{ID: 1, Area: 2, Degree: 1}}))

	got, err := db.LoadEdges(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Cost: 500},
		{From: 1, To: 3, Cost: 1400.25},
		{From: 2, To: 3, Cost: 700},
	}, got)

	runs, err := db.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "abc123", runs[0].GridDigest)
	assert.Equal(t, "triangle", runs[0].Label)
	assert.Equal(t, 2.0, runs[0].Params["workers"])
}

func TestUnknownRun(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	_, err := db.LoadEdges(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrRunNotFound)

	err = db.SaveEdges(ctx, "missing", []core.Edge{{From: 1, To: 2, Cost: 1}})
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestSaveEdges_DuplicateRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	id, err := db.CreateRun(ctx, "d", "", nil)
	require.NoError(t, err)

	err = db.SaveEdges(ctx, id, []core.Edge{{From: 1, To: 2, Cost: 1}, {From: 1, To: 2, Cost: 2}})
	require.Error(t, err)

	got, err := db.LoadEdges(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReopenKeepsRuns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	db, err := store.Open(path)
	require.NoError(t, err)
	id, err := db.CreateRun(ctx, "x", "first", nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.Open(path)
	require.NoError(t, err)
	defer db.Close()
	runs, err := db.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Empty(t, runs[0].Params)
}
