package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/internal/config"
)

const sample = `
input:
  cost: rasters/cost.asc
  patches: rasters/patches.asc
  conn: 4
extract:
  workers: 2
  max_cost: 5000
  paths: true
sweep:
  min: 0
  max: 2000
  step: 250
  early_stop: true
attributes:
  max_distance: 1500
output:
  dir: out
store:
  path: runs.db
`

func TestParse_Sample(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "rasters/patches.asc", cfg.Input.Patches)
	assert.Equal(t, 4, cfg.Input.Conn)
	assert.Equal(t, 2, cfg.Extract.Workers)
	assert.True(t, cfg.Extract.Paths)
	assert.Equal(t, 5000.0, cfg.EffectiveMaxCost())
	assert.Equal(t, 250.0, cfg.Sweep.Step)
	assert.True(t, cfg.Sweep.EarlyStop)
	assert.Equal(t, 1500.0, cfg.Attributes.MaxDistance)
	// Defaults survive for keys the file leaves out.
	assert.Equal(t, "edges.csv", cfg.Output.Edges)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, filepath.Join("out", "edges.csv"), cfg.OutputPath(cfg.Output.Edges))
	assert.Empty(t, cfg.OutputPath(""))
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("input:\n  patches: p.asc\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Input.Conn)
	assert.True(t, math.IsInf(cfg.EffectiveMaxCost(), 1))
	assert.Equal(t, 100.0, cfg.Sweep.Step)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"MissingPatches", "input:\n  conn: 8\n"},
		{"BadConn", "input:\n  patches: p.asc\n  conn: 6\n"},
		{"NegativeWorkers", "input:\n  patches: p.asc\nextract:\n  workers: -1\n"},
		{"NegativeMaxCost", "input:\n  patches: p.asc\nextract:\n  max_cost: -3\n"},
		{"InvertedSweep", "input:\n  patches: p.asc\nsweep:\n  min: 10\n  max: 5\n"},
		{"ZeroStep", "input:\n  patches: p.asc\nsweep:\n  step: 0\n"},
		{"BadPrecision", "input:\n  patches: p.asc\noutput:\n  precision: 40\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("input:\n  patches: p.asc\n  colour: red\n"))
	assert.Error(t, err)
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rasters", "patches.asc"), cfg.Input.Patches)
	assert.Equal(t, filepath.Join(dir, "rasters", "cost.asc"), cfg.Input.Cost)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Output.Dir)
	assert.Equal(t, filepath.Join(dir, "runs.db"), cfg.Store.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
