package builder

import (
	"github.com/johnpfay/PatchConnect/gridgraph"
)

// MethodLandscape is the context token used in Landscape errors.
const MethodLandscape = "Landscape"

// builderConfig aggregates all knobs used by Landscape.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	width, height int
	seed          int64

	// noiseScale converts cell coordinates to noise space; smaller values
	// give larger, smoother features.
	noiseScale float64

	minCost, maxCost float64
	patchLevel       float64
	minPatchCells    int

	cellSize float64
	conn     gridgraph.Connectivity
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultWidth         = 64
	defaultHeight        = 64
	defaultSeed          = int64(1)
	defaultNoiseScale    = 0.08
	defaultMinCost       = 1.0
	defaultMaxCost       = 10.0
	defaultPatchLevel    = 0.72
	defaultMinPatchCells = 1
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		width:         defaultWidth,
		height:        defaultHeight,
		seed:          defaultSeed,
		noiseScale:    defaultNoiseScale,
		minCost:       defaultMinCost,
		maxCost:       defaultMaxCost,
		patchLevel:    defaultPatchLevel,
		minPatchCells: defaultMinPatchCells,
		cellSize:      gridgraph.DefaultCellSize,
		conn:          gridgraph.Conn8,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
