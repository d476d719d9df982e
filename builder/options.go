package builder

import (
	"github.com/johnpfay/PatchConnect/gridgraph"
)

// BuilderOption customizes Landscape by mutating a builderConfig before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSize sets the raster width (columns) and height (rows).
func WithSize(width, height int) BuilderOption {
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}

// WithSeed fixes both noise fields. Equal seeds give equal landscapes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
	}
}

// WithNoiseScale sets the coordinate scale of the noise (> 0).
func WithNoiseScale(scale float64) BuilderOption {
	return func(c *builderConfig) {
		c.noiseScale = scale
	}
}

// WithCostRange sets the resistance range; habitat cells get minCost.
// Requires 0 ≤ minCost ≤ maxCost.
func WithCostRange(minCost, maxCost float64) BuilderOption {
	return func(c *builderConfig) {
		c.minCost, c.maxCost = minCost, maxCost
	}
}

// WithPatchLevel sets the habitat noise level in [0,1]. Higher levels give
// fewer and smaller patches; a level above 1 gives none.
func WithPatchLevel(level float64) BuilderOption {
	return func(c *builderConfig) {
		c.patchLevel = level
	}
}

// WithMinPatchCells drops habitat blobs smaller than n cells to background.
func WithMinPatchCells(n int) BuilderOption {
	return func(c *builderConfig) {
		c.minPatchCells = n
	}
}

// WithCellSize sets the physical cell width recorded on the landscape.
func WithCellSize(size float64) BuilderOption {
	return func(c *builderConfig) {
		c.cellSize = size
	}
}

// WithConnectivity selects how habitat cells join into patches.
// Panics on an unknown value.
func WithConnectivity(conn gridgraph.Connectivity) BuilderOption {
	if conn != gridgraph.Conn4 && conn != gridgraph.Conn8 {
		panic("builder: WithConnectivity(unknown)")
	}
	return func(c *builderConfig) {
		c.conn = conn
	}
}
