package builder

import "math"

// validate checks a resolved config before any raster is allocated.
// Size problems come first, then option values.
func (c builderConfig) validate() error {
	if c.width < 1 || c.height < 1 {
		return builderErrorf(MethodLandscape, ErrBadSize, "size must be ≥ 1x1, got %dx%d", c.width, c.height)
	}
	if !positiveFinite(c.noiseScale) {
		return builderErrorf(MethodLandscape, ErrOptionViolation, "noise scale must be > 0, got %v", c.noiseScale)
	}
	if !positiveFinite(c.cellSize) {
		return builderErrorf(MethodLandscape, ErrOptionViolation, "cell size must be > 0, got %v", c.cellSize)
	}
	if c.minCost < 0 || c.minCost > c.maxCost || math.IsNaN(c.minCost) || math.IsInf(c.maxCost, 0) {
		return builderErrorf(MethodLandscape, ErrOptionViolation, "cost range must satisfy 0 ≤ min ≤ max < Inf, got [%v,%v]", c.minCost, c.maxCost)
	}
	if math.IsNaN(c.patchLevel) {
		return builderErrorf(MethodLandscape, ErrOptionViolation, "patch level is NaN")
	}
	if c.minPatchCells < 0 {
		return builderErrorf(MethodLandscape, ErrOptionViolation, "min patch cells must be ≥ 0, got %d", c.minPatchCells)
	}

	return nil
}

// positiveFinite reports whether x is in (0, +Inf).
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
