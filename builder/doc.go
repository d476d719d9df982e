// Package builder generates synthetic landscapes for demos, tests and
// benchmarks: a resistance surface and a habitat patch raster drawn from
// OpenSimplex noise.
//
// The package offers the following key components:
//
//   - Generate(opts ...BuilderOption) (*Landscape, error)
//     – habitat: cells whose habitat noise is ≥ PatchLevel.
//     – labels:  connected habitat blobs numbered 1, 2, … in row-major
//     discovery order; background carries gridgraph.DefaultNoData.
//     – cost:    MinCost on habitat, otherwise MinCost + (MaxCost−MinCost)·n
//     for an independent noise field n ∈ [0,1].
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSize, WithSeed, WithNoiseScale, WithCostRange, WithPatchLevel,
//     WithCellSize, WithConnectivity, WithMinPatchCells.
//   - (*Landscape).Grid: hands the rasters to gridgraph.NewGrid.
//
// Guarantees:
//
//   - Determinism: equal options (seed included) give identical rasters.
//   - Validation happens in Landscape, so values coming from a command line
//     surface as errors wrapping core.ErrInvalidInput rather than panics.
//     Only nil or structurally meaningless arguments panic in options.
//
// Complexity: O(W·H) time and memory.
package builder
