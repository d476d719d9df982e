package builder

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/johnpfay/PatchConnect/gridgraph"
)

// Landscape is a generated pair of rasters, row-major as [row][col].
type Landscape struct {
	Width, Height int
	CellSize      float64
	Conn          gridgraph.Connectivity
	Cost          [][]float64
	Labels        [][]int
	NumPatches    int
}

// Generate builds a synthetic landscape.
//
// Steps:
//  1. Resolve and validate options.
//  2. Sample habitat noise; cells at or above PatchLevel are habitat.
//  3. Split habitat into blobs by connectivity; drop blobs below
//     MinPatchCells; number the rest in row-major discovery order.
//  4. Sample cost noise for the matrix; habitat costs MinCost.
//
// Complexity: O(W·H).
func Generate(opts ...BuilderOption) (*Landscape, error) {
	// 1. Options
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2. Habitat mask, one label for every habitat cell
	habitat := opensimplex.New(cfg.seed)
	mask := make([][]int, cfg.height)
	for y := range mask {
		mask[y] = make([]int, cfg.width)
		for x := range mask[y] {
			if sample(habitat, x, y, cfg.noiseScale) >= cfg.patchLevel {
				mask[y][x] = 1
			} else {
				mask[y][x] = gridgraph.DefaultNoData
			}
		}
	}

	// 3. Blobs: Fragments orders them by first cell in row-major order.
	gopts := gridgraph.DefaultGridOptions()
	gopts.Conn = cfg.conn
	scratch, err := gridgraph.Uniform(mask, gopts)
	if err != nil {
		return nil, fmt.Errorf("%s: habitat mask: %w", MethodLandscape, err)
	}
	labels := make([][]int, cfg.height)
	for y := range labels {
		labels[y] = make([]int, cfg.width)
		for x := range labels[y] {
			labels[y][x] = gridgraph.DefaultNoData
		}
	}
	next := 0
	for _, blob := range scratch.Fragments(1) {
		if len(blob) < cfg.minPatchCells {
			continue
		}
		next++
		for _, i := range blob {
			x, y := scratch.Coordinate(i)
			labels[y][x] = next
		}
	}

	// 4. Resistance from an independent field
	resistance := opensimplex.New(cfg.seed + 1)
	cost := make([][]float64, cfg.height)
	span := cfg.maxCost - cfg.minCost
	for y := range cost {
		cost[y] = make([]float64, cfg.width)
		for x := range cost[y] {
			if labels[y][x] > 0 {
				cost[y][x] = cfg.minCost
				continue
			}
			cost[y][x] = cfg.minCost + span*sample(resistance, x, y, cfg.noiseScale)
		}
	}

	return &Landscape{
		Width:      cfg.width,
		Height:     cfg.height,
		CellSize:   cfg.cellSize,
		Conn:       cfg.conn,
		Cost:       cost,
		Labels:     labels,
		NumPatches: next,
	}, nil
}

// Grid builds a gridgraph.Grid from the landscape with its cell size and
// connectivity.
func (l *Landscape) Grid() (*gridgraph.Grid, error) {
	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = l.CellSize
	opts.Conn = l.Conn

	return gridgraph.NewGrid(l.Cost, l.Labels, opts)
}

// sample maps OpenSimplex output from [-1,1] to [0,1], clamped.
func sample(n opensimplex.Noise, x, y int, scale float64) float64 {
	v := (n.Eval2(float64(x)*scale, float64(y)*scale) + 1) / 2
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
