package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/gridgraph"
	"github.com/johnpfay/PatchConnect/internal/gridio"
	"github.com/johnpfay/PatchConnect/report"
)

// nopCloser keeps stdout open when a command writes to "-".
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// create opens path for writing; "-" selects w. Parent directories are
// created as needed.
func create(path string, w io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{w}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	return os.Create(path)
}

// writeTo creates path, runs write and closes, keeping the first error.
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	f, err := create(path, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return write(f)
}

// gridSource names the rasters of a landscape.
type gridSource struct {
	patches  string
	cost     string
	conn     int
	cellSize float64
}

// load reads the rasters into a Grid. Without a cost raster every cell
// costs 1, so edge costs become geometric distances.
func (s gridSource) load() (*gridgraph.Grid, gridio.Header, error) {
	pr, err := gridio.ReadFile(s.patches)
	if err != nil {
		return nil, gridio.Header{}, err
	}
	labels, err := pr.Ints()
	if err != nil {
		return nil, gridio.Header{}, fmt.Errorf("%s: %w", s.patches, err)
	}

	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = pr.CellSize
	if s.cellSize > 0 {
		opts.CellSize = s.cellSize
	}
	opts.LabelNoData = int(pr.NoData)
	switch s.conn {
	case 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, gridio.Header{}, fmt.Errorf("%w: connectivity must be 4 or 8, got %d", core.ErrInvalidInput, s.conn)
	}

	hdr := pr.Header
	hdr.CellSize = opts.CellSize
	if s.cost == "" {
		g, err := gridgraph.Uniform(labels, opts)
		return g, hdr, err
	}

	cr, err := gridio.ReadFile(s.cost)
	if err != nil {
		return nil, gridio.Header{}, err
	}
	opts.CostNoData = cr.NoData
	g, err := gridgraph.NewGrid(cr.Values, labels, opts)

	return g, hdr, err
}

// readGraph loads an edge list file ("-" reads r).
func readGraph(path string, r io.Reader) (*core.Graph, error) {
	if path == "-" {
		return report.ReadGraph(r)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := report.ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// hectares maps patch ids to their areas in hectares.
func hectares(patches []gridgraph.Patch) map[int]float64 {
	out := make(map[int]float64, len(patches))
	for _, p := range patches {
		out[p.ID] = p.Hectares()
	}

	return out
}
