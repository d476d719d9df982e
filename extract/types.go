package extract

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/costdist"
	"github.com/johnpfay/PatchConnect/gridgraph"
)

var (
	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = fmt.Errorf("extract: worker count must be ≥ 1: %w", core.ErrInvalidInput)

	// ErrBadMaxCost indicates a negative or NaN cost cutoff.
	ErrBadMaxCost = fmt.Errorf("extract: max cost must be non-negative: %w", core.ErrInvalidInput)
)

// Candidate is an edge found from one source field together with the
// representative target cell its least-cost path ends in.
type Candidate struct {
	Edge core.Edge
	Cell int // row-major index of the first minimal cell of Edge.To
}

// Path is the least-cost path geometry of one edge in grid coordinates,
// ordered from a cell of patch From to a cell of patch To.
type Path struct {
	From, To int
	Cost     float64
	Cells    []gridgraph.Cell
}

// PatchField pairs a solved field with the patch it was solved from.
type PatchField struct {
	PatchID int
	Field   *costdist.Field
}

// Progress reports that patch Patch finished; Done of Total are complete.
type Progress struct {
	Patch int
	Done  int
	Total int
}

// Result is the output of Run.
//
// Patches – every discovered patch, ascending id (isolated ones included).
// Edges   – canonical edges sorted by (From, To).
// Paths   – one per edge in the same order, only WithPaths.
// Fields  – one per patch in patch order, only WithRetainFields.
type Result struct {
	Patches []gridgraph.Patch
	Edges   []core.Edge
	Paths   []Path
	Fields  []PatchField
}

// Graph builds the patch graph: every patch is a node, isolated or not.
func (r *Result) Graph() (*core.Graph, error) {
	ids := make([]int, len(r.Patches))
	for i, p := range r.Patches {
		ids[i] = p.ID
	}

	return core.Build(ids, r.Edges)
}

// Areas maps each patch id to its area in squared map units.
func (r *Result) Areas() map[int]float64 {
	out := make(map[int]float64, len(r.Patches))
	for _, p := range r.Patches {
		out[p.ID] = p.Area
	}

	return out
}

// Options configures Run.
//
// Workers      – concurrent solves (default runtime.NumCPU()).
// Paths        – reconstruct LCP geometry for every edge.
// MaxCost      – solver cutoff (default +Inf).
// RetainFields – keep every field in the Result.
// Progress     – optional callback, never invoked concurrently.
// Logger       – debug logging per patch (default discards).
type Options struct {
	Workers      int
	Paths        bool
	MaxCost      float64
	RetainFields bool
	Progress     func(Progress)
	Logger       *slog.Logger

	err error
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns Options using every CPU, no paths, no cutoff.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		MaxCost: math.Inf(1),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers bounds the number of concurrent solves.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithPaths enables least-cost path reconstruction.
func WithPaths() Option {
	return func(o *Options) { o.Paths = true }
}

// WithMaxCost passes a cumulative-cost cutoff to every solve; pairs farther
// apart than c produce no edge.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxCost, c)
			return
		}
		o.MaxCost = c
	}
}

// WithRetainFields keeps every solved field in Result.Fields.
func WithRetainFields() Option {
	return func(o *Options) { o.RetainFields = true }
}

// WithProgress registers a progress callback.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
