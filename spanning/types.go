package spanning

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/core"
)

// ErrNoRoot indicates that no start patch was specified for Prim.
var ErrNoRoot = fmt.Errorf("spanning: Prim requires a root patch: %w", core.ErrInvalidInput)

// ErrUnknownMethod indicates an unsupported Method value.
var ErrUnknownMethod = fmt.Errorf("spanning: unknown method: %w", core.ErrInvalidInput)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures which algorithm Compute runs and, for Prim, where it
// starts.
//
//	Method  – MethodKruskal (default) or MethodPrim.
//	Root    – start patch for Prim; only honored when HasRoot.
type Options struct {
	Method  string
	Root    int
	HasRoot bool
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets the start patch for Prim. Kruskal ignores it.
func WithRoot(id int) Option {
	return func(o *Options) {
		o.Root = id
		o.HasRoot = true
	}
}

// DefaultOptions returns Options for Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the configured algorithm over v.
func Compute(v core.View, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		edges, total := Kruskal(v)
		return edges, total, nil
	case MethodPrim:
		if !cfg.HasRoot {
			return nil, 0, ErrNoRoot
		}
		return Prim(v, cfg.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
