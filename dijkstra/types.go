package dijkstra

import (
	"fmt"
	"math"

	"github.com/johnpfay/PatchConnect/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source node was configured.
	ErrNoSource = fmt.Errorf("dijkstra: source node not set: %w", core.ErrInvalidInput)

	// ErrNegativeWeight indicates that a negative arc weight was relaxed.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", core.ErrContradictoryWeights)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = fmt.Errorf("dijkstra: MaxDistance must be non-negative: %w", core.ErrInvalidInput)
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting patch id; only honored when HasSource.
// ReturnPath  – if true, Result.Prev is filled; otherwise it is nil.
// MaxDistance – optional cap on distances to explore. Default +Inf (no cap).
// PathCounts  – if true, Result.Sigma and Result.Preds are filled.
type Options struct {
	Source      int
	HasSource   bool
	ReturnPath  bool
	MaxDistance float64
	PathCounts  bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting patch id.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithReturnPath enables the predecessor array in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithPathCounts enables shortest-path counting. Two paths tie only when
// their float64 lengths are exactly equal; shortest paths are simple, so
// zero-cost arcs never loop.
func WithPathCounts() Option {
	return func(o *Options) {
		o.PathCounts = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no source, no predecessors, no cap, no path counts.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Result holds the per-slot output of one Dijkstra run. All arrays are
// indexed by graph slot (see core.Graph.Slot) and sized to the full graph;
// slots hidden by the view are simply never reached.
//
// Dist  – shortest distance from Source; +Inf when unreached.
// Prev  – one predecessor per slot (-1 for the source and unreached slots); nil unless ReturnPath.
// Sigma – number of simple shortest paths from Source; nil unless PathCounts.
// Preds – every settled neighbor u with Dist[u]+w(u,v) == Dist[v]; nil unless PathCounts.
// Order – reached slots in settle order (non-decreasing distance).
type Result struct {
	Source int
	Dist   []float64
	Prev   []int
	Sigma  []float64
	Preds  [][]int
	Order  []int

	view    core.View
	groups  []tieGroup // settle order, PathCounts only
	sigmaIn []float64  // paths entering a slot over a positive arc
}

// Reached reports whether slot s has a finite distance.
func (r *Result) Reached(s int) bool { return !math.IsInf(r.Dist[s], 1) }

// DistTo returns the shortest distance to patch id.
func (r *Result) DistTo(id int) (float64, error) {
	s, err := r.view.Slot(id)
	if err != nil {
		return 0, err
	}

	return r.Dist[s], nil
}

// PathTo returns the patch ids on the recorded shortest path from Source to
// id, both ends included. It needs WithReturnPath and returns nil for an
// unreached id.
func (r *Result) PathTo(id int) ([]int, error) {
	s, err := r.view.Slot(id)
	if err != nil {
		return nil, err
	}
	if r.Prev == nil || !r.Reached(s) {
		return nil, nil
	}

	var rev []int
	for c := s; c >= 0; c = r.Prev[c] {
		rev = append(rev, r.view.Graph().ID(c))
	}
	out := make([]int, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out, nil
}
