// Package sweep studies how patch-graph connectivity responds to change:
// a threshold sequence (components and largest-component diameter as the
// maximum link cost grows) and per-node removal sensitivity.
//
// Both analyses work on views of one immutable core.Graph. Nothing is ever
// removed and restored, so each threshold and each node test is independent
// of the order in which they run.
package sweep

import (
	"fmt"
	"math"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/core"
)

// ErrBadRange indicates an unusable threshold range or step.
var ErrBadRange = fmt.Errorf("sweep: threshold range must satisfy min ≤ max and step > 0: %w", core.ErrInvalidInput)

// MaxThresholds bounds the number of snapshots one call may evaluate.
const MaxThresholds = 1 << 20

// Snapshot summarizes the graph restricted to links with cost ≤ Threshold.
type Snapshot struct {
	Threshold  float64
	Components int
	Diameter   float64 // diameter of the largest component
}

// Options configures Thresholds.
//
// EarlyStop – stop after the first snapshot with a single component.
type Options struct {
	EarlyStop bool
}

// Option represents a functional option for configuring Thresholds.
type Option func(*Options)

// WithEarlyStop ends the sequence once the graph is fully connected. Edges
// only accumulate as the threshold grows, so later snapshots could only
// repeat the component count.
func WithEarlyStop() Option {
	return func(o *Options) { o.EarlyStop = true }
}

// Thresholds evaluates the snapshots minT, minT+step, … up to and including
// maxT, in increasing order. Thresholds are computed as minT + i·step to
// avoid accumulating rounding error; a final value within 1e-9·step of maxT
// counts as maxT. A range needing more than MaxThresholds snapshots fails
// with ErrBadRange.
//
// Complexity: O(T · (V + E + k·(V+E) log V)) for T thresholds and a largest
// component of k nodes.
func Thresholds(g *core.Graph, minT, maxT, step float64, opts ...Option) ([]Snapshot, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(step > 0) || math.IsInf(step, 0) || math.IsNaN(minT) || math.IsNaN(maxT) ||
		math.IsInf(minT, 0) || math.IsInf(maxT, 0) || minT > maxT {
		return nil, fmt.Errorf("%w: min=%v max=%v step=%v", ErrBadRange, minT, maxT, step)
	}

	n := math.Floor((maxT-minT)/step+1e-9) + 1
	if math.IsInf(n, 0) || math.IsNaN(n) || n > MaxThresholds {
		return nil, fmt.Errorf("%w: %v thresholds exceed the limit of %d", ErrBadRange, n, MaxThresholds)
	}
	count := int(n)
	out := make([]Snapshot, 0, min(count, 1024))
	base := g.View()
	for i := 0; i < count; i++ {
		t := minT + float64(i)*step
		v := base.WithinThreshold(t)

		d, err := connectivity.LargestDiameter(v)
		if err != nil {
			return nil, fmt.Errorf("sweep: threshold %v: %w", t, err)
		}
		snap := Snapshot{Threshold: t, Components: v.ComponentCount(), Diameter: d}
		out = append(out, snap)

		if cfg.EarlyStop && snap.Components <= 1 {
			break
		}
	}

	return out, nil
}
