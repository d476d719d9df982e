package costdist

import (
	"errors"
	"fmt"
	"math"

	"github.com/johnpfay/PatchConnect/core"
)

// Sentinel errors returned by Solve and Field methods.
var (
	// ErrNoSources indicates an empty source-cell set.
	ErrNoSources = fmt.Errorf("costdist: at least one source cell is required: %w", core.ErrInvalidInput)

	// ErrSourceOutOfRange indicates a source index outside the grid.
	ErrSourceOutOfRange = fmt.Errorf("costdist: source cell out of range: %w", core.ErrInvalidInput)

	// ErrBadMaxCost indicates a negative or NaN cumulative-cost cutoff.
	ErrBadMaxCost = fmt.Errorf("costdist: max cost must be non-negative: %w", core.ErrInvalidInput)

	// ErrNegativeWeight indicates a negative step weight reached relaxation.
	ErrNegativeWeight = fmt.Errorf("costdist: negative step weight: %w", core.ErrContradictoryWeights)

	// ErrNoTraceback indicates the field was solved without WithTraceback.
	ErrNoTraceback = errors.New("costdist: field has no predecessor data")

	// ErrUnreachable indicates the requested cell was not reached from any source.
	ErrUnreachable = errors.New("costdist: cell not reached from any source")

	// ErrCellOutOfRange indicates a traceback target outside the field.
	ErrCellOutOfRange = errors.New("costdist: cell out of range")
)

// Options configures Solve.
//
// Traceback – keep predecessors for path reconstruction.
// MaxCost   – cumulative-cost cutoff (default +Inf, no cutoff).
// FreePatch – patch id whose cells cost 0; only honored when HasFreePatch.
type Options struct {
	Traceback    bool
	MaxCost      float64
	FreePatch    int
	HasFreePatch bool

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with no traceback, no cutoff and no free patch.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

// WithTraceback enables the predecessor array in the resulting Field.
func WithTraceback() Option {
	return func(o *Options) {
		o.Traceback = true
	}
}

// WithMaxCost caps exploration at cumulative cost c. Cells whose least cost
// exceeds c are reported as +Inf. A negative or NaN c is surfaced by Solve as
// ErrBadMaxCost.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxCost, c)
			return
		}
		o.MaxCost = c
	}
}

// WithFreePatch makes every cell labelled id cost zero to traverse.
func WithFreePatch(id int) Option {
	return func(o *Options) {
		o.FreePatch = id
		o.HasFreePatch = true
	}
}
