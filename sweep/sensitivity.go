package sweep

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/core"
)

// ErrNestedExclusion indicates Sensitivity was given a view that already hides a node.
var ErrNestedExclusion = fmt.Errorf("sweep: view already excludes a node: %w", core.ErrInvalidInput)

// NodeSensitivity reports what removing one patch does to the graph.
//
// Cut           – removal splits some component of the remaining patches.
// DiameterDelta – baseline largest-component diameter minus the diameter
// after removal (positive when the network shrinks).
type NodeSensitivity struct {
	ID            int
	Cut           bool
	DiameterDelta float64
}

// Sensitivity tests every visible node of v, ascending id.
//
// The baseline is the component count c0 and largest-component diameter d0
// of v. For node x the view v.Without(x) is analyzed: x is a cut node when
// the remaining nodes form more components than they did before, i.e. more
// than c0, or more than c0-1 when x was isolated (its own singleton component
// disappears with it).
//
// v must not already hide a node (ErrNestedExclusion).
//
// Complexity: O(V · (V + E + k·(V+E) log V)).
func Sensitivity(v core.View) ([]NodeSensitivity, error) {
	if id, ok := v.Excluded(); ok {
		return nil, fmt.Errorf("%w: patch %d", ErrNestedExclusion, id)
	}
	c0 := v.ComponentCount()
	d0, err := connectivity.LargestDiameter(v)
	if err != nil {
		return nil, err
	}

	out := make([]NodeSensitivity, 0, v.Order())
	for _, s := range v.Slots() {
		id := v.Graph().ID(s)
		w, err := v.Without(id)
		if err != nil {
			return nil, err
		}

		baseline := c0
		if v.Degree(s) == 0 {
			baseline--
		}
		dr, err := connectivity.LargestDiameter(w)
		if err != nil {
			return nil, fmt.Errorf("sweep: without %d: %w", id, err)
		}

		out = append(out, NodeSensitivity{
			ID:            id,
			Cut:           w.ComponentCount() > baseline,
			DiameterDelta: d0 - dr,
		})
	}

	return out, nil
}
