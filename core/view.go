// File: view.go
// Role: Non-mutating graph views (threshold filtering, single-node exclusion).
// Determinism:
//   - Neighbor iteration follows the CSR row order (ascending neighbor slot).
// Concurrency:
//   - A View is a value; it holds a pointer to an immutable Graph and may be
//     copied and used from any goroutine.

package core

import (
	"fmt"
	"iter"
	"math"
)

// noExclusion marks a View that hides no node.
const noExclusion = -1

// View is a read-only lens over a Graph restricted to edges with weight ≤ Max
// and, optionally, with one node (and its incident edges) hidden.
type View struct {
	g        *Graph
	max      float64
	excluded int // slot, or noExclusion
}

// View returns the unrestricted view of g.
// Complexity: O(1).
func (g *Graph) View() View {
	return View{g: g, max: math.Inf(1), excluded: noExclusion}
}

// Graph returns the underlying immutable graph.
func (v View) Graph() *Graph { return v.g }

// Threshold returns the inclusive weight limit of the view (+Inf if none).
func (v View) Threshold() float64 { return v.max }

// WithinThreshold narrows the view to edges whose weight is ≤ t. Thresholds
// only ever tighten: the result keeps min(current, t).
// Complexity: O(1).
func (v View) WithinThreshold(t float64) View {
	if t < v.max {
		v.max = t
	}

	return v
}

// Without hides node id and all of its incident edges. A view hides at most
// one node; a second call replaces the first. Unknown ids are reported via
// ErrNodeNotFound.
// Complexity: O(1).
func (v View) Without(id int) (View, error) {
	s, err := v.g.Slot(id)
	if err != nil {
		return v, err
	}
	v.excluded = s

	return v, nil
}

// Excluded returns the hidden patch id, if any.
func (v View) Excluded() (int, bool) {
	if v.excluded == noExclusion {
		return 0, false
	}

	return v.g.ids[v.excluded], true
}

// Contains reports whether slot is visible in the view.
func (v View) Contains(slot int) bool {
	return slot >= 0 && slot < len(v.g.ids) && slot != v.excluded
}

// Order returns the number of visible nodes.
func (v View) Order() int {
	if v.excluded == noExclusion {
		return len(v.g.ids)
	}

	return len(v.g.ids) - 1
}

// Slots returns the visible slots in ascending order.
// Complexity: O(V).
func (v View) Slots() []int {
	out := make([]int, 0, v.Order())
	for s := range v.g.ids {
		if s != v.excluded {
			out = append(out, s)
		}
	}

	return out
}

// Nodes returns the visible patch ids in ascending order.
// Complexity: O(V).
func (v View) Nodes() []int {
	out := make([]int, 0, v.Order())
	for s, id := range v.g.ids {
		if s != v.excluded {
			out = append(out, id)
		}
	}

	return out
}

// Slot resolves a patch id to a visible slot. Hidden nodes yield ErrNodeExcluded.
func (v View) Slot(id int) (int, error) {
	s, err := v.g.Slot(id)
	if err != nil {
		return -1, err
	}
	if s == v.excluded {
		return -1, fmt.Errorf("%w: patch %d", ErrNodeExcluded, id)
	}

	return s, nil
}

// allows reports whether an arc leaving a visible slot is visible.
func (v View) allows(a Arc) bool {
	return a.Weight <= v.max && a.To != v.excluded
}

// Neighbors yields the visible arcs of slot u. A hidden or out-of-range slot
// yields nothing.
// Complexity: O(deg(u)) for a full iteration.
func (v View) Neighbors(u int) iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		if !v.Contains(u) {
			return
		}
		for _, a := range v.g.row(u) {
			if !v.allows(a) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Degree returns the number of visible arcs of slot u.
func (v View) Degree(u int) int {
	d := 0
	for range v.Neighbors(u) {
		d++
	}

	return d
}

// Edges returns the visible canonical edges sorted by (From, To).
// Complexity: O(E).
func (v View) Edges() []Edge {
	out := make([]Edge, 0, len(v.g.edges))
	for _, e := range v.g.edges {
		if e.Cost > v.max {
			continue
		}
		if v.excluded != noExclusion {
			hidden := v.g.ids[v.excluded]
			if e.From == hidden || e.To == hidden {
				continue
			}
		}
		out = append(out, e)
	}

	return out
}
