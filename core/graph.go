package core

import (
	"fmt"
	"math"
	"sort"
)

// Canonical returns e with its endpoints ordered so that From < To.
// Complexity: O(1).
func (e Edge) Canonical() Edge {
	if e.From > e.To {
		e.From, e.To = e.To, e.From
	}

	return e
}

// Build constructs an immutable Graph from a set of patch ids and an edge list.
//
// Behavior:
//  1. Every edge is canonicalized (From < To).
//  2. Self-loops fail with ErrSelfLoop; negative, NaN or infinite costs fail
//     with ErrBadWeight. Nothing is built on failure.
//  3. Duplicate unordered pairs collapse to a single edge keeping the minimum cost.
//  4. The node set is nodes ∪ {edge endpoints}; ids are assigned dense slots in
//     ascending order.
//  5. Adjacency rows are sorted by neighbor slot, so iteration is deterministic.
//
// Complexity: O(V log V + E log E) time, O(V + E) memory.
func Build(nodes []int, edges []Edge) (*Graph, error) {
	// 1) Validate and canonicalize edges.
	canon := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: patch %d", ErrSelfLoop, e.From)
		}
		if e.Cost < 0 || math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0) {
			return nil, fmt.Errorf("%w: edge %d-%d cost=%v", ErrBadWeight, e.From, e.To, e.Cost)
		}
		canon = append(canon, e.Canonical())
	}

	// 2) Sort by (From, To, Cost) so the first of each run is the minimum.
	sort.Slice(canon, func(i, j int) bool {
		if canon[i].From != canon[j].From {
			return canon[i].From < canon[j].From
		}
		if canon[i].To != canon[j].To {
			return canon[i].To < canon[j].To
		}
		return canon[i].Cost < canon[j].Cost
	})
	dedup := canon[:0]
	for _, e := range canon {
		if k := len(dedup); k > 0 && e.From == dedup[k-1].From && e.To == dedup[k-1].To {
			continue
		}
		dedup = append(dedup, e)
	}

	// 3) Collect the node set.
	seen := make(map[int]struct{}, len(nodes)+2*len(dedup))
	ids := make([]int, 0, len(nodes))
	add := func(id int) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range nodes {
		add(id)
	}
	for _, e := range dedup {
		add(e.From)
		add(e.To)
	}
	sort.Ints(ids)

	g := &Graph{
		ids:   ids,
		slots: make(map[int]int, len(ids)),
		edges: append([]Edge(nil), dedup...),
	}
	for slot, id := range ids {
		g.slots[id] = slot
	}

	// 4) Degree count, then prefix sums into CSR offsets.
	n := len(ids)
	g.offsets = make([]int, n+1)
	for _, e := range g.edges {
		g.offsets[g.slots[e.From]+1]++
		g.offsets[g.slots[e.To]+1]++
	}
	for i := 1; i <= n; i++ {
		g.offsets[i] += g.offsets[i-1]
	}

	// 5) Fill arcs using a moving cursor per row, then sort each row.
	g.arcs = make([]Arc, g.offsets[n])
	cursor := append([]int(nil), g.offsets[:n]...)
	for _, e := range g.edges {
		u, v := g.slots[e.From], g.slots[e.To]
		g.arcs[cursor[u]] = Arc{To: v, Weight: e.Cost}
		cursor[u]++
		g.arcs[cursor[v]] = Arc{To: u, Weight: e.Cost}
		cursor[v]++
	}
	for u := 0; u < n; u++ {
		row := g.arcs[g.offsets[u]:g.offsets[u+1]]
		sort.Slice(row, func(i, j int) bool { return row[i].To < row[j].To })
	}

	return g, nil
}

// Order returns the number of nodes |V|.
func (g *Graph) Order() int { return len(g.ids) }

// Size returns the number of edges |E|.
func (g *Graph) Size() int { return len(g.edges) }

// Nodes returns a copy of all patch ids in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []int {
	return append([]int(nil), g.ids...)
}

// Edges returns a copy of the canonical edge list sorted by (From, To).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Slot returns the dense slot of patch id, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Slot(id int) (int, error) {
	s, ok := g.slots[id]
	if !ok {
		return -1, fmt.Errorf("%w: patch %d", ErrNodeNotFound, id)
	}

	return s, nil
}

// ID returns the patch id stored at slot. It panics if slot is out of range,
// like a slice index would.
func (g *Graph) ID(slot int) int { return g.ids[slot] }

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.slots[id]
	return ok
}

// Degree returns the number of edges incident to id over the full graph.
func (g *Graph) Degree(id int) (int, error) {
	s, err := g.Slot(id)
	if err != nil {
		return 0, err
	}

	return g.offsets[s+1] - g.offsets[s], nil
}

// row returns the raw adjacency row of slot u.
func (g *Graph) row(u int) []Arc {
	return g.arcs[g.offsets[u]:g.offsets[u+1]]
}
