package spanning

import (
	"sort"

	"github.com/johnpfay/PatchConnect/core"
)

// Kruskal computes the minimum spanning forest of the view.
//
// Steps:
//  1. Collect visible edges (sorted by (From, To)).
//  2. Stable-sort them by ascending cost.
//  3. Walk the sorted edges; keep each one that joins two different sets.
//  4. Stop early once |V|-1 edges are kept.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(v core.View) ([]core.Edge, float64) {
	g := v.Graph()

	// 1-2. Sorted candidate edges
	edges := v.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Cost < edges[j].Cost
	})

	// 3. Union-find over slots
	ds := core.NewDisjointSet(g.Order())
	limit := v.Order() - 1
	var (
		forest []core.Edge
		total  float64
	)
	for _, e := range edges {
		// Both endpoints are visible, so Slot cannot fail here.
		u, _ := g.Slot(e.From)
		w, _ := g.Slot(e.To)
		if !ds.Union(u, w) {
			continue
		}
		forest = append(forest, e)
		total += e.Cost
		// 4. A spanning tree of a connected view is complete.
		if len(forest) == limit {
			break
		}
	}

	return forest, total
}
