package connectivity

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/johnpfay/PatchConnect/core"
)

// Attributes builds the patch connectivity attribute table from the links of
// g no longer than maxDistance.
//
// Rows cover every id in areas and every node of g, ascending. A patch with
// no link within maxDistance is isolated and gets zeros. Missing areas count
// as 0. Centralities are computed on the thresholded view, per component,
// and reported as percentages.
//
// Complexity: O(V·(V+E) log V), dominated by betweenness.
func Attributes(g *core.Graph, areas map[int]float64, maxDistance float64) ([]PatchAttributes, error) {
	if !(maxDistance > 0) || math.IsInf(maxDistance, 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadMaxDistance, maxDistance)
	}
	k := math.Log(0.1) / maxDistance

	v := g.View().WithinThreshold(maxDistance)
	st, err := runSources(v, true)
	if err != nil {
		return nil, err
	}

	ids := slices.Collect(maps.Keys(areas))
	ids = append(ids, g.Nodes()...)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	out := make([]PatchAttributes, 0, len(ids))
	for _, id := range ids {
		row := PatchAttributes{ID: id, Area: areas[id]}
		s, err := v.Slot(id)
		if err != nil || v.Degree(s) == 0 {
			out = append(out, row)
			continue
		}

		for a := range v.Neighbors(s) {
			to := g.ID(a.To)
			row.Degree++
			row.ConnectedArea += areas[to]
			row.IDWArea += math.Exp(k*a.Weight) * areas[to]
		}
		row.Betweenness = st.betweenness(s) * 100
		row.Closeness = st.closeness(s) * 100
		row.DegreeCentrality = degreeCentrality(v, s, st.size[s]) * 100
		out = append(out, row)
	}

	return out, nil
}
