package connectivity

import (
	"fmt"
	"math"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/dijkstra"
)

// Eccentricity returns the largest finite shortest-path distance from id to
// any node of its component. An isolated node has eccentricity 0.
// Complexity: O((V+E) log V).
func Eccentricity(v core.View, id int) (float64, error) {
	res, err := dijkstra.Dijkstra(v, dijkstra.Source(id))
	if err != nil {
		return 0, err
	}

	ecc := 0.0
	for _, u := range res.Order {
		ecc = math.Max(ecc, res.Dist[u])
	}

	return ecc, nil
}

// Diameter returns the largest eccentricity over the nodes ids, which must
// form (part of) a single component. An empty or single-node set has
// diameter 0. If some node of ids is unreachable from the first one the
// result is ErrDisconnected.
// Complexity: O(k·(V+E) log V) for k = len(ids).
func Diameter(v core.View, ids []int) (float64, error) {
	if len(ids) < 2 {
		return 0, nil
	}

	diam := 0.0
	for i, id := range ids {
		res, err := dijkstra.Dijkstra(v, dijkstra.Source(id))
		if err != nil {
			return 0, err
		}
		if i == 0 {
			for _, other := range ids[1:] {
				d, err := res.DistTo(other)
				if err != nil {
					return 0, err
				}
				if math.IsInf(d, 1) {
					return 0, fmt.Errorf("%w: %d and %d", ErrDisconnected, id, other)
				}
			}
		}
		for _, u := range res.Order {
			diam = math.Max(diam, res.Dist[u])
		}
	}

	return diam, nil
}

// LargestComponent returns the patch ids of the component with the most
// nodes. Ties go to the component holding the smallest id. An empty view
// yields nil.
// Complexity: O(V + E·α(V)).
func LargestComponent(v core.View) []int {
	var best []int
	for _, comp := range v.Components() {
		if len(comp) > len(best) {
			best = comp
		}
	}

	return best
}

// LargestDiameter is the diameter of LargestComponent(v).
func LargestDiameter(v core.View) (float64, error) {
	return Diameter(v, LargestComponent(v))
}

// DegreeCentrality maps every visible patch to deg/(n-1) within its component.
// Complexity: O(V + E).
func DegreeCentrality(v core.View) map[int]float64 {
	out := make(map[int]float64, v.Order())
	for _, comp := range v.ComponentSlots() {
		for _, s := range comp {
			out[v.Graph().ID(s)] = degreeCentrality(v, s, len(comp))
		}
	}

	return out
}

// Closeness maps every visible patch to its weighted closeness centrality
// within its component.
// Complexity: O(V·(V+E) log V).
func Closeness(v core.View) (map[int]float64, error) {
	st, err := runSources(v, false)
	if err != nil {
		return nil, err
	}
	out := make(map[int]float64, v.Order())
	for _, s := range v.Slots() {
		out[v.Graph().ID(s)] = st.closeness(s)
	}

	return out, nil
}

// Betweenness maps every visible patch to its normalized weighted
// betweenness centrality within its component.
// Complexity: O(V·(V+E) log V).
func Betweenness(v core.View) (map[int]float64, error) {
	st, err := runSources(v, true)
	if err != nil {
		return nil, err
	}
	out := make(map[int]float64, v.Order())
	for _, s := range v.Slots() {
		out[v.Graph().ID(s)] = st.betweenness(s)
	}

	return out, nil
}

// Analyze computes every per-node measure in one pass and returns one row
// per visible node, ascending id. Isolated nodes are included with zeros.
// Complexity: O(V·(V+E) log V).
func Analyze(v core.View) ([]NodeMetrics, error) {
	st, err := runSources(v, true)
	if err != nil {
		return nil, err
	}

	g := v.Graph()
	out := make([]NodeMetrics, 0, v.Order())
	for _, s := range v.Slots() {
		out = append(out, NodeMetrics{
			ID:               g.ID(s),
			Component:        st.comp[s],
			ComponentSize:    st.size[s],
			Degree:           v.Degree(s),
			DegreeCentrality: degreeCentrality(v, s, st.size[s]),
			Closeness:        st.closeness(s),
			Betweenness:      st.betweenness(s),
			Eccentricity:     st.ecc[s],
		})
	}

	return out, nil
}
