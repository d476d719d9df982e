package connectivity

import (
	"math"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/dijkstra"
)

// sourceStats gathers, per slot, everything one Dijkstra run from that slot
// tells us. Arrays are indexed by graph slot; hidden slots stay zero.
type sourceStats struct {
	comp    []int     // component index
	size    []int     // component size
	ecc     []float64 // max finite distance
	distSum []float64 // Σ distances to the rest of the component
	between []float64 // raw Brandes sum over ordered pairs
}

// runSources runs one path-counting Dijkstra from every visible slot of v.
//
// Steps:
//  1. Partition v into components.
//  2. For each non-isolated slot s: Dijkstra from s with path counts.
//  3. Eccentricity and distance sum come straight from the settled slots.
//  4. Add the run's dependencies δ(v) to the betweenness of every v ≠ s.
//
// Complexity: O(V·(V+E)·log V) time, O(V+E) memory per run.
func runSources(v core.View, withBetweenness bool) (*sourceStats, error) {
	g := v.Graph()
	n := g.Order()
	st := &sourceStats{
		comp:    make([]int, n),
		size:    make([]int, n),
		ecc:     make([]float64, n),
		distSum: make([]float64, n),
		between: make([]float64, n),
	}

	// 1) Components
	for k, comp := range v.ComponentSlots() {
		for _, s := range comp {
			st.comp[s] = k
			st.size[s] = len(comp)
		}
	}

	opts := []dijkstra.Option{}
	if withBetweenness {
		opts = append(opts, dijkstra.WithPathCounts())
	}

	for _, s := range v.Slots() {
		if st.size[s] < 2 {
			continue
		}
		// 2) Single-source run
		res, err := dijkstra.Dijkstra(v, append(opts, dijkstra.Source(g.ID(s)))...)
		if err != nil {
			return nil, err
		}

		// 3) Distances
		for _, u := range res.Order {
			d := res.Dist[u]
			st.distSum[s] += d
			st.ecc[s] = math.Max(st.ecc[s], d)
		}
		if !withBetweenness {
			continue
		}

		// 4) Dependency accumulation
		dep := res.Dependencies()
		for _, u := range res.Order {
			if u != s {
				st.between[u] += dep[u]
			}
		}
	}

	return st, nil
}

// degreeCentrality is deg/(n-1) inside the component, 0 when isolated.
func degreeCentrality(v core.View, s, size int) float64 {
	if size < 2 {
		return 0
	}

	return float64(v.Degree(s)) / float64(size-1)
}

// closeness is (n-1)/Σd inside the component, 0 when the sum is 0.
func (st *sourceStats) closeness(s int) float64 {
	if st.distSum[s] == 0 {
		return 0
	}

	return float64(st.size[s]-1) / st.distSum[s]
}

// betweenness scales the ordered-pair sum by 1/((n-1)(n-2)).
func (st *sourceStats) betweenness(s int) float64 {
	n := st.size[s]
	if n <= 2 {
		return 0
	}

	return st.between[s] / float64((n-1)*(n-2))
}
