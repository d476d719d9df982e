package core

// DisjointSet is a union-find structure over dense slots 0..n-1 with path
// compression and union by rank.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet returns n singleton sets.
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the representative of x's set.
// Iterative with path halving to avoid deep recursion.
func (ds *DisjointSet) Find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were disjoint.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}

	return true
}

// ComponentSlots partitions the visible slots into connected components.
// Each component lists its slots in ascending order; components are ordered
// by their smallest slot (equivalently, their smallest patch id).
//
// Complexity: O(V + E·α(V)) time, O(V) memory.
func (v View) ComponentSlots() [][]int {
	n := len(v.g.ids)
	ds := NewDisjointSet(n)
	for u := 0; u < n; u++ {
		for a := range v.Neighbors(u) {
			if a.To > u {
				ds.Union(u, a.To)
			}
		}
	}

	// Slots are scanned in ascending order, so the first time a root is seen
	// fixes the component's position.
	index := make(map[int]int)
	var comps [][]int
	for u := 0; u < n; u++ {
		if u == v.excluded {
			continue
		}
		r := ds.Find(u)
		k, ok := index[r]
		if !ok {
			k = len(comps)
			index[r] = k
			comps = append(comps, nil)
		}
		comps[k] = append(comps[k], u)
	}

	return comps
}

// Components partitions the visible nodes into connected components of patch
// ids. Isolated nodes form singleton components and are never omitted.
// Complexity: O(V + E·α(V)).
func (v View) Components() [][]int {
	slots := v.ComponentSlots()
	out := make([][]int, len(slots))
	for i, comp := range slots {
		ids := make([]int, len(comp))
		for j, s := range comp {
			ids[j] = v.g.ids[s]
		}
		out[i] = ids
	}

	return out
}

// ComponentCount returns the number of connected components of the view.
func (v View) ComponentCount() int {
	return len(v.ComponentSlots())
}
