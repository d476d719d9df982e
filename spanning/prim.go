package spanning

import (
	"container/heap"
	"fmt"

	"github.com/johnpfay/PatchConnect/core"
)

// Prim computes the minimum spanning tree of root's component by growing
// outwards from root with a min-heap.
//
// Steps:
//  1. Resolve root through the view.
//  2. Mark root visited and push its visible arcs.
//  3. Pop the cheapest arc; skip it if its far end is visited, otherwise
//     add the edge and push the new node's arcs.
//  4. Return when the heap is empty.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(v core.View, root int) ([]core.Edge, float64, error) {
	// 1. Root
	g := v.Graph()
	rs, err := v.Slot(root)
	if err != nil {
		return nil, 0, fmt.Errorf("spanning: root %d: %w", root, err)
	}

	// 2. Initialize
	visited := make([]bool, g.Order())
	pq := &arcPQ{}
	heap.Init(pq)
	push := func(u int) {
		for a := range v.Neighbors(u) {
			if !visited[a.To] {
				heap.Push(pq, candidate{from: u, to: a.To, cost: a.Weight})
			}
		}
	}
	visited[rs] = true
	push(rs)

	// 3. Main loop
	var (
		tree  []core.Edge
		total float64
	)
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		tree = append(tree, core.Edge{From: g.ID(c.from), To: g.ID(c.to), Cost: c.cost}.Canonical())
		total += c.cost
		push(c.to)
	}

	return tree, total, nil
}

// candidate is an arc leaving the tree, by slot.
type candidate struct {
	from, to int
	cost     float64
}

// arcPQ implements heap.Interface for a min-heap of candidates ordered by
// (cost, from, to).
type arcPQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq arcPQ) Len() int { return len(pq) }

// Less compares by cost, then by slots for deterministic ties.
func (pq arcPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Swap swaps elements at indices i and j.
func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate to the heap.
func (pq *arcPQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *arcPQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
