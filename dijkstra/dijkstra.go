// Package dijkstra implements Dijkstra's shortest-path algorithm on patch graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes of a core.View with non-negative edge weights.
// It processes nodes in order of increasing distance using a min-heap priority queue,
// relaxing arcs and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once: V extractions from the heap.
//   - Each arc relaxation may push a new entry into the heap: up to 2E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and σ arrays.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - State lives in slot-indexed slices, not maps.
//   - The heap is ordered by (distance, slot), so settle order is reproducible.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/johnpfay/PatchConnect/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to every node of the view v.
//
// Preconditions and validation (in order):
//  1. A source must be given (ErrNoSource).
//  2. The source must be visible in v (core.ErrNodeNotFound, core.ErrNodeExcluded).
//  3. With path counts, no zero-cost group may exceed MaxTiePaths simple
//     paths (ErrTooManyTies).
//
// Options customization:
//
//   - WithReturnPath(): keep predecessors (Result.Prev, Result.PathTo).
//   - WithMaxDistance(x): nodes with distance > x are not explored (x ≥ 0).
//   - WithPathCounts(): shortest-path counts and predecessor lists for Brandes,
//     computed after the last slot settles (see countPaths).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(v core.View, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.HasSource {
		return nil, ErrNoSource
	}

	// 2) Resolve the source slot through the view
	src, err := v.Slot(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: source %d: %w", cfg.Source, err)
	}

	// 3) Prepare data structures for the algorithm.
	n := v.Graph().Order()
	r := &runner{
		view:    v,
		options: cfg,
		res: &Result{
			Source: src,
			Dist:   make([]float64, n),
			view:   v,
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.res.Prev = make([]int, n)
	}
	if cfg.PathCounts {
		r.res.Sigma = make([]float64, n)
		r.res.Preds = make([][]int, n)
	}

	// 4) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Path counts need final distances.
	if cfg.PathCounts {
		if err := r.countPaths(); err != nil {
			return nil, err
		}
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view    core.View // read-only input
	options Options
	res     *Result
	visited []bool // finalized slots
	pq      nodePQ
}

// init sets dist = +Inf everywhere, prev = -1, and pushes the source at 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := range r.res.Dist {
		r.res.Dist[i] = inf
	}
	if r.res.Prev != nil {
		for i := range r.res.Prev {
			r.res.Prev[i] = -1
		}
	}

	src := r.res.Source
	r.res.Dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{slot: src, dist: 0})
}

// process is the core loop: pop the closest unsettled slot, finalize it and
// relax its arcs, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.slot

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Beyond MaxDistance nothing else can be settled.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u.
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)

		// 5) Relax all arcs out of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc out of u and attempts to improve its neighbor.
// Assumes dist[u] is final.
func (r *runner) relax(u int) error {
	du := r.res.Dist[u]
	for a := range r.view.Neighbors(u) {
		w := a.Weight
		if w < 0 {
			return fmt.Errorf("%w: arc %d→%d weight=%g", ErrNegativeWeight, u, a.To, w)
		}
		if r.visited[a.To] {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}

		if newDist < r.res.Dist[a.To] {
			r.res.Dist[a.To] = newDist
			if r.res.Prev != nil {
				r.res.Prev[a.To] = u
			}
			heap.Push(&r.pq, nodeItem{slot: a.To, dist: newDist})
		}
	}

	return nil
}

// nodeItem represents a slot and its tentative distance from the source.
type nodeItem struct {
	slot int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, slot).
// We use the “lazy-decrease-key” approach: when we find a shorter distance to
// a slot we push a new item; the outdated one is ignored when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by slot.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].slot < pq[j].slot
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
