package costdist

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/johnpfay/PatchConnect/gridgraph"
)

// Solve computes the least cumulative cost from the nearest of the given
// source cells (row-major indices into g) to every other cell of g.
//
// Preconditions and validation (in order):
//  1. Options must parse (ErrBadMaxCost).
//  2. sources must be non-empty (ErrNoSources).
//  3. every source must lie inside the grid (ErrSourceOutOfRange).
//
// Sources are seeded at cost 0 even if they sit on a barrier; a barrier source
// simply has no passable outgoing steps. Duplicate sources are harmless.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H
//   - Space: O(N)
func Solve(g *gridgraph.Grid, sources []int, opts ...Option) (*Field, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate sources
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	n := g.Len()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, s, n)
		}
	}

	// 3) Prepare state
	r := &runner{
		g:       g,
		options: cfg,
		offsets: g.NeighborOffsets(),
		dist:    make([]float64, n),
		settled: make([]bool, n),
		pq:      make(cellPQ, 0, len(sources)),
	}
	if cfg.Traceback {
		r.prev = make([]int, n)
	}

	// 4) Seed sources and run the main loop
	r.init(sources)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Field{
		Width:  g.Width,
		Height: g.Height,
		Dist:   r.dist,
		Prev:   r.prev,
	}, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g       *gridgraph.Grid
	options Options
	offsets []gridgraph.Offset
	dist    []float64 // best-known cumulative cost per cell
	prev    []int     // predecessor per cell; nil unless Traceback
	settled []bool    // finalized cells
	pq      cellPQ
}

// init sets every distance to +Inf, then pushes every source at distance 0.
func (r *runner) init(sources []int) {
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
	}
	if r.prev != nil {
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	heap.Init(&r.pq)
	for _, s := range sources {
		if r.dist[s] == 0 {
			continue
		}
		r.dist[s] = 0
		if r.prev != nil {
			r.prev[s] = s
		}
		heap.Push(&r.pq, cellItem{cell: s, dist: 0})
	}
}

// process pops the cheapest unsettled cell and relaxes its neighbors until
// the heap is exhausted.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		if r.settled[item.cell] {
			continue
		}
		r.settled[item.cell] = true
		if err := r.relax(item.cell, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every in-bounds, passable neighbor of cell u.
func (r *runner) relax(u int, du float64) error {
	cu := r.stepCost(u)
	if math.IsInf(cu, 1) {
		return nil
	}
	ux, uy := r.g.Coordinate(u)
	cellSize := r.g.CellSize

	for _, off := range r.offsets {
		vx, vy := ux+off.DX, uy+off.DY
		if !r.g.InBounds(vx, vy) {
			continue
		}
		v := r.g.Index(vx, vy)
		if r.settled[v] {
			continue
		}
		cv := r.stepCost(v)
		if math.IsInf(cv, 1) {
			continue
		}

		w := (cu + cv) / 2 * cellSize * off.Length
		if w < 0 {
			return fmt.Errorf("%w: step %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}

		nd := du + w
		if nd > r.options.MaxCost {
			continue
		}
		// strict improvement only; ties keep the first predecessor found
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, cellItem{cell: v, dist: nd})
	}

	return nil
}

// stepCost returns the traversal cost of a cell: 0 inside the free patch,
// +Inf on barriers, otherwise the grid cost.
func (r *runner) stepCost(i int) float64 {
	if r.options.HasFreePatch && r.g.Label(i) == r.options.FreePatch {
		return 0
	}
	if r.g.Barrier(i) {
		return math.Inf(1)
	}

	return r.g.Cost(i)
}

// cellItem is a heap entry: a cell and its tentative cumulative cost.
type cellItem struct {
	cell int
	dist float64
}

// cellPQ is a min-heap of cellItem ordered by (dist, cell) so pop order
// never depends on insertion order. Stale entries are skipped when popped.
type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].cell < pq[j].cell
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
