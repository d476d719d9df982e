// Package costdist computes cumulative-cost fields over a gridgraph.Grid with
// a multi-source Dijkstra search (the "minimum cost path" or MCP search).
//
// Overview:
//
//   - Every grid cell is a node connected to its 4 or 8 neighbors.
//   - The cost of stepping from cell a to neighbor b is
//
//     (cost(a) + cost(b)) / 2 × CellSize × L,   L = 1 (orthogonal) or √2 (diagonal)
//
//     which is symmetric and accounts for the longer diagonal step.
//   - All source cells are seeded at cumulative cost 0 simultaneously; the
//     resulting Field holds, for every cell, the least cumulative cost from the
//     nearest source, or +Inf if no source can reach it.
//   - Barrier cells (cost NoData) are never entered.
//
// Options:
//
//   - WithTraceback():   keep a predecessor array so any reached cell can be
//     traced back to its source (Field.Traceback).
//   - WithMaxCost(c):    stop expanding beyond cumulative cost c; cells that
//     would exceed it stay at +Inf, exactly like unreachable cells.
//   - WithFreePatch(id): treat the cells of patch id as zero-cost, so that
//     traversal inside the source patch is free.
//
// Determinism:
//
//	The priority queue is ordered by (distance, cell index) and predecessors
//	only change on strict improvement, so identical inputs always produce
//	bit-identical fields.
//
// Complexity:
//
//   - Time:  O(N log N) with N = W×H (each cell settles once, ≤ 8 pushes per cell).
//   - Space: O(N) for distances, predecessors, settled flags and the heap.
//
// Errors:
//
//   - ErrNoSources, ErrSourceOutOfRange, ErrBadMaxCost (wrap core.ErrInvalidInput).
//   - ErrNegativeWeight (wraps core.ErrContradictoryWeights).
//   - ErrNoTraceback, ErrUnreachable, ErrCellOutOfRange from Field.Traceback.
package costdist
