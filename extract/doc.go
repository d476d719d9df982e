// Package extract turns per-patch cost-distance fields into the patch-pair
// edge list of a connectivity graph.
//
// For a field solved from patch s, EdgesFrom reduces every other patch t > s
// to the minimum field value over t's cells. That minimum becomes the cost of
// edge (s, t); +Inf minima are dropped because no path exists. The first
// minimal cell of t in row-major order is kept as the representative target
// of the least-cost path (LCP), which PathTo traces back to s.
//
// Run drives the whole pipeline: one costdist.Solve per patch, with the
// source patch traversed for free, fanned out over a bounded worker pool.
// Each worker writes only to its own slot in the result arrays; the edge list
// is assembled after every worker has finished, in patch-id order, so output
// is identical for any worker count.
//
// Progress events (patch id, number done, total) are delivered to an optional
// callback one at a time. Cancelling the context abandons the whole run.
package extract
