// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.View of the patch graph, with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source patch to all
//     reachable patches in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - The view decides what is visible: edges above the view threshold and the
//     excluded node (if any) are never traversed, so the same immutable graph
//     serves every threshold snapshot and every node-removal test.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: keep one predecessor per node, so Result.PathTo can rebuild paths.
//   - MaxDistance: stop exploring beyond a given distance.
//   - PathCounts: count simple shortest paths (σ), keep every tight predecessor
//     and expose Result.Dependencies, the per-source sum Brandes' betweenness
//     needs. Zero-cost arcs join equal-distance patches into tie groups whose
//     inner simple paths are enumerated, so ties through them count exactly.
//
// Ties:
//
//	Two paths are equally short only when their float64 sums are exactly equal.
//	The heap breaks distance ties by slot, so the settle order is reproducible.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       no Source option given.
//   - ErrNegativeWeight: negative arc weight reached relaxation (wraps core.ErrContradictoryWeights).
//   - ErrBadMaxDistance: panic value of WithMaxDistance for negative or NaN caps.
//   - ErrTooManyTies:    a zero-cost group has more than MaxTiePaths simple paths.
//   - core.ErrNodeNotFound / core.ErrNodeExcluded: the source is unknown or hidden.
//
// API reference:
//
//	func Dijkstra(v core.View, opts ...Option) (*Result, error)
//
//	  - v:    view of a patch graph.
//	  - opts: Source(id) (required), WithReturnPath(), WithMaxDistance(float64),
//	          WithPathCounts().
//	  - Result.Dist[slot]: minimal distance, or +Inf when unreached.
package dijkstra
