// Package core provides the immutable, undirected, weighted patch graph that the
// connectivity engine analyzes, together with non-mutating views over it.
//
// The Graph G = (V,E) has:
//
//   - V: every discovered patch id, including isolated patches without edges.
//   - E: canonical edges (From < To) with a finite, non-negative Cost.
//   - No self-loops and at most one edge per unordered pair.
//
// Storage:
//
//	Patch ids are mapped to dense slots 0..n-1 (ascending id order) and the
//	adjacency is kept in compressed-sparse-row form:
//
//	    offsets[u] .. offsets[u+1]  →  arcs of slot u (sorted by neighbor slot)
//
//	so hot loops (Dijkstra, Brandes, union-find) never touch a hash map.
//
// Views:
//
//	A View is a read-only lens over a Graph that hides edges above a weight
//	threshold and/or a single excluded node. Views are plain values; creating
//	one is O(1) and never copies or mutates the underlying Graph.
//
//	    v := g.View().WithinThreshold(1000).Without(7)
//	    comps := v.Components()
//
// Errors:
//
//	The package also hosts the root error taxonomy shared by all other
//	packages (ErrInvalidInput, ErrContradictoryWeights, ErrDisconnectedComponent,
//	ErrNodeNotFound). Package-specific sentinels wrap one of these so that
//	errors.Is works on both levels.
//
// Complexity:
//
//   - Build:      O(V log V + E log E) time, O(V + E) memory.
//   - View ops:   O(1) to derive; iteration cost equals the underlying arcs.
//   - Components: O(V + E·α(V)).
//
// Thread safety: a built Graph is never mutated, so it and all of its views may
// be shared freely across goroutines.
package core
