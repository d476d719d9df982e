// Package connectivity measures the structure of a patch graph seen through a
// core.View: weighted eccentricity and diameter, the largest component, and
// degree, closeness and betweenness centrality.
//
// Every measure is computed per connected component. A distance query never
// spans two components, and isolated patches are reported with zeros rather
// than omitted. Normalization follows the usual conventions for weighted
// undirected graphs, with n the size of the node's component:
//
//	degree      = deg(v) / (n-1)
//	closeness   = (n-1) / Σ d(v, u)                    (0 if the sum is 0)
//	betweenness = Σ_{s≠v≠t} σ_st(v)/σ_st / ((n-1)(n-2)) (ordered pairs; 0 for n ≤ 2)
//
// Betweenness uses Brandes' dependency accumulation on top of one
// dijkstra.WithPathCounts run per node, so the cost is O(V·E·log V) rather
// than path enumeration. Shortest paths tie only on exact float64 equality.
//
// PatchAttributes adds the habitat-availability table: the area reachable
// through direct links and an inverse-distance-weighted version of it.
package connectivity
