// Package spanning computes minimum spanning structures of a patch graph:
// the minimum spanning forest (Kruskal) and the minimum spanning tree of one
// component grown from a root patch (Prim).
//
// In a connectivity study the spanning forest is the cheapest set of links
// that keeps every component of a threshold snapshot connected; its longest
// link is the smallest threshold at which each component first appears.
//
// Algorithms Provided
//
//   - Kruskal(v core.View) ([]core.Edge, float64)
//
//   - Strategy: sort the visible edges by cost, then add each edge whose
//     endpoints are still in different sets of a core.DisjointSet.
//
//   - Disconnected views yield a forest, one tree per component; isolated
//     patches contribute nothing.
//
//   - Determinism: View.Edges is sorted by (From, To) and the sort by cost is
//     stable, so ties break on (From, To).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(v core.View, root int) ([]core.Edge, float64, error)
//
//   - Strategy: grow a single tree from root with a min-heap of candidate
//     arcs ordered by (cost, from, to).
//
//   - Only root's component is spanned.
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
// Both return canonical edges (From < To) and the total cost.
//
// Error Conditions
//
//   - ErrNoRoot (Prim): no root given to Compute with MethodPrim.
//   - core.ErrNodeNotFound / core.ErrNodeExcluded (Prim): root not visible.
//   - ErrUnknownMethod (Compute): unsupported method name.
package spanning
