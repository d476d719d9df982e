// Package patchconnect turns a habitat raster and a resistance raster into a
// weighted patch graph and measures how well that graph holds together.
//
// The pipeline:
//
//	rasters ──► gridgraph ──► costdist (one field per patch) ──► extract
//	                                                              │
//	                      edge list (From,To,Cost) ◄──────────────┘
//	                              │
//	        core.Graph ──► connectivity / sweep / spanning ──► report
//
// Packages:
//
//	core/          immutable patch graph, threshold and node-removal views, components
//	gridgraph/     cost and label rasters, patch discovery, areas, digest
//	costdist/      multi-source least-cost distance over a raster
//	extract/       per-patch solves on a bounded worker pool, edge reduction, paths
//	dijkstra/      single-source shortest paths over a view, with path counts
//	connectivity/  eccentricity, diameter, centralities, patch attributes
//	sweep/         threshold sequence and node-removal sensitivity
//	spanning/      minimum spanning forest (Kruskal) and tree (Prim)
//	report/        CSV tables and WKT path geometry
//	fieldstack/    zstd-compressed stack of cost-distance fields
//	builder/       synthetic landscapes from OpenSimplex noise
//
// The patchconnect command in cmd/patchconnect wires these together and can
// record runs in SQLite.
//
// Quick ASCII example:
//
//	1 . 2 . 3      three one-cell patches on a unit-cost row
//
//	edges: 1-2 1.5, 2-3 1.5, 1-3 3.5
//
//	go install github.com/johnpfay/PatchConnect/cmd/patchconnect@latest
package patchconnect
