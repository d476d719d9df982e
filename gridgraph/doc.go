// Package gridgraph treats a pair of co-registered rasters, a movement-cost
// surface and a patch-label grid, as an implicit graph of cells.
//
// What:
//
//   - Grid wraps a rectangular cost grid and a label grid of identical shape,
//     plus the physical cell width used for geometric step lengths.
//   - Patches are discovered by scanning the label grid; each owns its cells
//     (row-major order) and an area (cell count × cell area).
//   - Cells whose cost equals the cost NoData value are barriers: traversal
//     never enters them.
//   - Fragments splits a patch into its contiguous pieces.
//   - Digest fingerprints the inputs (BLAKE3) so results can be tied to them.
//
// Why:
//
//   - Landscape connectivity: the cost-distance solver (package costdist)
//     walks this implicit graph with 8-connectivity and geometric weights.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory (deep copy + validation + patch scan).
//   - Fragments:  O(|patch|×d), d = 4 or 8.
//   - Digest:     O(W×H).
//
// Options:
//
//   - GridOptions.CellSize:    physical width of a cell (> 0).
//   - GridOptions.LabelNoData: label value meaning "no patch".
//   - GridOptions.CostNoData:  cost value meaning "impassable".
//   - GridOptions.Conn:        Conn4 or Conn8 (default Conn8).
//
// Errors (all wrap core.ErrInvalidInput):
//
//   - ErrEmptyGrid:         input grid has no rows or no columns.
//   - ErrNonRectangular:    rows have differing lengths.
//   - ErrDimensionMismatch: cost and label grids differ in shape.
//   - ErrInvalidCost:       a cost is negative, NaN or infinite (and not NoData).
//   - ErrBadCellSize:       cell size is not a positive finite number.
package gridgraph
