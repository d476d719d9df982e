// Package report reads and writes the tabular artifacts of a connectivity
// run: the patch edge list, the threshold table, the sensitivity table, the
// patch attribute table and the spanning forest. It also renders least-cost
// path geometry as WKT through the PathSink interface.
//
// All tables are comma-separated with a single header line. Edge lists may be
// read with or without a header: the first row is taken as a header when its
// first field is not an integer.
//
// Errors:
//
//   - ErrMalformedRow: a data row with the wrong field count or an
//     unparsable value. The message carries the 1-based line number; the
//     error wraps core.ErrInvalidInput.
//   - Write errors from the underlying io.Writer are returned unchanged
//     (wrapped with context).
package report
