package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/johnpfay/PatchConnect/extract"
	"github.com/johnpfay/PatchConnect/gridgraph"
)

// PathSink consumes least-cost path geometry one edge at a time.
type PathSink interface {
	WritePath(p extract.Path) error
	Close() error
}

// GeoTransform maps grid cells to map coordinates. Origin is the upper-left
// corner of the raster; rows grow downwards.
type GeoTransform struct {
	OriginX, OriginY float64
	CellSize         float64
}

// Point returns the map coordinates of the upper-left corner of cell c.
func (gt GeoTransform) Point(c gridgraph.Cell) (x, y float64) {
	return gt.OriginX + float64(c.X)*gt.CellSize, gt.OriginY - float64(c.Y)*gt.CellSize
}

// WKTWriter is a PathSink writing "From,To,Cost,WKT" rows. Paths of two or
// more cells become LINESTRINGs; a single-cell path is written as a POINT.
type WKTWriter struct {
	cw     *csv.Writer
	gt     GeoTransform
	prec   int
	header bool
}

// NewWKTWriter returns a WKTWriter over w. prec applies to costs and
// coordinates (negative: DefaultPrecision).
func NewWKTWriter(w io.Writer, gt GeoTransform, prec int) *WKTWriter {
	return &WKTWriter{cw: csv.NewWriter(w), gt: gt, prec: prec}
}

// WritePath writes one row. The header is emitted before the first row.
func (ww *WKTWriter) WritePath(p extract.Path) error {
	if !ww.header {
		ww.header = true
		if err := ww.cw.Write([]string{"From", "To", "Cost", "WKT"}); err != nil {
			return fmt.Errorf("report: write path header: %w", err)
		}
	}
	row := []string{strconv.Itoa(p.From), strconv.Itoa(p.To), formatFloat(p.Cost, ww.prec), ww.WKT(p.Cells)}
	if err := ww.cw.Write(row); err != nil {
		return fmt.Errorf("report: write path %d-%d: %w", p.From, p.To, err)
	}

	return nil
}

// WKT renders cells as well-known text.
func (ww *WKTWriter) WKT(cells []gridgraph.Cell) string {
	if len(cells) == 0 {
		return "LINESTRING EMPTY"
	}
	var sb strings.Builder
	if len(cells) == 1 {
		sb.WriteString("POINT (")
	} else {
		sb.WriteString("LINESTRING (")
	}
	for i, c := range cells {
		if i > 0 {
			sb.WriteString(", ")
		}
		x, y := ww.gt.Point(c)
		sb.WriteString(formatFloat(x, ww.prec))
		sb.WriteByte(' ')
		sb.WriteString(formatFloat(y, ww.prec))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Close flushes buffered rows. It does not close the underlying writer.
func (ww *WKTWriter) Close() error {
	ww.cw.Flush()

	return ww.cw.Error()
}

// WritePaths sends every path to sink and closes it.
func WritePaths(sink PathSink, paths []extract.Path) error {
	for _, p := range paths {
		if err := sink.WritePath(p); err != nil {
			_ = sink.Close()
			return err
		}
	}

	return sink.Close()
}
