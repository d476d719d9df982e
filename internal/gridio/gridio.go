// Package gridio reads and writes ESRI ASCII grids, the plain-text raster
// format the patchconnect CLI accepts for cost and patch surfaces.
//
// A file is a short header followed by nrows lines of ncols values:
//
//	ncols         4
//	nrows         3
//	xllcorner     500000
//	yllcorner     4100000
//	cellsize      30
//	NODATA_value  -9999
//	1 1 2 -9999
//	...
//
// xllcenter/yllcenter are accepted in place of the corner keys.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/report"
)

var (
	// ErrBadHeader indicates a missing, duplicated or unparsable header key.
	ErrBadHeader = fmt.Errorf("gridio: bad header: %w", core.ErrInvalidInput)

	// ErrBadData indicates a data section with too few, too many or
	// unparsable values.
	ErrBadData = fmt.Errorf("gridio: bad data: %w", core.ErrInvalidInput)

	// ErrNotInteger indicates a label raster holding a fractional value.
	ErrNotInteger = fmt.Errorf("gridio: value is not an integer: %w", core.ErrInvalidInput)
)

// DefaultNoData is written when a header carries no NODATA_value.
const DefaultNoData = -9999.0

// MaxCells bounds nrows·ncols of a grid Read accepts.
const MaxCells = 1 << 28

// Header is the georeferencing block of an ASCII grid.
type Header struct {
	NCols, NRows int
	XLL, YLL     float64
	Center       bool // XLL/YLL name the lower-left cell center, not its corner
	CellSize     float64
	NoData       float64
}

// Raster is a header and its values, [row][col] from the top row down.
type Raster struct {
	Header
	Values [][]float64
}

// GeoTransform returns the map transform of the upper-left cell corner.
func (h Header) GeoTransform() report.GeoTransform {
	x, y := h.XLL, h.YLL
	if h.Center {
		x -= h.CellSize / 2
		y -= h.CellSize / 2
	}

	return report.GeoTransform{
		OriginX:  x,
		OriginY:  y + float64(h.NRows)*h.CellSize,
		CellSize: h.CellSize,
	}
}

// ReadFile opens and parses path.
func ReadFile(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("gridio: %s: %w", path, err)
	}

	return r, nil
}

// Read parses an ASCII grid. Header keys are case-insensitive.
func Read(r io.Reader) (*Raster, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	sc.Split(bufio.ScanWords)

	// 1. Header: key/value pairs until the first numeric token.
	h := Header{NoData: DefaultNoData}
	seen := map[string]bool{}
	var pending string
	for sc.Scan() {
		key := strings.ToLower(sc.Text())
		if _, err := strconv.ParseFloat(key, 64); err == nil {
			pending = sc.Text()
			break
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrBadHeader, key)
		}
		seen[key] = true
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: key %q has no value", ErrBadHeader, key)
		}
		if err := h.set(key, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}
	for _, k := range []string{"ncols", "nrows", "cellsize"} {
		if !seen[k] {
			return nil, fmt.Errorf("%w: missing %s", ErrBadHeader, k)
		}
	}
	if h.NCols < 1 || h.NRows < 1 || !(h.CellSize > 0) {
		return nil, fmt.Errorf("%w: ncols=%d nrows=%d cellsize=%v", ErrBadHeader, h.NCols, h.NRows, h.CellSize)
	}
	if h.NRows > MaxCells/h.NCols {
		return nil, fmt.Errorf("%w: %d×%d cells exceed the limit of %d", ErrBadHeader, h.NRows, h.NCols, MaxCells)
	}

	// 2. Data: exactly nrows·ncols values, stored as they arrive.
	out := &Raster{Header: h, Values: make([][]float64, 0, min(h.NRows, 1024))}
	next := func() (string, bool) {
		if pending != "" {
			tok := pending
			pending = ""
			return tok, true
		}
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}
	for y := 0; y < h.NRows; y++ {
		row := make([]float64, 0, min(h.NCols, 4096))
		for x := 0; x < h.NCols; x++ {
			tok, ok := next()
			if !ok {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("gridio: read: %w", err)
				}
				return nil, fmt.Errorf("%w: want %d values, got %d", ErrBadData, h.NCols*h.NRows, y*h.NCols+x)
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrBadData, y, x, tok)
			}
			row = append(row, v)
		}
		out.Values = append(out.Values, row)
	}
	if _, ok := next(); ok {
		return nil, fmt.Errorf("%w: more than %d values", ErrBadData, h.NCols*h.NRows)
	}

	return out, nil
}

// set assigns one header key.
func (h *Header) set(key, val string) error {
	bad := func() error { return fmt.Errorf("%w: %s=%q", ErrBadHeader, key, val) }
	switch key {
	case "ncols", "nrows":
		n, err := strconv.Atoi(val)
		if err != nil {
			return bad()
		}
		if key == "ncols" {
			h.NCols = n
		} else {
			h.NRows = n
		}
	case "xllcorner", "yllcorner", "xllcenter", "yllcenter", "cellsize", "nodata_value":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return bad()
		}
		switch key {
		case "xllcorner", "xllcenter":
			h.XLL = f
			h.Center = key == "xllcenter"
		case "yllcorner", "yllcenter":
			h.YLL = f
		case "cellsize":
			h.CellSize = f
		default:
			h.NoData = f
		}
	default:
		return fmt.Errorf("%w: unknown key %q", ErrBadHeader, key)
	}

	return nil
}

// Ints converts the values of a label raster to integers. NoData maps to
// int(NoData).
func (r *Raster) Ints() ([][]int, error) {
	out := make([][]int, len(r.Values))
	for y, row := range r.Values {
		out[y] = make([]int, len(row))
		for x, v := range row {
			if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrNotInteger, y, x, v)
			}
			out[y][x] = int(v)
		}
	}

	return out, nil
}

// FromField builds a raster from a row-major field; +Inf cells become NoData.
func FromField(h Header, width, height int, dist []float64) *Raster {
	h.NCols, h.NRows = width, height
	r := &Raster{Header: h, Values: make([][]float64, height)}
	for y := range r.Values {
		row := make([]float64, width)
		for x := range row {
			v := dist[y*width+x]
			if math.IsInf(v, 1) {
				v = h.NoData
			}
			row[x] = v
		}
		r.Values[y] = row
	}

	return r
}

// Write renders r with prec decimals for values (negative: shortest form).
func Write(w io.Writer, r *Raster, prec int) error {
	bw := bufio.NewWriter(w)
	xk, yk := "xllcorner", "yllcorner"
	if r.Center {
		xk, yk = "xllcenter", "yllcenter"
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	fmt.Fprintf(bw, "ncols %d\nnrows %d\n%s %s\n%s %s\ncellsize %s\nNODATA_value %s\n",
		r.NCols, r.NRows, xk, num(r.XLL), yk, num(r.YLL), num(r.CellSize), num(r.NoData))
	for _, row := range r.Values {
		for x, v := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if v == r.NoData {
				bw.WriteString(num(v))
				continue
			}
			bw.WriteString(strconv.FormatFloat(v, 'f', prec, 64))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridio: write: %w", err)
	}

	return nil
}

// WriteFile creates path and writes r into it.
func WriteFile(path string, r *Raster, prec int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("gridio: close %s: %w", path, cerr)
		}
	}()

	return Write(f, r, prec)
}
