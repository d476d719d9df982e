// Package fieldstack stores a stack of cost-distance fields, one per source
// patch, as a single zstd-compressed binary stream.
//
// Stream layout (little-endian, before compression):
//
//	[4 bytes magic "PCFS"][uint32 version]
//	[uint32 count][uint32 width][uint32 height]
//	count × ( [int64 patch id][width·height × float64 bits] )
//
// Every layer shares the same dimensions. +Inf (unreached cells) survives
// the round trip bit for bit.
package fieldstack

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/costdist"
	"github.com/johnpfay/PatchConnect/extract"
)

const (
	magic   = "PCFS"
	version = 1

	// maxCells caps width·height on read so a corrupt header cannot trigger a
	// huge allocation.
	maxCells = 1 << 28
)

var (
	// ErrBadMagic indicates the stream is not a field stack.
	ErrBadMagic = fmt.Errorf("fieldstack: bad magic or version: %w", core.ErrInvalidInput)

	// ErrDimensionMismatch indicates layers of different sizes, or a layer whose
	// data length differs from width·height.
	ErrDimensionMismatch = fmt.Errorf("fieldstack: layer dimensions differ: %w", core.ErrInvalidInput)

	// ErrTruncated indicates the stream ended inside a layer.
	ErrTruncated = fmt.Errorf("fieldstack: truncated stream: %w", core.ErrInvalidInput)
)

// Layer is one stacked field.
type Layer struct {
	PatchID       int
	Width, Height int
	Dist          []float64
}

// FromField wraps a solved field as a layer. The distance slice is shared,
// not copied.
func FromField(patchID int, f *costdist.Field) Layer {
	return Layer{PatchID: patchID, Width: f.Width, Height: f.Height, Dist: f.Dist}
}

// FromResult converts the retained fields of an extraction run.
func FromResult(fields []extract.PatchField) []Layer {
	out := make([]Layer, len(fields))
	for i, pf := range fields {
		out[i] = FromField(pf.PatchID, pf.Field)
	}

	return out
}

// Field returns the layer as a costdist.Field without predecessors.
func (l Layer) Field() *costdist.Field {
	return &costdist.Field{Width: l.Width, Height: l.Height, Dist: l.Dist}
}

// Write compresses layers into w.
func Write(w io.Writer, layers []Layer) error {
	var width, height int
	if len(layers) > 0 {
		width, height = layers[0].Width, layers[0].Height
	}
	for _, l := range layers {
		if l.Width != width || l.Height != height || len(l.Dist) != width*height {
			return fmt.Errorf("%w: patch %d is %dx%d (%d values), want %dx%d",
				ErrDimensionMismatch, l.PatchID, l.Width, l.Height, len(l.Dist), width, height)
		}
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("fieldstack: creating zstd encoder: %w", err)
	}
	bw := bufio.NewWriter(enc)

	header := make([]byte, 0, 20)
	header = append(header, magic...)
	header = binary.LittleEndian.AppendUint32(header, version)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(layers)))
	header = binary.LittleEndian.AppendUint32(header, uint32(width))
	header = binary.LittleEndian.AppendUint32(header, uint32(height))
	if _, err := bw.Write(header); err != nil {
		enc.Close()
		return fmt.Errorf("fieldstack: writing header: %w", err)
	}

	buf := make([]byte, 8)
	for _, l := range layers {
		binary.LittleEndian.PutUint64(buf, uint64(int64(l.PatchID)))
		if _, err := bw.Write(buf); err != nil {
			enc.Close()
			return fmt.Errorf("fieldstack: writing patch %d: %w", l.PatchID, err)
		}
		for _, d := range l.Dist {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(d))
			if _, err := bw.Write(buf); err != nil {
				enc.Close()
				return fmt.Errorf("fieldstack: writing patch %d: %w", l.PatchID, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		enc.Close()
		return fmt.Errorf("fieldstack: flushing: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("fieldstack: closing encoder: %w", err)
	}

	return nil
}

// Read decompresses a stack written by Write.
func Read(r io.Reader) ([]Layer, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("fieldstack: creating zstd decoder: %w", err)
	}
	defer dec.Close()
	br := bufio.NewReader(dec)

	header := make([]byte, 20)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrTruncated, err)
	}
	if string(header[:4]) != magic || binary.LittleEndian.Uint32(header[4:8]) != version {
		return nil, ErrBadMagic
	}
	count := int(binary.LittleEndian.Uint32(header[8:12]))
	width := int(binary.LittleEndian.Uint32(header[12:16]))
	height := int(binary.LittleEndian.Uint32(header[16:20]))
	cells := width * height
	if cells > maxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds limit", ErrDimensionMismatch, width, height)
	}

	layers := make([]Layer, 0, min(count, 1024))
	buf := make([]byte, 8)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: layer %d id: %v", ErrTruncated, i, err)
		}
		l := Layer{
			PatchID: int(int64(binary.LittleEndian.Uint64(buf))),
			Width:   width,
			Height:  height,
			Dist:    make([]float64, cells),
		}
		for j := range l.Dist {
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, fmt.Errorf("%w: layer %d cell %d: %v", ErrTruncated, i, j, err)
			}
			l.Dist[j] = math.Float64frombits(binary.LittleEndian.Uint64(buf))
		}
		layers = append(layers, l)
	}

	// Trailing data means the header count was wrong.
	if _, err := br.ReadByte(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("fieldstack: reading trailer: %w", err)
		}
		return nil, fmt.Errorf("%w: data after %d layers", ErrDimensionMismatch, count)
	}

	return layers, nil
}

// Min collapses the stack into the per-cell minimum: the least cost from any
// stacked patch. An empty stack yields nil.
func Min(layers []Layer) []float64 {
	if len(layers) == 0 {
		return nil
	}
	out := make([]float64, len(layers[0].Dist))
	copy(out, layers[0].Dist)
	for _, l := range layers[1:] {
		for i, d := range l.Dist {
			if d < out[i] {
				out[i] = d
			}
		}
	}

	return out
}
