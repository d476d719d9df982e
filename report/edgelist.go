package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/johnpfay/PatchConnect/core"
)

// DefaultPrecision is the number of decimals written for costs.
const DefaultPrecision = 4

// ErrMalformedRow indicates an edge-list row that cannot be parsed.
var ErrMalformedRow = fmt.Errorf("report: malformed row: %w", core.ErrInvalidInput)

// edgeHeader is the header line of every edge list.
var edgeHeader = []string{"From", "To", "Cost"}

// formatFloat renders x with prec decimals; a negative prec selects
// DefaultPrecision.
func formatFloat(x float64, prec int) string {
	if prec < 0 {
		prec = DefaultPrecision
	}

	return strconv.FormatFloat(x, 'f', prec, 64)
}

// WriteEdgeList writes edges as "From,To,Cost" rows after a header line.
// Costs are rendered with prec decimals (negative prec: DefaultPrecision).
func WriteEdgeList(w io.Writer, edges []core.Edge, prec int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(edgeHeader); err != nil {
		return fmt.Errorf("report: write edge header: %w", err)
	}
	for _, e := range edges {
		row := []string{strconv.Itoa(e.From), strconv.Itoa(e.To), formatFloat(e.Cost, prec)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write edge %d-%d: %w", e.From, e.To, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadEdgeList parses an edge list. Blank lines are skipped; surrounding
// spaces in fields are ignored. Edges are returned in file order and are not
// canonicalized; core.Build does that.
func ReadEdgeList(r io.Reader) ([]core.Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		edges []core.Edge
		first = true
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, pe.Line, pe.Err)
			}
			return nil, fmt.Errorf("report: read edge list: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		e, err := parseEdge(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// ReadGraph parses an edge list and builds the graph. extraNodes adds patches
// that have no links, so isolated patches survive the round trip.
func ReadGraph(r io.Reader, extraNodes ...int) (*core.Graph, error) {
	edges, err := ReadEdgeList(r)
	if err != nil {
		return nil, err
	}

	return core.Build(extraNodes, edges)
}

// isHeader reports whether a first row is a header rather than data.
func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(rec[0]))

	return err != nil
}

// parseEdge converts one record into an Edge.
func parseEdge(rec []string) (core.Edge, error) {
	if len(rec) != 3 {
		return core.Edge{}, fmt.Errorf("want 3 fields, got %d", len(rec))
	}
	from, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("from: %w", err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("to: %w", err)
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("cost: %w", err)
	}

	return core.Edge{From: from, To: to, Cost: cost}, nil
}
