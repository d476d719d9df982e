package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/sweep"
)

// writeTable writes a header and rows produced by row(i) for i in [0, n).
func writeTable(w io.Writer, name string, header []string, n int, row func(i int) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return fmt.Errorf("report: write %s row %d: %w", name, i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush %s: %w", name, err)
	}

	return nil
}

// shortFloat renders x in the shortest form that round-trips.
func shortFloat(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

// WriteThresholds writes the threshold sequence as "Distance,NComps,Diameter".
func WriteThresholds(w io.Writer, snaps []sweep.Snapshot) error {
	return writeTable(w, "thresholds", []string{"Distance", "NComps", "Diameter"}, len(snaps), func(i int) []string {
		s := snaps[i]
		return []string{shortFloat(s.Threshold), strconv.Itoa(s.Components), shortFloat(s.Diameter)}
	})
}

// WriteSensitivity writes "Node,Cuts,DeltaDiameter"; Cuts is 1 for a cut
// node and 0 otherwise.
func WriteSensitivity(w io.Writer, rows []sweep.NodeSensitivity) error {
	return writeTable(w, "sensitivity", []string{"Node", "Cuts", "DeltaDiameter"}, len(rows), func(i int) []string {
		r := rows[i]
		cut := "0"
		if r.Cut {
			cut = "1"
		}
		return []string{strconv.Itoa(r.ID), cut, shortFloat(r.DiameterDelta)}
	})
}

// WriteAttributes writes the patch attribute table with four decimals.
func WriteAttributes(w io.Writer, rows []connectivity.PatchAttributes) error {
	header := []string{"patchID", "connectedArea", "idwArea", "degree", "betweenness", "closeness", "degreeCen"}
	return writeTable(w, "attributes", header, len(rows), func(i int) []string {
		a := rows[i]
		return []string{
			strconv.Itoa(a.ID),
			formatFloat(a.ConnectedArea, 4),
			formatFloat(a.IDWArea, 4),
			strconv.Itoa(a.Degree),
			formatFloat(a.Betweenness, 4),
			formatFloat(a.Closeness, 4),
			formatFloat(a.DegreeCentrality, 4),
		}
	})
}

// WriteSpanning writes a spanning forest as "Rank,From,To,Cost,Cumulative"
// in the order given (Kruskal order is ascending cost).
func WriteSpanning(w io.Writer, edges []core.Edge, prec int) error {
	var cum float64
	return writeTable(w, "spanning", []string{"Rank", "From", "To", "Cost", "Cumulative"}, len(edges), func(i int) []string {
		e := edges[i]
		cum += e.Cost
		return []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.From),
			strconv.Itoa(e.To),
			formatFloat(e.Cost, prec),
			formatFloat(cum, prec),
		}
	})
}
