package extract

import (
	"math"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/costdist"
	"github.com/johnpfay/PatchConnect/gridgraph"
)

// EdgesFrom reduces a field solved from patch sourceID to one Candidate per
// patch with a larger id and a finite minimum. Candidates come out in
// ascending To order.
//
// Complexity: O(total patch cells).
func EdgesFrom(g *gridgraph.Grid, f *costdist.Field, sourceID int) []Candidate {
	var out []Candidate
	for _, p := range g.Patches() {
		if p.ID <= sourceID {
			continue
		}
		best, cell := math.Inf(1), -1
		// Cells are ascending, so strict < keeps the first minimal cell.
		for _, c := range p.Cells {
			if d := f.Dist[c]; d < best {
				best, cell = d, c
			}
		}
		if cell < 0 {
			continue
		}
		out = append(out, Candidate{
			Edge: core.Edge{From: sourceID, To: p.ID, Cost: best},
			Cell: cell,
		})
	}

	return out
}

// PathTo traces the least-cost path ending at cell back to its source patch.
// The field must have been solved with costdist.WithTraceback.
func PathTo(f *costdist.Field, cell int) ([]gridgraph.Cell, error) {
	return f.Traceback(cell)
}
