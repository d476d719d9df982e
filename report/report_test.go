package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/extract"
	"github.com/johnpfay/PatchConnect/gridgraph"
	"github.com/johnpfay/PatchConnect/report"
	"github.com/johnpfay/PatchConnect/sweep"
)

func TestWriteEdgeList(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteEdgeList(&buf, []core.Edge{
		{From: 1, To: 2, Cost: 500},
		{From: 2, To: 3, Cost: 1.5 * 1.4142135623730951},
	}, report.DefaultPrecision)
	require.NoError(t, err)
	assert.Equal(t, "From,To,Cost\n1,2,500.0000\n2,3,2.1213\n", buf.String())
}

func TestReadEdgeList_HeaderOptional(t *testing.T) {
	want := []core.Edge{{From: 1, To: 2, Cost: 500}, {From: 3, To: 2, Cost: 7.25}}

	withHeader, err := report.ReadEdgeList(strings.NewReader("From,To,Cost\n1,2,500\n3, 2, 7.25\n"))
	require.NoError(t, err)
	assert.Equal(t, want, withHeader)

	bare, err := report.ReadEdgeList(strings.NewReader("1,2,500\n\n3,2,7.25\n"))
	require.NoError(t, err)
	assert.Equal(t, want, bare)
}

func TestReadEdgeList_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string
	}{
		{"TooFewFields", "From,To,Cost\n1,2,3\n4,5\n", "line 3"},
		{"BadCost", "1,2,abc\n", "line 1"},
		{"BadTo", "From,To,Cost\n1,x,3\n", "line 2"},
		{"SecondHeader", "From,To,Cost\nFrom,To,Cost\n", "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := report.ReadEdgeList(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, report.ErrMalformedRow)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestEdgeList_RoundTrip writes a graph and reads it back, isolated patch
// included through extraNodes.
func TestEdgeList_RoundTrip(t *testing.T) {
	g, err := core.Build([]int{9}, []core.Edge{
		{From: 1, To: 2, Cost: 500.125},
		{From: 2, To: 3, Cost: 700},
		{From: 1, To: 3, Cost: 1400.5},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteEdgeList(&buf, g.Edges(), -1))

	back, err := report.ReadGraph(&buf, 9)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), back.Nodes())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestReadGraph_BadWeight(t *testing.T) {
	_, err := report.ReadGraph(strings.NewReader("1,2,-5\n"))
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestWriteThresholds(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteThresholds(&buf, []sweep.Snapshot{
		{Threshold: 0, Components: 3, Diameter: 0},
		{Threshold: 500, Components: 2, Diameter: 500},
		{Threshold: 1000, Components: 1, Diameter: 1200.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "Distance,NComps,Diameter\n0,3,0\n500,2,500\n1000,1,1200.5\n", buf.String())
}

func TestWriteSensitivity(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteSensitivity(&buf, []sweep.NodeSensitivity{
		{ID: 1, Cut: false, DiameterDelta: 1},
		{ID: 2, Cut: true, DiameterDelta: -200},
	})
	require.NoError(t, err)
	assert.Equal(t, "Node,Cuts,DeltaDiameter\n1,0,1\n2,1,-200\n", buf.String())
}

func TestWriteAttributes(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteAttributes(&buf, []connectivity.PatchAttributes{
		{ID: 1, Area: 2, ConnectedArea: 3, IDWArea: 1.23456, Degree: 1, Betweenness: 0, Closeness: 100, DegreeCentrality: 100},
		{ID: 7},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"patchID,connectedArea,idwArea,degree,betweenness,closeness,degreeCen\n"+
			"1,3.0000,1.2346,1,0.0000,100.0000,100.0000\n"+
			"7,0.0000,0.0000,0,0.0000,0.0000,0.0000\n",
		buf.String())
}

func TestWriteSpanning(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteSpanning(&buf, []core.Edge{{From: 1, To: 2, Cost: 500}, {From: 2, To: 3, Cost: 700}}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rank,From,To,Cost,Cumulative\n1,1,2,500.0,500.0\n2,2,3,700.0,1200.0\n", buf.String())
}

func TestWKTWriter(t *testing.T) {
	var buf bytes.Buffer
	gt := report.GeoTransform{OriginX: 1000, OriginY: 5000, CellSize: 30}
	sink := report.NewWKTWriter(&buf, gt, 1)

	err := report.WritePaths(sink, []extract.Path{
		{From: 1, To: 2, Cost: 2.5, Cells: []gridgraph.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
		{From: 2, To: 3, Cost: 0, Cells: []gridgraph.Cell{{X: 4, Y: 2}}},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"From,To,Cost,WKT\n"+
			"1,2,2.5,\"LINESTRING (1000.0 5000.0, 1030.0 4970.0, 1060.0 4970.0)\"\n"+
			"2,3,0.0,POINT (1120.0 4940.0)\n",
		buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteEdgeList_WriterError(t *testing.T) {
	err := report.WriteEdgeList(failingWriter{}, []core.Edge{{From: 1, To: 2, Cost: 1}}, 2)
	assert.ErrorContains(t, err, "disk full")
}
