package connectivity

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/core"
)

var (
	// ErrDisconnected indicates a diameter query over nodes that are not all
	// mutually reachable.
	ErrDisconnected = fmt.Errorf("connectivity: nodes are not mutually reachable: %w", core.ErrDisconnectedComponent)

	// ErrBadMaxDistance indicates a non-positive or non-finite attribute distance.
	ErrBadMaxDistance = fmt.Errorf("connectivity: max distance must be positive and finite: %w", core.ErrInvalidInput)
)

// NodeMetrics is one row of Analyze.
//
// Component is the index of the node's component in View.Components order.
// Isolated nodes have ComponentSize 1 and every measure 0.
type NodeMetrics struct {
	ID               int
	Component        int
	ComponentSize    int
	Degree           int
	DegreeCentrality float64
	Closeness        float64
	Betweenness      float64
	Eccentricity     float64
}

// PatchAttributes is one row of the patch connectivity attribute table.
//
// ConnectedArea – summed area of the directly linked patches.
// IDWArea       – the same sum with each area discounted by exp(k·d),
// k = ln(0.1)/maxDistance, so a link at maxDistance keeps 10% of the area.
// Centralities are percentages (×100) within the patch's component.
type PatchAttributes struct {
	ID               int
	Area             float64
	ConnectedArea    float64
	IDWArea          float64
	Degree           int
	Betweenness      float64
	Closeness        float64
	DegreeCentrality float64
}
