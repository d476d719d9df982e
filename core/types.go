// Package core defines the central Graph, Edge and Arc types, the View lens and
// the sentinel errors shared by the rest of the module.
package core

import (
	"errors"
	"fmt"
)

// Root error taxonomy. Other packages wrap these.
var (
	// ErrInvalidInput indicates malformed or mismatched input: bad grid
	// dimensions, negative or non-finite costs, empty source sets, malformed
	// edge-list rows and similar.
	ErrInvalidInput = errors.New("invalid input")

	// ErrContradictoryWeights indicates a negative weight reached a shortest-path
	// relaxation, which would break Dijkstra's precondition.
	ErrContradictoryWeights = errors.New("contradictory weights")

	// ErrDisconnectedComponent indicates a distance query that spans nodes which
	// are not mutually reachable.
	ErrDisconnectedComponent = errors.New("disconnected component")

	// ErrNodeNotFound indicates an operation referenced an unknown patch id.
	ErrNodeNotFound = errors.New("node not found")
)

// Package-level sentinels for graph construction.
var (
	// ErrSelfLoop indicates an edge whose endpoints are the same patch.
	ErrSelfLoop = fmt.Errorf("core: self-loop not allowed: %w", ErrInvalidInput)

	// ErrBadWeight indicates a negative, NaN or infinite edge cost.
	ErrBadWeight = fmt.Errorf("core: edge cost must be finite and non-negative: %w", ErrInvalidInput)

	// ErrNodeExcluded indicates a query addressed a node hidden by the View.
	ErrNodeExcluded = fmt.Errorf("core: node excluded from view: %w", ErrNodeNotFound)
)

// Edge is an undirected patch-pair connection stored canonically (From < To).
type Edge struct {
	From int     // smaller patch id
	To   int     // larger patch id
	Cost float64 // least cumulative cost between the two patches
}

// Arc is one direction of an Edge as seen from a slot's adjacency row.
type Arc struct {
	To     int     // neighbor slot
	Weight float64 // edge cost
}

// Graph is an immutable undirected weighted graph over patch ids.
//
// ids[slot] is the patch id of a slot (ascending); slots maps ids back.
// offsets/arcs form the CSR adjacency; edges keeps the canonical edge list
// sorted by (From, To).
type Graph struct {
	ids     []int
	slots   map[int]int
	offsets []int
	arcs    []Arc
	edges   []Edge
}
