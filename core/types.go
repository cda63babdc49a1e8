// Package core defines the central graph types consumed by every graph
// engine in the library: the read-only Graph interface, the Edge
// descriptor, the Visitor callback, and the AdjacencyList backing
// representation.
//
// This file declares the interface, Edge, Visitor, sentinel errors, and
// construction options. The adjacency-list implementation lives in
// adjacency_list.go.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeCount indicates a negative node count was passed to a
	// graph constructor.
	ErrNegativeCount = errors.New("core: node count is negative")

	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted
	// graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Edge is a single outgoing edge in a node's adjacency list.
//
// Weight is meaningful only when the owning graph reports Weighted()==true;
// unweighted graphs store zero.
type Edge struct {
	// To is the destination node index. Invariant: To < NodeCount of the
	// owning graph.
	To int

	// Weight is the cost of the edge.
	Weight float64
}

// Graph is the read-only structural view the traversal and shortest-path
// engines consume. The concrete representation stays hidden behind this
// interface; engines never mutate it, so concurrent read-only calls against
// the same Graph are safe as long as the backing store is not mutated
// mid-call.
type Graph interface {
	// NodeCount reports the number of nodes, fixed at construction.
	// Valid node indices are [0, NodeCount).
	NodeCount() int

	// Directed reports whether edges are one-way.
	Directed() bool

	// Weighted reports whether edge weights are meaningful.
	Weighted() bool

	// OutEdges returns the ordered outgoing edges of node, or nil when the
	// node has no recorded edges. A nil result is equivalent to an empty
	// edge list; callers must not distinguish the two. The returned slice
	// is owned by the graph and must not be modified.
	OutEdges(node int) []Edge
}

// Visitor observes traversal order, one call per visited node, receiving
// the node index and the opaque user context supplied alongside it.
// Returning false requests early termination of the traversal; returning
// true continues. Early termination is not an error.
type Visitor func(node int, user any) bool

// Option configures graph construction.
type Option func(*config)

type config struct {
	directed bool
	weighted bool
}

// WithDirected makes edges one-way; by default edges are mirrored in both
// adjacency lists.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithWeighted enables meaningful edge weights. Without it, AddEdge rejects
// non-zero weights with ErrBadWeight.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}
