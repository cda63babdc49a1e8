// Package dijkstra defines errors and configuration options for the
// single-source shortest-path engine.
package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph is not marked weighted.
	// This is an unsupported-configuration condition, distinct from
	// invalid input: the algorithm is recognized but incompatible with
	// the graph's properties.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrEmptyGraph indicates the graph has zero nodes.
	ErrEmptyGraph = errors.New("dijkstra: graph has no nodes")

	// ErrNodeOutOfRange indicates start or target outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Only reported under WithNegativeWeightCheck; the default mode
	// performs the standard relaxation with no guard, which silently
	// produces incorrect results on negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Option configures the Dijkstra run.
type Option func(*Options)

// Options holds configurable parameters for a Dijkstra execution.
type Options struct {
	// Predecessors enables the Prev slice in the Result for path
	// reconstruction. Off by default to save the allocation.
	Predecessors bool

	// NegativeWeightCheck pre-scans every edge and fails fast with
	// ErrNegativeWeight before any relaxation. Off by default for
	// compatibility with the unguarded classic behavior.
	NegativeWeightCheck bool
}

// DefaultOptions returns Options with no predecessor tracking and no
// negative-weight guard.
func DefaultOptions() Options {
	return Options{}
}

// WithPredecessors enables predecessor tracking in the Result.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}

// WithNegativeWeightCheck rejects graphs containing negative edge weights
// with ErrNegativeWeight instead of silently computing wrong distances.
func WithNegativeWeightCheck() Option {
	return func(o *Options) { o.NegativeWeightCheck = true }
}

// Result holds the outcome of a Dijkstra run.
//
// Reachable is the operation's primary answer: whether a finite-weight path
// from start to target exists. Dist and Prev expose the full single-source
// computation as a richer extension; the dispatch surface in package
// algorithms consumes Reachable only.
type Result struct {
	// Reachable reports whether target's final distance is finite.
	Reachable bool

	// Dist maps each node index to its shortest distance from start;
	// math.Inf(1) for unreachable nodes.
	Dist []float64

	// Prev maps each node to its predecessor on a shortest path, -1 for
	// the start node and unreachable nodes. Nil unless WithPredecessors
	// was supplied.
	Prev []int
}
