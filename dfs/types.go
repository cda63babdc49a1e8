// Package dfs defines options and error definitions for depth-first
// traversal over a core.Graph.
package dfs

import (
	"errors"

	"github.com/fossillogic/fossil-algo/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrEmptyGraph is returned when the graph has zero nodes.
	ErrEmptyGraph = errors.New("dfs: graph has no nodes")

	// ErrStartOutOfRange is returned when the start index is outside
	// [0, NodeCount).
	ErrStartOutOfRange = errors.New("dfs: start node out of range")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Visitor, if non-nil, is invoked in pre-order: immediately upon entry
	// to a node, before its unvisited neighbors are explored. Returning
	// false unwinds the whole traversal; early stop is not an error.
	Visitor core.Visitor

	// User is the opaque context handed to Visitor unchanged.
	User any

	// OnExit, if non-nil, is invoked post-order, after all of a node's
	// descendants have been explored.
	OnExit func(node int)
}

// DefaultOptions returns Options with no visitor and no exit hook.
func DefaultOptions() Options {
	return Options{}
}

// WithVisitor installs the pre-order visitor and its opaque user context.
func WithVisitor(v core.Visitor, user any) Option {
	return func(o *Options) {
		o.Visitor = v
		o.User = user
	}
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(node int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// Result captures the outcome of a depth-first traversal:
//   - Order: nodes in pre-order visit sequence.
//   - Depth: per-node recursion depth from the start; -1 if unreached.
//   - Parent: per-node discovery predecessor; -1 for start and unreached.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}
