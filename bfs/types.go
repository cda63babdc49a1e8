// Package bfs provides tunable options and error definitions for
// breadth-first traversal over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/fossillogic/fossil-algo/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyGraph is returned when the graph has zero nodes.
	ErrEmptyGraph = errors.New("bfs: graph has no nodes")

	// ErrStartOutOfRange is returned when the start index is outside
	// [0, NodeCount).
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Visitor, if non-nil, is invoked once per visited node in visitation
	// order, receiving the node index and User. Returning false stops the
	// traversal early; early stop is not an error.
	Visitor core.Visitor

	// User is the opaque context handed to Visitor unchanged.
	User any

	// OnEnqueue, if non-nil, is called when a node is discovered and
	// enqueued, before it is visited. Receives the node and its depth.
	OnEnqueue func(node, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no visitor, no enqueue hook, and no
// depth limit.
func DefaultOptions() Options {
	return Options{}
}

// WithVisitor installs the per-node visitor and its opaque user context.
// A nil visitor leaves traversal unobserved.
func WithVisitor(v core.Visitor, user any) Option {
	return func(o *Options) {
		o.Visitor = v
		o.User = user
	}
}

// WithOnEnqueue registers a callback to run on node discovery.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: per-node distance (in edges) from the start; -1 if unreached.
//   - Parent: per-node predecessor in the BFS tree; -1 for the start node
//     and for unreached nodes.
//
// The dispatch surface in package algorithms discards Result and reports
// status only; Result exists for direct package users.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}
