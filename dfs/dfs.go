// Package dfs implements pre-order depth-first traversal on a core.Graph.
package dfs

import (
	"github.com/fossillogic/fossil-algo/core"
)

// walker encapsulates mutable DFS state for a single call.
type walker struct {
	graph   core.Graph
	opts    Options
	visited []bool
	res     *Result
}

// DFS performs depth-first traversal on g starting from start, visiting
// every node reachable from start exactly once. The visit is pre-order: a
// node is marked visited and the visitor invoked immediately upon entry,
// before recursing into its unvisited neighbors in edge-list order.
//
// A visitor returning false unwinds the traversal immediately; already
// visited nodes stay recorded and the returned error is nil — early stop is
// not an error.
//
// Returns ErrGraphNil, ErrEmptyGraph, or ErrStartOutOfRange for invalid
// input; no visitor invocation happens in that case.
func DFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &walker{graph: g, opts: o, visited: make([]bool, n), res: res}
	w.traverse(start, 0, -1)

	return res, nil
}

// traverse visits node at the given depth, then recurses into unvisited
// neighbors in edge-list order. Reports false once the visitor requested
// early termination, unwinding all pending recursion.
func (w *walker) traverse(node, depth, parent int) bool {
	// pre-order: mark and visit on entry
	w.visited[node] = true
	w.res.Depth[node] = depth
	w.res.Parent[node] = parent
	w.res.Order = append(w.res.Order, node)

	if w.opts.Visitor != nil && !w.opts.Visitor(node, w.opts.User) {
		return false
	}

	// nil edge list (absent adjacency) ranges as empty
	for _, e := range w.graph.OutEdges(node) {
		if !w.visited[e.To] {
			if !w.traverse(e.To, depth+1, node) {
				return false
			}
		}
	}

	if w.opts.OnExit != nil {
		w.opts.OnExit(node)
	}

	return true
}
