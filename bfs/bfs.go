// Package bfs provides breadth-first traversal over a core.Graph,
// returning visit order, unweighted distances, and parent links.
package bfs

import (
	"github.com/fossillogic/fossil-algo/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state for a single call.
// All of it is allocated at call entry and unreferenced on return,
// whichever exit path is taken.
type walker struct {
	graph   core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first traversal on g starting from start, visiting every
// node reachable from start exactly once in FIFO frontier order. Within a
// node's edge list, neighbors are discovered in stored order, which fixes
// tie-breaking among equally-distant nodes.
//
// A visitor installed via WithVisitor observes each node as it is visited;
// returning false stops the traversal immediately. Early termination leaves
// the returned error nil — the result reports structural success, not
// whether traversal was exhaustive.
//
// Returns ErrGraphNil, ErrEmptyGraph, or ErrStartOutOfRange for invalid
// input (no visitor invocation happens in that case), or ErrOptionViolation
// for a bad option.
func BFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res:     newResult(n),
	}

	// Seed the frontier with start; discovery happens on enqueue.
	w.enqueue(start, 0, -1)
	w.loop()

	return w.res, nil
}

// newResult allocates a Result with Depth and Parent preset to -1.
func newResult(n int) *Result {
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return res
}

// enqueue marks node discovered at depth d, records its parent, invokes
// OnEnqueue, and appends it to the frontier. Marking on enqueue (not on
// dequeue) prevents duplicate enqueue.
func (w *walker) enqueue(node, d, parent int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	if w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(node, d)
	}
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the frontier until it drains or the visitor requests stop.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if !w.visit(item) {
			return
		}
		w.enqueueNeighbors(item)
	}
}

// visit records the node in Order and invokes the visitor. Reports false
// when the visitor requested early termination.
func (w *walker) visit(item queueItem) bool {
	w.res.Order = append(w.res.Order, item.node)
	if w.opts.Visitor != nil {
		return w.opts.Visitor(item.node, w.opts.User)
	}

	return true
}

// enqueueNeighbors walks the node's edge list in stored order, applying the
// MaxDepth limit and enqueueing each undiscovered neighbor. A nil edge list
// (absent adjacency) behaves as a node with no outgoing edges.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.OutEdges(item.node) {
		if !w.visited[e.To] {
			w.enqueue(e.To, nextDepth, item.node)
		}
	}
}
