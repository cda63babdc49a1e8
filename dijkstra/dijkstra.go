// Package dijkstra implements the label-setting single-source shortest-path
// algorithm on weighted graphs.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/fossillogic/fossil-algo/core"
)

// Dijkstra computes single-source shortest distances from start on the
// weighted graph g and reports whether target is reachable.
//
// Preconditions, validated in order:
//  1. g non-nil (ErrGraphNil).
//  2. g marked weighted (ErrUnweightedGraph — an unsupported configuration,
//     not invalid input).
//  3. NodeCount > 0 (ErrEmptyGraph).
//  4. start and target within [0, NodeCount) (ErrNodeOutOfRange).
//
// The engine repeatedly settles the unsettled node with the minimum finite
// distance estimate and relaxes its outgoing edges, terminating when no
// unsettled node has a finite estimate. Minimum selection is a linear scan
// in node-index order, so ties settle on the lowest index — relaxation
// order is deterministic; final distances do not depend on the tie-break.
//
// Negative edge weights are not guarded against by default; supply
// WithNegativeWeightCheck to fail fast with ErrNegativeWeight instead.
//
// Complexity: O(V²+E) time, O(V) space per call, all released on return.
func Dijkstra(g core.Graph, start, target int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, node count %d", ErrNodeOutOfRange, start, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target=%d, node count %d", ErrNodeOutOfRange, target, n)
	}

	if o.NegativeWeightCheck {
		if err := scanNegative(g); err != nil {
			return nil, err
		}
	}

	r := &runner{
		g:       g,
		dist:    make([]float64, n),
		settled: make([]bool, n),
	}
	if o.Predecessors {
		r.prev = make([]int, n)
	}
	r.init(start)
	r.process()

	return &Result{
		Reachable: !math.IsInf(r.dist[target], 1),
		Dist:      r.dist,
		Prev:      r.prev,
	}, nil
}

// scanNegative walks every recorded edge once, failing on the first
// negative weight.
func scanNegative(g core.Graph) error {
	for node := 0; node < g.NodeCount(); node++ {
		for _, e := range g.OutEdges(node) {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, node, e.To, e.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       core.Graph
	dist    []float64 // current best distance per node, +Inf if unknown
	settled []bool    // true once a node's distance is final
	prev    []int     // predecessor per node, nil unless requested
}

// init sets every estimate to +Inf except start = 0.
func (r *runner) init(start int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	r.dist[start] = 0
	for i := range r.prev {
		r.prev[i] = -1
	}
}

// process settles nodes in order of increasing distance until no unsettled
// node has a finite estimate.
func (r *runner) process() {
	for {
		u := r.minUnsettled()
		if u < 0 {
			return // remaining nodes are unreachable
		}
		r.settled[u] = true
		r.relax(u)
	}
}

// minUnsettled returns the unsettled node with the minimum finite distance
// estimate, or -1 if none remains. The scan runs in node-index order, which
// fixes the tie-break among equal estimates.
func (r *runner) minUnsettled() int {
	best := -1
	for i, d := range r.dist {
		if r.settled[i] || math.IsInf(d, 1) {
			continue
		}
		if best < 0 || d < r.dist[best] {
			best = i
		}
	}

	return best
}

// relax compares dist[u]+weight against each neighbor's estimate, keeping
// the minimum. Assumes dist[u] is final.
func (r *runner) relax(u int) {
	for _, e := range r.g.OutEdges(u) {
		alt := r.dist[u] + e.Weight
		if alt < r.dist[e.To] {
			r.dist[e.To] = alt
			if r.prev != nil {
				r.prev[e.To] = u
			}
		}
	}
}
