package core

import "fmt"

// AdjacencyList is the default Graph backing: a fixed node count and one
// lazily-allocated edge slice per node. Nodes with no recorded edges keep a
// nil slice, which OutEdges exposes as-is; engines treat nil and empty
// identically.
//
// AdjacencyList is not safe for concurrent mutation. Once construction is
// done it may be shared freely across concurrent read-only algorithm calls.
type AdjacencyList struct {
	nodeCount int
	directed  bool
	weighted  bool
	adj       [][]Edge
}

// compile-time interface check
var _ Graph = (*AdjacencyList)(nil)

// NewAdjacencyList creates an adjacency-list graph with nodeCount nodes and
// no edges. A zero-node graph is legal. Negative counts panic with
// ErrNegativeCount: a negative count is a programmer error, not a runtime
// condition.
func NewAdjacencyList(nodeCount int, opts ...Option) *AdjacencyList {
	if nodeCount < 0 {
		panic(fmt.Sprintf("%v: %d", ErrNegativeCount, nodeCount))
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AdjacencyList{
		nodeCount: nodeCount,
		directed:  cfg.directed,
		weighted:  cfg.weighted,
		// adj stays nil until the first edge: "all nodes present but no
		// edges recorded" is a legal state distinguished only by nodeCount.
	}
}

// NodeCount reports the number of nodes fixed at construction.
func (g *AdjacencyList) NodeCount() int { return g.nodeCount }

// Directed reports whether edges are one-way.
func (g *AdjacencyList) Directed() bool { return g.directed }

// Weighted reports whether edge weights are meaningful.
func (g *AdjacencyList) Weighted() bool { return g.weighted }

// OutEdges returns the ordered outgoing edges of node, nil when none were
// recorded. Out-of-range indices also yield nil; engines validate bounds
// before traversal, so this is purely defensive.
func (g *AdjacencyList) OutEdges(node int) []Edge {
	if g.adj == nil || node < 0 || node >= g.nodeCount {
		return nil
	}

	return g.adj[node]
}

// AddEdge appends an edge from→to with the given weight. On undirected
// graphs the mirror edge to→from is recorded as well, so both adjacency
// lists see it. Edges are stored in insertion order; that order fixes
// traversal tie-breaking downstream.
//
// Returns ErrNodeOutOfRange if either endpoint is outside [0, NodeCount),
// or ErrBadWeight for a non-zero weight on an unweighted graph.
func (g *AdjacencyList) AddEdge(from, to int, weight float64) error {
	if from < 0 || from >= g.nodeCount {
		return fmt.Errorf("%w: from=%d, node count %d", ErrNodeOutOfRange, from, g.nodeCount)
	}
	if to < 0 || to >= g.nodeCount {
		return fmt.Errorf("%w: to=%d, node count %d", ErrNodeOutOfRange, to, g.nodeCount)
	}
	if !g.weighted && weight != 0 {
		return fmt.Errorf("%w: weight=%v", ErrBadWeight, weight)
	}

	if g.adj == nil {
		g.adj = make([][]Edge, g.nodeCount)
	}
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Edge{To: from, Weight: weight})
	}

	return nil
}

// EdgeCount reports the number of stored edge records. Mirrored undirected
// edges count once.
func (g *AdjacencyList) EdgeCount() int {
	total := 0
	for _, edges := range g.adj {
		total += len(edges)
	}
	if !g.directed {
		// mirrors were stored twice, self-loops once
		loops := 0
		for node, edges := range g.adj {
			for _, e := range edges {
				if e.To == node {
					loops++
				}
			}
		}

		return (total-loops)/2 + loops
	}

	return total
}
