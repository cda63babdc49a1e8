// Package fossilalgo is a small library of generic, identifier-dispatched
// algorithm routines: graph traversal and shortest paths, string
// search/transform helpers, dynamic-programming toy solvers, and stub
// machine-learning / language-model interfaces.
//
// Every algorithm family lives in its own subpackage and is reachable two
// ways: a plain Go API (typed arguments, sentinel errors, functional
// options) and a textual exec surface that dispatches on an algorithm
// identifier and reports through the shared integer Status codes defined
// in this package.
//
// Subpackages:
//
//	core/       — graph store: Graph interface, Edge, Visitor, adjacency list
//	bfs/        — breadth-first traversal
//	dfs/        — depth-first traversal (pre-order)
//	dijkstra/   — single-source shortest paths
//	algorithms/ — identifier dispatch over the graph engines
//	text/       — string search, comparison, and transforms
//	dynamic/    — dynamic-programming solvers (fib, knapsack, lcs)
//	ml/         — linear-regression and k-means stubs
//	lm/         — language-model stub interfaces
//
// Quick example:
//
//	g := core.NewAdjacencyList(4, core.WithWeighted())
//	g.AddEdge(0, 1, 2)
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(0, 3, 7)
//
//	st := algorithms.Exec(g, algorithms.AlgoDijkstra, 0, 2, nil, nil)
//	// st == fossilalgo.OK: a path 0→2 exists
//
// The library is pure Go with no runtime dependencies, performs no I/O, and
// holds no state between calls beyond what the caller owns.
package fossilalgo
