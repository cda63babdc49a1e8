// Package core defines the graph store consumed by the traversal and
// shortest-path engines: the read-only Graph interface, the Edge
// descriptor, the Visitor callback, and the AdjacencyList backing
// representation.
//
// What
//
//   - Graph: opaque read-only view — NodeCount, Directed, Weighted,
//     OutEdges. The concrete layout never leaks to the engines.
//   - AdjacencyList: the default backing; fixed node count, per-node edge
//     slices allocated lazily on first AddEdge.
//   - Edge: destination index plus weight (meaningful only on weighted
//     graphs).
//   - Visitor: per-node callback for traversal observation; returning
//     false requests early termination.
//
// Why
//
//	The engines (bfs, dfs, dijkstra, algorithms) only need structural
//	queries. Hiding the representation behind Graph lets alternative
//	backings (matrix, CSR) slot in without touching any engine, and makes
//	the read-only contract explicit: no operation in this library mutates
//	a graph after construction.
//
// Legal states
//
//	A zero-node graph and a graph with nodes but no recorded edges are
//	both legal, non-error states. OutEdges on an edge-less node returns
//	nil, which every consumer treats as an empty sequence.
//
// Concurrency
//
//	AdjacencyList is not safe for concurrent mutation. After construction
//	it is safe to share across concurrent read-only algorithm calls,
//	because no engine mutates the graph and each call owns its transient
//	working memory exclusively.
package core
