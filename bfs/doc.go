// Package bfs provides breadth-first traversal over a core.Graph,
// returning visit order, unweighted shortest-path depths, and parent links.
//
// What
//
//   - Explore nodes in non-decreasing edge-count distance from a start node.
//   - FIFO frontier seeded with start; a node is marked discovered the
//     moment it is enqueued, never enqueued twice.
//   - Within one node's edge list, neighbors are discovered in stored
//     order — the tie-break among equally-distant nodes is therefore the
//     edge insertion order, fully reproducible.
//   - A core.Visitor installed with WithVisitor observes every visit and
//     may stop the traversal early by returning false; early stop is not
//     an error.
//
// Why
//
//   - Unweighted shortest paths and level layering in O(V + E).
//   - Reachability: exactly the nodes reachable from start appear in
//     Result.Order, each once.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) per call, released on every exit path.
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrEmptyGraph       if the graph has zero nodes.
//   - ErrStartOutOfRange  if start is outside [0, NodeCount).
//   - ErrOptionViolation  for an invalid option (negative MaxDepth).
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithVisitor(func(node int, user any) bool {
//	        *(user.(*int))++
//	        return true // false stops early
//	    }, &count),
//	)
package bfs
