// Package dfs implements pre-order depth-first traversal on a core.Graph.
//
// What
//
//   - Visit every node reachable from a start node exactly once, marking
//     each node and invoking the visitor immediately on entry, before
//     recursing into its unvisited neighbors in edge-list order.
//   - A node is therefore visited before any node only reachable through
//     it (pre-order property).
//   - A core.Visitor returning false unwinds the traversal; an optional
//     post-order OnExit hook fires after a node's descendants complete.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the visited set and recursion, per call.
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrEmptyGraph       if the graph has zero nodes.
//   - ErrStartOutOfRange  if start is outside [0, NodeCount).
package dfs
