// Package dijkstra implements label-setting single-source shortest paths
// on weighted graphs.
//
// What
//
//   - Maintain a distance estimate per node (start = 0, all others +Inf)
//     and a settled flag per node.
//   - Repeatedly settle the unsettled node with the minimum finite
//     estimate, then relax its outgoing edges by keeping the minimum of
//     the neighbor's estimate and dist[u]+weight.
//   - Terminate when no unsettled node has a finite estimate; nodes left
//     at +Inf are unreachable.
//   - Minimum selection is a linear scan in node-index order: among equal
//     estimates the lowest index settles first. The tie-break affects
//     relaxation order only, never final distances — it exists so tests
//     are deterministic.
//
// Result surface
//
//	Result.Reachable answers the existence question for the target.
//	Result.Dist (and optionally Result.Prev via WithPredecessors) expose
//	the full distance table as an extension for direct package users; the
//	dispatch surface in package algorithms reports reachability only.
//
// Negative weights
//
//	The default mode performs the classic relaxation with no guard, which
//	is only correct for non-negative weights and silently wrong otherwise.
//	WithNegativeWeightCheck hardens the call: every edge is scanned up
//	front and ErrNegativeWeight returned before any relaxation.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V² + E) with the linear scan. A priority queue would
//     tighten this without changing observable results.
//   - Memory: O(V) per call, released on every exit path.
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrUnweightedGraph  if the graph is not marked weighted.
//   - ErrEmptyGraph       if the graph has zero nodes.
//   - ErrNodeOutOfRange   if start or target is out of bounds.
//   - ErrNegativeWeight   under WithNegativeWeightCheck only.
package dijkstra
