// Package algorithms is the identifier-dispatched entry point over the
// graph engines.
//
// What
//
//   - Exec(g, algorithmID, start, target, visit, user) routes a textual
//     algorithm identifier to bfs, dfs, or dijkstra and reports a
//     fossilalgo.Status.
//   - A shared, ordered validation pipeline runs before any engine work:
//     handle and identifier presence, non-empty graph, identifier
//     membership, then algorithm-specific argument checks. Nothing partial is
//     ever produced on a validation failure, and the visitor is never
//     invoked.
//   - Supported and RequiresWeights are pure companion queries. The
//     identifier sets differ on purpose: bellman-ford and floyd-warshall
//     are weight-requiring identifiers Exec does not implement, and the
//     queries are the only way to distinguish "recognized but not
//     implemented" from "unknown" — Exec returns UnsupportedAlgorithm for
//     both.
//
// Status mapping
//
//	OK(0)                   success; for dijkstra, a path exists
//	Failed(-1)              dijkstra target unreachable
//	InvalidInput(-2)        nil graph, empty identifier, empty graph,
//	                        out-of-range node index
//	UnsupportedAlgorithm(-3) unknown or unimplemented identifier
//	UnsupportedConfig(-4)   dijkstra on an unweighted graph
//
// Exec holds no state between calls; concurrent calls against the same
// read-only graph are safe.
package algorithms
