// Package algorithms defines the textual identifiers of the graph dispatch
// surface and the pure companion queries over them.
package algorithms

// Algorithm identifiers accepted by Exec.
const (
	// AlgoBFS is breadth-first traversal.
	AlgoBFS = "bfs"

	// AlgoDFS is depth-first traversal.
	AlgoDFS = "dfs"

	// AlgoDijkstra is single-source shortest path on weighted graphs.
	AlgoDijkstra = "dijkstra"

	// AlgoBellmanFord and AlgoFloydWarshall are recognized weight-requiring
	// identifiers that this library does not implement. Exec reports them
	// as unsupported; only RequiresWeights distinguishes them from truly
	// unknown identifiers.
	AlgoBellmanFord   = "bellman-ford"
	AlgoFloydWarshall = "floyd-warshall"
)

// Supported reports whether Exec implements algorithmID. The supported set
// is exactly {bfs, dfs, dijkstra}. Safe to call with an empty identifier
// (reports false). Pure and stateless.
func Supported(algorithmID string) bool {
	switch algorithmID {
	case AlgoBFS, AlgoDFS, AlgoDijkstra:
		return true
	default:
		return false
	}
}

// RequiresWeights reports whether algorithmID needs a weighted graph. It
// answers for recognized identifiers beyond the implemented set
// (bellman-ford, floyd-warshall), letting callers tell "recognized but not
// implemented here" apart from "unknown". Safe to call with an empty
// identifier (reports false). Pure and stateless.
func RequiresWeights(algorithmID string) bool {
	switch algorithmID {
	case AlgoDijkstra, AlgoBellmanFord, AlgoFloydWarshall:
		return true
	default:
		return false
	}
}
