// Package algorithms provides the identifier-dispatched entry point over
// the graph engines: Exec routes a textual algorithm identifier plus node
// arguments to bfs, dfs, or dijkstra after a shared validation pipeline.
package algorithms

import (
	fossilalgo "github.com/fossillogic/fossil-algo"
	"github.com/fossillogic/fossil-algo/bfs"
	"github.com/fossillogic/fossil-algo/core"
	"github.com/fossillogic/fossil-algo/dfs"
	"github.com/fossillogic/fossil-algo/dijkstra"
)

// request carries one dispatch call through the validation pipeline.
type request struct {
	g             core.Graph
	id            string
	start, target int
}

// check is one ordered validation step. It returns fossilalgo.OK to pass
// the request on, anything else to short-circuit the call.
type check func(request) fossilalgo.Status

// pipeline is the ordered validation shared by every algorithm. Algorithm-
// specific argument checks (bounds, weightedness) are layered at the end.
// The empty-graph check runs before identifier membership: an empty graph
// reports invalid input for every identifier, known or not.
var pipeline = []check{
	checkHandle,
	checkNonEmpty,
	checkIdentifier,
	checkArguments,
}

// Exec validates the request and routes it to the engine matching
// algorithmID, returning a fossilalgo.Status:
//
//	OK                    the algorithm completed (for dijkstra: a path
//	                      from start to target exists)
//	Failed                dijkstra ran but target is unreachable
//	InvalidInput          nil graph, empty identifier, empty graph, or an
//	                      out-of-range node index
//	UnsupportedAlgorithm  identifier outside {bfs, dfs, dijkstra}
//	UnsupportedConfig     dijkstra on an unweighted graph
//
// target is ignored by bfs and dfs. visit, if non-nil, observes each
// visited node for the traversal algorithms and may stop the traversal
// early by returning false; early stop does not change the status. No
// visitor invocation happens on any validation failure.
//
// Exec is stateless: every invocation is fully independent.
func Exec(g core.Graph, algorithmID string, start, target int, visit core.Visitor, user any) fossilalgo.Status {
	req := request{g: g, id: algorithmID, start: start, target: target}
	for _, c := range pipeline {
		if st := c(req); st != fossilalgo.OK {
			return st
		}
	}

	return run(req, visit, user)
}

// checkHandle rejects a nil graph or empty identifier.
func checkHandle(r request) fossilalgo.Status {
	if r.g == nil || r.id == "" {
		return fossilalgo.InvalidInput
	}

	return fossilalgo.OK
}

// checkIdentifier rejects identifiers outside the implemented set.
// Recognized-but-unimplemented identifiers (bellman-ford, floyd-warshall)
// fail here too; RequiresWeights is the only query that tells them apart
// from unknown ones.
func checkIdentifier(r request) fossilalgo.Status {
	if !Supported(r.id) {
		return fossilalgo.UnsupportedAlgorithm
	}

	return fossilalgo.OK
}

// checkNonEmpty rejects zero-node graphs for every algorithm.
func checkNonEmpty(r request) fossilalgo.Status {
	if r.g.NodeCount() == 0 {
		return fossilalgo.InvalidInput
	}

	return fossilalgo.OK
}

// checkArguments layers the per-algorithm validation: start bounds for the
// traversals; weightedness before start and target bounds for dijkstra.
func checkArguments(r request) fossilalgo.Status {
	n := r.g.NodeCount()
	switch r.id {
	case AlgoBFS, AlgoDFS:
		if r.start < 0 || r.start >= n {
			return fossilalgo.InvalidInput
		}
	case AlgoDijkstra:
		if !r.g.Weighted() {
			return fossilalgo.UnsupportedConfig
		}
		if r.start < 0 || r.start >= n || r.target < 0 || r.target >= n {
			return fossilalgo.InvalidInput
		}
	}

	return fossilalgo.OK
}

// run delegates a fully validated request to its engine and folds the
// engine result into a status code.
func run(r request, visit core.Visitor, user any) fossilalgo.Status {
	switch r.id {
	case AlgoBFS:
		if _, err := bfs.BFS(r.g, r.start, bfs.WithVisitor(visit, user)); err != nil {
			return fossilalgo.InvalidInput // unreachable after the pipeline
		}

		return fossilalgo.OK

	case AlgoDFS:
		if _, err := dfs.DFS(r.g, r.start, dfs.WithVisitor(visit, user)); err != nil {
			return fossilalgo.InvalidInput // unreachable after the pipeline
		}

		return fossilalgo.OK

	case AlgoDijkstra:
		res, err := dijkstra.Dijkstra(r.g, r.start, r.target)
		if err != nil {
			return fossilalgo.InvalidInput // unreachable after the pipeline
		}
		if !res.Reachable {
			return fossilalgo.Failed
		}

		return fossilalgo.OK

	default:
		return fossilalgo.UnsupportedAlgorithm
	}
}
