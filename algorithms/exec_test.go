package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fossilalgo "github.com/fossillogic/fossil-algo"
	"github.com/fossillogic/fossil-algo/algorithms"
	"github.com/fossillogic/fossil-algo/core"
)

func TestSupported(t *testing.T) {
	for _, id := range []string{"bfs", "dfs", "dijkstra"} {
		assert.True(t, algorithms.Supported(id), id)
	}
	for _, id := range []string{"mst-kruskal", "bellman-ford", "floyd-warshall", "", "BFS"} {
		assert.False(t, algorithms.Supported(id), id)
	}
}

func TestRequiresWeights(t *testing.T) {
	for _, id := range []string{"dijkstra", "bellman-ford", "floyd-warshall"} {
		assert.True(t, algorithms.RequiresWeights(id), id)
	}
	for _, id := range []string{"bfs", "dfs", "", "mst-prim"} {
		assert.False(t, algorithms.RequiresWeights(id), id)
	}
}

func TestExec_InvalidHandles(t *testing.T) {
	g := core.NewAdjacencyList(1)
	assert.Equal(t, fossilalgo.InvalidInput, algorithms.Exec(nil, "bfs", 0, 0, nil, nil))
	assert.Equal(t, fossilalgo.InvalidInput, algorithms.Exec(g, "", 0, 0, nil, nil))
	assert.Equal(t, fossilalgo.UnsupportedAlgorithm, algorithms.Exec(g, "notalgo", 0, 0, nil, nil))
}

func TestExec_UnsupportedAlgorithm(t *testing.T) {
	g := core.NewAdjacencyList(2, core.WithWeighted())
	// recognized weight-requiring identifiers are still unsupported at Exec
	assert.Equal(t, fossilalgo.UnsupportedAlgorithm, algorithms.Exec(g, "bellman-ford", 0, 1, nil, nil))
	assert.Equal(t, fossilalgo.UnsupportedAlgorithm, algorithms.Exec(g, "floyd-warshall", 0, 1, nil, nil))
	assert.Equal(t, fossilalgo.UnsupportedAlgorithm, algorithms.Exec(g, "mst-kruskal", 0, 1, nil, nil))
}

// TestExec_PipelineOrder pins the validation order: an empty graph reports
// invalid input for every identifier, known or not, and wins over a bad
// node index.
func TestExec_PipelineOrder(t *testing.T) {
	empty := core.NewAdjacencyList(0)
	for _, id := range []string{"bfs", "dfs", "dijkstra", "notalgo", "bellman-ford"} {
		assert.Equal(t, fossilalgo.InvalidInput, algorithms.Exec(empty, id, 9, 9, nil, nil), id)
	}
}

func TestExec_NodeBounds(t *testing.T) {
	g := core.NewAdjacencyList(2)
	assert.Equal(t, fossilalgo.InvalidInput, algorithms.Exec(g, "bfs", 2, 0, nil, nil))
	assert.Equal(t, fossilalgo.InvalidInput, algorithms.Exec(g, "dfs", -1, 0, nil, nil))

	gw := core.NewAdjacencyList(2, core.WithWeighted())
	assert.Equal(t, fossilalgo.InvalidInput, algorithms.Exec(gw, "dijkstra", 5, 1, nil, nil))
	assert.Equal(t, fossilalgo.InvalidInput, algorithms.Exec(gw, "dijkstra", 0, 5, nil, nil))
}

func TestExec_DijkstraUnweighted(t *testing.T) {
	g := core.NewAdjacencyList(2)
	// weightedness precedes bounds: even absurd indices report the
	// configuration problem on an unweighted graph
	assert.Equal(t, fossilalgo.UnsupportedConfig, algorithms.Exec(g, "dijkstra", 0, 1, nil, nil))
	assert.Equal(t, fossilalgo.UnsupportedConfig, algorithms.Exec(g, "dijkstra", 5, 9, nil, nil))
}

func TestExec_TraversalWithVisitor(t *testing.T) {
	g := core.NewAdjacencyList(3)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	for _, id := range []string{"bfs", "dfs"} {
		count := 0
		st := algorithms.Exec(g, id, 0, 0, func(node int, user any) bool {
			*(user.(*int))++
			return true
		}, &count)
		assert.Equal(t, fossilalgo.OK, st, id)
		assert.Equal(t, 3, count, "%s must visit every reachable node once", id)
	}
}

func TestExec_SingleNodeCountingVisitor(t *testing.T) {
	g := core.NewAdjacencyList(1)
	count := 0
	st := algorithms.Exec(g, "bfs", 0, 0, func(node int, user any) bool {
		*(user.(*int))++
		return true
	}, &count)
	assert.Equal(t, fossilalgo.OK, st)
	assert.Equal(t, 1, count)
}

func TestExec_EarlyStopStillOK(t *testing.T) {
	g := core.NewAdjacencyList(4)
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 0))
	}
	for _, id := range []string{"bfs", "dfs"} {
		calls := 0
		st := algorithms.Exec(g, id, 0, 0, func(int, any) bool {
			calls++
			return false
		}, nil)
		assert.Equal(t, fossilalgo.OK, st, "%s: early stop reports structural success", id)
		assert.Equal(t, 1, calls, id)
	}
}

func TestExec_NilVisitor(t *testing.T) {
	g := core.NewAdjacencyList(2)
	require.NoError(t, g.AddEdge(0, 1, 0))
	assert.Equal(t, fossilalgo.OK, algorithms.Exec(g, "bfs", 0, 0, nil, nil))
	assert.Equal(t, fossilalgo.OK, algorithms.Exec(g, "dfs", 0, 0, nil, nil))
}

func TestExec_DijkstraReachability(t *testing.T) {
	// weighted 2-node graph, no edge: unreachable
	g := core.NewAdjacencyList(2, core.WithWeighted())
	assert.Equal(t, fossilalgo.Failed, algorithms.Exec(g, "dijkstra", 0, 1, nil, nil))

	require.NoError(t, g.AddEdge(0, 1, 2.5))
	assert.Equal(t, fossilalgo.OK, algorithms.Exec(g, "dijkstra", 0, 1, nil, nil))
	// target equals start is trivially reachable
	assert.Equal(t, fossilalgo.OK, algorithms.Exec(g, "dijkstra", 0, 0, nil, nil))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", fossilalgo.OK.String())
	assert.Equal(t, "failed", fossilalgo.Failed.String())
	assert.Equal(t, "invalid input", fossilalgo.InvalidInput.String())
	assert.Equal(t, "unsupported algorithm", fossilalgo.UnsupportedAlgorithm.String())
	assert.Equal(t, "unsupported configuration", fossilalgo.UnsupportedConfig.String())
}
