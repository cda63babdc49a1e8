package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fossillogic/fossil-algo/bfs"
	"github.com/fossillogic/fossil-algo/core"
)

// chain builds 0→1→2→…→(n-1) as a directed unweighted graph.
func chain(n int) *core.AdjacencyList {
	g := core.NewAdjacencyList(n, core.WithDirected())
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(i, i+1, 0); err != nil {
			panic(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected
// before any visitor invocation.
func TestBFS_Errors(t *testing.T) {
	visited := 0
	spy := bfs.WithVisitor(func(int, any) bool { visited++; return true }, nil)

	if _, err := bfs.BFS(nil, 0, spy); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.BFS(core.NewAdjacencyList(0), 0, spy); !errors.Is(err, bfs.ErrEmptyGraph) {
		t.Errorf("empty graph: want ErrEmptyGraph, got %v", err)
	}
	g := core.NewAdjacencyList(2)
	if _, err := bfs.BFS(g, 2, spy); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("start == node count: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, -1, spy); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("negative start: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if visited != 0 {
		t.Errorf("visitor invoked %d times on failed preconditions; want 0", visited)
	}
}

// TestBFS_SingleNode covers the trivial one-node graph with a counting visitor.
func TestBFS_SingleNode(t *testing.T) {
	g := core.NewAdjacencyList(1)
	count := 0
	res, err := bfs.BFS(g, 0, bfs.WithVisitor(func(node int, user any) bool {
		*(user.(*int))++
		return true
	}, &count))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("visitor invoked %d times; want exactly 1", count)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_LayerOrder pins the FIFO layer property and edge-order tie-break
// on a diamond: 0→{1,2}, 1→3, 2→3.
func TestBFS_LayerOrder(t *testing.T) {
	g := core.NewAdjacencyList(4, core.WithDirected())
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatal(err)
		}
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 1, 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	// node 3 discovered through 1 (first in edge order), not 2
	if res.Parent[3] != 1 {
		t.Errorf("Parent[3] = %d; want 1", res.Parent[3])
	}
}

// TestBFS_UnreachableNodes ensures only the start's component is visited.
func TestBFS_UnreachableNodes(t *testing.T) {
	g := core.NewAdjacencyList(4)
	if err := g.AddEdge(0, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(2, 3, 0); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for _, node := range []int{2, 3} {
		if res.Depth[node] != -1 || res.Parent[node] != -1 {
			t.Errorf("node %d: Depth=%d Parent=%d; want -1,-1", node, res.Depth[node], res.Parent[node])
		}
	}
}

// TestBFS_NoEdgesRecorded treats entirely absent adjacency like a node with
// no outgoing edges: only start is visited.
func TestBFS_NoEdgesRecorded(t *testing.T) {
	g := core.NewAdjacencyList(5)
	res, err := bfs.BFS(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_EarlyStop verifies a false-returning visitor halts traversal while
// the call itself still succeeds.
func TestBFS_EarlyStop(t *testing.T) {
	g := chain(5)
	count := 0
	res, err := bfs.BFS(g, 0, bfs.WithVisitor(func(int, any) bool {
		count++
		return false
	}, nil))
	if err != nil {
		t.Fatalf("early stop must not be an error, got %v", err)
	}
	if count != 1 {
		t.Errorf("visitor invoked %d times; want 1", count)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_MaxDepth checks the optional depth limit (0 means unlimited).
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(4)
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("depth 1: Order = %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); len(res.Order) != 4 {
		t.Errorf("depth 0 (no limit): visited %d nodes; want 4", len(res.Order))
	}
}

// TestBFS_OnEnqueueHook verifies discovery-time observation.
func TestBFS_OnEnqueueHook(t *testing.T) {
	g := chain(3)
	var discovered []int
	_, err := bfs.BFS(g, 0, bfs.WithOnEnqueue(func(node, depth int) {
		discovered = append(discovered, node)
		if depth != node { // chain: depth equals index
			t.Errorf("node %d enqueued at depth %d", node, depth)
		}
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(discovered, want) {
		t.Errorf("enqueue order = %v; want %v", discovered, want)
	}
}

// TestBFS_Cycle ensures each node is visited exactly once on a cycle.
func TestBFS_Cycle(t *testing.T) {
	g := core.NewAdjacencyList(3, core.WithDirected())
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatal(err)
		}
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func BenchmarkBFS_Chain(b *testing.B) {
	g := chain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
