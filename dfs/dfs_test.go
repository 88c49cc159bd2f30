package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgraph/dfs"
	"github.com/katalvlaran/pathgraph/graph"
)

// buildChain creates a directed chain 0→1→…→n-1.
func buildChain(n int) graph.Graph[int, int] {
	g := graph.New[int, int]()
	g.AddVertex(0)
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1, 1)
	}

	return g
}

// buildBinaryTree creates a complete binary tree with vertices 1..2^depth-1,
// where i has children 2i and 2i+1.
func buildBinaryTree(depth int) graph.Graph[int, int] {
	g := graph.New[int, int]()
	g.AddVertex(1)
	last := (1 << depth) - 1
	for i := 2; i <= last; i++ {
		g.AddEdge(i/2, i, 1)
	}

	return g
}

// diamond is A→{B,C}, {B,C}→D, D→{E,F}.
func diamond() graph.Graph[string, int] {
	g := graph.New[string, int]()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		g.AddEdge(e[0], e[1], 1)
	}

	return g
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(graph.New[string, int](), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorContains(t, err, "X")
}

func TestDFS_NilGraphFullTraversal(t *testing.T) {
	var g graph.Graph[string, int]
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Visited)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := graph.New[string, int]()
	g.AddVertex("X")

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "A", -1)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, 2, res.Depth["C"])
}

func TestDFS_Diamond(t *testing.T) {
	var pre []string
	res, err := dfs.DFS(diamond(), "A", dfs.WithOnVisit(func(v string) error {
		pre = append(pre, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, pre)
	assert.Equal(t, []string{"E", "F", "D", "B", "C", "A"}, res.Order)
	assert.Equal(t, "B", res.Parent["D"], "D is discovered through B first")
}

func TestDFS_Disconnected(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddVertex("C")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "disconnected vertex should not be visited")
}

func TestDFS_FullTraversal(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)
	g.AddVertex("E")

	res, err := dfs.DFS(g, "ignored", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D", "C", "E"}, res.Order)
	assert.Len(t, res.Visited, 5)
	assert.Equal(t, 0, res.Depth["C"], "each tree root starts at depth 0")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.False(t, res.Visited["B"])

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.NotContains(t, res.Parent, "C")
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(v string) bool {
		return v != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	res, err := dfs.DFS(diamond(), "A", dfs.WithOnVisit(func(v string) error {
		if v == "D" {
			return stop
		}
		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, "OnVisit hook for D")
	assert.Empty(t, res.Order)
	assert.True(t, res.Visited["D"])
}

func TestDFS_OnExitError(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)

	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(v string) error {
		if v == "B" {
			return errors.New("halt at B on exit")
		}
		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for B")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildChain(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(g, 0, dfs.WithContext[int](ctx))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no completion when canceled immediately")
}

func TestDFS_LargeChain_PostOrderDepthParent(t *testing.T) {
	const n = 10
	res, err := dfs.DFS(buildChain(n), 0)
	require.NoError(t, err)

	expected := make([]int, n)
	for i := range expected {
		expected[i] = n - 1 - i
	}
	assert.Equal(t, expected, res.Order, "chain post-order reversed")
	assert.Equal(t, n-1, res.Depth[n-1])
	assert.Equal(t, n-2, res.Parent[n-1])
}

func TestDFS_BinaryTree_TraversalAndVisited(t *testing.T) {
	const depth = 4 // 15 nodes
	res, err := dfs.DFS(buildBinaryTree(depth), 1)
	require.NoError(t, err)

	assert.Len(t, res.Visited, 15)
	assert.Equal(t, []int{8, 9, 4, 10, 11, 5, 2, 12, 13, 6, 14, 15, 7, 3, 1}, res.Order)
	for v := 2; v <= 15; v++ {
		assert.Equal(t, v/2, res.Parent[v])
	}
	assert.Equal(t, 3, res.Depth[15])
}
