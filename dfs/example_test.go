package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/dfs"
	"github.com/katalvlaran/pathgraph/graph"
)

// ExampleDFS demonstrates a post-order traversal on a diamond-shaped graph.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func ExampleDFS() {
	g := graph.New[string, int]()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		g.AddEdge(e[0], e[1], 1)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [E F D B C A]
}

// ExampleSearch prints the visit history until the objective is reached.
func ExampleSearch() {
	g := graph.New[int, int]()
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}, {3, 7}} {
		g.AddEdge(e[0], e[1], 1)
	}

	history, ok := dfs.Search(g, 1, 7)
	fmt.Println(history, ok)
	// Output: [1 2 4 5 3 6 7] true
}

// ExampleTopologicalSort orders a small build pipeline.
func ExampleTopologicalSort() {
	g := graph.New[string, int]()
	g.AddEdge("fetch", "compile", 1)
	g.AddEdge("compile", "test", 1)
	g.AddEdge("compile", "package", 1)
	g.AddEdge("test", "package", 1)

	order, err := dfs.TopologicalSort(g)
	fmt.Println(order, err)
	// Output: [fetch compile test package] <nil>
}

// ExampleDetectCycles lists cycles in canonical rotation.
func ExampleDetectCycles() {
	g := graph.New[string, int]()
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "a", -5)
	g.AddEdge("a", "b", 1)

	has, cycles := dfs.DetectCycles(g)
	fmt.Println(has, cycles)
	// Output: true [[a b c a]]
}
