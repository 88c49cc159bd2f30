// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/dijkstra"
	"github.com/katalvlaran/pathgraph/graph"
)

// ExampleDijkstra shows the smallest directed graph with a detour.
func ExampleDijkstra() {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	paths, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := paths.Distance("D")
	pred, _ := paths["D"].Predecessor()
	fmt.Printf("dist[D]=%d, prev[D]=%s\n", d, pred)
	// Output: dist[D]=5, prev[D]=B
}

// ExampleWithInfEdgeThreshold uses a threshold to turn heavy edges into walls.
func ExampleWithInfEdgeThreshold() {
	g := graph.New[string, int64]()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 4)
	g.AddEdge("A", "C", 10)

	paths, err := dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(int64(5)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := paths.PathTo("C")
	d, _ := paths.Distance("C")
	fmt.Println(path, d)
	// Output: [A B C] 6
}

// ExampleDijkstra_houseGraph shows Dijkstra on a small directed, weighted graph.
//
//	    (E)
//	  3/   \4
//	  /     \
//	(C)──10─(D)
//	 |       |
//	2|       |5
//	 |       |
//	(A)──4──(B)
func ExampleDijkstra_houseGraph() {
	g := graph.New[string, int64]()
	for _, e := range []struct {
		U, V string
		W    int64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "D", 5},
		{"C", "D", 10},
		{"C", "E", 3},
		{"E", "D", 4},
	} {
		g.AddEdge(e.U, e.V, e.W)
	}
	paths, _ := dijkstra.Dijkstra(g, "A")
	dD, _ := paths.Distance("D")
	dE, _ := paths.Distance("E")
	fmt.Printf("dist[D]=%d dist[E]=%d\n", dD, dE)
	// Output: dist[D]=9 dist[E]=5
}
