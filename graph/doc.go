// Package graph defines the weighted directed graph value shared by every
// shortest-path and traversal package in pathgraph, together with the
// result types those algorithms return.
//
// What:
//
//   - Graph[V, E] is a plain mapping of mappings: g[u][v] = w means a directed
//     edge u→v with weight w. The outer keys are the vertex set.
//   - AddEdge inserts or overwrites an edge and always materialises both
//     endpoints, so a vertex with no outgoing edges is still discoverable.
//   - Record[V, E] is a tagged variant: either the root of a search (no
//     predecessor) or "reached via pred at distance d".
//   - Paths[V, E] maps every reached vertex to its Record.
//
// Type parameters:
//
//   - V: any cmp.Ordered identifier (int, string, rune, ...). Ordering is used
//     only to make iteration deterministic.
//   - E: any signed integer or float type (see Weight). Weights may be negative.
//
// Determinism:
//
//   - Vertices(), Neighbors() and Edges() return results sorted ascending, so
//     algorithms that iterate through them visit edges in the same order on
//     every run.
//
// Concurrency:
//
//   - A Graph is an ordinary Go map. Concurrent reads are safe; any mutation
//     must be synchronised by the caller.
//
// Example:
//
//	g := graph.New[string, int]()
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "C", -1)
//	fmt.Println(g.Vertices()) // [A B C]
package graph
