// Package pathgraph is a small collection of algorithms over weighted
// directed graphs stored as plain adjacency maps.
//
// What is inside?
//
//	graph/           Graph[V, E] (map[V]map[V]E), AddEdge, Paths/Record result types
//	bellmanford/     shortest paths with negative weights, negative-cycle detection
//	dijkstra/        shortest paths for non-negative weights
//	bfs/             breadth-first traversal, fewest-edges paths, layers
//	dfs/             depth-first traversal, search, reachability, cycles, topological sort
//	builder/         deterministic graph generators (path, cycle, grid, random, ...)
//	cmd/pathfinder/  command-line front end reading YAML edge lists
//
// Every algorithm is generic over ordered vertex ids and signed or floating
// weights, never mutates its input and is safe to run concurrently on a graph
// nobody is modifying.
//
// Quick example:
//
//	    A ──4──▶ B
//	    │        ▲
//	    1       -2
//	    ▼        │
//	    C ───────┘
//
//	g := graph.New[string, int]()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 1)
//	g.AddEdge("C", "B", -2)
//	paths, _ := bellmanford.ShortestPaths(g, "A")
//	paths.PathTo("B") // [A C B], distance -1
//
//	go get github.com/katalvlaran/pathgraph
package pathgraph
