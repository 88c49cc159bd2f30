// Package bellmanford computes single-source shortest paths on weighted
// directed graphs whose edges may carry negative weights, and reports
// negative-weight cycles instead of returning meaningless distances.
//
// Overview:
//
//   - ShortestPaths relaxes every edge up to |V|-1 times, stopping early once a
//     full pass changes nothing, then runs one more pass purely to detect a
//     negative cycle reachable from the source.
//   - The result is a graph.Paths: the source maps to a root record and every
//     other reachable vertex maps to (predecessor, distance). Unreachable
//     vertices are simply absent; that is success, not failure.
//   - A negative cycle reachable from the source is reported as a
//     *NegativeCycleError (errors.Is(err, ErrNegativeCycle) holds). No partial
//     distances are returned alongside it, because around such a cycle the
//     distances can decrease without bound.
//   - A negative cycle that cannot be reached from the source does not affect
//     the result.
//
// When to use:
//
//   - Graphs with negative edge weights (arbitrage detection, potentials for
//     min-cost flow, difference constraints).
//   - Whenever you need a definitive "no well-defined shortest paths" answer.
//   - For non-negative weights prefer package dijkstra, it is asymptotically
//     faster.
//
// Determinism and ties:
//
//   - Vertices and their out-edges are scanned in ascending order and only a
//     strictly shorter candidate replaces a known distance, so the first
//     candidate discovered wins a tie. Callers must not rely on a particular
//     predecessor when two different paths have the same length.
//
// Complexity:
//
//   - Time:  O(V · E) worst case, O(E) per pass, at most V passes.
//   - Space: O(V) for distance and predecessor maps.
//
// Options:
//
//   - WithContext(ctx): cancellation is checked before every pass.
//   - WithLogger(l):    debug logging of passes and cycle detection (zap).
//
// Errors:
//
//   - ErrNegativeCycle       negative cycle reachable from the source
//     (returned as *NegativeCycleError).
//   - context.Canceled /
//     context.DeadlineExceeded   wrapped, when the context ends mid-run.
//
// Thread safety:
//
//   - ShortestPaths never mutates the graph. Any number of goroutines may run
//     it against the same graph as long as nobody mutates that graph meanwhile.
//
// Example:
//
//	g := graph.New[string, int]()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 1)
//	g.AddEdge("C", "B", -2)
//
//	paths, err := bellmanford.ShortestPaths(g, "A")
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    fmt.Println("no well-defined shortest paths")
//	    return
//	}
//	d, _ := paths.Distance("B") // 1, via C
package bellmanford
