// Package dijkstra implements Dijkstra's shortest-path algorithm on
// graph.Graph with non-negative edge weights.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly. The
// result has the same shape as bellmanford.ShortestPaths, so the two are
// interchangeable whenever no edge is negative.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Equal distances pop in ascending vertex order, so results are deterministic.
//
// Options:
//
//   - WithMaxDistance(x):       vertices farther than x are not reported (x ≥ 0).
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are skipped (t > 0).
//   - WithContext(ctx):         cancellation, checked before every extraction.
//   - WithLogger(l):            zap debug output.
//
// Errors (sentinel):
//
//   - ErrNegativeWeight  if a negative edge weight is detected in the graph.
//   - ErrBadMaxDistance  (panic) if WithMaxDistance gets a negative value.
//   - ErrBadInfThreshold (panic) if WithInfEdgeThreshold gets zero or less.
package dijkstra
