// Package dfs implements depth-first traversal, objective search,
// reachability, cycle detection and topological sort on graph.Graph.
//
// What:
//
//   - DFS: recursive walk from a start vertex (or the whole forest) with
//     pre- and post-order hooks, a depth limit, neighbor filtering and
//     cancellation. Reports post-order, depth, parent and visited maps.
//   - Search: iterative stack walk that records the visit history until an
//     objective vertex is popped.
//   - Reachable: the set of vertices reachable from a source.
//   - DetectCycles: cycles closed by back edges, canonically rotated.
//   - TopologicalSort: linear order of a DAG, ErrCycleDetected otherwise.
//
// Determinism:
//
//   - Vertices and neighbors are always visited in ascending order, so every
//     function returns the same answer for the same graph.
//
// Complexity:
//
//   - DFS, Search, Reachable, TopologicalSort: Time O(V+E), Memory O(V).
//   - DetectCycles: Time O(V+E + C·L), Memory O(V + L_max)
//     (C = #cycles reported, L = average cycle length).
//
// Errors:
//
//   - ErrStartVertexNotFound  start vertex is not a key of the graph
//   - ErrCycleDetected        TopologicalSort found a cycle
//   - context.Canceled        traversal cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
