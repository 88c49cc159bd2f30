// Package bfs provides breadth-first search over a graph.Graph, returning
// fewest-edges distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//     Edge weights are ignored.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Graph.Neighbors returns vertices in ascending order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	)
//	path, err := res.PathTo("goal")
//
// Errors
//
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for unreached vertices.
//   - Wrapped context errors and user-supplied hook errors from OnVisit.
package bfs
