package graph

import (
	"cmp"
	"slices"
)

// AddVertex ensures v exists in g with an empty out-edge mapping.
// Calling it for an existing vertex leaves its edges untouched.
func (g Graph[V, E]) AddVertex(v V) {
	if _, ok := g[v]; !ok {
		g[v] = make(map[V]E)
	}
}

// AddEdge inserts the directed edge from→to with weight w, overwriting any
// previous weight for the same pair. Both endpoints are materialised as
// vertices, so to is discoverable even if it has no outgoing edges.
//
// Complexity: O(1) amortized.
func (g Graph[V, E]) AddEdge(from, to V, w E) {
	// 1) Ensure the source has an out-edge map.
	g.AddVertex(from)
	// 2) Insert or overwrite the weight.
	g[from][to] = w
	// 3) Materialise the destination.
	g.AddVertex(to)
}

// AddEdge is the free-function form of Graph.AddEdge.
func AddEdge[V cmp.Ordered, E Weight](g Graph[V, E], from, to V, w E) {
	g.AddEdge(from, to, w)
}

// HasVertex reports whether v is a key of the outer mapping.
func (g Graph[V, E]) HasVertex(v V) bool {
	_, ok := g[v]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g Graph[V, E]) HasEdge(from, to V) bool {
	_, ok := g[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
func (g Graph[V, E]) Weight(from, to V) (E, bool) {
	w, ok := g[from][to]

	return w, ok
}

// Vertices returns every vertex in ascending order.
// Complexity: O(V log V).
func (g Graph[V, E]) Vertices() []V {
	out := make([]V, 0, len(g))
	for v := range g {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns the destinations of v's outgoing edges in ascending
// order. An unknown vertex has no neighbors.
func (g Graph[V, E]) Neighbors(v V) []V {
	edges := g[v]
	out := make([]V, 0, len(edges))
	for to := range edges {
		out = append(out, to)
	}
	slices.Sort(out)

	return out
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g Graph[V, E]) Edges() []Edge[V, E] {
	out := make([]Edge[V, E], 0, g.EdgeCount())
	for _, from := range g.Vertices() {
		for _, to := range g.Neighbors(from) {
			out = append(out, Edge[V, E]{From: from, To: to, Weight: g[from][to]})
		}
	}

	return out
}

// VertexCount returns the number of vertices.
func (g Graph[V, E]) VertexCount() int {
	return len(g)
}

// EdgeCount returns the number of directed edges.
func (g Graph[V, E]) EdgeCount() int {
	n := 0
	for _, edges := range g {
		n += len(edges)
	}

	return n
}

// Clone returns a deep copy of g. Mutating the copy never affects g.
func (g Graph[V, E]) Clone() Graph[V, E] {
	if g == nil {
		return nil
	}
	out := make(Graph[V, E], len(g))
	for from, edges := range g {
		inner := make(map[V]E, len(edges))
		for to, w := range edges {
			inner[to] = w
		}
		out[from] = inner
	}

	return out
}
