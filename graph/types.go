package graph

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Weight is the set of edge-weight types: totally ordered numbers that
// support addition, subtraction and negation.
type Weight interface {
	constraints.Signed | constraints.Float
}

// Graph is a weighted directed graph stored as adjacency mappings.
//
// g[u][v] = w records the edge u→v with weight w. Every key of the outer map
// is a vertex; a vertex without outgoing edges maps to an empty inner map.
// A nil Graph behaves as an empty graph for every read operation.
type Graph[V cmp.Ordered, E Weight] map[V]map[V]E

// Edge is a single directed, weighted edge as reported by Graph.Edges.
type Edge[V cmp.Ordered, E Weight] struct {
	From   V // source vertex
	To     V // destination vertex
	Weight E // edge cost, may be negative
}

// New returns an empty Graph ready for AddEdge.
func New[V cmp.Ordered, E Weight]() Graph[V, E] {
	return make(Graph[V, E])
}
