package graph

import (
	"cmp"
	"slices"
)

// Record is the per-vertex outcome of a single-source search.
//
// It is a tagged variant: the search root carries no predecessor and no
// distance, every other reached vertex carries the vertex immediately before
// it on its shortest known path and the total weight of that path.
// The zero Record is a root record.
type Record[V cmp.Ordered, E Weight] struct {
	pred    V
	dist    E
	reached bool // false for the root
}

// Root returns the record of the search source.
func Root[V cmp.Ordered, E Weight]() Record[V, E] {
	return Record[V, E]{}
}

// Via returns the record of a vertex reached from pred with total distance dist.
func Via[V cmp.Ordered, E Weight](pred V, dist E) Record[V, E] {
	return Record[V, E]{pred: pred, dist: dist, reached: true}
}

// IsRoot reports whether r is the source record.
func (r Record[V, E]) IsRoot() bool {
	return !r.reached
}

// Predecessor returns the previous vertex on the path, or false for the root.
func (r Record[V, E]) Predecessor() (V, bool) {
	return r.pred, r.reached
}

// Distance returns the total path weight. The root is at distance zero.
func (r Record[V, E]) Distance() E {
	return r.dist
}

// Paths maps every vertex reached by a single-source search to its Record.
// Vertices that were not reached are absent.
type Paths[V cmp.Ordered, E Weight] map[V]Record[V, E]

// Vertices returns the reached vertices in ascending order.
func (p Paths[V, E]) Vertices() []V {
	out := make([]V, 0, len(p))
	for v := range p {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Source returns the root of the search, or false if p has no root record.
func (p Paths[V, E]) Source() (V, bool) {
	for v, r := range p {
		if r.IsRoot() {
			return v, true
		}
	}
	var zero V

	return zero, false
}

// Distance returns the shortest distance to v and whether v was reached.
func (p Paths[V, E]) Distance(v V) (E, bool) {
	r, ok := p[v]

	return r.Distance(), ok
}

// PathTo rebuilds the vertex sequence from the source to v by following
// predecessors. It returns false when v was not reached or when the
// predecessor chain is broken.
//
// Complexity: O(L) where L is the path length.
func (p Paths[V, E]) PathTo(v V) ([]V, bool) {
	if _, ok := p[v]; !ok {
		return nil, false
	}

	// 1) Walk predecessors back to the root, guarding against malformed maps
	//    (a chain longer than len(p) can only be a loop).
	path := []V{v}
	cur := v
	for steps := 0; ; steps++ {
		if steps > len(p) {
			return nil, false
		}
		r, ok := p[cur]
		if !ok {
			return nil, false
		}
		pred, hasPred := r.Predecessor()
		if !hasPred {
			break
		}
		path = append(path, pred)
		cur = pred
	}

	// 2) Reverse into source→v order.
	slices.Reverse(path)

	return path, true
}
