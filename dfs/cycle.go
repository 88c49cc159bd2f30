package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathgraph/graph"
)

// DetectCycles reports the directed cycles closed by back edges of a DFS
// forest over g. Every cyclic graph yields at least one cycle, but not every
// simple cycle is listed when cycles share vertices.
//
// Each cycle is closed ([v0, v1, ..., v0]) and rotated so that its
// lexicographically minimal rotation comes first; the list is sorted.
// Self-loops are reported as [v, v]. A nil or acyclic g yields (false, nil).
//
// Complexity: O(V + E + C·L).
func DetectCycles[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E]) (bool, [][]V) {
	verts := g.Vertices()
	d := &cycleDetector[V, E]{
		graph: g,
		state: make(map[V]int, len(verts)),
		path:  make([]V, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}

	// 1) Launch from each unvisited vertex
	for _, v := range verts {
		if d.state[v] == White {
			d.visit(v)
		}
	}

	if len(d.cycles) == 0 {
		return false, nil
	}

	// 2) Deterministic output order
	slices.SortFunc(d.cycles, func(a, b []V) int { return slices.Compare(a, b) })

	return true, d.cycles
}

// cycleDetector carries the three-color state of one DetectCycles run.
type cycleDetector[V cmp.Ordered, E graph.Weight] struct {
	graph  graph.Graph[V, E]
	state  map[V]int           // White, Gray or Black
	path   []V                 // current DFS stack
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]V
}

func (d *cycleDetector[V, E]) visit(v V) {
	d.state[v] = Gray
	d.path = append(d.path, v)

	for _, next := range d.graph.Neighbors(v) {
		switch d.state[next] {
		case White:
			d.visit(next)
		case Gray:
			// Back edge v→next closes path[idx(next):].
			d.record(next)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[v] = Black
}

// record extracts the cycle starting at start from the current path,
// canonicalises it and keeps it if unseen.
func (d *cycleDetector[V, E]) record(start V) {
	idx := slices.Index(d.path, start)
	canon := MinimalRotation(d.path[idx:])
	closed := append(canon, canon[0])

	sig := fmt.Sprintf("%#v", closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}
