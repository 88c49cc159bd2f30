package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/pathgraph/graph"
)

// Search walks g from root with an explicit stack and returns the history
// of popped vertices up to and including objective.
//
// A vertex is marked when it is pushed, so it is popped at most once and
// keeps the position of its first discovery. The root is marked before the
// walk starts: a cycle leading back to root never lists it a second time. Neighbors are pushed in
// descending order, which makes the smallest one the next to be explored.
// The second result is false when objective is not reachable.
//
// Complexity: O(V + E) time, O(V) memory.
func Search[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], root, objective V) ([]V, bool) {
	marked := map[V]bool{root: true}
	stack := []V{root}
	var history []V

	for len(stack) > 0 {
		// 1) Pop
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		history = append(history, cur)

		// 2) Objective check
		if cur == objective {
			return history, true
		}

		// 3) Push unmarked neighbors, largest first
		nbs := g.Neighbors(cur)
		slices.Reverse(nbs)
		for _, next := range nbs {
			if marked[next] {
				continue
			}
			marked[next] = true
			stack = append(stack, next)
		}
	}

	return nil, false
}

// Reachable returns every vertex reachable from source, source included.
// source does not need to be a key of g.
func Reachable[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], source V) map[V]bool {
	seen := map[V]bool{source: true}
	stack := []V{source}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range g[cur] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}

	return seen
}
