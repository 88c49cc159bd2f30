package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/pathgraph/graph"
)

// walker encapsulates state during DFS.
type walker[V cmp.Ordered, E graph.Weight] struct {
	graph graph.Graph[V, E] // underlying graph
	opts  Options[V]        // traversal options
	res   *Result[V]        // result collector
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// covers every component in ascending vertex order and start is ignored.
// Neighbors are explored in ascending order.
//
// On a hook error or cancellation the partial Result is returned alongside
// the error, with Order cleared.
func DFS[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Apply options
	o := DefaultOptions[V]()
	var fn Option[V]
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Single-source mode: verify start
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	// 3. Initialize result with capacity hint
	n := g.VertexCount()
	res := &Result[V]{
		Order:   make([]V, 0, n),
		Depth:   make(map[V]int, n),
		Parent:  make(map[V]V, n),
		Visited: make(map[V]bool, n),
	}
	w := &walker[V, E]{graph: g, opts: o, res: res}

	// 4. Traverse: forest or single tree
	if !o.FullTraversal {
		if err := w.traverse(start, 0); err != nil {
			res.Order = nil
			return res, err
		}

		return res, nil
	}
	for _, v := range g.Vertices() {
		if res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			res.Order = nil
			return res, err
		}
	}

	return res, nil
}

// traverse visits v at the given depth and recurses into its neighbors.
func (w *walker[V, E]) traverse(v V, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	// 5. Explore each neighbor
	for _, next := range w.graph.Neighbors(v) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[next] {
			continue
		}
		// Depth-limited children are neither visited nor parented.
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[next] = v
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
