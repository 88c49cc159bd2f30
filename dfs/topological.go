package dfs

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathgraph/graph"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V cmp.Ordered, E graph.Weight] struct {
	graph graph.Graph[V, E]
	opts  topoOptions
	state map[V]int // White, Gray or Black
	order []V       // post-order
}

// TopologicalSort returns the vertices of g such that for every edge u→v,
// u comes before v. The order is deterministic: vertices without a mutual
// constraint keep ascending order where the DFS allows it. A cycle makes it
// fail with ErrCycleDetected. A nil g yields an empty order.
//
// Complexity: O(V + E).
func TopologicalSort[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], options ...TopoOption) ([]V, error) {
	// 1. Apply optional settings
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	// 2. Initialize sorter state
	verts := g.Vertices()
	s := &topoSorter[V, E]{
		graph: g,
		opts:  opts,
		state: make(map[V]int, len(verts)),
		order: make([]V, 0, len(verts)),
	}

	// 3. Drive DFS from every unvisited vertex, largest first, so that the
	//    reversed post-order lists independent vertices in ascending order.
	for i := len(verts) - 1; i >= 0; i-- {
		if s.state[verts[i]] == White {
			if err := s.visit(verts[i]); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse post-order
	slices.Reverse(s.order)

	return s.order, nil
}

func (s *topoSorter[V, E]) visit(v V) error {
	// 1. Cancellation check at entry
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}

	// 2. Gray means a back edge
	switch s.state[v] {
	case Gray:
		return fmt.Errorf("%w: through %v", ErrCycleDetected, v)
	case Black:
		return nil
	}
	s.state[v] = Gray

	// 3. Explore outgoing edges, largest first (see TopologicalSort)
	nbs := s.graph.Neighbors(v)
	for i := len(nbs) - 1; i >= 0; i-- {
		if err := s.visit(nbs[i]); err != nil {
			return err
		}
	}

	// 4. Finish
	s.state[v] = Black
	s.order = append(s.order, v)

	return nil
}
