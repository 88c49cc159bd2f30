package dfs

import (
	"cmp"
	"context"
	"errors"
)

// Visitation states used by cycle detection and topological sort.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // vertex and all descendants explored
)

var (
	// ErrStartVertexNotFound indicates that the start vertex is not a key of
	// the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option[V cmp.Ordered] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V cmp.Ordered] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v V) error

	// OnExit, if non-nil, runs after all descendants of a vertex have been
	// explored, before it is appended to Result.Order.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, decides whether to descend into a neighbor.
	FilterNeighbor func(v V) bool

	// FullTraversal restarts DFS from every unvisited vertex.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks, no
// depth limit and single-source traversal.
func DefaultOptions[V cmp.Ordered]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext[V cmp.Ordered](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[V cmp.Ordered](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[V cmp.Ordered](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth[V cmp.Ordered](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips every neighbor for which fn returns false.
// Skipped neighbors are counted in Result.SkippedNeighbors.
func WithFilterNeighbor[V cmp.Ordered](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes DFS cover every component, ignoring the start.
func WithFullTraversal[V cmp.Ordered]() Option[V] {
	return func(o *Options[V]) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[V cmp.Ordered] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each visited vertex to its number of edges from its tree root.
	Depth map[V]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots are absent.
	Parent map[V]V

	// Visited flags which vertices were reached.
	Visited map[V]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
