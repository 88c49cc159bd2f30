package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/pathgraph/graph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V cmp.Ordered] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V cmp.Ordered, E graph.Weight] struct {
	graph   graph.Graph[V, E]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Edge weights are ignored: Depth counts edges.
// Neighbors are enqueued in ascending order, so the visit order is
// reproducible.
//
// Returns ErrStartVertexNotFound when start is not a vertex of g,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On error the partial result is returned.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], start V, opts ...Option[V]) (*Result[V], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[V, E]) enqueue(v V, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[V]{id: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per vertex)
		select {
		case <-w.ctx.Done():
			return fmt.Errorf("bfs: %w", w.ctx.Err())
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V, E]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V, E]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor, recording its parent.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}
}
