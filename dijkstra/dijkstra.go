package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathgraph/graph"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex reachable in g.
//
// Returns:
//
//   - paths: source → graph.Root(); every other reached v → graph.Via(pred, dist).
//     With WithMaxDistance, vertices beyond the cap are absent.
//   - err:   ErrNegativeWeight (wrapped with the offending edge) if any edge of g
//     is negative, or a wrapped context error if the run was cancelled.
//
// As in bellmanford, source need not be a key of g and a nil g is empty.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], source V, opts ...Option[E]) (graph.Paths[V, E], error) {
	// 1) Build Options
	cfg := DefaultOptions[E]()
	var opt Option[E]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for from, edges := range g {
		for to, w := range edges {
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, from, to, w)
			}
		}
	}

	// 3) Initialize runner and run main loop.
	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("dijkstra: done",
		zap.Int("settled", len(r.visited)),
		zap.Int("reached", len(r.dist)))

	return r.paths(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V cmp.Ordered, E graph.Weight] struct {
	g       graph.Graph[V, E] // read-only input
	options Options[E]
	source  V
	dist    map[V]E    // best known distance; presence means "reached"
	prev    map[V]V    // predecessor on the shortest path
	visited map[V]bool // finalized vertices
	pq      nodePQ[V, E]
}

// newRunner sets dist[source] = 0 and pushes the source onto the heap.
func newRunner[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], source V, cfg Options[E]) *runner[V, E] {
	n := len(g) + 1
	r := &runner[V, E]{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[V]E, n),
		prev:    make(map[V]V, n),
		visited: make(map[V]bool, n),
		pq:      make(nodePQ[V, E], 0, n),
	}
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem[V, E]{id: source, dist: 0})

	return r
}

// process repeatedly extracts the closest unsettled vertex and relaxes its
// outgoing edges until the heap is empty or the closest entry lies beyond
// MaxDistance.
func (r *runner[V, E]) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		// 1) Cancellation check
		select {
		case <-ctx.Done():
			return fmt.Errorf("dijkstra: %w", ctx.Err())
		default:
		}

		// 2) Pop the smallest-distance item, skipping stale entries.
		item := heap.Pop(&r.pq).(*nodeItem[V, E])
		if r.visited[item.id] {
			continue
		}

		// 3) Everything left in the heap is at least this far.
		if r.options.LimitDistance && item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.id] = true
		r.relax(item.id)
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
// Edges at or above InfEdgeThreshold are skipped, as are candidates beyond
// MaxDistance. Only strictly shorter candidates replace a known distance.
func (r *runner[V, E]) relax(u V) {
	du := r.dist[u]
	for v, w := range r.g[u] {
		if r.options.LimitEdges && w >= r.options.InfEdgeThreshold {
			continue
		}
		candidate := du + w
		if r.options.LimitDistance && candidate > r.options.MaxDistance {
			continue
		}
		if dv, known := r.dist[v]; known && candidate >= dv {
			continue
		}
		r.dist[v] = candidate
		r.prev[v] = u
		// Lazy decrease-key: stale entries are ignored when popped.
		heap.Push(&r.pq, &nodeItem[V, E]{id: v, dist: candidate})
	}
}

// paths converts dist and prev into graph.Paths.
func (r *runner[V, E]) paths() graph.Paths[V, E] {
	out := make(graph.Paths[V, E], len(r.dist))
	for v, d := range r.dist {
		if v == r.source {
			out[v] = graph.Root[V, E]()
			continue
		}
		out[v] = graph.Via(r.prev[v], d)
	}

	return out
}

// nodeItem represents a vertex and its distance at push time.
type nodeItem[V cmp.Ordered, E graph.Weight] struct {
	id   V
	dist E
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ[V cmp.Ordered, E graph.Weight] []*nodeItem[V, E]

// Len returns the number of items in the heap.
func (pq nodePQ[V, E]) Len() int { return len(pq) }

// Less orders by distance, then by vertex for deterministic ties.
func (pq nodePQ[V, E]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ[V, E]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ[V, E]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V, E])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[V, E]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
