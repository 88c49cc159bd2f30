package bellmanford

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathgraph/graph"
)

// ShortestPaths computes the shortest distance and predecessor of every
// vertex reachable from source in g.
//
// Returns:
//
//   - paths: source → graph.Root(); every other reachable v → graph.Via(pred, dist).
//     Unreachable vertices are absent.
//   - err:   *NegativeCycleError (matching ErrNegativeCycle) if a negative cycle is
//     reachable from source, or a wrapped context error if the run was cancelled.
//     paths is nil whenever err != nil.
//
// The source need not be a key of g: a vertex without outgoing edges is a
// valid source and yields {source: Root}. A nil g behaves as an empty graph.
//
// Steps:
//  1. Apply options; seed dist[source] = 0.
//  2. Run up to |V|-1 relaxation passes, stopping after a pass with no update.
//  3. Run one detection pass; any update means a reachable negative cycle.
//  4. Build the Paths from the distance and predecessor maps.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V)
func ShortestPaths[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], source V, opts ...Option) (graph.Paths[V, E], error) {
	// 1) Build options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Prepare the runner with a deterministic vertex order
	r := newRunner(g, source, cfg)

	// 3) Relaxation passes
	if err := r.converge(); err != nil {
		return nil, err
	}

	// 4) Detection pass: anything that still relaxes lies on, or behind, a negative cycle.
	if last, ok := r.relax(); ok {
		cycle := r.witness(last.to)
		cfg.Logger.Debug("bellmanford: negative cycle detected",
			zap.Any("from", last.from),
			zap.Any("to", last.to),
			zap.Any("cycle", cycle))

		return nil, &NegativeCycleError[V]{From: last.from, To: last.to, Cycle: cycle}
	}

	return r.paths(), nil
}

// ShortestPath returns the vertex sequence and total weight of a shortest
// path from source to target. It fails with ErrUnreachable when target is not
// reachable and with a *NegativeCycleError when shortest paths are undefined.
func ShortestPath[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], source, target V, opts ...Option) ([]V, E, error) {
	var zero E
	paths, err := ShortestPaths(g, source, opts...)
	if err != nil {
		return nil, zero, err
	}
	path, ok := paths.PathTo(target)
	if !ok {
		return nil, zero, fmt.Errorf("%w: %v→%v", ErrUnreachable, source, target)
	}
	dist, _ := paths.Distance(target)

	return path, dist, nil
}

// HasNegativeCycle reports whether a negative cycle is reachable from source.
// Context errors are returned as-is; a negative cycle is not an error here.
func HasNegativeCycle[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], source V, opts ...Option) (bool, error) {
	_, err := ShortestPaths(g, source, opts...)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrNegativeCycle):
		return true, nil
	default:
		return false, err
	}
}

// runner holds the mutable state of a single Bellman-Ford execution.
type runner[V cmp.Ordered, E graph.Weight] struct {
	options Options            // context and logger
	source  V                  // search root
	edges   []graph.Edge[V, E] // every edge of the input, sorted by (From, To)
	n       int                // |V|, counting the source and every edge endpoint
	dist    map[V]E            // presence means "reached"
	pred    map[V]V            // predecessor on the best known path
}

// relaxation identifies the last edge that improved a distance in a pass.
type relaxation[V cmp.Ordered] struct {
	from, to V
}

// newRunner snapshots the edge list, counts the vertex set and seeds
// dist[source] = 0. The graph itself is only read here.
func newRunner[V cmp.Ordered, E graph.Weight](g graph.Graph[V, E], source V, cfg Options) *runner[V, E] {
	edges := g.Edges()

	// Graphs built through AddEdge always have destinations as outer keys,
	// map literals may not, so endpoints are counted too.
	seen := make(map[V]struct{}, len(g)+1)
	seen[source] = struct{}{}
	for v := range g {
		seen[v] = struct{}{}
	}
	for _, e := range edges {
		seen[e.To] = struct{}{}
	}

	r := &runner[V, E]{
		options: cfg,
		source:  source,
		edges:   edges,
		n:       len(seen),
		dist:    make(map[V]E, len(seen)),
		pred:    make(map[V]V, len(seen)),
	}
	r.dist[source] = 0

	return r
}

// converge runs up to n-1 relaxation passes, returning early when a pass
// leaves every distance unchanged or the context ends.
func (r *runner[V, E]) converge() error {
	ctx := r.options.Ctx
	for pass := 1; pass < r.n; pass++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("bellmanford: relaxation pass %d: %w", pass, ctx.Err())
		default:
		}

		_, updated := r.relax()
		r.options.Logger.Debug("bellmanford: relaxation pass",
			zap.Int("pass", pass),
			zap.Bool("updated", updated),
			zap.Int("reached", len(r.dist)))
		if !updated {
			break
		}
	}

	return nil
}

// relax performs one pass over all edges leaving reached vertices and
// reports the last edge that improved a distance.
//
// An edge u→v with weight w improves v if v is unreached or
// dist[u]+w < dist[v]. Equal candidates never replace a known distance.
func (r *runner[V, E]) relax() (relaxation[V], bool) {
	var last relaxation[V]
	updated := false

	var e graph.Edge[V, E]
	for _, e = range r.edges {
		du, reached := r.dist[e.From]
		if !reached {
			continue
		}
		candidate := du + e.Weight
		if dv, known := r.dist[e.To]; known && candidate >= dv {
			continue
		}
		r.dist[e.To] = candidate
		r.pred[e.To] = e.From
		last = relaxation[V]{from: e.From, to: e.To}
		updated = true
	}

	return last, updated
}

// paths converts the converged state into graph.Paths.
func (r *runner[V, E]) paths() graph.Paths[V, E] {
	out := make(graph.Paths[V, E], len(r.dist))
	for v, d := range r.dist {
		if v == r.source {
			out[v] = graph.Root[V, E]()
			continue
		}
		out[v] = graph.Via(r.pred[v], d)
	}

	return out
}

// witness recovers one negative cycle by walking predecessors n times from
// a vertex improved in the detection pass (which lands inside a cycle) and
// then collecting the loop. It returns nil if the chain is broken.
func (r *runner[V, E]) witness(start V) []V {
	// 1) Step back n times to make sure we stand on the cycle itself.
	x := start
	for i := 0; i < r.n; i++ {
		p, ok := r.pred[x]
		if !ok {
			return nil
		}
		x = p
	}

	// 2) Collect the loop in predecessor (reverse) order.
	cycle := []V{x}
	v, ok := r.pred[x]
	for ok && v != x {
		if len(cycle) > r.n {
			return nil
		}
		cycle = append(cycle, v)
		v, ok = r.pred[v]
	}
	if !ok {
		return nil
	}

	// 3) Flip to edge order and rotate the smallest vertex to the front.
	slices.Reverse(cycle)
	lo := 0
	for i := range cycle {
		if cycle[i] < cycle[lo] {
			lo = i
		}
	}
	rotated := make([]V, 0, len(cycle))
	rotated = append(rotated, cycle[lo:]...)

	return append(rotated, cycle[:lo]...)
}
