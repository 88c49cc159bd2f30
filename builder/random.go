package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/graph"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like
// digraph over n vertices: every ordered pair (i, j), i≠j, becomes an edge
// independently with probability p. Trials run in (i, j) ascending order.
//
// An RNG is required when 0 < p < 1.
func RandomSparse[E graph.Weight](n int, p float64) Constructor[E] {
	return func(g graph.Graph[string, E], cfg config[E]) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				g.AddEdge(ids[i], ids[j], cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
