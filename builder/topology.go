package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/graph"
)

// Minimum sizes per constructor.
const (
	MinPathNodes  = 2
	MinCycleNodes = 2
	MinStarNodes  = 2
	MinGridDim    = 1
)

// CenterVertexID is the hub of Star.
const CenterVertexID = "Center"

const gridIDFmt = "%d,%d"

// addVertices adds n vertices named by cfg.idFn in index order.
func addVertices[E graph.Weight](g graph.Graph[string, E], cfg config[E], n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// Path returns a Constructor for the directed path 0→1→…→n-1.
func Path[E graph.Weight](n int) Constructor[E] {
	return func(g graph.Graph[string, E], cfg config[E]) error {
		if n < MinPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, MinPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			g.AddEdge(ids[i], ids[i+1], cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Cycle returns a Constructor for the directed cycle 0→1→…→n-1→0.
func Cycle[E graph.Weight](n int) Constructor[E] {
	return func(g graph.Graph[string, E], cfg config[E]) error {
		if n < MinCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, MinCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			g.AddEdge(ids[i], ids[(i+1)%n], cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Star returns a Constructor linking CenterVertexID with n-1 leaves in both
// directions. Leaves take IDs 0..n-2 from the ID scheme.
func Star[E graph.Weight](n int) Constructor[E] {
	return func(g graph.Graph[string, E], cfg config[E]) error {
		if n < MinStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, MinStarNodes, ErrTooFewVertices)
		}
		g.AddVertex(CenterVertexID)
		for _, leaf := range addVertices(g, cfg, n-1) {
			w := cfg.weightFn(cfg.rng)
			g.AddEdge(CenterVertexID, leaf, w)
			g.AddEdge(leaf, CenterVertexID, w)
		}

		return nil
	}
}

// Complete returns a Constructor adding an edge for every ordered pair
// i≠j, in (i, j) ascending order.
func Complete[E graph.Weight](n int) Constructor[E] {
	return func(g graph.Graph[string, E], cfg config[E]) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					g.AddEdge(ids[i], ids[j], cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice with IDs "r,c"
// (the ID scheme is not used). Every cell links to its right and bottom
// neighbor in both directions; both directions share one weight draw.
func Grid[E graph.Weight](rows, cols int) Constructor[E] {
	return func(g graph.Graph[string, E], cfg config[E]) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// 1) Vertices in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(fmt.Sprintf(gridIDFmt, r, c))
			}
		}

		// 2) Right and bottom neighbors.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					link(g, u, fmt.Sprintf(gridIDFmt, r, c+1), cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					link(g, u, fmt.Sprintf(gridIDFmt, r+1, c), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}

func link[E graph.Weight](g graph.Graph[string, E], u, v string, w E) {
	g.AddEdge(u, v, w)
	g.AddEdge(v, u, w)
}
