package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/graph"
)

// Constructor applies a deterministic mutation to g using the resolved
// config. Constructors validate their parameters first and return sentinel
// errors, never panic.
type Constructor[E graph.Weight] func(g graph.Graph[string, E], cfg config[E]) error

// Build creates an empty graph, resolves opts and applies cons in order.
// Any constructor error is wrapped with "builder: Build: %w" and returned
// immediately; no partial graph is returned.
func Build[E graph.Weight](opts []Option[E], cons ...Constructor[E]) (graph.Graph[string, E], error) {
	g := graph.New[string, E]()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return g, nil
}
