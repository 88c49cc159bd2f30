package bellmanford

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNegativeCycle indicates that a negative-weight cycle is reachable from
	// the source, so shortest paths are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrUnreachable indicates that the requested target was not reached from
	// the source. Returned by ShortestPath only.
	ErrUnreachable = errors.New("bellmanford: target not reachable from source")
)

// NegativeCycleError describes a detected negative cycle.
//
// From→To is an edge that could still be relaxed after all regular passes.
// Cycle, when non-nil, lists the vertices of one negative cycle in edge order
// (Cycle[i]→Cycle[i+1], and the last vertex back to Cycle[0]), rotated so the
// smallest vertex comes first. It carries no distances.
type NegativeCycleError[V cmp.Ordered] struct {
	From  V
	To    V
	Cycle []V
}

// Error implements error.
func (e *NegativeCycleError[V]) Error() string {
	if len(e.Cycle) == 0 {
		return fmt.Sprintf("%s: edge %v→%v still relaxes", ErrNegativeCycle, e.From, e.To)
	}

	return fmt.Sprintf("%s: edge %v→%v still relaxes, cycle %v", ErrNegativeCycle, e.From, e.To, e.Cycle)
}

// Unwrap lets errors.Is match ErrNegativeCycle.
func (e *NegativeCycleError[V]) Unwrap() error {
	return ErrNegativeCycle
}

// Options configures a ShortestPaths run.
//
// Ctx    – checked before each relaxation pass; defaults to context.Background().
// Logger – receives debug events; defaults to zap.NewNop().
type Options struct {
	Ctx    context.Context
	Logger *zap.Logger
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithContext sets the context used for cancellation between passes.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a zap logger for pass-level debug output.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a background context and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}
