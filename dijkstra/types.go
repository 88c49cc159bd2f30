package dijkstra

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathgraph/graph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – only honoured when LimitDistance is set.
// InfEdgeThreshold – only honoured when LimitEdges is set.
type Options[E graph.Weight] struct {
	Ctx              context.Context // checked before every heap extraction
	Logger           *zap.Logger     // debug output; zap.NewNop() by default
	MaxDistance      E               // maximum distance to explore
	LimitDistance    bool            // whether MaxDistance applies
	InfEdgeThreshold E               // weight at or above which edges are non-traversable
	LimitEdges       bool            // whether InfEdgeThreshold applies
}

// Option represents a functional option for configuring Dijkstra.
type Option[E graph.Weight] func(*Options[E])

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance[E graph.Weight](maxDist E) Option[E] {
	if maxDist < 0 {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options[E]) {
		o.MaxDistance = maxDist
		o.LimitDistance = true
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold[E graph.Weight](threshold E) Option[E] {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options[E]) {
		o.InfEdgeThreshold = threshold
		o.LimitEdges = true
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext[E graph.Weight](ctx context.Context) Option[E] {
	return func(o *Options[E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a zap logger for debug output. A nil logger is ignored.
func WithLogger[E graph.Weight](l *zap.Logger) Option[E] {
	return func(o *Options[E]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no limits, a background context and a
// no-op logger.
func DefaultOptions[E graph.Weight]() Options[E] {
	return Options[E]{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}
