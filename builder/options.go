package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathgraph/graph"
)

// config aggregates all knobs used by constructors. It is passed by value.
type config[E graph.Weight] struct {
	idFn     IDFn        // index → vertex ID
	rng      *rand.Rand  // nil means "no randomness"
	weightFn WeightFn[E] // per-edge weight
}

// Option customizes Build by mutating the config before construction.
type Option[E graph.Weight] func(*config[E])

// newConfig starts from deterministic defaults (decimal IDs, no RNG,
// constant weight 1) and applies opts in order; later options win.
func newConfig[E graph.Weight](opts ...Option[E]) config[E] {
	cfg := config[E]{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn[E](DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme[E graph.Weight](fn IDFn) Option[E] {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config[E]) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weight
// functions. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand[E graph.Weight](r *rand.Rand) Option[E] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config[E]) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand.
func WithSeed[E graph.Weight](seed int64) Option[E] {
	return func(c *config[E]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn[E graph.Weight](fn WeightFn[E]) Option[E] {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config[E]) {
		c.weightFn = fn
	}
}
