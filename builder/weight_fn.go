package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathgraph/graph"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given seed.
type WeightFn[E graph.Weight] func(rng *rand.Rand) E

// ConstantWeightFn always yields value. Negative values are allowed.
func ConstantWeightFn[E graph.Weight](value E) WeightFn[E] {
	return func(*rand.Rand) E {
		return value
	}
}

// CheckWeightRange reports whether UniformWeightFn accepts [lo, hi]: lo ≤ hi
// and the range holds at most math.MaxInt64 values.
func CheckWeightRange(lo, hi int64) error {
	if hi < lo {
		return fmt.Errorf("%w: lo=%d > hi=%d", ErrWeightRange, lo, hi)
	}
	// hi-lo computed in uint64 is exact for any lo ≤ hi.
	if uint64(hi)-uint64(lo) >= math.MaxInt64 {
		return fmt.Errorf("%w: [%d, %d] spans more than %d values", ErrWeightRange, lo, hi, int64(math.MaxInt64))
	}

	return nil
}

// UniformWeightFn samples integers uniformly in [lo, hi]. Negative bounds
// are allowed. With a nil rng it yields lo. Panics if CheckWeightRange fails.
func UniformWeightFn(lo, hi int64) WeightFn[int64] {
	if err := CheckWeightRange(lo, hi); err != nil {
		panic(fmt.Sprintf("UniformWeightFn: %v", err))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// UniformFloatWeightFn samples uniformly in [lo, hi). With a nil rng it
// yields lo. Panics if hi < lo.
func UniformFloatWeightFn(lo, hi float64) WeightFn[float64] {
	if hi < lo {
		panic(fmt.Sprintf("UniformFloatWeightFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}
