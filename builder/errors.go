package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied, e.g. a nil
// Constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrWeightRange indicates an integer weight range that is inverted or too
// wide to sample without overflowing int64.
var ErrWeightRange = errors.New("builder: invalid weight range")
