// Package builder generates deterministic weighted digraphs for tests,
// benchmarks and the pathfinder CLI.
//
// One orchestrator, Build, creates an empty graph.Graph[string, E], resolves
// the options and applies every Constructor in order:
//
//	g, err := builder.Build([]builder.Option[int64]{
//	    builder.WithSeed[int64](7),
//	    builder.WithWeightFn(builder.UniformWeightFn(-2, 9)),
//	}, builder.Grid[int64](4, 4))
//
// Determinism: the same options, seed and constructor order always produce
// the same graph. Vertices are added in index order and edges are emitted in
// a fixed order, so random draws happen in a fixed sequence too.
//
// Constructors:
//
//   - Path(n):          0→1→…→n-1
//   - Cycle(n):         Path plus n-1→0
//   - Star(n):          center "Center" ↔ n-1 leaves
//   - Complete(n):      every ordered pair i≠j
//   - Grid(rows, cols): orthogonal lattice, both directions, IDs "r,c"
//   - RandomSparse(n, p): each ordered pair i≠j independently with probability p
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed, always wrapped with the constructor name.
package builder
