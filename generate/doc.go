// Package generate produces deterministic edge-list fixtures for csr.Build.
//
// Every topology is a Constructor. Edges composes constructors in order; each
// one receives a fresh, contiguous block of node ids placed after the blocks
// of the constructors before it, so the result is a disjoint union:
//
//	es, _ := generate.Edges(nil, generate.Path(2), generate.Path(2))
//	// es == {0→1, 2→3}
//
// Orientation
//
//	Constructors emit a canonical orientation (lower id → higher id, plus
//	the closing edge of a cycle). WithSymmetric also emits every reverse
//	edge, which turns forward reachability into undirected connectivity.
//
// Node count
//
//	A CSR built from an edge list has one node past its largest endpoint.
//	Blocks whose last vertex has no edges (sparse random draws, Path(1))
//	therefore shrink the built graph. WithAnchor appends a self-loop on the
//	last reserved id so the built graph keeps every reserved node.
//
// Randomness
//
//	RandomSparse and RandomMultigraph need an RNG (WithSeed or WithRand);
//	for a fixed seed and constructor order the output is identical.
//
// Errors
//
//   - ErrTooFewVertices     size parameter below its minimum.
//   - ErrInvalidProbability p outside [0,1].
//   - ErrNeedRandSource     stochastic constructor without an RNG.
//   - ErrTooManyVertices    reserved ids would exceed the int32 range.
//   - ErrConstructFailed    nil constructor.
package generate
