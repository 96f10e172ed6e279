// Package lapgen generates deterministic cost-matrix instances for
// benchmarks and property tests.
//
// The families mirror the classical LAP benchmarking literature:
//
//   - Uniform       — i.i.d. costs drawn from [low, high).
//   - Geometric     — Euclidean distances between random row/column points,
//     shifted by +1 so every edge is strictly positive.
//   - MacholWien    — the adversarial deterministic family C[i,j] = i·j + 1
//     (1-based), the classical worst case for augmenting-path solvers.
//   - RandomMacholWien — integer costs drawn uniformly from [1, i·j+1].
//   - Constant      — every entry equal; exercises tie-break determinism.
//
// Determinism:
//
//	All random families take an explicit seed; seed == 0 selects a fixed
//	default stream, so benchmark runs are reproducible across platforms.
//	No time-based randomness is hidden anywhere.
package lapgen
