// Package lapgo solves the rectangular Linear Assignment Problem (LAP)
// with a shortest-augmenting-path (SAP) primal-dual core.
//
// 🚀 What is lapgo?
//
//	A small, deterministic library that brings together:
//		• Dense cost matrices: row-major float64 storage with strict entry policy
//		• SAP solver: Dijkstra-style search on reduced costs, one row at a time
//		• Augment primitive: a single SAP iteration for incremental repair
//		• Dynamic repair: re-solve after a row or column is withdrawn
//		• Instance generators: uniform, geometric and Machol–Wien families
//
// ✨ Why choose lapgo?
//
//   - Exact & deterministic – bit-exact tie-breaking, identical output on every run
//   - Rectangular by design – nr ≤ nc handled natively, no padding tricks
//   - Dual variables exposed – complementary slackness available to callers
//   - Incremental – augment a partial assignment instead of starting over
//
// Everything is organized under four subpackages:
//
//	lapmat/ — dense cost matrix container + entry validation
//	sap/    — Solve, Augment, LinearSumAssignment and dynamic repair
//	lapgen/ — deterministic benchmark instance generators
//	logger/ — shared zerolog sink for optional progress diagnostics
//
// Quick ASCII example:
//
//	    rows      cols
//	    r0 ──────▶ c1      an assignment is an injective map rows→cols
//	    r1 ──────▶ c0      minimizing the summed cost of chosen edges
//	    r2 ──────▶ c2
//
// Dive into sap/doc.go for the algorithm walkthrough and invariants.
package lapgo
