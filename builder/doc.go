// Package builder provides reusable "functional-options"-style building
// blocks for assembling small hypergraphs deterministically. It centralizes
// common configuration — ID schemes, weight distributions, RNG seeding —
// behind a single BuildHypergraph orchestrator, keeping topology
// constructors DRY, testable, and consistent with one another.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, vertex/hyperedge ID schemes, weight fn.
//   - ID schemes (IDFn implementations): DefaultIDFn, SymbolIDFn,
//     AlphanumericIDFn, ExcelColumnIDFn, HexIDFn, SymbolNumberIDFn, and
//     UUIDIDFn (backed by github.com/google/uuid, for synthetic topologies
//     whose vertex payloads should not leak construction order).
//   - Weight distributions (WeightFn implementations): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//   - Topology constructors (Constructor implementations): Path, Star,
//     Clique — each building a small hypergraph from an IDFn/WeightFn pair
//     with documented, deterministic vertex and hyperedge emission order.
//
// Guarantees:
//
//   - Deterministic configuration: the same options and constructor order
//     produce identical hypergraphs (barring WithUUIDIDs, which is
//     explicitly non-deterministic).
//   - Fast-fail on invalid option parameters via panics in option
//     constructors (WithX...).
//   - Structured runtime errors (builderErrorf) for invalid build
//     parameters, wrapping sentinel errors for errors.Is.
package builder
