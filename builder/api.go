// SPDX-License-Identifier: MIT
// Package: hyperdag/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildHypergraph(opts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical hypergraphs, except
//     WithUUIDIDs (explicitly non-deterministic by design).
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/dyweb/hyperdag/core"
)

// Hypergraph is the concrete instantiation every constructor in this
// package builds against: string vertex payloads (produced by an IDFn) and
// HyperedgeLabel hyperedge payloads (produced by an edge IDFn plus a
// WeightFn).
type Hypergraph = core.Hypergraph[string, HyperedgeLabel]

// Constructor applies a deterministic hypergraph mutation using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and hyperedges in a stable, documented order.
//   - Preserve determinism for the same config and call order (barring
//     WithUUIDIDs).
type Constructor func(g *Hypergraph, cfg builderConfig) error

// BuildHypergraph creates a new Hypergraph with graph options opts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with the context
// "BuildHypergraph: %w" and returned immediately; no partial cleanup is
// attempted by design.
func BuildHypergraph(opts []core.Option, bopts []BuilderOption, cons ...Constructor) (*Hypergraph, error) {
	g := core.New[string, HyperedgeLabel](opts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildHypergraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}

		if err := fn(g, *cfg); err != nil {
			return nil, fmt.Errorf("BuildHypergraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) — implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn, hyperedges via cfg.edgeIDFn/cfg.weightFn.
//   - Emit hyperedges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Path builds a single hyperedge over n vertices 0..n-1 in sequence
// (n ≥ 2), i.e. the directed walk 0→1→...→(n-1) expressed as one hyperedge.
// Complexity: O(n) vertices + O(1) hyperedges.
//func Path(n int) Constructor

// Star builds a hub vertex plus n-1 leaves (n ≥ 2), connected by n-1 binary
// hyperedges hub→leaf[i].
// Complexity: O(n) vertices + O(n-1) hyperedges.
//func Star(n int) Constructor

// Clique builds n vertices (n ≥ 2) and a binary hyperedge i→j for every
// ordered pair i≠j, i.e. full pairwise directed connectivity.
// Complexity: O(n) vertices + O(n*(n-1)) hyperedges.
//func Clique(n int) Constructor
