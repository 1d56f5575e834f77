// SPDX-License-Identifier: MIT
// Package: hyperdag/builder
//
// impl_star.go - implementation of the Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds a hub vertex with the fixed ID centerVertexID (documented design
//     choice, mirroring a fixed hub identifier convention).
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits one binary hyperedge hub→leaf[i] per leaf, in increasing leaf
//     index order.
//   - Weight: cfg.weightFn(cfg.rng) per hyperedge.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n-1) hyperedges; O(1) extra space.
//
// Determinism: deterministic IDs via cfg.idFn/cfg.edgeIDFn and deterministic
// hyperedge emission order by increasing leaf index.

package builder

import (
	"github.com/dyweb/hyperdag/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves, each connected to the hub by its own hyperedge.
func Star(n int) Constructor {
	return func(g *Hypergraph, cfg builderConfig) error {
		if n < minStarNodes {
			return builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
		}

		if err := cfg.checkRand(methodStar); err != nil {
			return err
		}

		hub, err := g.AddVertex(centerVertexID)
		if err != nil {
			return builderErrorf(methodStar, err, "AddVertex(%s)", centerVertexID)
		}

		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)

			leaf, err := g.AddVertex(leafID)
			if err != nil {
				return builderErrorf(methodStar, err, "AddVertex(%s)", leafID)
			}

			label := HyperedgeLabel{ID: cfg.edgeIDFn(i - 1), Weight: cfg.weightFn(cfg.rng)}
			if _, err := g.AddHyperedge([]core.VertexIndex{hub, leaf}, label); err != nil {
				return builderErrorf(methodStar, err, "AddHyperedge(%s→%s, %s)", centerVertexID, leafID, label.ID)
			}
		}

		return nil
	}
}
