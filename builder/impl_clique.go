// SPDX-License-Identifier: MIT
// Package: hyperdag/builder
//
// impl_clique.go - implementation of the Clique(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits a binary hyperedge i→j for every ordered pair i≠j, in stable
//     lexicographic (i,j) order, giving full pairwise directed connectivity.
//   - Weight: cfg.weightFn(cfg.rng) per hyperedge.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n*(n-1)) hyperedges; O(n) extra space for
// the precomputed vertex index slice.
//
// Determinism: deterministic IDs via cfg.idFn/cfg.edgeIDFn; deterministic
// pair order; deterministic weights for a fixed cfg.rng/weightFn.

package builder

import (
	"github.com/dyweb/hyperdag/core"
)

// Clique returns a Constructor that builds n vertices with a hyperedge for
// every ordered pair, i.e. the hypergraph analogue of a complete directed
// graph.
func Clique(n int) Constructor {
	return func(g *Hypergraph, cfg builderConfig) error {
		if n < minCliqueNodes {
			return builderErrorf(methodClique, ErrTooFewVertices, "n=%d < min=%d", n, minCliqueNodes)
		}

		if err := cfg.checkRand(methodClique); err != nil {
			return err
		}

		verts := make([]core.VertexIndex, n)
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)

			v, err := g.AddVertex(id)
			if err != nil {
				return builderErrorf(methodClique, err, "AddVertex(%s)", id)
			}

			verts[i] = v
		}

		edgeIdx := 0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}

				label := HyperedgeLabel{ID: cfg.edgeIDFn(edgeIdx), Weight: cfg.weightFn(cfg.rng)}
				if _, err := g.AddHyperedge([]core.VertexIndex{verts[i], verts[j]}, label); err != nil {
					return builderErrorf(methodClique, err, "AddHyperedge(%d→%d, %s)", i, j, label.ID)
				}

				edgeIdx++
			}
		}

		return nil
	}
}
