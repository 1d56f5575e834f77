// SPDX-License-Identifier: MIT
// Package: hyperdag/builder
//
// impl_path.go - implementation of the Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order for i = 0..n-1.
//   - Emits exactly one hyperedge over the full sequence [0,1,...,n-1],
//     carrying the directed walk 0→1→...→(n-1) the way a single hyperedge
//     naturally expresses a path.
//   - Weight: cfg.weightFn(cfg.rng).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(1) hyperedges; O(n) extra space for the
// sequence.
//
// Determinism: deterministic IDs via cfg.idFn/cfg.edgeIDFn and deterministic
// weight for a fixed cfg.rng/weightFn.

package builder

import (
	"github.com/dyweb/hyperdag/core"
)

// Path returns a Constructor that builds a single n-vertex path hyperedge.
func Path(n int) Constructor {
	return func(g *Hypergraph, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}

		if err := cfg.checkRand(methodPath); err != nil {
			return err
		}

		seq := make([]core.VertexIndex, n)
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)

			v, err := g.AddVertex(id)
			if err != nil {
				return builderErrorf(methodPath, err, "AddVertex(%s)", id)
			}

			seq[i] = v
		}

		label := HyperedgeLabel{ID: cfg.edgeIDFn(0), Weight: cfg.weightFn(cfg.rng)}
		if _, err := g.AddHyperedge(seq, label); err != nil {
			return builderErrorf(methodPath, err, "AddHyperedge(%s)", label.ID)
		}

		return nil
	}
}
