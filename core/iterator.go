package core

import "iter"

// All iterates every hyperedge in insertion order, yielding its payload
// alongside a materialized copy of its current vertex payload sequence.
// Iteration stops early (yielding nothing further) if the caller's range
// body returns false, or if an internal inconsistency is detected.
func (g *Hypergraph[V, HE]) All() iter.Seq2[HE, []V] {
	return func(yield func(HE, []V) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()

		for slot := 0; slot < g.hyperedges.len(); slot++ {
			entry := g.hyperedges.at(slot)

			values := make([]V, len(entry.seq))
			for i, vSlot := range entry.seq {
				if vSlot < 0 || vSlot >= g.vertices.len() {
					return
				}

				values[i] = g.vertices.payloadAt(vSlot)
			}

			if !yield(entry.weight, values) {
				return
			}
		}
	}
}
