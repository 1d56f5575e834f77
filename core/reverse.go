package core

// ReverseHyperedge replaces h's vertex sequence with its reverse.
func (g *Hypergraph[V, HE]) ReverseHyperedge(h HyperedgeIndex) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.hyperedgeIndex.resolve(int(h))
	if !ok {
		return &HyperedgeIndexNotFoundError{Index: h}
	}

	current, err := g.stableSequence(slot)
	if err != nil {
		return err
	}

	reversed := make([]VertexIndex, len(current))
	for i, v := range current {
		reversed[len(current)-1-i] = v
	}

	return g.updateHyperedgeVerticesLocked(h, reversed)
}
