package core

// JoinHyperedges fuses two or more hyperedges by appending all their vertex
// sequences, in the order listed, onto the first and removing the rest.
// Fewer than two inputs is an error.
func (g *Hypergraph[V, HE]) JoinHyperedges(hyperedges []HyperedgeIndex) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(hyperedges) < 2 {
		return ErrHyperedgesInvalidJoin
	}

	firstSlot, ok := g.hyperedgeIndex.resolve(int(hyperedges[0]))
	if !ok {
		return &HyperedgeIndexNotFoundError{Index: hyperedges[0]}
	}

	merged := append([]int(nil), g.hyperedges.at(firstSlot).seq...)

	for _, he := range hyperedges[1:] {
		slot, ok := g.hyperedgeIndex.resolve(int(he))
		if !ok {
			return &HyperedgeIndexNotFoundError{Index: he}
		}

		merged = append(merged, g.hyperedges.at(slot).seq...)
	}

	vertexIndexes := make([]VertexIndex, len(merged))
	for i, slot := range merged {
		stable, ok := g.vertexIndex.reverse(slot)
		if !ok {
			return &InternalVertexIndexNotFoundError{Slot: slot}
		}

		vertexIndexes[i] = VertexIndex(stable)
	}

	if err := g.updateHyperedgeVerticesLocked(hyperedges[0], vertexIndexes); err != nil {
		return err
	}

	for _, he := range hyperedges[1:] {
		slot, ok := g.hyperedgeIndex.resolve(int(he))
		if !ok {
			return &HyperedgeIndexNotFoundError{Index: he}
		}

		if err := g.removeHyperedgeAtSlot(slot); err != nil {
			return err
		}
	}

	return nil
}
