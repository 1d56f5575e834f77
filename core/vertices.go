package core

// AddVertex inserts a new vertex carrying payload weight and returns its
// stable index. Fails if weight is already held by another vertex.
func (g *Hypergraph[V, HE]) AddVertex(weight V) (VertexIndex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices.positionOf(weight); exists {
		return 0, &VertexWeightAlreadyAssignedError[V]{Weight: weight}
	}

	slot := g.vertices.append(weight)
	stable := g.vertexIndex.issue(slot)

	return VertexIndex(stable), nil
}

// GetVertexWeight returns the payload currently held by index.
func (g *Hypergraph[V, HE]) GetVertexWeight(index VertexIndex) (V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, ok := g.vertexIndex.resolve(int(index))
	if !ok {
		var zero V

		return zero, &VertexIndexNotFoundError{Index: index}
	}

	return g.vertices.payloadAt(slot), nil
}

// UpdateVertexWeight replaces the payload held by index with weight. Errors
// if weight equals the current payload, or is already held by another
// vertex.
func (g *Hypergraph[V, HE]) UpdateVertexWeight(index VertexIndex, weight V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.vertexIndex.resolve(int(index))
	if !ok {
		return &VertexIndexNotFoundError{Index: index}
	}

	current := g.vertices.payloadAt(slot)
	if current == weight {
		return &VertexWeightUnchangedError[V]{Index: index, Weight: weight}
	}

	if _, exists := g.vertices.positionOf(weight); exists {
		return &VertexWeightAlreadyAssignedError[V]{Weight: weight}
	}

	g.vertices.insertThenSwapRemove(slot, weight)

	return nil
}

// GetVertexHyperedges returns the stable indices of every hyperedge
// referencing index, in the order of index's back-reference set: the order
// the hyperedges were linked to the vertex, except that dropping one from
// the set moves the set's last entry into the vacated position.
func (g *Hypergraph[V, HE]) GetVertexHyperedges(index VertexIndex) ([]HyperedgeIndex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, ok := g.vertexIndex.resolve(int(index))
	if !ok {
		return nil, &VertexIndexNotFoundError{Index: index}
	}

	backRefs := g.vertices.entryAt(slot).backRefs
	out := make([]HyperedgeIndex, 0, backRefs.len())
	for _, heSlot := range backRefs.all() {
		stable, ok := g.hyperedgeIndex.reverse(heSlot)
		if !ok {
			return nil, &InternalHyperedgeIndexNotFoundError{Slot: heSlot}
		}

		out = append(out, HyperedgeIndex(stable))
	}

	return out, nil
}

// GetFullVertexHyperedges returns, for index, each referencing hyperedge
// paired with its current full vertex sequence.
func (g *Hypergraph[V, HE]) GetFullVertexHyperedges(index VertexIndex) ([]HyperedgeVertices[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, ok := g.vertexIndex.resolve(int(index))
	if !ok {
		return nil, &VertexIndexNotFoundError{Index: index}
	}

	backRefs := g.vertices.entryAt(slot).backRefs
	out := make([]HyperedgeVertices[V], 0, backRefs.len())
	for _, heSlot := range backRefs.all() {
		stable, ok := g.hyperedgeIndex.reverse(heSlot)
		if !ok {
			return nil, &InternalHyperedgeIndexNotFoundError{Slot: heSlot}
		}

		entry := g.hyperedges.at(heSlot)
		out = append(out, HyperedgeVertices[V]{
			Hyperedge: HyperedgeIndex(stable),
			Vertices:  g.payloadsOf(entry.seq),
		})
	}

	return out, nil
}

// HyperedgeVertices pairs a hyperedge with its materialized vertex payload
// sequence, for vertex-centric query results.
type HyperedgeVertices[V any] struct {
	Hyperedge HyperedgeIndex
	Vertices  []V
}

func (g *Hypergraph[V, HE]) payloadsOf(seq []int) []V {
	out := make([]V, len(seq))
	for i, slot := range seq {
		out[i] = g.vertices.payloadAt(slot)
	}

	return out
}

// RemoveVertex deletes the vertex at index and repairs every hyperedge that
// referenced it: a hyperedge for which v was the sole distinct vertex
// (self-loop unary) is removed outright; otherwise v's occurrences are
// filtered out of the sequence via rewriteHyperedgeSequence. If the
// removed vertex's slot was not the store's last slot, the moved vertex's
// back-references are walked and every mention of the vacated last slot is
// rewritten to the freed slot.
func (g *Hypergraph[V, HE]) RemoveVertex(index VertexIndex) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.vertexIndex.resolve(int(index))
	if !ok {
		return &VertexIndexNotFoundError{Index: index}
	}

	// Touched hyperedges are tracked by stable index, not raw slot: removing
	// one of them via swap-remove may relocate another touched hyperedge to
	// a different slot, and the translation is the only thing that stays
	// valid across that shuffle.
	touched := make([]int, 0, g.vertices.entryAt(slot).backRefs.len())
	for _, heSlot := range g.vertices.entryAt(slot).backRefs.all() {
		stable, ok := g.hyperedgeIndex.reverse(heSlot)
		if !ok {
			return &InternalHyperedgeIndexNotFoundError{Slot: heSlot}
		}

		touched = append(touched, stable)
	}

	for _, stable := range touched {
		heSlot, ok := g.hyperedgeIndex.resolve(stable)
		if !ok {
			return &HyperedgeIndexNotFoundError{Index: HyperedgeIndex(stable)}
		}

		entry := g.hyperedges.at(heSlot)

		distinct := false
		for _, s := range entry.seq {
			if s != slot {
				distinct = true

				break
			}
		}

		if !distinct {
			if err := g.removeHyperedgeAtSlot(heSlot); err != nil {
				return err
			}

			continue
		}

		newSeq := make([]int, 0, len(entry.seq))
		for _, s := range entry.seq {
			if s != slot {
				newSeq = append(newSeq, s)
			}
		}

		g.rewriteHyperedgeSequence(heSlot, newSeq)
	}

	lastSlot, moved := g.vertices.swapRemove(slot)
	g.vertexIndex.remove(slot, int(index))

	if moved {
		g.vertexIndex.rebind(lastSlot, slot)

		for _, heSlot := range g.vertices.entryAt(slot).backRefs.all() {
			entry := g.hyperedges.at(heSlot)
			for i, s := range entry.seq {
				if s == lastSlot {
					entry.seq[i] = slot
				}
			}
		}
	}

	return nil
}

// rewriteHyperedgeSequence installs newSeq as heSlot's sequence in place,
// without touching back-references (callers that add/remove vertices from
// the sequence must adjust the relevant back-reference sets themselves).
func (g *Hypergraph[V, HE]) rewriteHyperedgeSequence(heSlot int, newSeq []int) {
	entry := g.hyperedges.at(heSlot)
	entry.seq = newSeq
}
