package core

// ContractHyperedgeVertices collapses vertices (deduplicated) onto target
// within h and every other hyperedge that references any of them: each
// touched sequence has every occurrence of an input vertex rewritten to
// target, then consecutive duplicates are collapsed. Returns h's resulting
// vertex sequence.
//
// target must be among vertices (ErrHyperedgeInvalidContraction otherwise);
// every vertex in vertices must appear in h's sequence
// (ErrHyperedgeVerticesIndexesNotFound otherwise).
func (g *Hypergraph[V, HE]) ContractHyperedgeVertices(h HyperedgeIndex, vertices []VertexIndex, target VertexIndex) ([]VertexIndex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	hSlot, ok := g.hyperedgeIndex.resolve(int(h))
	if !ok {
		return nil, &HyperedgeIndexNotFoundError{Index: h}
	}

	targetSlot, ok := g.vertexIndex.resolve(int(target))
	if !ok {
		return nil, &VertexIndexNotFoundError{Index: target}
	}

	inputSlots := make(map[int]struct{}, len(vertices))
	inputOrder := make([]int, 0, len(vertices))
	targetIsInput := false
	for _, v := range vertices {
		slot, ok := g.vertexIndex.resolve(int(v))
		if !ok {
			return nil, &VertexIndexNotFoundError{Index: v}
		}

		if _, dup := inputSlots[slot]; dup {
			continue
		}

		inputSlots[slot] = struct{}{}
		inputOrder = append(inputOrder, slot)

		if slot == targetSlot {
			targetIsInput = true
		}
	}

	if !targetIsInput {
		return nil, &HyperedgeInvalidContractionError{Index: h, Target: target, Vertices: vertices}
	}

	hSeq := g.hyperedges.at(hSlot).seq
	hMembers := distinctSlots(hSeq)

	missing := make([]VertexIndex, 0)
	for _, slot := range inputOrder {
		if _, present := hMembers[slot]; !present {
			stable, _ := g.vertexIndex.reverse(slot)
			missing = append(missing, VertexIndex(stable))
		}
	}

	if len(missing) > 0 {
		return nil, &HyperedgeVerticesIndexesNotFoundError{Index: h, Vertices: missing}
	}

	touched := make(map[int]struct{})
	for slot := range inputSlots {
		for _, heSlot := range g.vertices.entryAt(slot).backRefs.all() {
			touched[heSlot] = struct{}{}
		}
	}

	touchedStable := make([]int, 0, len(touched))
	for heSlot := range touched {
		stable, ok := g.hyperedgeIndex.reverse(heSlot)
		if !ok {
			return nil, &InternalHyperedgeIndexNotFoundError{Slot: heSlot}
		}

		touchedStable = append(touchedStable, stable)
	}

	for _, stable := range touchedStable {
		slot, ok := g.hyperedgeIndex.resolve(stable)
		if !ok {
			continue
		}

		entry := g.hyperedges.at(slot)

		rewritten := make([]int, len(entry.seq))
		for i, s := range entry.seq {
			if _, isInput := inputSlots[s]; isInput {
				rewritten[i] = targetSlot
			} else {
				rewritten[i] = s
			}
		}

		deduped := consecutiveDedupe(rewritten)

		if !sequencesEqual(entry.seq, deduped) {
			vertexIndexes := make([]VertexIndex, len(deduped))
			for i, s := range deduped {
				vstable, ok := g.vertexIndex.reverse(s)
				if !ok {
					return nil, &InternalVertexIndexNotFoundError{Slot: s}
				}

				vertexIndexes[i] = VertexIndex(vstable)
			}

			if err := g.updateHyperedgeVerticesLocked(HyperedgeIndex(stable), vertexIndexes); err != nil {
				return nil, err
			}
		}
	}

	finalSlot, ok := g.hyperedgeIndex.resolve(int(h))
	if !ok {
		return nil, &HyperedgeIndexNotFoundError{Index: h}
	}

	return g.stableSequence(finalSlot)
}

func consecutiveDedupe(seq []int) []int {
	if len(seq) == 0 {
		return seq
	}

	out := make([]int, 0, len(seq))
	out = append(out, seq[0])
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[i-1] {
			out = append(out, seq[i])
		}
	}

	return out
}
