package core

// connectionMode selects which side of a directed adjacent pair (sᵢ, sᵢ₊₁)
// in a hyperedge's vertex sequence getConnections matches against.
type connectionMode int

const (
	modeIn connectionMode = iota
	modeOut
	modeInAndOut
)

// connection is one match produced by getConnections: the hyperedge slot
// whose sequence matched, and the neighboring vertex slot reached (absent
// for InAndOut, which only confirms a direct link exists).
type connection struct {
	hyperedgeSlot int
	neighborSlot  int
	hasNeighbor   bool
}

// getConnections enumerates from's (or to's) back-referenced hyperedges
// and scans adjacent pairs (sᵢ, sᵢ₊₁) in each sequence:
//
//   - modeIn:       emit (h, sᵢ₊₁) when sᵢ == from
//   - modeOut:      emit (h, sᵢ)   when sᵢ₊₁ == to
//   - modeInAndOut: emit (h, -)    when sᵢ == from && sᵢ₊₁ == to
//
// The adjacent-pair model means "u directed to v" requires u and v to be
// consecutive in the sequence.
func (g *Hypergraph[V, HE]) getConnections(mode connectionMode, from, to int) []connection {
	var anchor int
	switch mode {
	case modeOut:
		anchor = to
	default:
		anchor = from
	}

	var out []connection
	for _, heSlot := range g.vertices.entryAt(anchor).backRefs.all() {
		seq := g.hyperedges.at(heSlot).seq
		for i := 0; i+1 < len(seq); i++ {
			si, sj := seq[i], seq[i+1]

			switch mode {
			case modeIn:
				if si == from {
					out = append(out, connection{hyperedgeSlot: heSlot, neighborSlot: sj, hasNeighbor: true})
				}
			case modeOut:
				if sj == to {
					out = append(out, connection{hyperedgeSlot: heSlot, neighborSlot: si, hasNeighbor: true})
				}
			case modeInAndOut:
				if si == from && sj == to {
					out = append(out, connection{hyperedgeSlot: heSlot})
				}
			}
		}
	}

	return out
}

// GetHyperedgesConnecting returns every hyperedge in which to directly
// follows from at least once.
func (g *Hypergraph[V, HE]) GetHyperedgesConnecting(from, to VertexIndex) ([]HyperedgeIndex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fromSlot, ok := g.vertexIndex.resolve(int(from))
	if !ok {
		return nil, &VertexIndexNotFoundError{Index: from}
	}

	toSlot, ok := g.vertexIndex.resolve(int(to))
	if !ok {
		return nil, &VertexIndexNotFoundError{Index: to}
	}

	conns := g.getConnections(modeInAndOut, fromSlot, toSlot)

	seen := make(map[int]struct{}, len(conns))
	out := make([]HyperedgeIndex, 0, len(conns))
	for _, c := range conns {
		if _, dup := seen[c.hyperedgeSlot]; dup {
			continue
		}

		seen[c.hyperedgeSlot] = struct{}{}

		stable, ok := g.hyperedgeIndex.reverse(c.hyperedgeSlot)
		if !ok {
			return nil, &InternalHyperedgeIndexNotFoundError{Slot: c.hyperedgeSlot}
		}

		out = append(out, HyperedgeIndex(stable))
	}

	return out, nil
}
