package core

import "container/heap"

// Weigher is the capability Dijkstra requires of a hyperedge payload: a
// non-negative integer cost. HE must still satisfy the Hypergraph's own
// comparable constraint; Weigher narrows it further for GetDijkstraConnections
// only, since the rest of the API has no need for a cost function.
type Weigher interface {
	comparable

	// Cost returns this hyperedge's traversal cost. Must be non-negative;
	// GetDijkstraConnections returns ErrNegativeHyperedgeCost otherwise.
	Cost() int64
}

// Step is one hop of a Dijkstra result: the vertex reached, and the
// hyperedge used to reach it (absent for the origin).
type Step struct {
	Vertex    VertexIndex
	Hyperedge HyperedgeIndex
	HasEdge   bool
}

type dijkstraItem struct {
	slot     int
	dist     int64
	order    int
	heapSlot int
}

type dijkstraQueue []*dijkstraItem

func (q dijkstraQueue) Len() int { return len(q) }
func (q dijkstraQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}

	return q[i].order < q[j].order
}
func (q dijkstraQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapSlot, q[j].heapSlot = i, j
}
func (q *dijkstraQueue) Push(x any) {
	item := x.(*dijkstraItem)
	item.heapSlot = len(*q)
	*q = append(*q, item)
}
func (q *dijkstraQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// GetDijkstraConnections finds a minimum-cost path from from to to, relaxing
// over every hyperedge directly connecting the current vertex to each
// candidate neighbor and picking, per neighbor, the cheapest such hyperedge.
// Ties are broken by traversal order (first-seen wins).
//
// The first returned Step names from with no hyperedge; each subsequent Step
// names the hyperedge used to arrive at that vertex. If from == to, the
// result is the single Step naming from. If no path exists, the result is
// empty. Fails if either endpoint is unknown, or if any examined hyperedge
// reports a negative cost.
func GetDijkstraConnections[V comparable, HE Weigher](g *Hypergraph[V, HE], from, to VertexIndex) ([]Step, error) {
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

	if fromSlot == toSlot {
		return []Step{{Vertex: from}}, nil
	}

	dist := make(map[int]int64)
	viaHyperedge := make(map[int]int)
	viaVertex := make(map[int]int)
	visited := make(map[int]bool)
	items := make(map[int]*dijkstraItem)

	pq := &dijkstraQueue{}
	heap.Init(pq)

	start := &dijkstraItem{slot: fromSlot, dist: 0, order: 0}
	dist[fromSlot] = 0
	items[fromSlot] = start
	heap.Push(pq, start)

	order := 1

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*dijkstraItem)
		if visited[current.slot] {
			continue
		}

		visited[current.slot] = true

		if current.slot == toSlot {
			break
		}

		conns := g.getConnections(modeIn, current.slot, current.slot)

		best := make(map[int]struct {
			cost int
			he   int
		})
		bestOrder := make([]int, 0)

		for _, c := range conns {
			heEntry := g.hyperedges.at(c.hyperedgeSlot)
			cost64 := heEntry.weight.Cost()
			if cost64 < 0 {
				return nil, ErrNegativeHyperedgeCost
			}

			cost := int(cost64)
			if prior, ok := best[c.neighborSlot]; !ok {
				best[c.neighborSlot] = struct {
					cost int
					he   int
				}{cost: cost, he: c.hyperedgeSlot}
				bestOrder = append(bestOrder, c.neighborSlot)
			} else if cost < prior.cost {
				best[c.neighborSlot] = struct {
					cost int
					he   int
				}{cost: cost, he: c.hyperedgeSlot}
			}
		}

		for _, neighborSlot := range bestOrder {
			if visited[neighborSlot] {
				continue
			}

			edge := best[neighborSlot]
			candidate := current.dist + int64(edge.cost)

			existing, known := dist[neighborSlot]
			if !known || candidate < existing {
				dist[neighborSlot] = candidate
				viaHyperedge[neighborSlot] = edge.he
				viaVertex[neighborSlot] = current.slot

				item, tracked := items[neighborSlot]
				if !tracked {
					item = &dijkstraItem{slot: neighborSlot, order: order}
					order++
					items[neighborSlot] = item
					heap.Push(pq, item)
				}

				item.dist = candidate
				heap.Fix(pq, item.heapSlot)
			}
		}
	}

	if !visited[toSlot] {
		return nil, nil
	}

	// Walk predecessors from toSlot back to fromSlot, then reverse.
	pathSlots := []int{toSlot}
	cur := toSlot
	for cur != fromSlot {
		prev, ok := viaVertex[cur]
		if !ok {
			return nil, nil
		}

		pathSlots = append(pathSlots, prev)
		cur = prev
	}

	for i, j := 0, len(pathSlots)-1; i < j; i, j = i+1, j-1 {
		pathSlots[i], pathSlots[j] = pathSlots[j], pathSlots[i]
	}

	out := make([]Step, len(pathSlots))
	for i, slot := range pathSlots {
		stable, ok := g.vertexIndex.reverse(slot)
		if !ok {
			return nil, &InternalVertexIndexNotFoundError{Slot: slot}
		}

		step := Step{Vertex: VertexIndex(stable)}
		if i > 0 {
			heSlot := viaHyperedge[slot]
			heStable, ok := g.hyperedgeIndex.reverse(heSlot)
			if !ok {
				return nil, &InternalHyperedgeIndexNotFoundError{Slot: heSlot}
			}

			step.Hyperedge = HyperedgeIndex(heStable)
			step.HasEdge = true
		}

		out[i] = step
	}

	return out, nil
}
