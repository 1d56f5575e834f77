package core

import "sync"

// defaultCapacity is the initial slice capacity used when a Hypergraph is
// constructed with New instead of WithCapacity.
const defaultCapacity = 16

// Hypergraph is an in-memory directed hypergraph over vertex payloads V and
// hyperedge payloads HE. See the package doc for the storage model.
//
// Concurrency: a *Hypergraph must not be mutated from more than one
// goroutine at a time. Concurrent read-only queries against an otherwise
// idle instance are safe; mu enforces this with RLock/Lock.
type Hypergraph[V comparable, HE comparable] struct {
	mu sync.RWMutex

	vertices   *vertexStore[V]
	hyperedges *hyperedgeStore[HE]

	vertexIndex    translation
	hyperedgeIndex translation
}

// Option configures a Hypergraph at construction time.
type Option func(*config)

type config struct {
	vertexCapacity   int
	hyperedgeCapacity int
}

// WithCapacity pre-allocates room for vCap vertices and heCap hyperedges,
// avoiding incremental slice growth for callers who know their graph's
// approximate size up front.
func WithCapacity(vCap, heCap int) Option {
	return func(c *config) {
		c.vertexCapacity = vCap
		c.hyperedgeCapacity = heCap
	}
}

// New constructs an empty Hypergraph, applying any supplied Options.
func New[V comparable, HE comparable](opts ...Option) *Hypergraph[V, HE] {
	c := config{vertexCapacity: defaultCapacity, hyperedgeCapacity: defaultCapacity}
	for _, opt := range opts {
		opt(&c)
	}

	return &Hypergraph[V, HE]{
		vertices:       newVertexStore[V](c.vertexCapacity),
		hyperedges:     newHyperedgeStore[HE](c.hyperedgeCapacity),
		vertexIndex:    newTranslation(),
		hyperedgeIndex: newTranslation(),
	}
}

// CountVertices returns the number of live vertices.
func (g *Hypergraph[V, HE]) CountVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.len()
}

// CountHyperedges returns the number of live hyperedges.
func (g *Hypergraph[V, HE]) CountHyperedges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hyperedges.len()
}

// Clear empties the graph entirely: all vertices, all hyperedges, and both
// index translations are reset, including their monotonic counters.
func (g *Hypergraph[V, HE]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices.clear()
	g.hyperedges.clear()
	g.vertexIndex.clear()
	g.hyperedgeIndex.clear()
}

// ClearHyperedges drops every hyperedge and empties every vertex's
// back-reference set, resetting the hyperedge counter and translation.
// Vertices themselves survive.
func (g *Hypergraph[V, HE]) ClearHyperedges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.hyperedges.clear()
	g.hyperedgeIndex.clear()

	for slot := 0; slot < g.vertices.len(); slot++ {
		g.vertices.entryAt(slot).backRefs = newOrderedIntSet()
	}
}
