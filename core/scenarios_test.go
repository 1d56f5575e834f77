package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyweb/hyperdag/core"
)

// costLabel is a minimal core.Weigher implementation for Dijkstra scenarios.
type costLabel struct {
	name string
	cost int64
}

func (c costLabel) Cost() int64 { return c.cost }

func addLetters(t *testing.T, g *core.Hypergraph[string, string], letters string) map[byte]core.VertexIndex {
	t.Helper()

	out := make(map[byte]core.VertexIndex, len(letters))
	for i := 0; i < len(letters); i++ {
		v, err := g.AddVertex(string(letters[i]))
		require.NoError(t, err)
		out[letters[i]] = v
	}

	return out
}

// TestAddRemoveRemapsStableIndices exercises add/remove remapping across vertices and hyperedges.
func TestAddRemoveRemapsStableIndices(t *testing.T) {
	g := core.New[string, string]()
	vs := addLetters(t, g, "abcde")
	a, b, c, d, e := vs['a'], vs['b'], vs['c'], vs['d'], vs['e']

	h0, err := g.AddHyperedge([]core.VertexIndex{a, b, b, d}, "pink")
	require.NoError(t, err)
	_, err = g.AddHyperedge([]core.VertexIndex{a, b, b, d}, "yellow")
	require.NoError(t, err)
	_, err = g.AddHyperedge([]core.VertexIndex{e, a, d, c}, "book")
	require.NoError(t, err)
	_, err = g.AddHyperedge([]core.VertexIndex{d}, "meditate")
	require.NoError(t, err)
	h4, err := g.AddHyperedge([]core.VertexIndex{d}, "workout")
	require.NoError(t, err)

	require.NoError(t, g.RemoveHyperedge(h4))
	require.NoError(t, g.RemoveHyperedge(h0))

	assert.Equal(t, 3, g.CountHyperedges())

	aRefs, err := g.GetVertexHyperedges(a)
	require.NoError(t, err)
	assert.Equal(t, []core.HyperedgeIndex{2, 1}, aRefs)

	dRefs, err := g.GetVertexHyperedges(d)
	require.NoError(t, err)
	assert.Equal(t, []core.HyperedgeIndex{3, 1, 2}, dRefs)
}

// TestReverseHyperedgeAfterVertexRemoval exercises hyperedge reversal after vertex removal.
func TestReverseHyperedgeAfterVertexRemoval(t *testing.T) {
	g := core.New[string, string]()
	vs := addLetters(t, g, "abcde")
	a, b, c, d, e := vs['a'], vs['b'], vs['c'], vs['d'], vs['e']

	h0, err := g.AddHyperedge([]core.VertexIndex{a, b, b, d}, "pink")
	require.NoError(t, err)
	h1, err := g.AddHyperedge([]core.VertexIndex{a, b, b, d}, "yellow")
	require.NoError(t, err)
	_, err = g.AddHyperedge([]core.VertexIndex{e, a, d, c}, "book")
	require.NoError(t, err)
	_, err = g.AddHyperedge([]core.VertexIndex{d}, "meditate")
	require.NoError(t, err)
	h4, err := g.AddHyperedge([]core.VertexIndex{d}, "workout")
	require.NoError(t, err)

	require.NoError(t, g.RemoveHyperedge(h4))
	require.NoError(t, g.RemoveHyperedge(h0))

	require.NoError(t, g.RemoveVertex(a))

	seq, err := g.GetHyperedgeVertices(h1)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{b, b, d}, seq)

	require.NoError(t, g.ReverseHyperedge(h1))

	reversed, err := g.GetHyperedgeVertices(h1)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{d, b, b}, reversed)
}

// TestIntersectionsAcrossMultipleHyperedges exercises multi-hyperedge vertex intersections.
func TestIntersectionsAcrossMultipleHyperedges(t *testing.T) {
	g := core.New[string, string]()
	vs := addLetters(t, g, "abcde")
	a, b, c, d, e := vs['a'], vs['b'], vs['c'], vs['d'], vs['e']

	h0, err := g.AddHyperedge([]core.VertexIndex{a, b, b, d}, "pink")
	require.NoError(t, err)
	h2, err := g.AddHyperedge([]core.VertexIndex{e, a, d, c}, "book")
	require.NoError(t, err)
	h3, err := g.AddHyperedge([]core.VertexIndex{d}, "meditate")
	require.NoError(t, err)

	inter, err := g.GetHyperedgesIntersections([]core.HyperedgeIndex{h0, h2})
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{a, d}, inter)

	inter, err = g.GetHyperedgesIntersections([]core.HyperedgeIndex{h0, h2, h3})
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{d}, inter)

	inter, err = g.GetHyperedgesIntersections([]core.HyperedgeIndex{h0, h0})
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{a, b, d}, inter)
}

// TestDijkstraPicksCheapestOverlappingRoute exercises Dijkstra routing across overlapping hyperedges.
func TestDijkstraPicksCheapestOverlappingRoute(t *testing.T) {
	g := core.New[string, costLabel]()
	vs := addLetters(t, g, "abcde")
	a, b, c, d, e := vs['a'], vs['b'], vs['c'], vs['d'], vs['e']

	alpha, err := g.AddHyperedge([]core.VertexIndex{a, b, e}, costLabel{"alpha", 10})
	require.NoError(t, err)
	beta, err := g.AddHyperedge([]core.VertexIndex{a, b, e, d}, costLabel{"beta", 20})
	require.NoError(t, err)
	gamma, err := g.AddHyperedge([]core.VertexIndex{b, c, e}, costLabel{"gamma", 1})
	require.NoError(t, err)
	_, err = g.AddHyperedge([]core.VertexIndex{b, d}, costLabel{"delta", 100})
	require.NoError(t, err)

	steps, err := core.GetDijkstraConnections(g, a, d)
	require.NoError(t, err)

	want := []core.Step{
		{Vertex: a},
		{Vertex: b, Hyperedge: alpha, HasEdge: true},
		{Vertex: c, Hyperedge: gamma, HasEdge: true},
		{Vertex: e, Hyperedge: gamma, HasEdge: true},
		{Vertex: d, Hyperedge: beta, HasEdge: true},
	}
	assert.Equal(t, want, steps)
}

// TestContractionRewritesAllTouchedHyperedges exercises vertex contraction across multiple touched hyperedges.
func TestContractionRewritesAllTouchedHyperedges(t *testing.T) {
	g := core.New[string, string]()
	vs := addLetters(t, g, "abcde")
	a, b, c, d, e := vs['a'], vs['b'], vs['c'], vs['d'], vs['e']

	alpha, err := g.AddHyperedge([]core.VertexIndex{a, b, c, d, e}, "alpha")
	require.NoError(t, err)
	beta, err := g.AddHyperedge([]core.VertexIndex{a, c, d, e, c}, "beta")
	require.NoError(t, err)
	gamma, err := g.AddHyperedge([]core.VertexIndex{a, e, b}, "gamma")
	require.NoError(t, err)
	delta, err := g.AddHyperedge([]core.VertexIndex{b, c, b, d, c}, "delta")
	require.NoError(t, err)
	epsilon, err := g.AddHyperedge([]core.VertexIndex{c, c, c}, "epsilon")
	require.NoError(t, err)

	result, err := g.ContractHyperedgeVertices(alpha, []core.VertexIndex{b, c}, b)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{a, b, d, e}, result)

	betaSeq, err := g.GetHyperedgeVertices(beta)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{a, b, d, e, b}, betaSeq)

	gammaSeq, err := g.GetHyperedgeVertices(gamma)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{a, e, b}, gammaSeq)

	deltaSeq, err := g.GetHyperedgeVertices(delta)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{b, d, b}, deltaSeq)

	epsilonSeq, err := g.GetHyperedgeVertices(epsilon)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{b}, epsilonSeq)
}

// TestRemoveNonLastVertexRebindsSlot exercises removal of a non-last vertex after
// prior hyperedge removals have already reshuffled internal slots.
func TestRemoveNonLastVertexRebindsSlot(t *testing.T) {
	g := core.New[string, string]()
	vs := addLetters(t, g, "abcde")
	a, b, c, d, e := vs['a'], vs['b'], vs['c'], vs['d'], vs['e']

	h0, err := g.AddHyperedge([]core.VertexIndex{a, b, b, d}, "pink")
	require.NoError(t, err)
	h1, err := g.AddHyperedge([]core.VertexIndex{a, b, b, d}, "yellow")
	require.NoError(t, err)
	h2, err := g.AddHyperedge([]core.VertexIndex{e, a, d, c}, "book")
	require.NoError(t, err)
	h3, err := g.AddHyperedge([]core.VertexIndex{d}, "meditate")
	require.NoError(t, err)
	h4, err := g.AddHyperedge([]core.VertexIndex{d}, "workout")
	require.NoError(t, err)

	require.NoError(t, g.RemoveHyperedge(h4))
	require.NoError(t, g.RemoveHyperedge(h0))

	require.NoError(t, g.RemoveVertex(e))
	require.NoError(t, g.RemoveVertex(a))

	assert.Equal(t, 3, g.CountVertices())
	assert.Equal(t, 3, g.CountHyperedges())

	h1Seq, err := g.GetHyperedgeVertices(h1)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{b, b, d}, h1Seq)

	h2Seq, err := g.GetHyperedgeVertices(h2)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{d, c}, h2Seq)

	h3Seq, err := g.GetHyperedgeVertices(h3)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexIndex{d}, h3Seq)
}
