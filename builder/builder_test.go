package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyweb/hyperdag/builder"
	"github.com/dyweb/hyperdag/core"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildHypergraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.CountVertices())
	assert.Equal(t, 1, g.CountHyperedges())

	vs, err := g.GetHyperedgeVertices(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, payloadsOf(t, g, vs))
}

func TestPathTooFewVertices(t *testing.T) {
	_, err := builder.BuildHypergraph(nil, nil, builder.Path(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestStar(t *testing.T) {
	g, err := builder.BuildHypergraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.CountVertices())
	assert.Equal(t, 3, g.CountHyperedges())

	hubWeight, err := g.GetVertexWeight(0)
	require.NoError(t, err)
	assert.Equal(t, "center", hubWeight)

	for h := 0; h < 3; h++ {
		vs, err := g.GetHyperedgeVertices(core.HyperedgeIndex(h))
		require.NoError(t, err)
		assert.Len(t, vs, 2)
	}
}

func TestStarTooFewVertices(t *testing.T) {
	_, err := builder.BuildHypergraph(nil, nil, builder.Star(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestClique(t *testing.T) {
	g, err := builder.BuildHypergraph(nil, nil, builder.Clique(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.CountVertices())
	assert.Equal(t, 6, g.CountHyperedges()) // 3*2 ordered pairs
}

func TestCliqueTooFewVertices(t *testing.T) {
	_, err := builder.BuildHypergraph(nil, nil, builder.Clique(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestBuildHypergraphWithOptions(t *testing.T) {
	g, err := builder.BuildHypergraph(
		nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(5)},
		builder.Path(3),
	)
	require.NoError(t, err)

	vs, err := g.GetHyperedgeVertices(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, payloadsOf(t, g, vs))

	w, err := g.GetHyperedgeWeight(0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w.Weight)
}

func TestBuildHypergraphNilConstructor(t *testing.T) {
	_, err := builder.BuildHypergraph(nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
}

func TestLabelCost(t *testing.T) {
	l := builder.HyperedgeLabel{ID: "e0", Weight: 7}
	assert.Equal(t, int64(7), l.Cost())
	assert.Equal(t, "e0(7)", l.String())
}

func TestWithUniformWeightRequiresRand(t *testing.T) {
	_, err := builder.BuildHypergraph(
		nil,
		[]builder.BuilderOption{builder.WithUniformWeight(1, 2)},
		builder.Path(2),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrNeedRandSource))
}

func TestWithUniformWeightSucceedsWithSeed(t *testing.T) {
	g, err := builder.BuildHypergraph(
		nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 2)},
		builder.Path(2),
	)
	require.NoError(t, err)

	w, err := g.GetHyperedgeWeight(0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, w.Weight, 1.0)
	assert.LessOrEqual(t, w.Weight, 2.0)
}

func TestWithConstantWeightPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		builder.WithConstantWeight(-1)
	})
}

func TestWithIDSchemePanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		builder.WithIDScheme(nil)
	})
}

func TestWithRandPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		builder.WithRand(nil)
	})
}

func TestWithUUIDIDs(t *testing.T) {
	g, err := builder.BuildHypergraph(nil, []builder.BuilderOption{builder.WithUUIDIDs()}, builder.Path(2))
	require.NoError(t, err)

	a, err := g.GetVertexWeight(0)
	require.NoError(t, err)
	b, err := g.GetVertexWeight(1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36) // canonical UUID string length
}

// --- helpers ---

func payloadsOf(t *testing.T, g *builder.Hypergraph, vs []core.VertexIndex) []string {
	t.Helper()

	out := make([]string, len(vs))
	for i, v := range vs {
		w, err := g.GetVertexWeight(v)
		require.NoError(t, err)
		out[i] = w
	}

	return out
}
