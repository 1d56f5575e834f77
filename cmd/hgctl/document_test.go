package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "vertices": ["a", "b", "c"],
  "hyperedges": [
    {"id": "e0", "weight": 1, "vertices": ["a", "b"]},
    {"id": "e1", "weight": 2, "vertices": ["b", "c", "a"]}
  ]
}`

func writeSampleDoc(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	return path
}

func TestLoadDocumentAndBuild(t *testing.T) {
	path := writeSampleDoc(t)

	doc, err := loadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Vertices, 3)
	assert.Len(t, doc.Hyperedges, 2)

	g, byName, err := doc.build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.CountVertices())
	assert.Equal(t, 2, g.CountHyperedges())
	assert.Contains(t, byName, "a")
}

func TestLoadDocumentUnknownVertex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"vertices": ["a"],
		"hyperedges": [{"id": "e0", "weight": 1, "vertices": ["a", "missing"]}]
	}`), 0o644))

	doc, err := loadDocument(path)
	require.NoError(t, err)

	_, _, err = doc.build()
	require.Error(t, err)
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := loadDocument(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
