package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dyweb/hyperdag/builder"
	"github.com/dyweb/hyperdag/core"
)

// hyperedgeDoc is one hyperedge entry in the JSON document.
type hyperedgeDoc struct {
	ID       string   `json:"id"`
	Weight   float64  `json:"weight"`
	Vertices []string `json:"vertices"`
}

// document is the top-level JSON shape hgctl reads: a flat vertex list plus
// a list of hyperedges naming their member vertices by payload.
type document struct {
	Vertices   []string       `json:"vertices"`
	Hyperedges []hyperedgeDoc `json:"hyperedges"`
}

// loadDocument reads and parses a document from path.
func loadDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &doc, nil
}

// build materializes doc as a *builder.Hypergraph, in document order, and
// returns the vertex-payload → VertexIndex lookup the CLI commands need to
// resolve user-supplied vertex names.
func (doc *document) build() (*builder.Hypergraph, map[string]core.VertexIndex, error) {
	g := core.New[string, builder.HyperedgeLabel]()

	byName := make(map[string]core.VertexIndex, len(doc.Vertices))
	for _, name := range doc.Vertices {
		v, err := g.AddVertex(name)
		if err != nil {
			return nil, nil, fmt.Errorf("vertex %q: %w", name, err)
		}

		byName[name] = v
	}

	for _, he := range doc.Hyperedges {
		seq := make([]core.VertexIndex, len(he.Vertices))
		for i, name := range he.Vertices {
			v, ok := byName[name]
			if !ok {
				return nil, nil, fmt.Errorf("hyperedge %q: unknown vertex %q", he.ID, name)
			}

			seq[i] = v
		}

		label := builder.HyperedgeLabel{ID: he.ID, Weight: he.Weight}
		if _, err := g.AddHyperedge(seq, label); err != nil {
			return nil, nil, fmt.Errorf("hyperedge %q: %w", he.ID, err)
		}
	}

	return g, byName, nil
}
