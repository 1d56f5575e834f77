package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dyweb/hyperdag/builder"
	"github.com/dyweb/hyperdag/core"
)

var (
	docPath string
	logger  *zap.Logger
)

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hgctl: logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	root := &cobra.Command{
		Use:   "hgctl",
		Short: "Inspect a directed hypergraph described as a JSON document",
	}
	root.PersistentFlags().StringVar(&docPath, "file", "", "path to the hypergraph JSON document (required)")
	root.MarkPersistentFlagRequired("file") //nolint:errcheck

	root.AddCommand(newQueryCmd())
	root.AddCommand(newPathCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func loadGraph() (*builder.Hypergraph, map[string]core.VertexIndex, error) {
	doc, err := loadDocument(docPath)
	if err != nil {
		return nil, nil, err
	}

	g, byName, err := doc.build()
	if err != nil {
		return nil, nil, err
	}

	logger.Info("loaded hypergraph",
		zap.String("file", docPath),
		zap.Int("vertices", g.CountVertices()),
		zap.Int("hyperedges", g.CountHyperedges()),
	)

	return g, byName, nil
}

func resolveVertex(byName map[string]core.VertexIndex, name string) (core.VertexIndex, error) {
	v, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown vertex %q", name)
	}

	return v, nil
}
