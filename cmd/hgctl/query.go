package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dyweb/hyperdag/builder"
	"github.com/dyweb/hyperdag/core"
)

// newQueryCmd builds the "query" command tree: adjacent and degree
// subcommands, both operating relative to a single named vertex.
func newQueryCmd() *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run adjacency or degree queries against a vertex",
	}

	adjacentCmd := &cobra.Command{
		Use:   "adjacent <vertex>",
		Short: "List vertices directly reachable from, or reaching, <vertex>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, byName, err := loadGraph()
			if err != nil {
				return err
			}

			v, err := resolveVertex(byName, args[0])
			if err != nil {
				return err
			}

			var ns []core.VertexIndex
			switch direction {
			case "out":
				ns, err = g.GetAdjacentVerticesFrom(v)
			case "in":
				ns, err = g.GetAdjacentVerticesTo(v)
			default:
				return fmt.Errorf("unknown --direction %q (want in or out)", direction)
			}
			if err != nil {
				return err
			}

			neighbors, err := namesOf(g, ns)
			if err != nil {
				return err
			}

			for _, n := range neighbors {
				fmt.Println(n)
			}

			logger.Info("adjacent query",
				zap.String("vertex", args[0]),
				zap.String("direction", direction),
				zap.Int("count", len(neighbors)),
			)

			return nil
		},
	}
	adjacentCmd.Flags().StringVar(&direction, "direction", "out", "out: vertices reachable from <vertex>; in: vertices reaching it")

	degreeCmd := &cobra.Command{
		Use:   "degree <vertex>",
		Short: "Print the in/out degree of <vertex>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, byName, err := loadGraph()
			if err != nil {
				return err
			}

			v, err := resolveVertex(byName, args[0])
			if err != nil {
				return err
			}

			in, err := g.GetVertexDegreeIn(v)
			if err != nil {
				return err
			}

			out, err := g.GetVertexDegreeOut(v)
			if err != nil {
				return err
			}

			fmt.Printf("in=%d out=%d\n", in, out)

			return nil
		},
	}

	cmd.AddCommand(adjacentCmd, degreeCmd)

	return cmd
}

// namesOf resolves each VertexIndex in vs back to its string payload.
func namesOf(g *builder.Hypergraph, vs []core.VertexIndex) ([]string, error) {
	out := make([]string, len(vs))
	for i, v := range vs {
		w, err := g.GetVertexWeight(v)
		if err != nil {
			return nil, err
		}

		out[i] = w
	}

	return out, nil
}
