package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dyweb/hyperdag/core"
)

// newPathCmd builds the "path" command: a minimum-cost path between two
// named vertices, via core.GetDijkstraConnections.
func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find a minimum-cost path between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, byName, err := loadGraph()
			if err != nil {
				return err
			}

			from, err := resolveVertex(byName, args[0])
			if err != nil {
				return err
			}

			to, err := resolveVertex(byName, args[1])
			if err != nil {
				return err
			}

			steps, err := core.GetDijkstraConnections(g, from, to)
			if err != nil {
				return err
			}

			if len(steps) == 0 {
				fmt.Println("no path")

				logger.Info("path query", zap.String("from", args[0]), zap.String("to", args[1]), zap.Bool("found", false))

				return nil
			}

			names := make([]string, len(steps))
			for i, s := range steps {
				w, err := g.GetVertexWeight(s.Vertex)
				if err != nil {
					return err
				}

				names[i] = w
			}

			fmt.Println(strings.Join(names, " -> "))

			logger.Info("path query",
				zap.String("from", args[0]),
				zap.String("to", args[1]),
				zap.Bool("found", true),
				zap.Int("hops", len(steps)-1),
			)

			return nil
		},
	}
}
