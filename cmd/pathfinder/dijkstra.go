package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgraph/dijkstra"
)

type dijkstraFlags struct {
	graphPath    string
	source       string
	maxDistance  int64
	infThreshold int64
}

func (a *app) dijkstraCmd() *cobra.Command {
	var f dijkstraFlags
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest paths on graphs with non-negative weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireVertex("source", f.source); err != nil {
				return err
			}

			// Validate here; the option constructors panic on bad values.
			opts := []dijkstra.Option[int64]{
				dijkstra.WithContext[int64](cmd.Context()),
				dijkstra.WithLogger[int64](a.logger),
			}
			if cmd.Flags().Changed("max-distance") {
				if f.maxDistance < 0 {
					return fmt.Errorf("%w: %d", dijkstra.ErrBadMaxDistance, f.maxDistance)
				}
				opts = append(opts, dijkstra.WithMaxDistance(f.maxDistance))
			}
			if cmd.Flags().Changed("inf-threshold") {
				if f.infThreshold <= 0 {
					return fmt.Errorf("%w: %d", dijkstra.ErrBadInfThreshold, f.infThreshold)
				}
				opts = append(opts, dijkstra.WithInfEdgeThreshold(f.infThreshold))
			}

			g, err := a.loadGraph(f.graphPath)
			if err != nil {
				return err
			}
			paths, err := dijkstra.Dijkstra(g, f.source, opts...)
			if err != nil {
				return err
			}

			return a.printer(cmd).Paths(g, f.source, paths)
		},
	}

	cmd.Flags().StringVarP(&f.graphPath, "graph", "g", "", "graph file (yaml)")
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "source vertex")
	cmd.Flags().Int64Var(&f.maxDistance, "max-distance", 0, "do not explore beyond this distance")
	cmd.Flags().Int64Var(&f.infThreshold, "inf-threshold", 0, "treat edges at or above this weight as absent")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
