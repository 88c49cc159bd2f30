package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgraph/bfs"
	"github.com/katalvlaran/pathgraph/dfs"
)

func (a *app) bfsCmd() *cobra.Command {
	var (
		graphPath, source string
		maxDepth          int
	)
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Group vertices by their number of edges from --source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireVertex("source", source); err != nil {
				return err
			}

			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, source,
				bfs.WithContext[string](cmd.Context()),
				bfs.WithMaxDepth[string](maxDepth))
			if err != nil {
				return err
			}

			return a.printer(cmd).Layers(source, res.Layers())
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file (yaml)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "start vertex")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many edges (0 = no limit)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (a *app) dfsCmd() *cobra.Command {
	var graphPath, root, objective string
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first search from --root until --objective is popped",
		Long: `Walk the graph depth-first from --root, smallest neighbor first, and print
the order in which vertices were visited. The walk stops at --objective.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.Join(requireVertex("root", root), requireVertex("objective", objective)); err != nil {
				return err
			}

			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}
			history, found := dfs.Search(g, root, objective)

			return a.printer(cmd).Search(root, objective, history, found)
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file (yaml)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "start vertex")
	cmd.Flags().StringVarP(&objective, "objective", "o", "", "vertex to search for")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (a *app) cyclesCmd() *cobra.Command {
	var graphPath string
	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "List the cycles closed by back edges, flagging negative ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}
			_, cycles := dfs.DetectCycles(g)

			return a.printer(cmd).Cycles(g, cycles)
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file (yaml)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (a *app) topoCmd() *cobra.Command {
	var graphPath string
	cmd := &cobra.Command{
		Use:   "topo",
		Short: "Topological order of an acyclic graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}
			order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(cmd.Context()))
			if err != nil {
				return err
			}

			return a.printer(cmd).Order("topological order", order)
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file (yaml)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
