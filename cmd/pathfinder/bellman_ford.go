package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathgraph/bellmanford"
	"github.com/katalvlaran/pathgraph/graph"
)

type bellmanFordFlags struct {
	graphPath string
	source    string
	target    string
	all       bool
}

// outcome is the result of one single-source run: either paths or a cycle.
type outcome struct {
	source string
	paths  graph.Paths[string, int64]
	cycle  *bellmanford.NegativeCycleError[string]
}

func (a *app) bellmanFordCmd() *cobra.Command {
	var f bellmanFordFlags
	cmd := &cobra.Command{
		Use:     "bellman-ford",
		Aliases: []string{"bf"},
		Short:   "Shortest paths with negative weights and negative-cycle detection",
		Long: `Compute shortest paths from --source with Bellman-Ford.

A negative cycle reachable from the source is reported instead of distances;
that is a valid answer, not a failure. With --all every vertex is used as a
source in turn, output.workers runs at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !f.all {
				if err := requireVertex("source", f.source); err != nil {
					return err
				}
			} else if f.target != "" {
				return errors.New("--target cannot be combined with --all")
			}

			g, err := a.loadGraph(f.graphPath)
			if err != nil {
				return err
			}

			if f.target != "" {
				return a.route(cmd, g, f.source, f.target)
			}

			sources := []string{f.source}
			if f.all {
				sources = g.Vertices()
			}
			results, err := a.shortestPathsFrom(cmd, g, sources)
			if err != nil {
				return err
			}

			return a.printOutcomes(cmd, g, results)
		},
	}

	cmd.Flags().StringVarP(&f.graphPath, "graph", "g", "", "graph file (yaml)")
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "source vertex")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "print only the path to this vertex")
	cmd.Flags().BoolVar(&f.all, "all", false, "run from every vertex")
	_ = cmd.MarkFlagRequired("graph")
	cmd.MarkFlagsMutuallyExclusive("source", "all")

	return cmd
}

// shortestPathsFrom runs ShortestPaths from every source concurrently and
// returns the outcomes in the order of sources.
func (a *app) shortestPathsFrom(cmd *cobra.Command, g graph.Graph[string, int64], sources []string) ([]outcome, error) {
	results := make([]outcome, len(sources))

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(a.cfg.Output.Workers)
	for i, src := range sources {
		eg.Go(func() error {
			paths, err := bellmanford.ShortestPaths(g, src,
				bellmanford.WithContext(ctx),
				bellmanford.WithLogger(a.logger.With(zap.String("source", src))))

			var nc *bellmanford.NegativeCycleError[string]
			switch {
			case err == nil:
				results[i] = outcome{source: src, paths: paths}
			case errors.As(err, &nc):
				results[i] = outcome{source: src, cycle: nc}
			default:
				return fmt.Errorf("source %s: %w", src, err)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *app) printOutcomes(cmd *cobra.Command, g graph.Graph[string, int64], results []outcome) error {
	p := a.printer(cmd)
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return err
			}
		}

		var err error
		if r.cycle != nil {
			a.logger.Info("negative cycle", zap.String("source", r.source), zap.Strings("cycle", r.cycle.Cycle))
			err = p.NegativeCycle(g, r.source, r.cycle)
		} else {
			err = p.Paths(g, r.source, r.paths)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// route prints a single shortest path. Negative cycles are still reported
// as an outcome; an unreachable target is an error.
func (a *app) route(cmd *cobra.Command, g graph.Graph[string, int64], source, target string) error {
	path, dist, err := bellmanford.ShortestPath(g, source, target,
		bellmanford.WithContext(cmd.Context()),
		bellmanford.WithLogger(a.logger))

	var nc *bellmanford.NegativeCycleError[string]
	if errors.As(err, &nc) {
		return a.printer(cmd).NegativeCycle(g, source, nc)
	}
	if err != nil {
		return err
	}

	return a.printer(cmd).Route(path, dist)
}
