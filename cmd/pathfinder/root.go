package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathgraph/graph"
	"github.com/katalvlaran/pathgraph/internal/config"
	"github.com/katalvlaran/pathgraph/internal/graphfile"
	"github.com/katalvlaran/pathgraph/internal/logging"
	"github.com/katalvlaran/pathgraph/internal/report"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	// global flags
	configPath string
	verbose    bool
	noColor    bool

	cfg    *config.Config // nil until PersistentPreRunE succeeds
	logger *zap.Logger
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string) int {
	return execute(ctx, args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{logger: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_ = report.New[string, int64](stderr, a.useColor()).Failure(err)

		return 1
	}

	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathfinder",
		Short: "Shortest paths, searches and cycles on weighted directed graphs",
		Long: `pathfinder loads a weighted directed graph from a YAML edge list and runs
one algorithm on it.

Bellman-Ford accepts negative weights and reports a negative cycle reachable
from the source instead of distances. Dijkstra requires non-negative weights.

Configuration is read from --config, $PATHFINDER_CONFIG or ./pathfinder.yaml,
and PATHFINDER_* environment variables override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 1) Configuration
			var opts []config.LoaderOption
			if a.configPath != "" {
				opts = append(opts, config.WithConfigFile(a.configPath))
			}
			cfg, err := config.NewLoader(opts...).Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			// 2) Logger
			logger, err := logging.New(cfg.Log, logging.WithDebug(a.verbose))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.bellmanFordCmd(),
		a.dijkstraCmd(),
		a.bfsCmd(),
		a.dfsCmd(),
		a.cyclesCmd(),
		a.topoCmd(),
		a.generateCmd(),
	)

	return root
}

func (a *app) useColor() bool {
	if a.noColor {
		return false
	}
	if a.cfg == nil {
		return true
	}

	return a.cfg.Output.Color
}

func (a *app) printer(cmd *cobra.Command) *report.Printer[string, int64] {
	return report.New[string, int64](cmd.OutOrStdout(), a.useColor())
}

func (a *app) loadGraph(path string) (graph.Graph[string, int64], error) {
	g, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded",
		zap.String("path", path),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// requireVertex rejects vertex ids that are empty.
func requireVertex(flag, v string) error {
	if v == "" {
		return fmt.Errorf("--%s must not be empty", flag)
	}

	return nil
}
