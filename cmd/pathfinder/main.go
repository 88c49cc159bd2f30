// Command pathfinder runs the graph algorithms of this module against graphs
// stored as YAML edge lists.
//
//	pathfinder bellman-ford --graph fx.yaml --source USD
//	pathfinder bellman-ford --graph fx.yaml --all
//	pathfinder dijkstra --graph roads.yaml --source A --max-distance 100
//	pathfinder bfs --graph roads.yaml --source A --max-depth 2
//	pathfinder dfs --graph tree.yaml --root 1 --objective 7
//	pathfinder cycles --graph fx.yaml
//	pathfinder topo --graph deps.yaml
//	pathfinder generate --kind grid --rows 4 --cols 4 --min-weight -1 --out grid.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
