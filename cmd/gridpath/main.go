// Command gridpath is a small demonstration binary for the toolkit:
// it reads a character maze and reports the shortest route through it.
//
// Maze format: '#' walls, '.' open floor, one 'S' start and one 'E'
// goal. The solve subcommand prints the number of steps and the path
// cost; --debug path additionally renders the route onto the maze.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Grid parsing and A* pathfinding demos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
