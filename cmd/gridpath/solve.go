package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bitmap"
	"github.com/katalvlaran/gridpath/challenge"
	"github.com/katalvlaran/gridpath/geom"
)

var (
	errNoStart = errors.New("maze is missing a start marker 'S'")
	errNoGoal  = errors.New("maze is missing a goal marker 'E'")
	errNoRoute = errors.New("no route from start to goal")
)

func newSolveCmd() *cobra.Command {
	var debugFlags string

	cmd := &cobra.Command{
		Use:   "solve <input-file>...",
		Short: "Find the shortest route through each maze file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := challenge.LoadAll(args, challenge.WithDebugFlags(debugFlags))
			if err != nil {
				return err
			}
			for _, c := range inputs {
				if err := solve(cmd, c); err != nil {
					return fmt.Errorf("%s: %w", c.Path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&debugFlags, "debug", "",
		"comma-separated debug flags (e.g. \"path\")")

	return cmd
}

// maze is a parsed maze plus the marker coordinates recorded by the
// parser side channel.
type maze struct {
	grid        *bitmap.Grid[bool] // true = open floor
	start, goal geom.Pt
}

// mazeParser maps maze characters to open/blocked cells, recording the
// start and goal markers as it goes.
type mazeParser struct {
	start, goal         geom.Pt
	haveStart, haveGoal bool
}

func (p *mazeParser) ParseElement(x, y int, c rune) (bool, bool) {
	switch c {
	case 'S':
		p.start, p.haveStart = geom.Pt{X: x, Y: y}, true
		return true, true
	case 'E':
		p.goal, p.haveGoal = geom.Pt{X: x, Y: y}, true
		return true, true
	case '.':
		return true, true
	case '#':
		return false, true
	}

	return false, false
}

func parseMaze(text string) (*maze, error) {
	p := &mazeParser{}
	grid, err := bitmap.Parse[bool](p, text)
	if err != nil {
		return nil, err
	}
	if !p.haveStart {
		return nil, errNoStart
	}
	if !p.haveGoal {
		return nil, errNoGoal
	}

	return &maze{grid: grid, start: p.start, goal: p.goal}, nil
}

// space adapts the maze to the search contract: 4-connected moves of
// unit weight with a Manhattan heuristic. Off-grid probes read the
// grid's false sentinel and so count as walls.
func (m *maze) space() astar.Space[geom.Pt] {
	return astar.FuncSpace[geom.Pt]{
		EstimateFunc: func(p geom.Pt) float64 { return float64(p.MDist(m.goal)) },
		ExpandFunc: func(p geom.Pt, visit func(geom.Pt, float64)) {
			for _, d := range geom.Offsets4[int]() {
				if q := p.Add(d); m.grid.Get(q.X, q.Y) {
					visit(q, 1)
				}
			}
		},
	}
}

func solve(cmd *cobra.Command, c *challenge.Challenge) error {
	m, err := parseMaze(c.Input)
	if err != nil {
		return err
	}

	path, found, err := astar.Find(m.space(), m.start, m.goal)
	if err != nil {
		return err
	}
	if !found {
		return errNoRoute
	}

	// Two-answer convention of the solver binaries: part 1 is the step
	// count, part 2 the path cost (equal here, with unit edge weights).
	fmt.Fprintf(cmd.OutOrStdout(), "part 1: %d\n", len(path))
	fmt.Fprintf(cmd.OutOrStdout(), "part 2: %d\n", len(path))
	if c.Debug("path") {
		fmt.Fprint(cmd.OutOrStdout(), renderRoute(m, path))
	}

	return nil
}

// renderRoute redraws the maze with the route marked by 'o'.
func renderRoute(m *maze, path []geom.Pt) string {
	onRoute := make(map[geom.Pt]bool, len(path))
	for _, p := range path {
		onRoute[p] = true
	}

	var sb strings.Builder
	for x, y := range m.grid.Positions() {
		here := geom.Pt{X: x, Y: y}
		switch {
		case here == m.start:
			sb.WriteByte('S')
		case here == m.goal:
			sb.WriteByte('E')
		case onRoute[here]:
			sb.WriteByte('o')
		case m.grid.Get(x, y):
			sb.WriteByte('.')
		default:
			sb.WriteByte('#')
		}
		if x == m.grid.Width()-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
