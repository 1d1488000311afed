// Package astar_test contains unit tests for the A* implementation.
// These tests validate path correctness on chain and grid graphs,
// not-found reporting for unreachable goals, tie-break determinism, and
// the negative-weight and nil-space failure modes.
package astar_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bitmap"
	"github.com/katalvlaran/gridpath/geom"
)

// chainSpace is a 1D chain 0-1-2-...-(size-1): each node's neighbors are
// its ±1 neighbors within range at weight 1, heuristic = |goal - n|.
func chainSpace(size, goal int) astar.Space[int] {
	return astar.FuncSpace[int]{
		EstimateFunc: func(n int) float64 {
			return math.Abs(float64(goal - n))
		},
		ExpandFunc: func(n int, visit func(int, float64)) {
			if n > 0 {
				visit(n-1, 1)
			}
			if n < size-1 {
				visit(n+1, 1)
			}
		},
	}
}

// ------------------------------------------------------------------------
// 1. Validation: nil space and negative weights are the only errors.
// ------------------------------------------------------------------------

func TestFind_NilSpace(t *testing.T) {
	_, _, err := astar.Find[int](nil, 0, 4)
	require.ErrorIs(t, err, astar.ErrNilSpace)
}

func TestFind_NegativeWeight(t *testing.T) {
	space := astar.FuncSpace[int]{
		EstimateFunc: func(int) float64 { return 0 },
		ExpandFunc: func(n int, visit func(int, float64)) {
			visit(n+1, -1) // invalid negative weight
		},
	}
	_, found, err := astar.Find[int](space, 0, 4)
	require.ErrorIs(t, err, astar.ErrNegativeWeight)
	require.False(t, found)
}

// ------------------------------------------------------------------------
// 2. Basic functionality: chains, trivial searches, unreachable goals.
// ------------------------------------------------------------------------

// TestFind_Chain runs the canonical 0-1-2-3-4 chain: the path excludes
// the start node and includes the goal.
func TestFind_Chain(t *testing.T) {
	path, found, err := astar.Find(chainSpace(5, 4), 0, 4)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{1, 2, 3, 4}, path)
}

// TestFind_StartIsGoal returns an empty path, found=true.
func TestFind_StartIsGoal(t *testing.T) {
	path, found, err := astar.Find(chainSpace(5, 2), 2, 2)
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, path)
}

// TestFind_Unreachable verifies that a disconnected goal reports
// not-found, never an error.
func TestFind_Unreachable(t *testing.T) {
	// Node 99 is outside the 5-node chain; nothing ever expands to it.
	path, found, err := astar.Find(chainSpace(5, 99), 0, 99)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, path)
}

// TestFind_ZeroEstimate degrades to Dijkstra and still finds the
// optimal path.
func TestFind_ZeroEstimate(t *testing.T) {
	space := astar.FuncSpace[int]{
		EstimateFunc: func(int) float64 { return 0 },
		ExpandFunc: func(n int, visit func(int, float64)) {
			if n > 0 {
				visit(n-1, 1)
			}
			if n < 4 {
				visit(n+1, 1)
			}
		},
	}
	path, found, err := astar.Find[int](space, 0, 4)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{1, 2, 3, 4}, path)
}

// TestFind_WeightedShortcut checks that A* prefers a cheaper multi-hop
// route over an expensive direct edge.
func TestFind_WeightedShortcut(t *testing.T) {
	// Edges: 0→2 (5), 0→1 (1), 1→2 (1). Optimal: 0→1→2 cost 2.
	edges := map[int][]struct {
		to int
		w  float64
	}{
		0: {{2, 5}, {1, 1}},
		1: {{2, 1}},
	}
	space := astar.FuncSpace[int]{
		EstimateFunc: func(int) float64 { return 0 },
		ExpandFunc: func(n int, visit func(int, float64)) {
			for _, e := range edges[n] {
				visit(e.to, e.w)
			}
		},
	}
	path, found, err := astar.Find[int](space, 0, 2)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{1, 2}, path)
}

// ------------------------------------------------------------------------
// 3. Grid searches: walls, sentinel-guarded expansion, re-opened routes.
// ------------------------------------------------------------------------

// walls maps '.' to passable and '#' to blocked, declining other runes.
var walls = bitmap.ParserFunc[bool](func(_, _ int, c rune) (bool, bool) {
	switch c {
	case '.':
		return true, true
	case '#':
		return false, true
	}
	return false, false
})

// gridSpace searches a wall grid with 4-connectivity, unit weights, and
// a Manhattan heuristic. The grid's false sentinel blocks off-grid moves
// without explicit bounds checks.
func gridSpace(g *bitmap.Grid[bool], goal geom.Pt) astar.Space[geom.Pt] {
	return astar.FuncSpace[geom.Pt]{
		EstimateFunc: func(p geom.Pt) float64 { return float64(p.MDist(goal)) },
		ExpandFunc: func(p geom.Pt, visit func(geom.Pt, float64)) {
			for _, d := range geom.Offsets4[int]() {
				q := p.Add(d)
				if g.Get(q.X, q.Y) {
					visit(q, 1)
				}
			}
		},
	}
}

// TestFind_WallBlocksPath verifies not-found across a full wall, and
// that removing one wall cell makes a path newly available.
func TestFind_WallBlocksPath(t *testing.T) {
	g, err := bitmap.Parse(walls, strings.TrimPrefix(`
..#..
..#..
..#..
`, "\n"))
	require.NoError(t, err)

	start, goal := geom.Pt{X: 0, Y: 1}, geom.Pt{X: 4, Y: 1}
	_, found, err := astar.Find(gridSpace(g, goal), start, goal)
	require.NoError(t, err)
	require.False(t, found, "full wall should separate start and goal")

	// Knock one cell out of the wall: path exists now.
	require.NoError(t, g.Set(2, 1, true))
	path, found, err := astar.Find(gridSpace(g, goal), start, goal)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []geom.Pt{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}}, path)
}

// TestFind_PathLength checks optimality on an open grid with a detour.
func TestFind_PathLength(t *testing.T) {
	g, err := bitmap.Parse(walls, strings.TrimPrefix(`
....
.##.
....
`, "\n"))
	require.NoError(t, err)

	start, goal := geom.Pt{X: 0, Y: 1}, geom.Pt{X: 3, Y: 1}
	path, found, err := astar.Find(gridSpace(g, goal), start, goal)
	require.NoError(t, err)
	require.True(t, found)
	// Manhattan distance is 3 but the wall forces a 5-step detour.
	require.Len(t, path, 5)
	require.Equal(t, goal, path[len(path)-1])
}

// ------------------------------------------------------------------------
// 4. Determinism and options.
// ------------------------------------------------------------------------

// TestFind_Deterministic runs the same ambiguous search repeatedly and
// requires byte-identical paths every time.
func TestFind_Deterministic(t *testing.T) {
	g, err := bitmap.Parse(walls, strings.TrimPrefix(`
....
....
....
....
`, "\n"))
	require.NoError(t, err)

	start, goal := geom.Pt{X: 0, Y: 0}, geom.Pt{X: 3, Y: 3}
	// Every monotone staircase path ties on cost; the tie-break must pin one.
	first, found, err := astar.Find(gridSpace(g, goal), start, goal)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, first, 6)

	for i := 0; i < 10; i++ {
		again, found, err := astar.Find(gridSpace(g, goal), start, goal)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, first, again, "run %d diverged", i)
	}
}

// TestFind_WithOrdering verifies the node-value tie-break stays
// deterministic as well.
func TestFind_WithOrdering(t *testing.T) {
	g, err := bitmap.Parse(walls, "...\n...\n...")
	require.NoError(t, err)

	start, goal := geom.Pt{X: 0, Y: 0}, geom.Pt{X: 2, Y: 2}
	byYX := astar.WithOrdering[geom.Pt](func(a, b geom.Pt) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	first, found, err := astar.Find(gridSpace(g, goal), start, goal, byYX)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, first, 4)

	again, found, err := astar.Find(gridSpace(g, goal), start, goal, byYX)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, first, again)
}

// TestFind_MaxCost turns a reachable goal into not-found when the cap
// is below the true path cost, and leaves it reachable at the cap.
func TestFind_MaxCost(t *testing.T) {
	_, found, err := astar.Find(chainSpace(5, 4), 0, 4, astar.WithMaxCost[int](3))
	require.NoError(t, err)
	require.False(t, found, "goal costs 4; cap 3 must hide it")

	path, found, err := astar.Find(chainSpace(5, 4), 0, 4, astar.WithMaxCost[int](4))
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, path, 4)
}

func TestWithMaxCost_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() {
		astar.Find(chainSpace(5, 4), 0, 4, astar.WithMaxCost[int](-1))
	})
}
