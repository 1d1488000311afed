package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bitmap"
	"github.com/katalvlaran/gridpath/geom"
)

// BenchmarkFind_OpenGrid measures a corner-to-corner search over an
// open 200×200 grid with a Manhattan heuristic.
// Complexity: O((W×H) log(W×H)) worst case; the heuristic keeps the
// explored region close to the diagonal here.
func BenchmarkFind_OpenGrid(b *testing.B) {
	const n = 200
	g := bitmap.New(n, n, true)
	start := geom.Pt{X: 0, Y: 0}
	goal := geom.Pt{X: n - 1, Y: n - 1}
	space := gridSpace(g, goal)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, found, err := astar.Find(space, start, goal)
		if err != nil || !found {
			b.Fatalf("Find failed: found=%v err=%v", found, err)
		}
	}
}

// BenchmarkFind_Unreachable measures the worst case: the frontier must
// drain completely before reporting not-found.
func BenchmarkFind_Unreachable(b *testing.B) {
	const n = 100
	g := bitmap.New(n, n, true)
	// Wall off the goal column entirely.
	for y := 0; y < n; y++ {
		if err := g.Set(n-2, y, false); err != nil {
			b.Fatalf("setup Set failed: %v", err)
		}
	}
	start := geom.Pt{X: 0, Y: 0}
	goal := geom.Pt{X: n - 1, Y: 0}
	space := gridSpace(g, goal)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, found, err := astar.Find(space, start, goal)
		if err != nil || found {
			b.Fatalf("expected not-found without error: found=%v err=%v", found, err)
		}
	}
}
