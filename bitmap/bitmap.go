package bitmap

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridpath/geom"
)

// New constructs a width×height Grid with every cell set to fill.
// The out-of-bounds sentinel is also set to fill, so a fresh grid reads
// uniformly everywhere, inside or out.
// Negative dimensions are clamped to zero.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{
		width:       width,
		height:      height,
		cells:       cells,
		outOfBounds: fill,
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Size returns the grid dimensions as a geom.Size.
func (g *Grid[T]) Size() geom.Size[int] {
	return geom.Size[int]{Width: g.width, Height: g.height}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x,y), or the out-of-bounds sentinel when the
// coordinate falls outside the grid. Get is total: it never panics and
// never allocates.
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) T {
	if !g.InBounds(x, y) {
		return g.outOfBounds
	}

	return g.cells[g.index(x, y)]
}

// Set writes v into the cell at (x,y). Writing outside the grid returns
// ErrOutOfBounds (wrapped with the offending coordinate) and leaves
// storage untouched. Set is the only fallible mutator.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = v

	return nil
}

// OutOfBounds returns the sentinel value served for out-of-range reads.
func (g *Grid[T]) OutOfBounds() T { return g.outOfBounds }

// SetOutOfBounds replaces the out-of-bounds sentinel. Grids built by
// Parse start with the zero value of T as their sentinel; callers whose
// element type has a more natural "nothing here" value override it here.
func (g *Grid[T]) SetOutOfBounds(v T) { g.outOfBounds = v }

// Positions enumerates every coordinate in row-major order (y outer,
// x inner). The sequence is lazy and restartable: each range loop
// re-enumerates from (0,0).
func (g *Grid[T]) Positions() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// index maps (x,y) to its row-major slice offset: x + y*width.
// Callers must have bounds-checked first.
func (g *Grid[T]) index(x, y int) int {
	return x + y*g.width
}
