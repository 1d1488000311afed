package bitmap

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a Grid from newline-separated text. The first line's
// character count fixes the grid width; every later line must match it
// exactly or Parse fails with ErrLineWidth naming the offending line.
// Each character at (x,y) is mapped through p.ParseElement; a declined
// character fails the parse with ErrInvalidElement naming the character
// and its position. A failed parse produces no partial grid.
//
// The parsed grid's out-of-bounds sentinel is the zero value of T;
// use SetOutOfBounds to override. A single trailing newline is ignored,
// and empty text yields an empty 0×0 grid.
// Complexity: O(W×H) time and memory.
func Parse[T any](p ElementParser[T], text string) (*Grid[T], error) {
	g := &Grid[T]{}
	if text == "" {
		return g, nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	width := utf8.RuneCountInString(lines[0])
	cells := make([]T, 0, width*len(lines))
	for y, line := range lines {
		if utf8.RuneCountInString(line) != width {
			return nil, fmt.Errorf("%w (first line's width was %d): line %d: %q",
				ErrLineWidth, width, y+1, line)
		}
		x := 0
		for _, c := range line {
			elem, ok := p.ParseElement(x, y, c)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidElement, c, x, y)
			}
			cells = append(cells, elem)
			x++
		}
	}
	g.width = width
	g.height = len(lines)
	g.cells = cells

	return g, nil
}
