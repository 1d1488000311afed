// Package bitmap defines the Grid type, parser contracts, and sentinel
// errors for the bitmap subpackage of github.com/katalvlaran/gridpath.
package bitmap

import "errors"

// Sentinel errors for bitmap operations.
var (
	// ErrOutOfBounds indicates a write outside the grid dimensions.
	ErrOutOfBounds = errors.New("bitmap: coordinate out of bounds")
	// ErrLineWidth indicates a parsed line whose width differs from the first line's.
	ErrLineWidth = errors.New("bitmap: all lines must be the same width")
	// ErrInvalidElement indicates a character with no valid element mapping.
	ErrInvalidElement = errors.New("bitmap: invalid element")
)

// Grid is a dense rectangular array of T with bounds-checked access.
// Cells are stored row-major: index(x,y) = x + y*width.
// Reads outside [0,width)×[0,height) return the out-of-bounds sentinel;
// the backing slice always holds exactly width*height elements.
type Grid[T any] struct {
	width, height int
	cells         []T
	outOfBounds   T
}

// ElementParser maps one character of a text grid to an element of type T.
// ParseElement reports ok=false when the character has no valid mapping,
// which aborts the parse with ErrInvalidElement.
//
// Implementations may mutate their own state as a side channel: for
// example, recording the coordinates of special marker characters as
// they stream past. The caller retains the parser and can read that
// state back once Parse returns.
type ElementParser[T any] interface {
	ParseElement(x, y int, c rune) (elem T, ok bool)
}

// ParserFunc adapts a plain function to the ElementParser interface.
type ParserFunc[T any] func(x, y int, c rune) (T, bool)

// ParseElement calls f(x, y, c).
func (f ParserFunc[T]) ParseElement(x, y int, c rune) (T, bool) { return f(x, y, c) }
