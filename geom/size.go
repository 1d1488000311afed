package geom

import "golang.org/x/exp/constraints"

// Size is a width×height pair.
type Size[T constraints.Integer] struct {
	Width, Height T
}

// Area returns Width×Height.
func (s Size[T]) Area() T { return s.Width * s.Height }

// Contains reports whether (x,y) lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (s Size[T]) Contains(x, y T) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}
