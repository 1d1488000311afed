package geom

import "golang.org/x/exp/constraints"

// Point is a 2D coordinate. X grows east, Y grows south, matching the
// orientation of parsed text grids (row 0 at the top).
// Point is comparable and may be used directly as a map key or as a
// search node.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Pt is the common integer specialization of Point.
type Pt = Point[int]

// MDist returns the Manhattan distance between p and q.
// Complexity: O(1).
func (p Point[T]) MDist(q Point[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// Toward returns p moved at most one step along each axis in the
// direction of q. Moving toward itself returns p unchanged.
func (p Point[T]) Toward(q Point[T]) Point[T] {
	r := p
	switch {
	case q.X < p.X:
		r.X--
	case q.X > p.X:
		r.X++
	}
	switch {
	case q.Y < p.Y:
		r.Y--
	case q.Y > p.Y:
		r.Y++
	}

	return r
}

// North returns the point one cell up (y-1).
func (p Point[T]) North() Point[T] { return Point[T]{p.X, p.Y - 1} }

// South returns the point one cell down (y+1).
func (p Point[T]) South() Point[T] { return Point[T]{p.X, p.Y + 1} }

// West returns the point one cell left (x-1).
func (p Point[T]) West() Point[T] { return Point[T]{p.X - 1, p.Y} }

// East returns the point one cell right (x+1).
func (p Point[T]) East() Point[T] { return Point[T]{p.X + 1, p.Y} }

// Add returns the componentwise sum p+d.
func (p Point[T]) Add(d Point[T]) Point[T] { return Point[T]{p.X + d.X, p.Y + d.Y} }

// ForNeighbors8 calls f for each of the eight cells surrounding p,
// row by row, stopping early if f returns false.
func (p Point[T]) ForNeighbors8(f func(Point[T]) bool) {
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !f(Point[T]{p.X + dx, p.Y + dy}) {
				return
			}
		}
	}
}

// absDiff returns |a-b| without assuming a signed zero representation.
func absDiff[T constraints.Signed](a, b T) T {
	if a < b {
		return b - a
	}

	return a - b
}

// Offsets4 lists the orthogonal neighbor offsets: N, E, S, W.
func Offsets4[T constraints.Signed]() []Point[T] {
	return []Point[T]{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Offsets8 lists the orthogonal and diagonal neighbor offsets,
// clockwise from north.
func Offsets8[T constraints.Signed]() []Point[T] {
	return []Point[T]{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
}
