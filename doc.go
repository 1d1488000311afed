// Package gridpath is a compact toolkit for text-grid puzzles: parse a
// rectangular character grid into typed cells, then search it (or any
// implicitly-defined graph) with a generic A* shortest-path engine.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• bitmap:    dense Grid[T] storage with bounds-checked access and
//		             an out-of-bounds sentinel, plus a character-grid parser
//		• astar:     generic A* best-first search over any comparable node
//		             type, driven by heuristic and expansion callbacks
//		• geom:      Point/Size primitives and neighbor offset tables
//		• challenge: input-file loading and debug-flag plumbing for solvers
//
// ✨ Why choose gridpath?
//
//   - Total reads – probing past a grid edge returns a sentinel, never panics
//   - Errors as values – parsing and searching never log or exit
//   - Deterministic – equal-cost ties always break the same way
//   - Pure Go – no cgo, no hidden deps; the library packages reach
//     outside the standard library only for x/exp type constraints
//
// Quick ASCII example:
//
//	S.#.        parse the maze,      part 1: 5
//	.##.   -->  search S→E with  -->  part 2: 5
//	...E        Manhattan A*
//
// The usual wiring: bitmap.Parse builds the grid (recording the S/E
// markers through the parser side channel), geom.Offsets4 drives the
// expansion callback, and astar.Find returns the route.
package gridpath
