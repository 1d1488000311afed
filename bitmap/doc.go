// Package bitmap provides dense, bounds-checked 2D storage of arbitrary
// cell types, plus a character-grid parser for rectangular text input.
//
// What:
//
//   - Grid[T] stores width×height cells of any type T in a single
//     row-major slice.
//   - Reads are total: an out-of-bounds Get returns a designated
//     sentinel value instead of panicking.
//   - Writes are bounds-checked: Set outside the grid reports
//     ErrOutOfBounds and leaves storage untouched.
//   - Parse builds a Grid from newline-separated text, mapping each
//     character through a caller-supplied ElementParser.
//
// Why:
//
//   - Text-grid inputs (mazes, heightmaps, game boards) all need the
//     same rectangle validation and coordinate bookkeeping.
//   - The sentinel makes neighbor scans branch-free: probing past an
//     edge simply yields a value that reads as "nothing here".
//
// Parsing with a side channel:
//
//	An ElementParser may carry mutable state of its own; the classic
//	use is recording where marker characters (a start or goal cell)
//	were seen while mapping them to ordinary elements. Because the
//	parser is passed by interface, the caller keeps access to that
//	state after Parse returns.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - Get / Set / InBounds: O(1).
//   - Positions: O(W×H) to drain, O(1) memory.
//
// Errors:
//
//   - ErrOutOfBounds: Set attempted outside grid dimensions.
//   - ErrLineWidth: a parsed line does not match the first line's width.
//   - ErrInvalidElement: a character has no mapping under the parser.
package bitmap
