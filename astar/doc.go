// Package astar implements the A* best-first shortest-path search over
// an implicitly-defined graph of generic nodes.
//
// A* computes a minimum-cost path from a start node to a goal node in a
// graph whose edges are produced on demand by a caller-supplied
// expansion callback. The search maintains a frontier of discovered but
// unexpanded nodes, ordered by f = g + h, where g is the best-known cost
// from the start and h is the caller's heuristic estimate of the
// remaining cost to the goal.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the lazy-decrease-key heap,
//     where V = nodes admitted to the frontier, E = edges expanded.
//   - Space: O(V + E)
//   - O(V) for the cost and predecessor maps.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Contract notes:
//
//   - The heuristic must be non-negative, and must never overestimate
//     the true remaining cost for the result to be optimal
//     (admissibility). Admissibility is not enforced: a non-admissible
//     heuristic silently yields a possibly-suboptimal path rather than
//     failing loudly.
//   - Edge weights must be non-negative; a negative weight reported by
//     the expansion callback fails the search with ErrNegativeWeight.
//   - An unreachable goal is a normal outcome, reported as found=false,
//     never as an error.
//   - There is no node-expansion limit. Over an infinite implicit graph
//     with an unreachable goal the search does not terminate; bound it
//     with WithMaxCost if the node space is unbounded.
//
// Determinism:
//
//   - Ties between frontier nodes of equal f are broken by admission
//     order by default, so the same inputs always produce the same
//     path. WithOrdering substitutes the node type's own ordering as
//     the tie-break instead.
//
// No state persists across calls: each Find owns its frontier and score
// maps exclusively, so concurrent Find calls never contend.
package astar
