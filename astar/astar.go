package astar

import (
	"container/heap"
	"fmt"
)

// Find searches space for a minimum-cost path from start to goal.
//
// Returns:
//
//   - path:  the nodes from just-after-start to goal inclusive (start
//     itself is not included; start==goal yields an empty path).
//   - found: false when the frontier empties without reaching the goal.
//     Unreachability is an expected, non-exceptional outcome.
//   - err:   ErrNilSpace for a nil space, or ErrNegativeWeight (wrapped
//     with the offending edge) when the expansion callback reports a
//     negative weight. No other failure modes exist.
//
// Options customization:
//
//   - WithOrdering(less): break equal-priority ties by node value.
//   - WithMaxCost(limit): do not explore paths costing more than limit.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Find[N comparable](space Space[N], start, goal N, opts ...Option[N]) (path []N, found bool, err error) {
	if space == nil {
		return nil, false, ErrNilSpace
	}
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[N]{
		space:    space,
		options:  cfg,
		goal:     goal,
		gScore:   make(map[N]float64),
		cameFrom: make(map[N]N),
		expanded: make(map[N]bool),
	}
	r.init(start)

	return r.search(start)
}

// runner holds the transient state of a single Find invocation. Nothing
// survives the call: every search owns its frontier and score maps
// exclusively.
type runner[N comparable] struct {
	space    Space[N]      // the implicit graph; read-only here
	options  Options[N]    // tie-break and cost-cap configuration
	goal     N             // target node
	gScore   map[N]float64 // node → best-known cost from start
	cameFrom map[N]N       // node → predecessor on its best-known path
	expanded map[N]bool    // node → already expanded (finalized unless improved)
	pq       frontier[N]   // min-heap over f = g + estimate
	seq      uint64        // monotone admission counter for default tie-breaks
}

// init seeds the frontier with the start node at cost zero.
func (r *runner[N]) init(start N) {
	r.gScore[start] = 0
	r.pq = frontier[N]{less: r.options.Less}
	heap.Init(&r.pq)
	r.push(start, 0, r.space.Estimate(start))
}

// push admits a node to the frontier with the given scores.
func (r *runner[N]) push(n N, g, f float64) {
	r.seq++
	heap.Push(&r.pq, &frontierItem[N]{node: n, g: g, f: f, seq: r.seq})
}

// search runs the main loop: repeatedly select the frontier node with
// minimum f, stop if it is the goal, otherwise expand its neighbors and
// relax any that improve.
func (r *runner[N]) search(start N) ([]N, bool, error) {
	for r.pq.Len() > 0 {
		// 1) Select the minimum-f frontier node.
		item := heap.Pop(&r.pq).(*frontierItem[N])
		n := item.node

		// 2) Skip stale lazy-decrease-key duplicates.
		if r.expanded[n] {
			continue
		}

		// 3) Goal reached: walk the predecessor chain back to start.
		if n == r.goal {
			return r.reconstruct(start), true, nil
		}

		// 4) Finalize and expand.
		r.expanded[n] = true
		if err := r.relax(n); err != nil {
			return nil, false, err
		}
	}

	// Frontier drained without selecting the goal: not found, no error.
	return nil, false, nil
}

// relax invokes the expansion callback on n and admits every neighbor
// whose tentative cost strictly improves on its best-known cost.
// Unknown costs count as +Inf, so the strictly-better rule doubles as
// first-discovery admission and keeps cycles from relaxing forever.
func (r *runner[N]) relax(n N) error {
	gHere := r.gScore[n]
	var relaxErr error
	r.space.Expand(n, func(neighbor N, weight float64) {
		if relaxErr != nil {
			return
		}
		if weight < 0 {
			relaxErr = fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, n, neighbor, weight)
			return
		}

		tentative := gHere + weight
		if tentative > r.options.MaxCost {
			return
		}
		if best, known := r.gScore[neighbor]; known && tentative >= best {
			return
		}

		r.cameFrom[neighbor] = n
		r.gScore[neighbor] = tentative
		// A strictly better route reopens even an expanded node. With an
		// admissible heuristic this never fires; without one it trades
		// re-expansion for a better path instead of failing.
		delete(r.expanded, neighbor)
		r.push(neighbor, tentative, tentative+r.space.Estimate(neighbor))
	})

	return relaxErr
}

// reconstruct follows predecessor links from the goal back to start and
// reverses them. The returned path excludes start and includes goal.
func (r *runner[N]) reconstruct(start N) []N {
	var path []N
	for cur := r.goal; cur != start; {
		path = append(path, cur)
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is one heap entry: a node with its cost-from-start g,
// priority f = g + estimate, and admission sequence number.
// Lazy decrease-key leaves stale duplicates in the heap; they are
// discarded on pop via the runner's expanded map.
type frontierItem[N comparable] struct {
	node N
	g    float64
	f    float64
	seq  uint64
}

// frontier is a min-heap of *frontierItem ordered by f ascending.
// Equal-f ties fall through to the configured node ordering when one is
// set, else to admission order, so selection is always deterministic.
type frontier[N comparable] struct {
	items []*frontierItem[N]
	less  func(a, b N) bool
}

// Len returns the number of items in the heap.
func (fr frontier[N]) Len() int { return len(fr.items) }

// Less orders by f, breaking ties deterministically.
func (fr frontier[N]) Less(i, j int) bool {
	a, b := fr.items[i], fr.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if fr.less != nil && a.node != b.node {
		return fr.less(a.node, b.node)
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (fr frontier[N]) Swap(i, j int) { fr.items[i], fr.items[j] = fr.items[j], fr.items[i] }

// Push adds a new element x onto the heap; x must be a *frontierItem.
func (fr *frontier[N]) Push(x interface{}) { fr.items = append(fr.items, x.(*frontierItem[N])) }

// Pop removes and returns the last element; container/heap has already
// moved the minimum there.
func (fr *frontier[N]) Pop() interface{} {
	old := fr.items
	n := len(old)
	item := old[n-1]
	fr.items = old[:n-1]

	return item
}
