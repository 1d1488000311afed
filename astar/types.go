// Package astar defines the search-space contract, configuration
// options, and sentinel errors for the A* implementation.
package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Find.
var (
	// ErrNilSpace indicates that a nil Space was passed to Find.
	ErrNilSpace = errors.New("astar: search space is nil")

	// ErrNegativeWeight indicates the expansion callback reported an
	// edge with negative weight, which A* does not support.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")
)

// Space describes the implicit graph a search runs over. Node identity
// is by ==, so N must be comparable; nodes are also used as map keys.
//
// Estimate returns a non-negative estimate of the remaining cost from n
// to the goal. It is consulted once per admission of n to the frontier,
// plus once for the start node.
//
// Expand reports every neighbor reachable from n by calling visit once
// per (neighbor, weight) pair, synchronously, before returning. Weights
// must be non-negative.
type Space[N comparable] interface {
	Estimate(n N) float64
	Expand(n N, visit func(neighbor N, weight float64))
}

// FuncSpace adapts a pair of plain functions to the Space interface.
type FuncSpace[N comparable] struct {
	EstimateFunc func(n N) float64
	ExpandFunc   func(n N, visit func(neighbor N, weight float64))
}

// Estimate calls EstimateFunc.
func (s FuncSpace[N]) Estimate(n N) float64 { return s.EstimateFunc(n) }

// Expand calls ExpandFunc.
func (s FuncSpace[N]) Expand(n N, visit func(neighbor N, weight float64)) {
	s.ExpandFunc(n, visit)
}

// Options configures a single Find invocation.
//
// Less    – optional tie-break ordering between frontier nodes of equal
//
//	priority; nil means ties resolve by admission order.
//
// MaxCost – cap on path cost; relaxations beyond it are skipped, so a
//
//	goal farther than MaxCost reports not-found. Default +Inf.
type Options[N comparable] struct {
	Less    func(a, b N) bool
	MaxCost float64
}

// Option represents a functional option for configuring Find.
type Option[N comparable] func(*Options[N])

// WithOrdering makes equal-priority frontier ties resolve by the given
// node ordering instead of admission order. The search then selects the
// smallest node under less among equal-f candidates, which keeps the
// chosen path deterministic but disambiguated by node value rather than
// arrival order. For node types whose ordering carries no meaning the
// resulting route can look arbitrary, yet it is always reproducible.
func WithOrdering[N comparable](less func(a, b N) bool) Option[N] {
	return func(o *Options[N]) { o.Less = less }
}

// WithMaxCost stops the search from relaxing any node whose cost from
// the start would exceed limit. Must be non-negative; negative limits
// panic, as an invalid configuration.
func WithMaxCost[N comparable](limit float64) Option[N] {
	return func(o *Options[N]) {
		if limit < 0 || math.IsNaN(limit) {
			panic("astar: MaxCost must be non-negative")
		}
		o.MaxCost = limit
	}
}

// DefaultOptions returns the zero configuration: admission-order
// tie-breaks and no cost cap.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Less:    nil,
		MaxCost: math.Inf(1),
	}
}
