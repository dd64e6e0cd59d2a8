// Package search provides tunable options, error definitions and result
// types for the generic state-space search engine.
package search

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxDepth is the depth bound applied when WithMaxDepth is not given.
const DefaultMaxDepth = 25

// Sentinel errors for search execution.
var (
	// ErrGeneratorNil is returned if a nil Generator is passed.
	ErrGeneratorNil = errors.New("search: generator is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned together with the partial Result when
	// the expansion ceiling set by WithMaxExpansions is reached.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Successor is one (label, next-state) pair produced by a single legal transition.
type Successor[S comparable, L any] struct {
	Label L
	State S
}

// Generator maps a state to every (label, next-state) pair reachable from it
// by one legal transition. Implementations must be deterministic: the engine's
// traversal order is fully defined by the order of the returned slice.
type Generator[S comparable, L any] interface {
	Expand(state S) []Successor[S, L]
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc[S comparable, L any] func(state S) []Successor[S, L]

// Expand calls f(state).
func (f GeneratorFunc[S, L]) Expand(state S) []Successor[S, L] {
	return f(state)
}

// Mode selects whether the search stops at the first goal node or keeps
// going to collect every goal node it can reach.
type Mode uint8

const (
	// FirstSolution terminates as soon as a goal node is extracted.
	FirstSolution Mode = iota
	// AllSolutions drains the frontier, recording every goal node extracted.
	AllSolutions
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case FirstSolution:
		return "first"
	case AllSolutions:
		return "all"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters that customize one Search run.
type Options struct {
	// Ctx allows cancellation and deadlines. The logger attached to Ctx
	// (see zerolog.Ctx) receives debug events.
	Ctx context.Context

	// Policy selects frontier insertion and extraction ends.
	Policy Policy

	// MaxDepth is the depth bound: a node at depth >= MaxDepth is never
	// expanded. Zero means only the initial state is examined.
	MaxDepth int

	// Mode selects first-solution or all-solutions collection.
	Mode Mode

	// OpenSet, if true, drops generated children whose state is already
	// visited or currently pending in the frontier.
	OpenSet bool

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit
	// once that many nodes have been expanded.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with:
//   - Context.Background()
//   - PrependFront policy
//   - MaxDepth == DefaultMaxDepth
//   - AllSolutions mode
//   - open-set filtering disabled
//   - no expansion ceiling.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Policy:        PrependFront,
		MaxDepth:      DefaultMaxDepth,
		Mode:          AllSolutions,
		OpenSet:       false,
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation and logging.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy selects the frontier policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if !p.valid() {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, uint8(p))
			return
		}
		o.Policy = p
	}
}

// WithMaxDepth sets the depth bound.
//
//	d >= 0: nodes at depth d or deeper are not expanded
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMode selects first-solution or all-solutions collection.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != FirstSolution && m != AllSolutions {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, uint8(m))
			return
		}
		o.Mode = m
	}
}

// WithOpenSet toggles suppression of children already visited or pending.
func WithOpenSet(enabled bool) Option {
	return func(o *Options) {
		o.OpenSet = enabled
	}
}

// WithMaxExpansions caps the number of expanded nodes.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Stats holds counters collected during one Search run.
type Stats struct {
	// Extracted counts nodes taken out of the frontier.
	Extracted int
	// Expanded counts nodes handed to the generator.
	Expanded int
	// Generated counts children inserted into the frontier.
	Generated int
	// Duplicates counts extracted nodes discarded because their state was visited.
	Duplicates int
	// Suppressed counts children dropped by the open-set filter.
	Suppressed int
	// PrunedByDepth counts nodes left unexpanded because of the depth bound.
	// A negative result with PrunedByDepth > 0 may be caused by the bound alone.
	PrunedByDepth int
}

// Result holds the outcome of a Search run.
type Result[S comparable, L any] struct {
	// Solutions lists goal nodes in the order they were extracted.
	Solutions []*Node[S, L]
	// Stats are the run's counters.
	Stats Stats
	// Root is the node wrapping the initial state.
	Root *Node[S, L]

	visited int
}

// Found reports whether at least one goal node was reached.
func (r *Result[S, L]) Found() bool {
	return len(r.Solutions) > 0
}

// Visited returns the number of distinct states marked visited.
func (r *Result[S, L]) Visited() int {
	return r.visited
}

// Paths reconstructs every solution, in solution order.
func (r *Result[S, L]) Paths() []Path[S, L] {
	paths := make([]Path[S, L], 0, len(r.Solutions))
	for _, n := range r.Solutions {
		paths = append(paths, Reconstruct(n))
	}

	return paths
}
