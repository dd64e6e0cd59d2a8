// Package search implements a generic state-space search engine over an
// implicit graph whose nodes are produced lazily by a Generator.
//
// The engine extracts nodes from a Frontier, records goal nodes, discards
// states already visited, bounds the depth, and re-inserts generated
// children, until the frontier is empty or a termination condition is met.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// walker encapsulates mutable search state for a single run.
type walker[S comparable, L any] struct {
	gen      Generator[S, L]
	goal     S
	opts     Options
	ctx      context.Context
	log      *zerolog.Logger
	frontier Frontier[*Node[S, L]]
	visited  map[S]struct{}
	pending  map[S]struct{}
	res      *Result[S, L]
}

// Search runs the search from initial towards goal using gen to expand nodes,
// applying any number of functional Options.
// Any value of S is a valid goal, the zero value included.
// Returns ErrGeneratorNil for a nil generator and ErrOptionViolation for bad
// options. When the context is cancelled or the expansion ceiling is reached,
// the partial Result is returned together with ctx.Err() or ErrExpansionLimit.
//
// Exhausting the frontier without reaching the goal is not an error: the
// Result simply holds no solutions.
func Search[S comparable, L any](gen Generator[S, L], initial, goal S, opts ...Option) (*Result[S, L], error) {
	if gen == nil {
		return nil, ErrGeneratorNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	root := NewRoot[S, L](initial)
	w := &walker[S, L]{
		gen:      gen,
		goal:     goal,
		opts:     o,
		ctx:      o.Ctx,
		log:      zerolog.Ctx(o.Ctx),
		frontier: NewFrontier[*Node[S, L]](o.Policy),
		visited:  make(map[S]struct{}),
		res:      &Result[S, L]{Root: root},
	}
	if o.OpenSet {
		w.pending = make(map[S]struct{})
	}

	w.log.Debug().
		Str("policy", o.Policy.String()).
		Str("mode", o.Mode.String()).
		Int("max-depth", o.MaxDepth).
		Msg("search-start")
	start := time.Now()

	// Seed frontier with the root
	w.push([]*Node[S, L]{root})
	err := w.loop()
	w.res.visited = len(w.visited)

	w.log.Debug().
		Int("solutions", len(w.res.Solutions)).
		Int("extracted", w.res.Stats.Extracted).
		Int("expanded", w.res.Stats.Expanded).
		Int("pruned-by-depth", w.res.Stats.PrunedByDepth).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("search-done")

	return w.res, err
}

// loop processes the frontier until empty, first solution, error, or cancellation.
func (w *walker[S, L]) loop() error {
	for !w.frontier.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node := w.pop()
		if node.State == w.goal {
			w.res.Solutions = append(w.res.Solutions, node)
			if w.opts.Mode == FirstSolution {
				return nil
			}
		}
		// only the first-discovered path to a state is ever expanded
		if _, seen := w.visited[node.State]; seen {
			w.res.Stats.Duplicates++
			continue
		}
		w.visited[node.State] = struct{}{}

		if node.Depth() >= w.opts.MaxDepth {
			w.res.Stats.PrunedByDepth++
			continue
		}
		if w.opts.MaxExpansions > 0 && w.res.Stats.Expanded >= w.opts.MaxExpansions {
			return fmt.Errorf("%w: %d nodes expanded", ErrExpansionLimit, w.res.Stats.Expanded)
		}
		w.expand(node)
	}

	return nil
}

// pop extracts the next node and releases its state from the open set.
func (w *walker[S, L]) pop() *Node[S, L] {
	node, _ := w.frontier.Extract()
	w.res.Stats.Extracted++
	if w.pending != nil {
		delete(w.pending, node.State)
	}

	return node
}

// push inserts a batch into the frontier and records it in the open set.
func (w *walker[S, L]) push(batch []*Node[S, L]) {
	if len(batch) == 0 {
		return
	}
	w.frontier.Add(batch...)
	if w.pending != nil {
		for _, n := range batch {
			w.pending[n.State] = struct{}{}
		}
	}
}

// expand asks the generator for successors of node, links them as children,
// filters them through the open set when enabled, and pushes the survivors.
func (w *walker[S, L]) expand(node *Node[S, L]) {
	w.res.Stats.Expanded++
	succ := w.gen.Expand(node.State)
	if len(succ) == 0 {
		return
	}
	batch := make([]*Node[S, L], 0, len(succ))
	for _, s := range succ {
		if w.pending != nil && w.known(s.State) {
			w.res.Stats.Suppressed++
			continue
		}
		child := node.newChild(s)
		batch = append(batch, child)
		if w.pending != nil {
			// keep later siblings from duplicating this one
			w.pending[s.State] = struct{}{}
		}
	}
	node.children = batch
	w.res.Stats.Generated += len(batch)
	w.push(batch)
}

// known reports whether state is visited or already pending.
func (w *walker[S, L]) known(state S) bool {
	if _, ok := w.visited[state]; ok {
		return true
	}
	_, ok := w.pending[state]

	return ok
}
