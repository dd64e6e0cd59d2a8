package search

import "fmt"

// Policy selects where a batch of new nodes is inserted into the frontier
// and which end the next node is extracted from. It is resolved once when
// the frontier is built.
type Policy uint8

const (
	// BreadthFirst appends batches at the back and extracts from the front (FIFO).
	BreadthFirst Policy = iota
	// DepthFirst appends batches at the back and extracts from the back (LIFO).
	DepthFirst
	// PrependFront splices each batch in at the front, preserving the batch's
	// own order, and extracts from the front. A younger batch is therefore
	// searched before an older one, which is the order a recursive depth-first
	// walk visits children. Used for leftmost derivations.
	PrependFront
	// PrependBack splices each batch in at the front and extracts from the back.
	// It is not a LIFO stack: the oldest pending batch is returned first, each
	// batch from its last item to its first. Used for rightmost derivations.
	PrependBack
)

var policyNames = [...]string{
	BreadthFirst: "bfs",
	DepthFirst:   "dfs",
	PrependFront: "prepend-front",
	PrependBack:  "prepend-back",
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	if !p.valid() {
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}

	return policyNames[p]
}

// ParsePolicy resolves a policy name as returned by Policy.String.
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown policy %q", ErrOptionViolation, name)
}

func (p Policy) valid() bool {
	return int(p) < len(policyNames)
}

func (p Policy) prepends() bool {
	return p == PrependFront || p == PrependBack
}

func (p Policy) extractsFront() bool {
	return p == BreadthFirst || p == PrependFront
}

// Frontier is the collection of pending work items.
type Frontier[T any] interface {
	// Add inserts a batch of items, keeping the batch's internal order.
	Add(items ...T)
	// Extract removes and returns the next item, or false when empty.
	Extract() (T, bool)
	// Len returns the number of pending items.
	Len() int
	// IsEmpty reports whether no items are pending.
	IsEmpty() bool
}

// NewFrontier returns an empty Frontier following policy p.
// An unknown policy falls back to PrependFront.
func NewFrontier[T any](p Policy) Frontier[T] {
	if !p.valid() {
		p = PrependFront
	}

	return &deque[T]{policy: p}
}

// compactThreshold is the minimum dead prefix before an appending deque
// shifts its live items down.
const compactThreshold = 64

// deque is a slice-backed double-ended queue. head marks the first live
// element so front extraction does not shift the backing array.
type deque[T any] struct {
	policy Policy
	items  []T
	head   int
}

// Add implements Frontier.
func (d *deque[T]) Add(items ...T) {
	if len(items) == 0 {
		return
	}
	if !d.policy.prepends() {
		d.items = append(d.items, items...)
		return
	}
	// reuse the gap left by earlier front extractions when it is wide enough
	if d.head >= len(items) {
		d.head -= len(items)
		copy(d.items[d.head:], items)
		return
	}
	live := d.items[d.head:]
	next := make([]T, 0, len(items)+len(live))
	next = append(next, items...)
	next = append(next, live...)
	d.items, d.head = next, 0
}

// Extract implements Frontier.
func (d *deque[T]) Extract() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}
	var item T
	if d.policy.extractsFront() {
		item = d.items[d.head]
		d.items[d.head] = zero
		d.head++
	} else {
		last := len(d.items) - 1
		item = d.items[last]
		d.items[last] = zero
		d.items = d.items[:last]
	}
	switch {
	case d.head == len(d.items):
		d.items, d.head = d.items[:0], 0
	case !d.policy.prepends() && d.head >= compactThreshold && 2*d.head >= len(d.items):
		n := copy(d.items, d.items[d.head:])
		clear(d.items[n:])
		d.items, d.head = d.items[:n], 0
	}

	return item, true
}

// Len implements Frontier.
func (d *deque[T]) Len() int {
	return len(d.items) - d.head
}

// IsEmpty implements Frontier.
func (d *deque[T]) IsEmpty() bool {
	return d.Len() == 0
}
