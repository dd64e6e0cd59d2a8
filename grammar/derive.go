package grammar

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Option configures Derive via functional arguments.
type Option func(*DeriveOptions)

// DeriveOptions holds parameters for one derivation search.
type DeriveOptions struct {
	Ctx           context.Context
	Direction     Direction
	MaxDepth      int
	MaxExpansions int
	FirstOnly     bool
}

// DefaultDeriveOptions returns leftmost, all-solutions derivation with the
// engine's default depth bound.
func DefaultDeriveOptions() DeriveOptions {
	return DeriveOptions{
		Ctx:       context.Background(),
		Direction: Leftmost,
		MaxDepth:  search.DefaultMaxDepth,
	}
}

// WithDirection selects leftmost or rightmost derivation.
func WithDirection(d Direction) Option {
	return func(o *DeriveOptions) { o.Direction = d }
}

// WithMaxDepth sets the derivation length bound. Negative values are
// rejected by the engine with search.ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *DeriveOptions) { o.MaxDepth = d }
}

// WithMaxExpansions caps the number of sentential forms expanded.
func WithMaxExpansions(n int) Option {
	return func(o *DeriveOptions) { o.MaxExpansions = n }
}

// WithContext sets the context used for cancellation and logging.
func WithContext(ctx context.Context) Option {
	return func(o *DeriveOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFirstOnly stops at the first derivation found.
func WithFirstOnly() Option {
	return func(o *DeriveOptions) { o.FirstOnly = true }
}

// Derivation is a root-first sequence of sentential forms. The label of
// each step is the rule applied to reach the next form.
type Derivation struct {
	search.Path[string, int]
}

// Rules returns the rule IDs in application order.
func (d Derivation) Rules() []int {
	return d.Labels()
}

// String renders the derivation as ->(S,1)->(AB,3)->(aB,4)->(ab).
func (d Derivation) String() string {
	var sb strings.Builder
	sb.WriteString("->")
	for _, st := range d.Path {
		sb.WriteByte('(')
		sb.WriteString(st.State)
		if st.HasLabel {
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(st.Label))
			sb.WriteString(")->")
			continue
		}
		sb.WriteByte(')')
	}

	return sb.String()
}

// Result holds every derivation found and the engine counters.
type Result struct {
	Direction   Direction
	Derivations []Derivation
	Stats       search.Stats
}

// Derive searches for derivations of target from start in g.
// Exhausting the space without a derivation returns an empty Result and no
// error. A partial Result is returned together with the error when the
// context is cancelled or the expansion ceiling is hit.
func Derive(g *Grammar, start, target string, opts ...Option) (*Result, error) {
	if start == "" {
		return nil, ErrEmptyStart
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}
	o := DefaultDeriveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gen, err := NewGenerator(g, o.Direction)
	if err != nil {
		return nil, err
	}

	mode := search.AllSolutions
	if o.FirstOnly {
		mode = search.FirstSolution
	}
	res, err := search.Search[string, int](gen, start, target,
		search.WithContext(o.Ctx),
		search.WithPolicy(o.Direction.Policy()),
		search.WithMaxDepth(o.MaxDepth),
		search.WithMaxExpansions(o.MaxExpansions),
		search.WithMode(mode),
	)
	if res == nil {
		return nil, err
	}

	out := &Result{Direction: o.Direction, Stats: res.Stats}
	for _, p := range res.Paths() {
		out.Derivations = append(out.Derivations, Derivation{Path: p})
	}

	return out, err
}
