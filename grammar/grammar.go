package grammar

import (
	"fmt"
	"slices"
)

// Grammar is an ordered rule table. Heads keep their registration order and
// each head keeps its rules in registration order, so scanning is
// deterministic. A Grammar is not safe for concurrent mutation.
type Grammar struct {
	heads []string
	rules map[string][]Rule
	ids   map[int]string
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{
		rules: make(map[string][]Rule),
		ids:   make(map[int]string),
	}
}

// AddRule registers rule id rewriting head into body.
func (g *Grammar) AddRule(head string, id int, body string) error {
	if head == "" {
		return fmt.Errorf("%w (rule %d)", ErrEmptyHead, id)
	}
	if prev, ok := g.ids[id]; ok {
		return fmt.Errorf("%w: %d already used by %q", ErrDuplicateRuleID, id, prev)
	}
	if _, ok := g.rules[head]; !ok {
		g.heads = append(g.heads, head)
	}
	g.rules[head] = append(g.rules[head], Rule{ID: id, Body: body})
	g.ids[id] = head

	return nil
}

// MustAddRule is AddRule that panics on error, for static tables.
func (g *Grammar) MustAddRule(head string, id int, body string) *Grammar {
	if err := g.AddRule(head, id, body); err != nil {
		panic(err)
	}

	return g
}

// Heads returns the head symbols in registration order.
func (g *Grammar) Heads() []string {
	return slices.Clone(g.heads)
}

// Rules returns the rules registered for head, in order.
func (g *Grammar) Rules(head string) []Rule {
	return slices.Clone(g.rules[head])
}

// Len returns the total number of rules.
func (g *Grammar) Len() int {
	return len(g.ids)
}

// IsEmpty reports whether no rule is registered.
func (g *Grammar) IsEmpty() bool {
	return len(g.ids) == 0
}

// SortRules orders every head's rules by rule ID.
func (g *Grammar) SortRules() {
	for _, h := range g.heads {
		slices.SortStableFunc(g.rules[h], func(a, b Rule) int {
			return a.ID - b.ID
		})
	}
}

// HeadOf returns the head that rule id rewrites.
func (g *Grammar) HeadOf(id int) (string, bool) {
	h, ok := g.ids[id]
	return h, ok
}
