package grammar

import (
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvsearch/search"
)

// Generator expands a sentential form by rewriting one head occurrence with
// every rule registered for that head. It implements search.Generator with
// strings as states and rule IDs as labels.
type Generator struct {
	grammar   *Grammar
	direction Direction
}

var _ search.Generator[string, int] = (*Generator)(nil)

// NewGenerator binds g and direction. It returns ErrNoRules for a nil or
// empty grammar.
func NewGenerator(g *Grammar, direction Direction) (*Generator, error) {
	if g == nil || g.IsEmpty() {
		return nil, ErrNoRules
	}

	return &Generator{grammar: g, direction: direction}, nil
}

// Direction returns the direction the generator rewrites in.
func (gen *Generator) Direction() Direction {
	return gen.direction
}

// Occurrences lists every match of every head in s, overlapping matches
// included, in scan order: heads in registration order, positions ascending.
func (gen *Generator) Occurrences(s string) []Occurrence {
	var occ []Occurrence
	for _, head := range gen.grammar.heads {
		for start := 0; start < len(s); {
			i := strings.Index(s[start:], head)
			if i < 0 {
				break
			}
			occ = append(occ, Occurrence{Pos: start + i, Head: head})
			start += i + 1
		}
	}

	return occ
}

// Select picks the occurrence to rewrite: minimum position for Leftmost,
// maximum for Rightmost. Ties keep the occurrence met first in scan order.
func (gen *Generator) Select(s string) (Occurrence, bool) {
	occ := gen.Occurrences(s)
	if len(occ) == 0 {
		return Occurrence{}, false
	}
	if gen.direction == Rightmost {
		return lo.MaxBy(occ, func(a, b Occurrence) bool { return a.Pos > b.Pos }), true
	}

	return lo.MinBy(occ, func(a, b Occurrence) bool { return a.Pos < b.Pos }), true
}

// Expand implements search.Generator. A fully terminal string has no
// successors.
func (gen *Generator) Expand(s string) []search.Successor[string, int] {
	sel, ok := gen.Select(s)
	if !ok {
		return nil
	}
	rules := gen.grammar.rules[sel.Head]
	prefix, suffix := s[:sel.Pos], s[sel.Pos+len(sel.Head):]

	out := make([]search.Successor[string, int], 0, len(rules))
	for _, r := range rules {
		out = append(out, search.Successor[string, int]{
			Label: r.ID,
			State: prefix + r.Replacement() + suffix,
		})
	}

	return out
}
