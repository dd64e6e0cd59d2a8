package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/grammar"
	"github.com/katalvlaran/lvsearch/search"
)

// TestNewGenerator_Empty rejects nil and empty tables.
func TestNewGenerator_Empty(t *testing.T) {
	_, err := grammar.NewGenerator(nil, grammar.Leftmost)
	assert.ErrorIs(t, err, grammar.ErrNoRules)
	_, err = grammar.NewGenerator(grammar.New(), grammar.Rightmost)
	assert.ErrorIs(t, err, grammar.ErrNoRules)
}

// TestGenerator_OccurrencesOverlap records overlapping matches.
func TestGenerator_OccurrencesOverlap(t *testing.T) {
	g := grammar.New().MustAddRule("aa", 1, "b").MustAddRule("B", 2, "c")
	gen, err := grammar.NewGenerator(g, grammar.Leftmost)
	require.NoError(t, err)

	got := gen.Occurrences("aaaB")
	assert.Equal(t, []grammar.Occurrence{
		{Pos: 0, Head: "aa"},
		{Pos: 1, Head: "aa"},
		{Pos: 3, Head: "B"},
	}, got)
	assert.Empty(t, gen.Occurrences("xyz"))
}

// TestGenerator_SelectTies keeps the head registered first when two heads
// start at the same position.
func TestGenerator_SelectTies(t *testing.T) {
	long := grammar.New().MustAddRule("AB", 1, "x").MustAddRule("A", 2, "y")
	gen, _ := grammar.NewGenerator(long, grammar.Leftmost)
	sel, ok := gen.Select("AB")
	require.True(t, ok)
	assert.Equal(t, grammar.Occurrence{Pos: 0, Head: "AB"}, sel)

	short := grammar.New().MustAddRule("A", 2, "y").MustAddRule("AB", 1, "x")
	gen, _ = grammar.NewGenerator(short, grammar.Leftmost)
	sel, _ = gen.Select("AB")
	assert.Equal(t, grammar.Occurrence{Pos: 0, Head: "A"}, sel)

	gen, _ = grammar.NewGenerator(short, grammar.Rightmost)
	sel, _ = gen.Select("ABA")
	assert.Equal(t, grammar.Occurrence{Pos: 2, Head: "A"}, sel)
}

// TestGenerator_Expand produces one child per rule of the selected head.
func TestGenerator_Expand(t *testing.T) {
	g := grammar.New().
		MustAddRule("S", 1, "aSb").
		MustAddRule("S", 2, grammar.Epsilon).
		MustAddRule("T", 3, "t")

	left, _ := grammar.NewGenerator(g, grammar.Leftmost)
	assert.Equal(t, []search.Successor[string, int]{
		{Label: 1, State: "xaSbT"},
		{Label: 2, State: "xT"},
	}, left.Expand("xST"))

	right, _ := grammar.NewGenerator(g, grammar.Rightmost)
	assert.Equal(t, []search.Successor[string, int]{
		{Label: 3, State: "xSt"},
	}, right.Expand("xST"))

	assert.Nil(t, left.Expand("ab"), "fully terminal string")
}

// TestGenerator_NoSpuriousSelfLoops checks that a child equals its parent
// only when the rule body is the head itself.
func TestGenerator_NoSpuriousSelfLoops(t *testing.T) {
	g := grammar.New().
		MustAddRule("S", 1, "AA").
		MustAddRule("S", 2, "S").
		MustAddRule("A", 3, "aSa").
		MustAddRule("A", 4, "a")
	forms := []string{"S", "AA", "aSaA", "aAAaA", "aaSaaA", "aaaa"}
	for _, dir := range []grammar.Direction{grammar.Leftmost, grammar.Rightmost} {
		gen, err := grammar.NewGenerator(g, dir)
		require.NoError(t, err)
		for _, s := range forms {
			for _, succ := range gen.Expand(s) {
				if succ.State == s {
					assert.Equal(t, 2, succ.Label, "%s %q", dir, s)
				}
			}
		}
	}
}
