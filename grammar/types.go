// Package grammar defines rule tables, derivation directions and error
// definitions for searching the derivation space of a context-free grammar.
package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Epsilon marks a production whose body is the empty string.
const Epsilon = "ε"

// DefaultStart is the start symbol used when none is supplied.
const DefaultStart = "S"

// Sentinel errors for grammar construction and derivation.
var (
	// ErrNoRules is returned when a generator is built from an empty rule table.
	ErrNoRules = errors.New("grammar: rule table is empty")

	// ErrEmptyHead is returned when a rule is registered without a head symbol.
	ErrEmptyHead = errors.New("grammar: empty head symbol")

	// ErrDuplicateRuleID is returned when a rule identifier is registered twice.
	ErrDuplicateRuleID = errors.New("grammar: duplicate rule id")

	// ErrEmptyTarget is returned when Derive is called without a target string.
	ErrEmptyTarget = errors.New("grammar: empty target string")

	// ErrEmptyStart is returned when Derive is called with an empty start symbol.
	ErrEmptyStart = errors.New("grammar: empty start symbol")

	// ErrUnknownDirection is returned by ParseDirection for unrecognised names.
	ErrUnknownDirection = errors.New("grammar: unknown derivation direction")
)

// Rule is one production: an identifier and the body that replaces its head.
type Rule struct {
	ID   int
	Body string
}

// Replacement returns the text substituted for the head; Epsilon yields "".
func (r Rule) Replacement() string {
	if r.Body == Epsilon {
		return ""
	}

	return r.Body
}

// Direction selects which occurrence of a head is rewritten.
type Direction uint8

const (
	// Leftmost rewrites the occurrence with the smallest start position.
	Leftmost Direction = iota
	// Rightmost rewrites the occurrence with the largest start position.
	Rightmost
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Leftmost:
		return "left"
	case Rightmost:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Policy returns the frontier policy paired with d: both directions splice
// new batches at the front; leftmost extracts from the front, rightmost from
// the back.
func (d Direction) Policy() search.Policy {
	if d == Rightmost {
		return search.PrependBack
	}

	return search.PrependFront
}

// ParseDirection resolves a direction name, case-insensitively.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "leftmost", "l", "izquierda":
		return Leftmost, nil
	case "right", "rightmost", "r", "derecha":
		return Rightmost, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

// Occurrence is one match of a head symbol inside a sentential form.
type Occurrence struct {
	Pos  int
	Head string
}
