package crossing

import (
	"slices"

	"github.com/katalvlaran/lvsearch/search"
)

// Operation moves A type-A and B type-B travellers across with the boat.
type Operation struct {
	Name string
	A, B int
}

var operations = []Operation{
	{Name: "op1", A: 1, B: 1},
	{Name: "op2", A: 0, B: 2},
	{Name: "op3", A: 2, B: 0},
	{Name: "op4", A: 0, B: 1},
	{Name: "op5", A: 1, B: 0},
}

// Operations returns the fixed operation registry in application order.
func Operations() []Operation {
	return slices.Clone(operations)
}

// Apply moves op's passengers from the boat's bank to the other one and
// flips the boat. It returns false when the result is not Valid.
func Apply(s State, op Operation) (State, bool) {
	sign := 1
	if s[Boat] == BoatLeft {
		sign = -1
	}
	next := s
	next[LeftA] += sign * op.A
	next[LeftB] += sign * op.B
	next[RightA] -= sign * op.A
	next[RightB] -= sign * op.B
	next[Boat] = 1 - s[Boat]
	if !next.Valid() {
		return State{}, false
	}

	return next, true
}

// OperationBetween returns the operation that turns a into b, if any.
func OperationBetween(a, b State) (Operation, bool) {
	for _, op := range operations {
		if next, ok := Apply(a, op); ok && next == b {
			return op, true
		}
	}

	return Operation{}, false
}

// Generator expands a state with every operation whose result is valid.
// Invalid results are omitted silently.
type Generator struct{}

var _ search.Generator[State, string] = Generator{}

// Expand implements search.Generator.
func (Generator) Expand(s State) []search.Successor[State, string] {
	out := make([]search.Successor[State, string], 0, len(operations))
	for _, op := range operations {
		if next, ok := Apply(s, op); ok {
			out = append(out, search.Successor[State, string]{Label: op.Name, State: next})
		}
	}

	return out
}
