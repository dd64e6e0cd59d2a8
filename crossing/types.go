// Package crossing defines states, operations, methods and errors for the
// river-crossing (missionaries and cannibals) puzzle.
package crossing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Capacity is the largest count any component of a State may hold.
const Capacity = 3

// Component indexes into a State.
const (
	LeftA = iota
	LeftB
	Boat
	RightA
	RightB
)

// Boat sides.
const (
	BoatRight = 0
	BoatLeft  = 1
)

var (
	// ErrInvalidState is returned when the initial or goal state breaks the
	// range or bank-safety rules.
	ErrInvalidState = errors.New("crossing: invalid state")

	// ErrUnknownMethod is returned by ParseMethod for unrecognised names.
	ErrUnknownMethod = errors.New("crossing: unknown search method")
)

// State is (left A, left B, boat side, right A, right B). Type A are the
// missionaries, type B the cannibals. States are values; transitions never
// mutate them.
type State [5]int

// Valid reports whether every component lies in [0, Capacity] and neither
// bank has more B than A while it holds any A.
func (s State) Valid() bool {
	for _, v := range s {
		if v < 0 || v > Capacity {
			return false
		}
	}
	if s[LeftA] > 0 && s[LeftB] > s[LeftA] {
		return false
	}
	if s[RightA] > 0 && s[RightB] > s[RightA] {
		return false
	}

	return true
}

// String renders the state as (3,3,1,0,0).
func (s State) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// Classic returns the standard initial state: everyone and the boat on the left.
func Classic() State {
	return State{3, 3, BoatLeft, 0, 0}
}

// ClassicGoal returns the standard goal: everyone and the boat on the right.
func ClassicGoal() State {
	return State{0, 0, BoatRight, 3, 3}
}

// Method selects how the puzzle's state space is traversed.
type Method uint8

const (
	// BFS explores by increasing number of crossings.
	BFS Method = iota
	// DFS uses an explicit stack.
	DFS
	// DFSRecursive explores children in generation order, the way a
	// recursive depth-first walk would, without the pending-state filter.
	DFSRecursive
)

var methodNames = [...]string{
	BFS:          "bfs",
	DFS:          "dfs",
	DFSRecursive: "dfs-recursive",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", uint8(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a method name, case-insensitively. Underscores are
// accepted in place of dashes.
func ParseMethod(name string) (Method, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range methodNames {
		if n == norm {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Policy returns the frontier policy that realises m.
func (m Method) Policy() search.Policy {
	switch m {
	case DFS:
		return search.DepthFirst
	case DFSRecursive:
		return search.PrependFront
	default:
		return search.BreadthFirst
	}
}

// OpenSet reports whether m filters children already pending in the frontier.
func (m Method) OpenSet() bool {
	return m != DFSRecursive
}
