package crossing

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsearch/search"
)

// Solution is the outcome of Solve.
type Solution struct {
	Method Method
	Path   search.Path[State, string]
	Stats  search.Stats
}

// Found reports whether a path to the goal was found.
func (s *Solution) Found() bool {
	return len(s.Path) > 0
}

// Crossings returns the number of boat trips on the path.
func (s *Solution) Crossings() int {
	return s.Path.Transitions()
}

// Solve searches for a sequence of crossings from initial to goal.
// Extra options (context, depth bound, expansion ceiling) are passed to the
// engine; the frontier policy, open-set filtering and first-solution mode
// are fixed by method. An unreachable goal yields a Solution without a path
// and a nil error.
func Solve(initial, goal State, method Method, opts ...search.Option) (*Solution, error) {
	if !initial.Valid() {
		return nil, fmt.Errorf("%w: initial %v", ErrInvalidState, initial)
	}
	if !goal.Valid() {
		return nil, fmt.Errorf("%w: goal %v", ErrInvalidState, goal)
	}
	opts = append(slices.Clip(opts),
		search.WithPolicy(method.Policy()),
		search.WithOpenSet(method.OpenSet()),
		search.WithMode(search.FirstSolution),
	)
	res, err := search.Search[State, string](Generator{}, initial, goal, opts...)
	if res == nil {
		return nil, err
	}

	sol := &Solution{Method: method, Stats: res.Stats}
	if res.Found() {
		sol.Path = res.Solutions[0].Path()
	}

	return sol, err
}
