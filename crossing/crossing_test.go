package crossing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/crossing"
	"github.com/katalvlaran/lvsearch/search"
)

// TestState_Valid covers range and bank-safety rules.
func TestState_Valid(t *testing.T) {
	cases := []struct {
		s    crossing.State
		want bool
	}{
		{crossing.Classic(), true},
		{crossing.ClassicGoal(), true},
		{crossing.State{0, 3, 1, 3, 0}, true},  // no A on the left, B alone is safe
		{crossing.State{1, 2, 0, 2, 1}, false}, // left bank outnumbered
		{crossing.State{2, 1, 0, 1, 2}, false}, // right bank outnumbered
		{crossing.State{4, 3, 1, -1, 0}, false},
		{crossing.State{3, 3, 2, 0, 0}, true}, // boat flag is only range checked
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.s.Valid(), tc.s.String())
	}
}

// TestApply moves travellers in the direction of the boat.
func TestApply(t *testing.T) {
	ops := crossing.Operations()
	require.Len(t, ops, 5)

	next, ok := crossing.Apply(crossing.Classic(), ops[0])
	require.True(t, ok)
	assert.Equal(t, crossing.State{2, 2, 0, 1, 1}, next)

	back, ok := crossing.Apply(next, crossing.Operation{Name: "op5", A: 1, B: 0})
	require.True(t, ok)
	assert.Equal(t, crossing.State{3, 2, 1, 0, 1}, back)

	// sending two A from the classic start leaves the left bank outnumbered
	_, ok = crossing.Apply(crossing.Classic(), ops[2])
	assert.False(t, ok)
}

// TestGenerator_Expand lists only valid successors, in registry order.
func TestGenerator_Expand(t *testing.T) {
	succ := crossing.Generator{}.Expand(crossing.Classic())
	var labels []string
	for _, s := range succ {
		labels = append(labels, s.Label)
		assert.True(t, s.State.Valid())
	}
	assert.Equal(t, []string{"op1", "op2", "op4"}, labels)
}

// TestSolve_BFSMinimal asserts the analytically minimal 11 crossings
// (12 states including both ends).
func TestSolve_BFSMinimal(t *testing.T) {
	sol, err := crossing.Solve(crossing.Classic(), crossing.ClassicGoal(), crossing.BFS)
	require.NoError(t, err)
	require.True(t, sol.Found())
	assert.Equal(t, 12, sol.Path.Len())
	assert.Equal(t, 11, sol.Crossings())
	assert.Equal(t,
		[]string{"op1", "op5", "op2", "op4", "op3", "op1", "op3", "op4", "op2", "op4", "op2"},
		sol.Path.Labels())
	assertValidPath(t, sol.Path)
}

// TestSolve_DFS accepts any valid path and checks it step by step.
func TestSolve_DFS(t *testing.T) {
	for _, m := range []crossing.Method{crossing.DFS, crossing.DFSRecursive} {
		t.Run(m.String(), func(t *testing.T) {
			sol, err := crossing.Solve(crossing.Classic(), crossing.ClassicGoal(), m)
			require.NoError(t, err)
			require.True(t, sol.Found())
			assert.GreaterOrEqual(t, sol.Crossings(), 11)
			assertValidPath(t, sol.Path)
		})
	}
}

// TestSolve_DFSPath pins the stack-based traversal order.
func TestSolve_DFSPath(t *testing.T) {
	sol, err := crossing.Solve(crossing.Classic(), crossing.ClassicGoal(), crossing.DFS)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"op2", "op4", "op2", "op4", "op3", "op1", "op3", "op4", "op2", "op5", "op1"},
		sol.Path.Labels())
}

// TestSolve_Unreachable returns an empty solution, not an error.
func TestSolve_Unreachable(t *testing.T) {
	// the boat cannot end up on the left with nobody there
	goal := crossing.State{0, 0, crossing.BoatLeft, 3, 3}
	sol, err := crossing.Solve(crossing.Classic(), goal, crossing.BFS)
	require.NoError(t, err)
	assert.False(t, sol.Found())
	assert.Zero(t, sol.Stats.PrunedByDepth)
}

// TestSolve_ZeroState accepts the all-zero state, which is safe, as an endpoint.
func TestSolve_ZeroState(t *testing.T) {
	sol, err := crossing.Solve(crossing.State{}, crossing.State{}, crossing.BFS)
	require.NoError(t, err)
	require.True(t, sol.Found())
	assert.Equal(t, 0, sol.Crossings())

	sol, err = crossing.Solve(crossing.Classic(), crossing.State{}, crossing.DFS)
	require.NoError(t, err)
	assert.False(t, sol.Found())
}

// TestSolve_InvalidInput rejects unsafe endpoints.
func TestSolve_InvalidInput(t *testing.T) {
	_, err := crossing.Solve(crossing.State{1, 3, 1, 2, 0}, crossing.ClassicGoal(), crossing.BFS)
	assert.ErrorIs(t, err, crossing.ErrInvalidState)
	_, err = crossing.Solve(crossing.Classic(), crossing.State{0, 0, 0, 1, 3}, crossing.BFS)
	assert.ErrorIs(t, err, crossing.ErrInvalidState)
}

// TestSolve_VisitedStatesAreSafe wraps the generator to check every state the
// engine hands it, which is every state marked visited and expanded.
func TestSolve_VisitedStatesAreSafe(t *testing.T) {
	for _, m := range []crossing.Method{crossing.BFS, crossing.DFS, crossing.DFSRecursive} {
		var expanded int
		gen := search.GeneratorFunc[crossing.State, string](func(s crossing.State) []search.Successor[crossing.State, string] {
			expanded++
			assert.True(t, s.Valid(), "%s expanded unsafe state %v", m, s)
			return crossing.Generator{}.Expand(s)
		})
		res, err := search.Search[crossing.State, string](gen, crossing.Classic(), crossing.ClassicGoal(),
			search.WithPolicy(m.Policy()),
			search.WithOpenSet(m.OpenSet()),
			search.WithMode(search.FirstSolution),
		)
		require.NoError(t, err)
		assert.True(t, res.Found())
		assert.Positive(t, expanded)
	}
}

// TestParseMethod resolves names and rejects unknown ones.
func TestParseMethod(t *testing.T) {
	for name, want := range map[string]crossing.Method{
		"BFS":           crossing.BFS,
		"dfs":           crossing.DFS,
		"DFS_recursive": crossing.DFSRecursive,
		" dfs-recursive": crossing.DFSRecursive,
	} {
		got, err := crossing.ParseMethod(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := crossing.ParseMethod("astar")
	assert.ErrorIs(t, err, crossing.ErrUnknownMethod)

	assert.Equal(t, search.PrependFront, crossing.DFSRecursive.Policy())
	assert.False(t, crossing.DFSRecursive.OpenSet())
	assert.Equal(t, search.BreadthFirst, crossing.BFS.Policy())
	assert.True(t, crossing.DFS.OpenSet())
}

// assertValidPath checks that every state is safe and that each consecutive
// pair is linked by exactly the operation recorded on the path.
func assertValidPath(t *testing.T, p search.Path[crossing.State, string]) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, crossing.Classic(), p[0].State)
	last, _ := p.Last()
	assert.Equal(t, crossing.ClassicGoal(), last)
	for i := 0; i+1 < len(p); i++ {
		assert.True(t, p[i].State.Valid())
		op, ok := crossing.OperationBetween(p[i].State, p[i+1].State)
		require.True(t, ok, "no operation from %v to %v", p[i].State, p[i+1].State)
		assert.Equal(t, op.Name, p[i].Label)
		matches := 0
		for _, cand := range crossing.Operations() {
			if next, ok := crossing.Apply(p[i].State, cand); ok && next == p[i+1].State {
				matches++
			}
		}
		assert.Equal(t, 1, matches)
	}
}
