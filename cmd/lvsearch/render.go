package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvsearch/crossing"
	"github.com/katalvlaran/lvsearch/grammar"
	"github.com/katalvlaran/lvsearch/search"
)

// ambiguous is the presentation-level verdict: more than one derivation.
func ambiguous(res *grammar.Result) bool {
	return len(res.Derivations) > 1
}

var directionTitles = map[grammar.Direction]string{
	grammar.Leftmost:  "Leftmost",
	grammar.Rightmost: "Rightmost",
}

func renderDerivations(w io.Writer, start, target string, res *grammar.Result) {
	fmt.Fprintf(w, "%s derivations of %q from %s\n\n", directionTitles[res.Direction], target, start)
	if len(res.Derivations) == 0 {
		fmt.Fprintf(w, "No derivation from %q to %q.\n", start, target)
		if res.Stats.PrunedByDepth > 0 {
			fmt.Fprintf(w, "%d sentential forms were cut off by the depth bound.\n", res.Stats.PrunedByDepth)
		}
		return
	}
	for _, d := range res.Derivations {
		fmt.Fprintln(w, d.String())
	}
	fmt.Fprintln(w)
	if ambiguous(res) {
		fmt.Fprintf(w, "The grammar is ambiguous for %q (%d derivations).\n", target, len(res.Derivations))
		return
	}
	fmt.Fprintf(w, "The grammar is not ambiguous for %q.\n", target)
}

var methodTitles = map[crossing.Method]string{
	crossing.BFS:          "Breadth-first search finished",
	crossing.DFS:          "Depth-first search finished",
	crossing.DFSRecursive: "Recursive depth-first search finished",
}

func renderCrossing(w io.Writer, sol *crossing.Solution) {
	fmt.Fprintln(w, methodTitles[sol.Method])
	if !sol.Found() {
		fmt.Fprintln(w, "No solution reachable.")
		return
	}
	fmt.Fprintf(w, "%d states, %d crossings\n", sol.Path.Len(), sol.Crossings())
	fmt.Fprintln(w, formatCrossingPath(sol.Path))
}

// formatCrossingPath renders (3,3,1,0,0) -op1-> (2,2,0,1,1) -op5-> ...
func formatCrossingPath(p search.Path[crossing.State, string]) string {
	parts := lo.Map(p, func(st search.Step[crossing.State, string], _ int) string {
		if st.HasLabel {
			return fmt.Sprintf("%v -%s->", st.State, st.Label)
		}
		return st.State.String()
	})

	return strings.Join(parts, " ")
}
