package crossing_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/crossing"
)

// ExampleSolve prints the breadth-first solution of the classic puzzle.
func ExampleSolve() {
	sol, err := crossing.Solve(crossing.Classic(), crossing.ClassicGoal(), crossing.BFS)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("crossings:", sol.Crossings())
	for _, st := range sol.Path[:3] {
		fmt.Println(st.State, st.Label)
	}
	// Output:
	// crossings: 11
	// (3,3,1,0,0) op1
	// (2,2,0,1,1) op5
	// (3,2,1,0,1) op2
}
