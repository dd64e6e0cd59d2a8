package search

// Step is one element of a reconstructed path. Label is the transition that
// leads from State to the State of the following step; the last step of a
// path has HasLabel == false.
type Step[S comparable, L any] struct {
	State    S
	Label    L
	HasLabel bool
}

// Path is a root-first sequence of steps ending at a goal state.
type Path[S comparable, L any] []Step[S, L]

// Reconstruct walks parent links from node back to the root and returns the
// root-first path. A nil node yields a nil path. Calling it twice on the same
// node yields equal paths.
func Reconstruct[S comparable, L any](node *Node[S, L]) Path[S, L] {
	if node == nil {
		return nil
	}
	// collect goal → root
	var chain []*Node[S, L]
	for cur := node; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	// reverse to root → goal, shifting labels one step back:
	// chain[i].Label produced chain[i] from chain[i+1].
	path := make(Path[S, L], len(chain))
	for i, j := 0, len(chain)-1; j >= 0; i, j = i+1, j-1 {
		path[i].State = chain[j].State
		if j > 0 {
			path[i].Label = chain[j-1].Label
			path[i].HasLabel = true
		}
	}

	return path
}

// Len returns the number of states in the path.
func (p Path[S, L]) Len() int {
	return len(p)
}

// Transitions returns the number of transitions, one less than Len for a
// non-empty path.
func (p Path[S, L]) Transitions() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// States returns the states along the path, root first.
func (p Path[S, L]) States() []S {
	out := make([]S, len(p))
	for i, st := range p {
		out[i] = st.State
	}

	return out
}

// Labels returns the transition labels along the path; its length is Transitions().
func (p Path[S, L]) Labels() []L {
	out := make([]L, 0, p.Transitions())
	for _, st := range p {
		if st.HasLabel {
			out = append(out, st.Label)
		}
	}

	return out
}

// Last returns the final state of the path and false if the path is empty.
func (p Path[S, L]) Last() (S, bool) {
	if len(p) == 0 {
		var zero S
		return zero, false
	}

	return p[len(p)-1].State, true
}
