package search

// Node is one element of the search tree. Each node is created fresh at
// expansion time, so the tree never contains cycles even when a state
// repeats one of its ancestors.
type Node[S comparable, L any] struct {
	// State is the configuration wrapped by this node.
	State S
	// Label identifies the transition that produced State from the parent's
	// state. It is the zero value for the root.
	Label L

	parent   *Node[S, L]
	children []*Node[S, L]
}

// NewRoot wraps the initial state in a parentless node.
func NewRoot[S comparable, L any](state S) *Node[S, L] {
	return &Node[S, L]{State: state}
}

// newChild links a fresh node under n without registering it in n.children.
func (n *Node[S, L]) newChild(s Successor[S, L]) *Node[S, L] {
	return &Node[S, L]{State: s.State, Label: s.Label, parent: n}
}

// Parent returns the node this one was expanded from, or nil for the root.
func (n *Node[S, L]) Parent() *Node[S, L] {
	return n.parent
}

// Children returns the nodes generated when n was expanded, in generation order.
// Nodes that were never expanded have no children.
func (n *Node[S, L]) Children() []*Node[S, L] {
	return n.children
}

// IsRoot reports whether n has no parent.
func (n *Node[S, L]) IsRoot() bool {
	return n.parent == nil
}

// Depth returns the distance from n to the root (root = 0).
// It walks parent links on every call; the cost is proportional to the depth.
func (n *Node[S, L]) Depth() int {
	d := 0
	for cur := n; cur.parent != nil; cur = cur.parent {
		d++
	}

	return d
}

// Path reconstructs the root-first path ending at n.
func (n *Node[S, L]) Path() Path[S, L] {
	return Reconstruct(n)
}
