// Package crossing solves the river-crossing puzzle (three missionaries,
// three cannibals, one two-seat boat) with the generic search engine.
//
// A State is the 5-tuple (left A, left B, boat, right A, right B). Five fixed
// operations move (1,1), (0,2), (2,0), (0,1) or (1,0) travellers in the
// direction the boat points. A result is kept only if every component stays
// in [0, 3] and no bank holding type-A travellers has more type-B ones.
//
// Methods
//
//   - BFS            breadth-first; finds the minimum number of crossings (11).
//   - DFS            explicit stack; finds some valid path.
//   - DFSRecursive   children in generation order, no pending-state filter.
//
// BFS and DFS drop children whose state is already visited or still pending
// in the frontier, so each configuration is queued at most once.
package crossing
