// Package lvsearch is a small toolkit for exhaustive state-space search over
// implicit graphs, with two worked domains built on top of it: context-free
// derivations and the river-crossing puzzle.
//
// 🚀 What is lvsearch?
//
//	A generic, deterministic search engine plus the pieces that drive it:
//		• One loop, four frontier policies: bfs, dfs, prepend-front, prepend-back
//		• Visited-set deduplication, optional open-set suppression
//		• Depth bound, expansion budget, context cancellation
//		• Parent-linked search tree with path reconstruction
//		• First-solution and all-solutions modes
//
// ✨ Why choose lvsearch?
//
//   - Deterministic - the same inputs always yield the same paths in the same order
//   - Generic - any comparable state type, any label type
//   - Observable - per-run counters and zerolog events through the context
//
// Under the hood, everything is organized under these subpackages:
//
//	search/        the engine: Search, Frontier, Node, Path, Options
//	grammar/       rules, leftmost/rightmost rewriting, Derive, ambiguity checks
//	crossing/      missionaries-and-cannibals states, operations and Solve
//	rulefile/      text and YAML rule tables
//	cmd/lvsearch/  the command-line front end (derive, cross)
//
// Quick example, the derivation of "ab" from S with rules 1: S→AB, 2: A→a, 3: B→b:
//
//	->(S,1)->(AB,2)->(aB,3)->(ab)
//
// Every line like the one above is one root-to-goal path of the search tree:
// the sentential form and the rule applied to it.
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
