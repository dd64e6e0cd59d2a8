// Package grammar searches the derivation space of a context-free grammar
// for leftmost or rightmost derivations of a target string.
//
// What
//
//   - Grammar: an ordered rule table mapping head symbols (possibly
//     multi-character, e.g. "aaA") to numbered productions. Epsilon ("ε")
//     marks an empty body.
//   - Generator: a search.Generator over sentential forms. It finds every
//     occurrence of every head (overlapping matches included), picks the
//     leftmost or rightmost one, and produces one child per production of
//     that head.
//   - Derive: runs the search engine in all-solutions mode and returns every
//     derivation found, each rendered like ->(S,1)->(AB,3)->(aB,4)->(ab).
//
// Ties
//
//	Two heads matching at the same position are resolved in favour of the
//	head registered first.
//
// Frontier order
//
//	Both directions splice each new batch of children in at the front of the
//	frontier. Leftmost derivation extracts from the front, rightmost from the
//	back. The result is neither pure BFS nor pure DFS; it decides which of
//	several ambiguous derivations surfaces first, so it is kept as is.
//
// Termination
//
//	Growing grammars never exhaust the space on their own; the depth bound
//	(default search.DefaultMaxDepth) stops them. Because each sentential form
//	is expanded at most once, a second derivation that passes through an
//	already expanded form is not reported. The number of derivations is
//	therefore a lower bound on the true number of parse trees; callers decide
//	what "ambiguous" means from it.
//
// Errors
//
//   - ErrNoRules          empty or nil rule table.
//   - ErrEmptyHead        rule registered without a head.
//   - ErrDuplicateRuleID  rule ID registered twice.
//   - ErrEmptyStart       Derive called with an empty start symbol.
//   - ErrEmptyTarget      Derive called with an empty target.
//   - ErrUnknownDirection ParseDirection given an unknown name.
package grammar
