// Package search provides a generic, deterministic state-space search engine:
// a node/frontier/expansion/reconstruction pipeline for exhaustive or
// single-goal search over an implicit graph whose nodes are generated lazily.
//
// What
//
//   - A Generator maps a state to its (label, next-state) successors.
//   - Search drives the main loop and returns a Result containing:
//   - Solutions: goal nodes in extraction order
//   - Stats: extracted / expanded / generated / duplicate / pruned counters
//   - Root: the node wrapping the initial state
//   - Reconstruct (or Node.Path) turns a goal node into a root-first Path.
//   - The Frontier is pluggable through a closed Policy enumeration:
//   - BreadthFirst  append at back,   extract front
//   - DepthFirst    append at back,   extract back
//   - PrependFront  splice at front,  extract front
//   - PrependBack   splice at front,  extract back
//
// Loop
//
//	1. frontier empty                → stop
//	2. extract one node
//	3. state == goal                 → record; stop in FirstSolution mode
//	4. state already visited         → discard
//	5. mark state visited
//	6. depth >= MaxDepth             → discard (counted in Stats.PrunedByDepth)
//	7. expand, insert children per Policy
//
// A state, once visited, is never expanded again, even when reached through a
// different path. Later paths that reach the goal are still recorded as
// solutions in AllSolutions mode, which is how ambiguous derivations surface.
//
// Determinism
//
//	Given the same Generator output order, initial/goal states, Policy, and
//	bound, two runs produce identical solution ordering and identical paths.
//	The engine is single-threaded; a Result must not be shared across
//	concurrent searches while one is running.
//
// Depth bound
//
//	The bound is a required safety valve: generators with growing productions
//	never exhaust otherwise. Depth is recomputed by walking parent links.
//	MaxDepth == 0 examines only the initial state.
//
// Complexity (N = expanded states, b = branching factor)
//
//   - Time:   O(N·b) generator calls plus O(depth) per depth check
//   - Memory: O(N·b) nodes; the whole tree is retained for reconstruction
//
// Usage
//
//	res, err := search.Search(gen, initial, goal,
//	    search.WithPolicy(search.BreadthFirst),
//	    search.WithMode(search.FirstSolution),
//	    search.WithMaxDepth(30),
//	    search.WithOpenSet(true),
//	)
//	if err != nil {
//	    // ErrGeneratorNil, ErrOptionViolation,
//	    // ErrExpansionLimit (partial res), or ctx.Err() (partial res)
//	}
//	for _, p := range res.Paths() {
//	    fmt.Println(p.States(), p.Labels())
//	}
//
// Options
//
//   - DefaultOptions():       background Context, PrependFront, MaxDepth 25, AllSolutions.
//   - WithContext(ctx):       cancellation; zerolog.Ctx(ctx) receives debug events.
//   - WithPolicy(p):          frontier insertion/extraction policy.
//   - WithMaxDepth(d):        depth bound (>= 0).
//   - WithMode(m):            FirstSolution or AllSolutions.
//   - WithOpenSet(true):      drop children already visited or pending.
//   - WithMaxExpansions(n):   expansion ceiling (> 0), 0 disables it.
//
// Errors
//
//   - ErrGeneratorNil     if the generator is nil.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrExpansionLimit   if the expansion ceiling is reached.
package search
