package search_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/search"
)

// line yields n -> n+1 until limit, a linear state space of limit+1 states.
func line(limit int) search.GeneratorFunc[int, int] {
	return func(n int) []search.Successor[int, int] {
		if n >= limit {
			return nil
		}
		return []search.Successor[int, int]{{Label: 1, State: n + 1}}
	}
}

// tree yields n -> 2n, 2n+1 below limit, a complete binary tree.
func tree(limit int) search.GeneratorFunc[int, int] {
	return func(n int) []search.Successor[int, int] {
		var out []search.Successor[int, int]
		for _, c := range []int{2 * n, 2*n + 1} {
			if c <= limit {
				out = append(out, search.Successor[int, int]{Label: c - 2*n, State: c})
			}
		}
		return out
	}
}

// BenchmarkSearch_Chain measures a first-solution walk down a chain of N states.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	gen := line(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Search[int, int](gen, 0, N,
			search.WithPolicy(search.BreadthFirst),
			search.WithMode(search.FirstSolution),
			search.WithMaxDepth(N+1),
		)
	}
}

// BenchmarkSearch_BinaryTree drains a complete binary tree (~2^D−1 nodes)
// under every policy.
func BenchmarkSearch_BinaryTree(b *testing.B) {
	const depth = 10
	limit := (1 << depth) - 1
	gen := tree(limit)

	for _, p := range []search.Policy{
		search.BreadthFirst, search.DepthFirst, search.PrependFront, search.PrependBack,
	} {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = search.Search[int, int](gen, 1, limit,
					search.WithPolicy(p),
					search.WithMaxDepth(depth),
				)
			}
		})
	}
}
