package search_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/degrees/frontier"
	"github.com/katalvlaran/degrees/search"
)

// chainGraph links p0…pN with one two-person movie per hop.
func chainGraph(n int) *castGraph {
	ms := make(map[string][]string, n)
	for i := 0; i < n; i++ {
		ms[fmt.Sprintf("m%d", i)] = []string{fmt.Sprintf("p%d", i), fmt.Sprintf("p%d", i+1)}
	}

	return newCastGraph(ms)
}

// BenchmarkSearch_Chain measures a worst-case end-to-end walk along a chain.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 5000
	g := chainGraph(N)
	target := fmt.Sprintf("p%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Search(g, "p0", target)
	}
}

// BenchmarkSearch_DenseCast measures FIFO vs LIFO on large overlapping casts.
func BenchmarkSearch_DenseCast(b *testing.B) {
	const people, cast = 2000, 20
	ms := make(map[string][]string)
	for m := 0; m < people/cast*3; m++ {
		for j := 0; j < cast; j++ {
			p := fmt.Sprintf("p%d", (m*7+j*13)%people)
			ms[fmt.Sprintf("m%d", m)] = append(ms[fmt.Sprintf("m%d", m)], p)
		}
	}
	g := newCastGraph(ms)

	for _, d := range []frontier.Discipline{frontier.FIFO, frontier.LIFO} {
		b.Run(d.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Search(g, "p0", "unreachable", search.WithDiscipline(d))
			}
		})
	}
}
