package bellmanford_test

import (
	"testing"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/core"
)

// ringGraph builds a ring of n vertices where every vertex links to the next three.
func ringGraph(n int) *core.Graph {
	g := core.MustNewGraph(n)
	for u := 0; u < n; u++ {
		for step := 1; step <= 3; step++ {
			_ = g.AddEdge(u, (u+step)%n, float64((u+step)%10+1))
		}
	}

	return g
}

// BenchmarkBellmanFord_Ring50 mirrors the classic 50-vertex, 150-edge workload.
func BenchmarkBellmanFord_Ring50(b *testing.B) {
	g := ringGraph(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.BellmanFord(g, 0)
	}
}

// BenchmarkBellmanFord_Ring50_FullPasses disables the early exit.
func BenchmarkBellmanFord_Ring50_FullPasses(b *testing.B) {
	g := ringGraph(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.BellmanFord(g, 0, bellmanford.WithoutEarlyExit())
	}
}
