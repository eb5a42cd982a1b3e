// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/jailop/gograph/core"
)

// BenchmarkAddEdge_Chain measures edge insertion along a growing chain,
// where the duplicate scan touches a single-entry adjacency list.
func BenchmarkAddEdge_Chain(b *testing.B) {
	g := core.NewDirected[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i, i+1)
	}
}

// BenchmarkAddWeightedEdge_Chain measures the weighted insertion path.
func BenchmarkAddWeightedEdge_Chain(b *testing.B) {
	g := core.NewUndirected[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddWeightedEdge(i, i+1, float64(i))
	}
}

// BenchmarkHasEdge_Star measures membership queries against the center
// of a 1000-leaf star, the worst case for the linear adjacency scan.
func BenchmarkHasEdge_Star(b *testing.B) {
	g := core.NewDirected[int]()
	for i := 1; i <= 1000; i++ {
		_ = g.AddEdge(0, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(0, 1+i%1000)
	}
}

// BenchmarkSuccessors_Star measures the snapshot copy of a large
// adjacency list.
func BenchmarkSuccessors_Star(b *testing.B) {
	g := core.NewDirected[int]()
	for i := 1; i <= 1000; i++ {
		_ = g.AddEdge(0, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Successors(0)
	}
}

// BenchmarkClone measures the O(V+E) deep copy on a 1000-edge graph.
func BenchmarkClone(b *testing.B) {
	g := core.NewUndirected[int]()
	for i := 1; i <= 1000; i++ {
		_ = g.AddWeightedEdge(0, i, float64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
