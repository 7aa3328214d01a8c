package ccpool_test

import (
	"testing"

	"github.com/atpapadop/ccbench/ccpool"
	"github.com/atpapadop/ccbench/csr"
)

// BenchmarkRelaxStatic measures the thread-pool kernel under static block
// partitioning on a path graph.
func BenchmarkRelaxStatic(b *testing.B) {
	const n = int32(100000)
	edges := make([]csr.Edge, 0, n-1)
	for i := int32(0); i < n-1; i++ {
		edges = append(edges, csr.Edge{U: i, V: i + 1})
	}
	g, err := csr.BuildFromEdges(n, edges, csr.Options{Symmetrize: true, DropSelfLoops: true})
	if err != nil {
		b.Fatal(err)
	}

	labels := make([]int32, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ccpool.Relax(g, labels, ccpool.StaticChunkSentinel, 0)
	}
}

// BenchmarkRelaxDynamic measures the thread-pool kernel under dynamic
// chunking on the same path graph.
func BenchmarkRelaxDynamic(b *testing.B) {
	const n = int32(100000)
	edges := make([]csr.Edge, 0, n-1)
	for i := int32(0); i < n-1; i++ {
		edges = append(edges, csr.Edge{U: i, V: i + 1})
	}
	g, err := csr.BuildFromEdges(n, edges, csr.Options{Symmetrize: true, DropSelfLoops: true})
	if err != nil {
		b.Fatal(err)
	}

	labels := make([]int32, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ccpool.Relax(g, labels, ccpool.DefaultChunkSize, 0)
	}
}
