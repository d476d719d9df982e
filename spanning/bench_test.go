package spanning_test

import (
	"testing"

	"github.com/johnpfay/PatchConnect/spanning"
)

// BenchmarkKruskal measures a random graph with 500 patches and 2000 links.
func BenchmarkKruskal(b *testing.B) {
	v := buildMediumGraph(b, 500, 1501, 42).View()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Kruskal(v)
	}
}

// BenchmarkPrim measures the same graph, always starting from patch 1.
func BenchmarkPrim(b *testing.B) {
	v := buildMediumGraph(b, 500, 1501, 42).View()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = spanning.Prim(v, 1)
	}
}
