package grid_test

import (
	"testing"

	"github.com/katalvlaran/loopkit/grid"
)

// BenchmarkSpiral measures generation of a 512×512 spiral.
// Complexity: O(N²)
func BenchmarkSpiral(b *testing.B) {
	const n = 512
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Spiral(n)
	}
}

// BenchmarkRotate measures an in-place quarter turn of a 1000×1000 grid.
// Complexity: O(N²) time, no allocations.
func BenchmarkRotate(b *testing.B) {
	const n = 1000
	g, err := grid.Spiral(n)
	if err != nil {
		b.Fatalf("setup Spiral failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Rotate(g)
	}
}
