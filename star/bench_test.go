package star_test

import (
	"testing"

	"github.com/katalvlaran/starpoly/geom"
	"github.com/katalvlaran/starpoly/star"
)

// benchmarkNew is a helper that constructs the same star b.N times.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkNew(b *testing.B, opts ...star.Option) {
	center := geom.Point{X: 0, Y: 0}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := star.New(center, 2, opts...); err != nil {
			b.Fatalf("New failed: %v", err) // report and stop on error
		}
	}
}

// BenchmarkNew_Pentagram benchmarks the derived path with default options.
func BenchmarkNew_Pentagram(b *testing.B) {
	benchmarkNew(b)
}

// BenchmarkNew_InnerDiameter benchmarks the explicit-diameter path.
func BenchmarkNew_InnerDiameter(b *testing.B) {
	benchmarkNew(b, star.WithInnerDiameter(0.5))
}

// BenchmarkNew_ManyCorners benchmarks a derived star with a larger ring.
func BenchmarkNew_ManyCorners(b *testing.B) {
	benchmarkNew(b, star.WithCorners(101), star.WithStyle(2))
}

// BenchmarkStar_XCoordinates benchmarks the coordinate export on a cached star.
func BenchmarkStar_XCoordinates(b *testing.B) {
	s, err := star.New(geom.Point{X: 0, Y: 0}, 2)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.XCoordinates()
	}
}
