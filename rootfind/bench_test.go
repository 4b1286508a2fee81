package rootfind_test

import (
	"testing"

	"github.com/qmerino/vleq/rootfind"
)

// Shared benchmark target: f(x) = x² − 2 with root √2, a simple root with
// a well-conditioned derivative at every benchmark starting point.
func benchF(x float64) float64 { return x*x - 2 }

func benchDF(x float64) float64 { return 2 * x }

// BenchmarkNewtonRaphson_NearRoot benchmarks convergence from a starting
// point already inside the quadratic basin.
func BenchmarkNewtonRaphson_NearRoot(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.NewtonRaphson(benchF, benchDF, 1.5); err != nil {
			b.Fatalf("NewtonRaphson failed: %v", err)
		}
	}
}

// BenchmarkNewtonRaphson_FarStart benchmarks convergence from a distant
// starting point that needs several contraction steps first.
func BenchmarkNewtonRaphson_FarStart(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.NewtonRaphson(benchF, benchDF, 1000); err != nil {
			b.Fatalf("NewtonRaphson failed: %v", err)
		}
	}
}

// BenchmarkNewtonRaphson_TightTolerance benchmarks the cost of pushing
// the step tolerance to 1e-12.
func BenchmarkNewtonRaphson_TightTolerance(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := rootfind.NewtonRaphson(benchF, benchDF, 1.5, rootfind.WithTolerance(1e-12))
		if err != nil {
			b.Fatalf("NewtonRaphson failed: %v", err)
		}
	}
}

// BenchmarkBisection benchmarks interval halving on a width-2 bracket,
// the linear-convergence baseline the Newton variants are measured against.
func BenchmarkBisection(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Bisection(benchF, 0, 2); err != nil {
			b.Fatalf("Bisection failed: %v", err)
		}
	}
}

// BenchmarkSafeguardedNewton benchmarks the bracketed Newton on the same
// problem; expected to track BenchmarkNewtonRaphson_NearRoot closely since
// no fallback steps are needed.
func BenchmarkSafeguardedNewton(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.SafeguardedNewton(benchF, benchDF, 0, 2); err != nil {
			b.Fatalf("SafeguardedNewton failed: %v", err)
		}
	}
}
