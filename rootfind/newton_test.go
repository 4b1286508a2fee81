package rootfind_test

import (
	"math"
	"testing"

	"github.com/qmerino/vleq/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewtonRaphson_NilFunc verifies that a nil f or df is rejected with
// ErrNilFunc before any evaluation happens.
func TestNewtonRaphson_NilFunc(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := rootfind.NewtonRaphson(nil, f, 0)
	assert.ErrorIs(t, err, rootfind.ErrNilFunc, "nil f must error")

	_, err = rootfind.NewtonRaphson(f, nil, 0)
	assert.ErrorIs(t, err, rootfind.ErrNilFunc, "nil df must error")
}

// TestNewtonRaphson_SqrtTwo checks the canonical case: f(x)=x²−2 from
// x0=1 converges to √2 within default tolerance in under 10 iterations.
func TestNewtonRaphson_SqrtTwo(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	// Count iterations through the closure: f is evaluated exactly once
	// per iteration.
	calls := 0
	counted := func(x float64) float64 { calls++; return f(x) }

	root, err := rootfind.NewtonRaphson(counted, df, 1.0)
	require.NoError(t, err, "x²−2 from x0=1 must converge")
	assert.InDelta(t, math.Sqrt2, root, 1e-6, "root must be √2 within tolerance")
	assert.Less(t, calls, 10, "quadratic convergence needs well under 10 iterations")
}

// TestNewtonRaphson_SeedAtRoot verifies that seeding at an exact root of
// a smooth f with nonzero derivative returns that root after one
// iteration: f(r)=0 makes xNew=r and the step size is exactly 0.
func TestNewtonRaphson_SeedAtRoot(t *testing.T) {
	f := func(x float64) float64 { return (x - 3) * (x + 1) }
	df := func(x float64) float64 { return 2*x - 2 }

	calls := 0
	counted := func(x float64) float64 { calls++; return f(x) }

	root, err := rootfind.NewtonRaphson(counted, df, 3.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, root, "seeding at the root must return it exactly")
	assert.Equal(t, 1, calls, "convergence must be detected on the first iteration")
}

// TestNewtonRaphson_DerivativeTooSmall ensures that a derivative below
// the floor at the very first iterate fails immediately with
// ErrDerivativeTooSmall and performs no further iterations.
func TestNewtonRaphson_DerivativeTooSmall(t *testing.T) {
	fCalls, dfCalls := 0, 0
	f := func(x float64) float64 { fCalls++; return 1 }
	df := func(x float64) float64 { dfCalls++; return 1e-11 } // below the 1e-10 floor

	_, err := rootfind.NewtonRaphson(f, df, 5.0)
	assert.ErrorIs(t, err, rootfind.ErrDerivativeTooSmall, "tiny derivative must error")
	assert.Equal(t, 1, fCalls, "no iteration beyond the first")
	assert.Equal(t, 1, dfCalls, "no iteration beyond the first")
	assert.Contains(t, err.Error(), "5", "error must carry the offending x")
}

// TestNewtonRaphson_DerivativeAtFloor checks the boundary: |f'| exactly
// equal to the floor is still accepted as divisible.
func TestNewtonRaphson_DerivativeAtFloor(t *testing.T) {
	f := func(x float64) float64 { return 0 } // already at a root, any x
	df := func(x float64) float64 { return 1e-10 }

	root, err := rootfind.NewtonRaphson(f, df, 2.0)
	require.NoError(t, err, "|f'| == floor must not trip the check")
	assert.Equal(t, 2.0, root)
}

// TestNewtonRaphson_MaxIterExhausted verifies that MaxIter=1 on a problem
// needing several steps fails with ErrNoConvergence carrying the budget.
func TestNewtonRaphson_MaxIterExhausted(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	_, err := rootfind.NewtonRaphson(f, df, 1.0, rootfind.WithMaxIter(1))
	assert.ErrorIs(t, err, rootfind.ErrNoConvergence, "one iteration cannot converge from x0=1")
	assert.Contains(t, err.Error(), "1 iterations", "error must carry the budget used")
}

// TestNewtonRaphson_Deterministic checks that two identical calls produce
// bit-identical results.
func TestNewtonRaphson_Deterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	df := func(x float64) float64 { return -math.Sin(x) - 1 }

	r1, err1 := rootfind.NewtonRaphson(f, df, 1.0)
	r2, err2 := rootfind.NewtonRaphson(f, df, 1.0)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, math.Float64bits(r1), math.Float64bits(r2),
		"identical inputs must give bit-identical roots")
}

// TestNewtonRaphson_MonotoneSteps checks the Newton-basin property over a
// set of synthetic polynomials with known simple roots: once the iteration
// starts near the root, successive step sizes are non-increasing. Iterates
// are recorded through a wrapping closure (f runs once per iteration at
// the current x).
func TestNewtonRaphson_MonotoneSteps(t *testing.T) {
	cases := []struct {
		name string
		f    rootfind.Func
		df   rootfind.Func
		x0   float64
		root float64
	}{
		{
			name: "quadratic x²−4",
			f:    func(x float64) float64 { return x*x - 4 },
			df:   func(x float64) float64 { return 2 * x },
			x0:   3.0,
			root: 2.0,
		},
		{
			name: "cubic x³−x−2",
			f:    func(x float64) float64 { return x*x*x - x - 2 },
			df:   func(x float64) float64 { return 3*x*x - 1 },
			x0:   1.6,
			root: 1.5213797068045676,
		},
		{
			name: "quintic x⁵−3",
			f:    func(x float64) float64 { return math.Pow(x, 5) - 3 },
			df:   func(x float64) float64 { return 5 * math.Pow(x, 4) },
			x0:   1.3,
			root: math.Pow(3, 0.2),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var iterates []float64
			recorded := func(x float64) float64 {
				iterates = append(iterates, x)

				return tc.f(x)
			}

			root, err := rootfind.NewtonRaphson(recorded, tc.df, tc.x0)
			require.NoError(t, err)
			assert.InDelta(t, tc.root, root, 1e-6)

			// Steps between consecutive iterates must not grow.
			prev := math.Inf(1)
			for i := 1; i < len(iterates); i++ {
				step := math.Abs(iterates[i] - iterates[i-1])
				assert.LessOrEqual(t, step, prev,
					"step %d grew: %g after %g", i, step, prev)
				prev = step
			}
		})
	}
}

// TestNewtonRaphson_CustomTolerance verifies that a tighter tolerance
// yields a correspondingly tighter root.
func TestNewtonRaphson_CustomTolerance(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	root, err := rootfind.NewtonRaphson(f, df, 1.0, rootfind.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-12)
}

// TestOptions_PanicOnInvalid ensures invalid option values are rejected
// loudly when the option is applied.
func TestOptions_PanicOnInvalid(t *testing.T) {
	f := func(x float64) float64 { return x }

	assert.PanicsWithValue(t, rootfind.ErrBadTolerance.Error(), func() {
		_, _ = rootfind.NewtonRaphson(f, f, 0, rootfind.WithTolerance(0))
	}, "zero tolerance must panic")
	assert.PanicsWithValue(t, rootfind.ErrBadMaxIter.Error(), func() {
		_, _ = rootfind.NewtonRaphson(f, f, 0, rootfind.WithMaxIter(-1))
	}, "negative MaxIter must panic")
}
