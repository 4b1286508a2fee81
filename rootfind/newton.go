package rootfind

import (
	"fmt"
	"math"
)

// NewtonRaphson — classic Newton-Raphson iteration.
//
// Description:
//
//	Starting from x0, repeatedly linearize f at the current iterate and
//	jump to the root of the linearization:
//
//	    x_{n+1} = x_n − f(x_n) / f'(x_n)
//
//	Near a simple root with f'(x*) ≠ 0 the method converges quadratically;
//	far from one it may diverge, cycle, or walk into a pole of f.
//
// Algorithm Outline:
//  1. Build Options from opts (defaults: Tolerance=1e-6, MaxIter=100).
//  2. For up to MaxIter iterations:
//     a. Evaluate fx = f(x) and dfx = df(x).
//     b. If |dfx| < DerivativeFloor, fail with ErrDerivativeTooSmall.
//     c. xNew = x − fx/dfx.
//     d. If |xNew − x| < Tolerance, return xNew (the updated iterate).
//     e. x = xNew.
//  3. Budget exhausted: fail with ErrNoConvergence.
//
// Deliberately absent: bracketing, step damping, domain containment. If f
// is undefined or discontinuous somewhere along the iteration path, the
// resulting Inf/NaN propagates through the arithmetic and surfaces as
// non-convergence, not as a distinct error kind. Callers wanting
// containment should use SafeguardedNewton.
//
// Errors:
//   - ErrNilFunc            — f or df is nil.
//   - ErrDerivativeTooSmall — |f'(x)| < DerivativeFloor at some iterate;
//     the returned error carries the offending x.
//   - ErrNoConvergence      — MaxIter iterations passed without any step
//     satisfying the tolerance; the error carries the budget used.
//
// Complexity:
//
//	Time:   O(MaxIter) evaluations of f and df in the worst case.
//	Memory: O(1).
func NewtonRaphson(f, df Func, x0 float64, opts ...Option) (float64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate callables.
	if f == nil || df == nil {
		return 0, ErrNilFunc
	}

	// 3) Main iteration. The loop owns all transient state; nothing
	//    escapes the call.
	x := x0
	var fx, dfx, xNew float64
	for i := 0; i < cfg.MaxIter; i++ {
		// 3a) Evaluate the function and its derivative at the current iterate.
		fx = f(x)
		dfx = df(x)

		// 3b) Refuse to divide by a near-zero derivative.
		if math.Abs(dfx) < DerivativeFloor {
			return 0, fmt.Errorf("%w: |f'(%g)| = %g", ErrDerivativeTooSmall, x, math.Abs(dfx))
		}

		// 3c) Newton update.
		xNew = x - fx/dfx

		// 3d) Converged when the step is small enough. Return the updated
		//     value, not the previous iterate: if x0 is already an exact
		//     root, this hands back x0 after a single iteration.
		if math.Abs(xNew-x) < cfg.Tolerance {
			return xNew, nil
		}

		// 3e) Advance.
		x = xNew
	}

	// 4) Budget exhausted without convergence.
	return 0, fmt.Errorf("%w: %d iterations", ErrNoConvergence, cfg.MaxIter)
}
