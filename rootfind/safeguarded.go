package rootfind

import (
	"fmt"
	"math"
)

// SafeguardedNewton — Newton-Raphson confined to a shrinking bracket.
//
// Description:
//
//	Combines the speed of Newton steps with the containment of bisection.
//	The search always maintains a bracket [lo, hi] with f(lo)·f(hi) < 0.
//	Each iteration attempts a Newton step from the current iterate; if the
//	step would leave the bracket, or the derivative is too small to trust,
//	the method falls back to the bracket midpoint. Either way the bracket
//	is tightened around the root, so the iteration cannot escape toward a
//	pole of f the way plain NewtonRaphson can.
//
//	This is the containment strategy for callers whose f has known
//	singularities near the root — for flash calculations, a bracket inside
//	the open interval between the poles of the Rachford-Rice objective.
//
// Algorithm Outline:
//  1. Build Options from opts; validate the bracket exactly as Bisection.
//  2. Start from the bracket midpoint.
//  3. For up to MaxIter iterations:
//     a. Evaluate fx = f(x); if fx == 0, return x.
//     b. Tighten the bracket: replace the endpoint whose sign matches fx.
//     c. Candidate step: Newton if |f'(x)| ≥ DerivativeFloor and the
//     update lands strictly inside (lo, hi); bracket midpoint otherwise.
//     d. If |xNew − x| < Tolerance, return xNew.
//     e. x = xNew.
//  4. Budget exhausted: fail with ErrNoConvergence.
//
// Unlike plain NewtonRaphson, a vanishing derivative is not fatal here —
// it merely forces a bisection step — so ErrDerivativeTooSmall is never
// returned by this method.
//
// Errors:
//   - ErrNilFunc        — f or df is nil.
//   - ErrInvalidBracket — lo ≥ hi.
//   - ErrNoBracket      — f(lo) and f(hi) have the same sign.
//   - ErrNoConvergence  — MaxIter iterations without a small-enough step.
//
// Complexity:
//
//	Time:   O(MaxIter) evaluations of f and df in the worst case.
//	Memory: O(1).
func SafeguardedNewton(f, df Func, lo, hi float64, opts ...Option) (float64, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs, same contract as Bisection.
	if f == nil || df == nil {
		return 0, ErrNilFunc
	}
	if lo >= hi {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidBracket, lo, hi)
	}
	fLo, fHi := f(lo), f(hi)
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if math.Signbit(fLo) == math.Signbit(fHi) {
		return 0, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoBracket, lo, fLo, hi, fHi)
	}

	// 3) Iterate from the bracket midpoint.
	x := lo + (hi-lo)/2
	var fx, dfx, xNew float64
	for i := 0; i < cfg.MaxIter; i++ {
		fx = f(x)
		// 3a) Landed exactly on the root.
		if fx == 0 {
			return x, nil
		}

		// 3b) Tighten the bracket around the sign change.
		if math.Signbit(fx) == math.Signbit(fLo) {
			lo, fLo = x, fx
		} else {
			hi = x
		}

		// 3c) Prefer the Newton step; bisect when it is untrustworthy or
		//     would leave the bracket.
		dfx = df(x)
		if math.Abs(dfx) >= DerivativeFloor {
			xNew = x - fx/dfx
			if xNew <= lo || xNew >= hi {
				xNew = lo + (hi-lo)/2
			}
		} else {
			xNew = lo + (hi-lo)/2
		}

		// 3d) Converged on a small step.
		if math.Abs(xNew-x) < cfg.Tolerance {
			return xNew, nil
		}

		// 3e) Advance.
		x = xNew
	}

	// 4) Budget exhausted.
	return 0, fmt.Errorf("%w: %d iterations", ErrNoConvergence, cfg.MaxIter)
}
