package rootfind

import (
	"fmt"
	"math"
)

// Bisection — interval-halving root search.
//
// Description:
//
//	Given a bracket [lo, hi] with f(lo)·f(hi) < 0, repeatedly evaluate f at
//	the midpoint and keep the half whose endpoints still straddle zero.
//	The bracket width halves each iteration, so convergence is guaranteed
//	(linearly) for any continuous f — at the cost of requiring a valid
//	bracket up front.
//
// Algorithm Outline:
//  1. Build Options from opts.
//  2. Validate lo < hi and that f(lo), f(hi) have opposite signs.
//     An endpoint that is exactly zero is returned immediately.
//  3. For up to MaxIter iterations:
//     a. mid = lo + (hi−lo)/2  (midpoint form avoids overflow and keeps
//     mid inside the bracket even at float extremes).
//     b. If f(mid) == 0 or bracket width < Tolerance, return mid.
//     c. Keep the sign-changing half.
//  4. Budget exhausted: fail with ErrNoConvergence.
//
// Errors:
//   - ErrNilFunc        — f is nil.
//   - ErrInvalidBracket — lo ≥ hi.
//   - ErrNoBracket      — f(lo) and f(hi) have the same sign.
//   - ErrNoConvergence  — MaxIter iterations passed without the bracket
//     shrinking below Tolerance.
//
// Complexity:
//
//	Time:   O(MaxIter) evaluations of f; log2((hi−lo)/Tolerance) in practice.
//	Memory: O(1).
func Bisection(f Func, lo, hi float64, opts ...Option) (float64, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if f == nil {
		return 0, ErrNilFunc
	}
	if lo >= hi {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidBracket, lo, hi)
	}

	fLo, fHi := f(lo), f(hi)
	// 2a) Exact roots at the endpoints short-circuit the search.
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	// 2b) The bracket must straddle zero.
	if math.Signbit(fLo) == math.Signbit(fHi) {
		return 0, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoBracket, lo, fLo, hi, fHi)
	}

	// 3) Halving loop.
	var mid, fMid float64
	for i := 0; i < cfg.MaxIter; i++ {
		// 3a) Midpoint, overflow-safe form.
		mid = lo + (hi-lo)/2
		fMid = f(mid)

		// 3b) Converged on an exact zero or a narrow-enough bracket.
		if fMid == 0 || hi-lo < cfg.Tolerance {
			return mid, nil
		}

		// 3c) Keep the half that still changes sign.
		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}

	// 4) Budget exhausted.
	return 0, fmt.Errorf("%w: %d iterations", ErrNoConvergence, cfg.MaxIter)
}
