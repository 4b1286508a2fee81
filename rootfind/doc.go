// Package rootfind locates roots of scalar real functions using a family of
// iterative methods that share one option set: plain Newton-Raphson,
// bisection, and a safeguarded Newton that falls back to bisection.
//
// 🚀 What is root finding?
//
//	Given f: ℝ → ℝ, find x* with f(x*) = 0. The methods here trade speed
//	for robustness in different ways:
//	  • NewtonRaphson    — quadratic convergence near a simple root; no
//	    bracketing, no damping, no domain containment. Fast and fragile.
//	  • Bisection        — linear convergence; needs a sign-changing
//	    bracket but cannot overshoot. Slow and unbreakable.
//	  • SafeguardedNewton — Newton steps clamped to a shrinking bracket,
//	    bisection fallback when a step escapes or the derivative vanishes.
//
// ✨ Key features:
//   - one Options set (Tolerance, MaxIter) across all methods
//   - typed, inspectable failures: ErrDerivativeTooSmall, ErrNoConvergence
//   - pure functions — no internal state survives a call, safe for
//     concurrent use as long as f and f' are
//
// ⚙️ Usage:
//
//	import "github.com/qmerino/vleq/rootfind"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	df := func(x float64) float64 { return 2 * x }
//
//	root, err := rootfind.NewtonRaphson(f, df, 1.0)
//	// root ≈ 1.414213..., err == nil
//
// A caution on NewtonRaphson: the plain method makes no attempt to keep
// iterates inside the domain of f. If an iterate lands on a pole of f (for
// example a zero denominator inside the caller's function), the failure is
// whatever f itself produces — typically ±Inf or NaN propagating into
// ErrNoConvergence — not a distinct error kind. When the domain has known
// singularities, prefer SafeguardedNewton with a bracket that excludes them.
//
// See examples in example_test.go.
package rootfind
