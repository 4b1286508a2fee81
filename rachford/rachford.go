package rachford

import "github.com/qmerino/vleq/rootfind"

// Objective evaluates the Rachford-Rice function at vapor fraction V:
//
//	g(V) = Σ_i z_i·(K_i − 1) / (1 + V·(K_i − 1))
//
// Its root in V balances component-wise vapor/liquid partitioning for the
// frozen feed composition and K-value set. The sum runs over components in
// ascending index order; Derivative uses the same order, so repeated
// evaluations of the pair are bitwise reproducible.
//
// Domain caution: any V with 1 + V·(K_i − 1) = 0 for some i is a pole of
// g. Evaluation there divides by zero and yields ±Inf; the model does not
// guard against it. The physically meaningful root lies strictly between
// the poles nearest zero — see TwoPhaseWindow.
//
// Complexity: O(n) per evaluation, n = number of components.
func (p FlashProblem) Objective(v float64) float64 {
	var sum, km1 float64
	for i := range p.z {
		km1 = p.k[i] - 1
		sum += p.z[i] * km1 / (1 + v*km1)
	}

	return sum
}

// Derivative evaluates the first derivative of Objective at V:
//
//	g'(V) = Σ_i −z_i·(K_i − 1)² / (1 + V·(K_i − 1))²
//
// Note g'(V) < 0 everywhere between consecutive poles (for non-degenerate
// K), so g is strictly decreasing across the two-phase window and its root
// there is unique.
//
// Complexity: O(n) per evaluation.
func (p FlashProblem) Derivative(v float64) float64 {
	var sum, km1, den float64
	for i := range p.z {
		km1 = p.k[i] - 1
		den = 1 + v*km1
		sum -= p.z[i] * km1 * km1 / (den * den)
	}

	return sum
}

// TwoPhaseWindow reports the open interval (1/(1−KMax), 1/(1−KMin)) that
// contains the physically meaningful vapor fraction when the feed actually
// splits into two phases (KMin < 1 < KMax).
//
// The window is informational: nothing in this package or in rootfind
// enforces it. Callers may use it as a bracket for
// rootfind.SafeguardedNewton, or to judge whether a converged root is
// physically sensible. When all K are on the same side of 1 the fluid is
// single-phase and the returned bounds are not a valid bracket.
func (p FlashProblem) TwoPhaseWindow() (lo, hi float64) {
	return 1 / (1 - p.KMax()), 1 / (1 - p.KMin())
}

// SolveVaporFraction computes the equilibrium vapor fraction of p by
// running plain Newton-Raphson on Objective/Derivative from the initial
// guess v0. A common choice of v0 is 0.
//
// This is a thin composition — the solver knows nothing about flash
// calculations and this package knows nothing about iteration mechanics —
// so every rootfind behavior applies unchanged: no bracketing, no domain
// containment, and the rootfind sentinel errors pass through as-is.
//
// Options forward to the solver, e.g.:
//
//	V, err := rachford.SolveVaporFraction(p, 0, rootfind.WithTolerance(1e-9))
func SolveVaporFraction(p FlashProblem, v0 float64, opts ...rootfind.Option) (float64, error) {
	return rootfind.NewtonRaphson(p.Objective, p.Derivative, v0, opts...)
}
