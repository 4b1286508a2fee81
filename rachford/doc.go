// Package rachford models the Rachford-Rice equation for isothermal flash
// separation of a multi-component fluid.
//
// 🚀 What is the Rachford-Rice equation?
//
//	A fluid with feed mole fractions z and equilibrium ratios K splits at
//	fixed temperature and pressure into vapor and liquid. The vapor
//	fraction V at equilibrium is the root of
//
//	    g(V) = Σ_i z_i·(K_i − 1) / (1 + V·(K_i − 1)) = 0
//
//	g is strictly decreasing between its poles, so the physically
//	meaningful root is unique and lives in the open window
//	(1/(1−K_max), 1/(1−K_min)).
//
// ✨ Key features:
//   - FlashProblem — immutable value object holding z and K (copied at
//     construction, safe to share across goroutines)
//   - Objective / Derivative — pure evaluations, fixed summation order,
//     bitwise reproducible
//   - SolveVaporFraction — one-call composition with rootfind's
//     Newton-Raphson
//   - TwoPhaseWindow — the physical bracket, reported but never enforced
//
// ⚙️ Usage:
//
//	import "github.com/qmerino/vleq/rachford"
//
//	p, err := rachford.NewFlashProblem(
//	    []float64{0.1, 0.2, 0.3, 0.4},     // z: feed mole fractions
//	    []float64{4.2, 1.75, 0.74, 0.34},  // K: equilibrium ratios
//	)
//	if err != nil {
//	    // ErrLengthMismatch or ErrNoComponents
//	}
//	V, err := rachford.SolveVaporFraction(p, 0)
//
// Nothing here validates physics: Σz = 1 and K > 0 are the caller's
// business, and a converged V outside the two-phase window is still
// reported as success. See the types.go package notes for the rationale.
//
// See examples in example_test.go.
package rachford
