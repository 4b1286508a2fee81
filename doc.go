// Package vleq is a compact toolkit for vapor-liquid equilibrium flash
// calculations — a scalar root-finding engine composed with the
// Rachford-Rice objective.
//
// 🚀 What is vleq?
//
//	A small, focused library that brings together:
//		• Root finding: Newton-Raphson, bisection, safeguarded Newton
//		• Flash split: Rachford-Rice objective and derivative for a
//		  fixed feed composition and K-value set
//		• A tiny CLI for one-off flash calculations
//
// ✨ Why choose vleq?
//
//   - Minimal API, clear naming — pass f and f', get a root or a typed error
//   - Deterministic — same inputs, bit-identical outputs, no hidden state
//   - Pure functions — every solver call is independent and safe to run
//     concurrently
//
// Everything is organized under two subpackages plus a CLI:
//
//	rootfind/ — scalar root-finding methods sharing one option set
//	rachford/ — FlashProblem value type, objective, derivative, and a
//	            convenience solver for the equilibrium vapor fraction
//	cmd/vleq/ — command-line wrapper around rachford
//
// Quick sketch of the composition:
//
//	p, _ := rachford.NewFlashProblem(z, K)
//	V, err := rachford.SolveVaporFraction(p, 0)
//
// The root finder knows nothing about flash calculations; the flash model
// knows nothing about iteration mechanics. That separation is the whole
// design.
//
//	go get github.com/qmerino/vleq
package vleq
