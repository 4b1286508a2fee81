// Package rachford defines the FlashProblem value type and its sentinel
// errors.
//
// A FlashProblem freezes one isothermal flash parameterization: the feed
// mole fractions z and the equilibrium ratios K, one entry per component.
// The constructor copies both slices, so a FlashProblem never observes
// later mutation of the caller's data and is safe to share across
// goroutines.
//
// The only structural invariant enforced is len(z) == len(K). Physical
// plausibility — Σz = 1, every K > 0 — is deliberately NOT validated: the
// objective and derivative are well-defined for any finite inputs, and
// rejecting "unphysical" ones here would silently change which problems
// the solver accepts. Garbage in, garbage out, by contract.
//
// Errors (sentinel):
//
//	– ErrLengthMismatch if len(z) != len(K).
//	– ErrNoComponents   if the component set is empty.
package rachford

import "errors"

// Sentinel errors returned by NewFlashProblem.
var (
	// ErrLengthMismatch indicates that z and K differ in length.
	ErrLengthMismatch = errors.New("rachford: z and K must have the same length")

	// ErrNoComponents indicates an empty component set.
	ErrNoComponents = errors.New("rachford: component set must be non-empty")
)

// FlashProblem is an immutable Rachford-Rice parameterization: feed mole
// fractions z and equilibrium ratios K for a fixed component set.
//
// Construct with NewFlashProblem; the zero value has no components and is
// not useful.
type FlashProblem struct {
	z []float64 // feed mole fraction per component, private copy
	k []float64 // equilibrium ratio per component, private copy
}

// NewFlashProblem builds a FlashProblem from one feed composition and one
// K-value set. Both slices are copied; the caller keeps ownership of its
// arguments.
//
// Validation covers structure only: the two slices must be non-empty and
// of equal length. Values are taken as-is (see the package doc for why).
func NewFlashProblem(z, k []float64) (FlashProblem, error) {
	if len(z) != len(k) {
		return FlashProblem{}, ErrLengthMismatch
	}
	if len(z) == 0 {
		return FlashProblem{}, ErrNoComponents
	}

	p := FlashProblem{
		z: make([]float64, len(z)),
		k: make([]float64, len(k)),
	}
	copy(p.z, z)
	copy(p.k, k)

	return p, nil
}

// Components returns the number of components in the problem.
func (p FlashProblem) Components() int { return len(p.z) }

// KMin returns the smallest equilibrium ratio in the problem.
// Returns 0 for the zero-value FlashProblem.
func (p FlashProblem) KMin() float64 {
	if len(p.k) == 0 {
		return 0
	}
	min := p.k[0]
	for _, k := range p.k[1:] {
		if k < min {
			min = k
		}
	}

	return min
}

// KMax returns the largest equilibrium ratio in the problem.
// Returns 0 for the zero-value FlashProblem.
func (p FlashProblem) KMax() float64 {
	if len(p.k) == 0 {
		return 0
	}
	max := p.k[0]
	for _, k := range p.k[1:] {
		if k > max {
			max = k
		}
	}

	return max
}
