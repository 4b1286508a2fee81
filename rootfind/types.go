// Package rootfind defines core types, configuration options and sentinel
// errors shared by all scalar root-finding methods in this package.
//
// All methods operate on plain float64 → float64 callables and are governed
// by the same two knobs:
//
//	– Tolerance: maximum allowed step size |x_{n+1} − x_n| (or bracket width
//	  for bisection) for the iteration to be accepted as converged.
//	– MaxIter:   hard cap on the number of iterations; exceeding it yields
//	  ErrNoConvergence.
//
// Errors (sentinel):
//
//	– ErrNilFunc            if a required callable is nil.
//	– ErrDerivativeTooSmall if |f'(x)| drops below DerivativeFloor.
//	– ErrNoConvergence      if MaxIter iterations pass without convergence.
//	– ErrInvalidBracket     if a bracketed method receives lo ≥ hi.
//	– ErrNoBracket          if f(lo) and f(hi) do not straddle zero.
//
// Example usage:
//
//	root, err := rootfind.NewtonRaphson(f, df, 1.0,
//	    rootfind.WithTolerance(1e-8),
//	    rootfind.WithMaxIter(50),
//	)
//	if errors.Is(err, rootfind.ErrNoConvergence) {
//	    // pick a better starting point, or switch method
//	}
package rootfind

import "errors"

// DerivativeFloor is the minimum allowed |f'(x)| before a Newton step is
// judged numerically unstable. Crossing it signals an imminent division by
// a near-zero quantity, not a generic numerical error, and aborts the
// iteration with ErrDerivativeTooSmall.
//
// The floor is fixed: it is part of the method's failure contract, not a
// tuning knob.
const DerivativeFloor = 1e-10

// Default iteration controls applied when no Option overrides them.
const (
	// DefaultTolerance is the default maximum accepted step size.
	DefaultTolerance = 1e-6

	// DefaultMaxIter is the default hard iteration cap.
	DefaultMaxIter = 100
)

// Sentinel errors returned by the root-finding methods.
var (
	// ErrNilFunc indicates that a nil callable was supplied where a
	// function or its derivative is required.
	ErrNilFunc = errors.New("rootfind: function must be non-nil")

	// ErrDerivativeTooSmall indicates that |f'(x)| < DerivativeFloor at the
	// current iterate. The wrapping error carries the offending x.
	ErrDerivativeTooSmall = errors.New("rootfind: derivative too small, possible division by zero")

	// ErrNoConvergence indicates that the iteration budget was exhausted
	// before any step satisfied the tolerance. The wrapping error carries
	// the MaxIter that was used.
	ErrNoConvergence = errors.New("rootfind: no convergence within iteration budget")

	// ErrInvalidBracket indicates that a bracketed method was given an
	// empty or inverted interval (lo ≥ hi).
	ErrInvalidBracket = errors.New("rootfind: bracket must satisfy lo < hi")

	// ErrNoBracket indicates that f(lo) and f(hi) have the same sign, so
	// the interval is not guaranteed to contain a root.
	ErrNoBracket = errors.New("rootfind: f(lo) and f(hi) must have opposite signs")

	// ErrBadTolerance reports a non-positive tolerance passed to WithTolerance.
	ErrBadTolerance = errors.New("rootfind: Tolerance must be positive")

	// ErrBadMaxIter reports a non-positive iteration cap passed to WithMaxIter.
	ErrBadMaxIter = errors.New("rootfind: MaxIter must be positive")
)

// Func is a real-valued function of a single real variable.
// Implementations must be deterministic for the solvers to be deterministic.
type Func func(x float64) float64

// Options configures the iteration controls shared by all methods.
//
// Tolerance – maximum allowed |x_{n+1} − x_n| for acceptance. Must be > 0.
// MaxIter   – hard iteration cap. Must be > 0.
type Options struct {
	Tolerance float64 // Convergence threshold on the step size
	MaxIter   int     // Maximum number of iterations before giving up
}

// Option represents a functional option for configuring a solver call.
type Option func(*Options)

// WithTolerance sets the convergence threshold on the step size.
// Must pass a positive value; zero or negative cause a panic with
// ErrBadTolerance, signaling invalid configuration early.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the hard cap on the number of iterations.
// Must pass a positive value; zero or negative cause a panic with
// ErrBadMaxIter.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Tolerance: DefaultTolerance (1e-6)
//   - MaxIter:   DefaultMaxIter (100)
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
	}
}
