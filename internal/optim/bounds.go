package optim

import "math"

// Interval is a concrete (lower, upper) bound pair for one parameter.
// An infinite side means "unconstrained on that side".
type Interval struct {
	Lower float64
	Upper float64
}

// Unbounded returns the default unconstrained interval (-Inf, +Inf).
func Unbounded() Interval {
	return Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// IsUnbounded reports whether the interval is exactly (-Inf, +Inf).
func (iv Interval) IsUnbounded() bool {
	return math.IsInf(iv.Lower, -1) && math.IsInf(iv.Upper, 1)
}

// Bound is a per-parameter bound override with optional sides.
//
// A nil side inherits the declared (or default) value for that side; only
// a present side replaces it. Use F to take a literal's address:
//
//	optim.Bound{Lower: optim.F(0.1)} // lower-bound at 0.1, keep upper
type Bound struct {
	Lower *float64
	Upper *float64
}

// F returns a pointer to v, for building Bound literals.
func F(v float64) *float64 {
	return &v
}

// applyTo overlays the override onto a base interval, replacing only the
// sides the override carries.
func (b Bound) applyTo(base Interval) Interval {
	if b.Lower != nil {
		base.Lower = *b.Lower
	}
	if b.Upper != nil {
		base.Upper = *b.Upper
	}
	return base
}

// ArrayBounds is a pair of bound vectors aligned element-for-element with
// a flat parameter vector: every element of a parameter carries that
// parameter's scalar lower and upper bound.
type ArrayBounds struct {
	Lower []float64
	Upper []float64
}
