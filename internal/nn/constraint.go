package nn

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Interval is a constraint restricting a parameter to [lower, upper].
//
// By default the constraint is enforced through a transform (softplus for
// half-open intervals, scaled sigmoid for closed ones), so the raw
// parameter an optimizer manipulates stays unconstrained and RawBounds
// reports (-Inf, +Inf). WithoutTransform switches to enforcing the bound
// directly on the raw value, in which case RawBounds reports the interval
// itself and a box-constrained optimizer must respect it.
type Interval struct {
	lower     float64
	upper     float64
	transform bool
}

// NewInterval creates a constraint restricting a parameter to [lower, upper].
func NewInterval(lower, upper float64) (*Interval, error) {
	if lower >= upper {
		return nil, errors.Newf("interval lower bound %v must be less than upper bound %v", lower, upper)
	}
	return &Interval{lower: lower, upper: upper, transform: true}, nil
}

// GreaterThan creates a constraint restricting a parameter to [lower, +Inf).
func GreaterThan(lower float64) *Interval {
	return &Interval{lower: lower, upper: math.Inf(1), transform: true}
}

// LessThan creates a constraint restricting a parameter to (-Inf, upper].
func LessThan(upper float64) *Interval {
	return &Interval{lower: math.Inf(-1), upper: upper, transform: true}
}

// Positive creates a constraint restricting a parameter to (0, +Inf).
func Positive() *Interval {
	return GreaterThan(0)
}

// WithoutTransform returns a copy of the constraint that is enforced
// directly on the raw parameter value instead of through a transform.
func (c *Interval) WithoutTransform() *Interval {
	out := *c
	out.transform = false
	return &out
}

// LowerBound returns the constrained-space lower bound.
func (c *Interval) LowerBound() float64 {
	return c.lower
}

// UpperBound returns the constrained-space upper bound.
func (c *Interval) UpperBound() float64 {
	return c.upper
}

// Enforced reports whether the constraint is applied via a transform.
func (c *Interval) Enforced() bool {
	return c.transform
}

// RawBounds returns the bound that applies to the raw parameter value.
//
// With a transform active the raw value is unconstrained; without one the
// raw value must stay inside the interval.
func (c *Interval) RawBounds() (lower, upper float64) {
	if c.transform {
		return math.Inf(-1), math.Inf(1)
	}
	return c.lower, c.upper
}

// Transform maps a raw value to the constrained space.
//
// Without an active transform this is the identity.
func (c *Interval) Transform(raw float64) float64 {
	if !c.transform {
		return raw
	}
	switch {
	case math.IsInf(c.lower, -1) && math.IsInf(c.upper, 1):
		return raw
	case math.IsInf(c.upper, 1):
		return c.lower + softplus(raw)
	case math.IsInf(c.lower, -1):
		return c.upper - softplus(-raw)
	default:
		return c.lower + (c.upper-c.lower)*sigmoid(raw)
	}
}

// InverseTransform maps a constrained-space value back to raw space.
func (c *Interval) InverseTransform(value float64) float64 {
	if !c.transform {
		return value
	}
	switch {
	case math.IsInf(c.lower, -1) && math.IsInf(c.upper, 1):
		return value
	case math.IsInf(c.upper, 1):
		return softplusInv(value - c.lower)
	case math.IsInf(c.lower, -1):
		return -softplusInv(c.upper - value)
	default:
		p := (value - c.lower) / (c.upper - c.lower)
		return math.Log(p / (1 - p))
	}
}

// softplus computes log(1 + exp(x)) with overflow protection.
func softplus(x float64) float64 {
	if x > 30 {
		return x
	}
	return math.Log1p(math.Exp(x))
}

// softplusInv computes the inverse of softplus, log(exp(y) - 1).
func softplusInv(y float64) float64 {
	if y > 30 {
		return y
	}
	return math.Log(math.Expm1(y))
}

// sigmoid computes 1 / (1 + exp(-x)).
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
