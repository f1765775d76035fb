// Package nn provides model modules with named, optionally constrained
// parameters for the GoFit library.
package nn

import (
	"github.com/gofit-ml/gofit/internal/tensor"
)

// Parameter is a named model parameter.
//
// The Value tensor is owned by the module that created it. Code that
// marshals parameters (see internal/optim) reads the tensor through its
// typed views and writes back into the same buffer in place; it never
// takes ownership or relocates the data.
//
// Names are dotted paths reflecting module nesting, e.g.
// "likelihood.noise_covar.raw_noise".
type Parameter struct {
	Name  string
	Value *tensor.RawTensor
}

// NamedBound is the raw-space bound declared for a named parameter.
//
// Infinities mean "unconstrained on that side". A parameter whose
// constraint is enforced by a transform declares (-Inf, +Inf): the raw
// value an optimizer sees is unconstrained even though the transformed
// value is not.
type NamedBound struct {
	Name  string
	Lower float64
	Upper float64
}
