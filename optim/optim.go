// Copyright 2025 GoFit ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/gofit-ml/gofit/internal/nn"
	"github.com/gofit-ml/gofit/internal/optim"
)

// NameFilter decides which parameter names survive marshalling.
type NameFilter = optim.NameFilter

// ErrInvalidFilterSpec is returned by CreateNameFilter for an unsupported
// filter specification type.
var ErrInvalidFilterSpec = optim.ErrInvalidFilterSpec

// CreateNameFilter builds an exclusion predicate from a set of names, a
// compiled *regexp.Regexp, a []string, or an iter.Seq[string]. Any other
// specification type fails eagerly with ErrInvalidFilterSpec.
func CreateNameFilter(spec any) (NameFilter, error) {
	return optim.CreateNameFilter(spec)
}

// FilterNames applies the filter to bare names, preserving relative order.
func FilterNames(filter NameFilter, names []string) []string {
	return optim.FilterNames(filter, names)
}

// FilterParams applies the filter to (name, value) pairs, testing each
// pair's name and preserving relative order.
func FilterParams(filter NameFilter, params []nn.Parameter) []nn.Parameter {
	return optim.FilterParams(filter, params)
}

// ParamDict is an insertion-ordered mapping from parameter name to tensor,
// used as the layout key of a flat parameter vector.
type ParamDict = optim.ParamDict

// NewParamDict creates an empty ParamDict.
func NewParamDict() *ParamDict {
	return optim.NewParamDict()
}

// Interval is a concrete (lower, upper) bound pair for one parameter.
type Interval = optim.Interval

// Unbounded returns the default unconstrained interval (-Inf, +Inf).
func Unbounded() Interval {
	return optim.Unbounded()
}

// Bound is a per-parameter bound override with optional sides.
type Bound = optim.Bound

// F returns a pointer to v, for building Bound literals.
func F(v float64) *float64 {
	return optim.F(v)
}

// ArrayBounds is a pair of bound vectors aligned element-for-element with
// a flat parameter vector.
type ArrayBounds = optim.ArrayBounds

// GetParametersAndBounds collects a module's named parameters and declared
// raw-space bounds, both in the module's iteration order.
func GetParametersAndBounds(m nn.Module, filter NameFilter) (*ParamDict, map[string]Interval) {
	return optim.GetParametersAndBounds(m, filter)
}

// ModuleToArray flattens a module's parameters into a single float64
// vector, together with the layout key needed to undo the flattening and
// the bound vectors an optimizer should respect (nil when every effective
// bound is unconstrained).
func ModuleToArray(m nn.Module, exclude []string, overrides map[string]Bound) ([]float64, *ParamDict, *ArrayBounds, error) {
	return optim.ModuleToArray(m, exclude, overrides)
}

// SetParamsWithArray writes a flat vector back into a module's parameters
// in place, preserving each parameter's shape, dtype and device.
func SetParamsWithArray(m nn.Module, x []float64, params *ParamDict) (nn.Module, error) {
	return optim.SetParamsWithArray(m, x, params)
}

// LossFunc evaluates the loss of a model at its current parameter values.
type LossFunc = optim.LossFunc

// FitConfig configures Fit.
type FitConfig = optim.FitConfig

// FitResult reports the outcome of a Fit call.
type FitResult = optim.FitResult

// Fit minimizes a loss over a module's parameters and writes the best
// vector back into the module.
//
// Example:
//
//	result, err := optim.Fit(model, func() (float64, error) {
//	    return model.NegativeLogLikelihood(), nil
//	}, optim.FitConfig{MaxIterations: 100})
func Fit(m nn.Module, loss LossFunc, config FitConfig) (*FitResult, error) {
	return optim.Fit(m, loss, config)
}
