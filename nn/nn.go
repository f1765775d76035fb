// Copyright 2025 GoFit ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/gofit-ml/gofit/internal/nn"
)

// Parameter is a named model parameter. Its tensor is owned by the module
// that created it and is mutated in place on optimizer write-back.
type Parameter = nn.Parameter

// NamedBound is the raw-space bound declared for a named parameter.
type NamedBound = nn.NamedBound

// Module is the capability interface required of any model whose
// parameters are marshalled to and from optimizer vectors.
type Module = nn.Module

// ConstrainedModule is implemented by modules that declare raw-space
// bounds for some of their parameters.
type ConstrainedModule = nn.ConstrainedModule

// Interval is a constraint restricting a parameter to [lower, upper].
type Interval = nn.Interval

// NewInterval creates a constraint restricting a parameter to [lower, upper].
func NewInterval(lower, upper float64) (*Interval, error) {
	return nn.NewInterval(lower, upper)
}

// GreaterThan creates a constraint restricting a parameter to [lower, +Inf).
func GreaterThan(lower float64) *Interval {
	return nn.GreaterThan(lower)
}

// LessThan creates a constraint restricting a parameter to (-Inf, upper].
func LessThan(upper float64) *Interval {
	return nn.LessThan(upper)
}

// Positive creates a constraint restricting a parameter to (0, +Inf).
func Positive() *Interval {
	return nn.Positive()
}

// ModuleDict is a container holding named child modules in insertion order.
type ModuleDict = nn.ModuleDict

// NewModuleDict creates an empty ModuleDict.
func NewModuleDict() *ModuleDict {
	return nn.NewModuleDict()
}

// GaussianLikelihood is a Gaussian observation likelihood with
// homoskedastic noise.
type GaussianLikelihood = nn.GaussianLikelihood

// GaussianLikelihoodConfig configures a GaussianLikelihood.
type GaussianLikelihoodConfig = nn.GaussianLikelihoodConfig

// NewGaussianLikelihood creates a GaussianLikelihood.
//
// Example:
//
//	likelihood := nn.NewGaussianLikelihood(nn.GaussianLikelihoodConfig{
//	    NoiseConstraint: nn.GreaterThan(1e-6),
//	    InitialValue:    0.123,
//	})
func NewGaussianLikelihood(config GaussianLikelihoodConfig) *GaussianLikelihood {
	return nn.NewGaussianLikelihood(config)
}

// HomoskedasticNoise models a single shared observation-noise parameter.
type HomoskedasticNoise = nn.HomoskedasticNoise

// HomoskedasticNoiseConfig configures a HomoskedasticNoise module.
type HomoskedasticNoiseConfig = nn.HomoskedasticNoiseConfig

// NewHomoskedasticNoise creates a HomoskedasticNoise module.
func NewHomoskedasticNoise(config HomoskedasticNoiseConfig) *HomoskedasticNoise {
	return nn.NewHomoskedasticNoise(config)
}

// RBFKernel is a radial basis function covariance module.
type RBFKernel = nn.RBFKernel

// RBFKernelConfig configures an RBFKernel.
type RBFKernelConfig = nn.RBFKernelConfig

// NewRBFKernel creates an RBFKernel.
//
// Example:
//
//	kernel := nn.NewRBFKernel(nn.RBFKernelConfig{ARDNumDims: 3})
func NewRBFKernel(config RBFKernelConfig) *RBFKernel {
	return nn.NewRBFKernel(config)
}

// ConstantMean is a constant mean function with a single scalar parameter.
type ConstantMean = nn.ConstantMean

// ConstantMeanConfig configures a ConstantMean.
type ConstantMeanConfig = nn.ConstantMeanConfig

// NewConstantMean creates a ConstantMean with the constant at zero.
func NewConstantMean(config ConstantMeanConfig) *ConstantMean {
	return nn.NewConstantMean(config)
}
