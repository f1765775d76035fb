package nn

import (
	"github.com/gofit-ml/gofit/internal/tensor"
)

// HomoskedasticNoise models a single shared observation-noise parameter.
//
// The raw parameter "raw_noise" has shape [1]. When a constraint is
// attached, the observable noise is constraint.Transform(raw_noise).
type HomoskedasticNoise struct {
	rawNoise   *tensor.RawTensor
	constraint *Interval
}

// HomoskedasticNoiseConfig configures a HomoskedasticNoise module.
type HomoskedasticNoiseConfig struct {
	Constraint   *Interval // Optional noise constraint
	InitialValue float64   // Initial noise in constrained space (0 = leave raw at zero)
	DType        tensor.DataType
	Device       tensor.Device
}

// NewHomoskedasticNoise creates a HomoskedasticNoise module.
func NewHomoskedasticNoise(config HomoskedasticNoiseConfig) *HomoskedasticNoise {
	raw := config.InitialValue
	if config.InitialValue != 0 && config.Constraint != nil {
		raw = config.Constraint.InverseTransform(config.InitialValue)
	}
	return &HomoskedasticNoise{
		rawNoise:   full(tensor.Shape{1}, raw, config.DType, config.Device),
		constraint: config.Constraint,
	}
}

// Noise returns the observation noise in constrained space.
func (n *HomoskedasticNoise) Noise() float64 {
	raw := getScalar(n.rawNoise, 0)
	if n.constraint == nil {
		return raw
	}
	return n.constraint.Transform(raw)
}

// NamedParameters returns the raw noise parameter.
func (n *HomoskedasticNoise) NamedParameters() []Parameter {
	return []Parameter{{Name: "raw_noise", Value: n.rawNoise}}
}

// NamedBounds declares the raw-space bound when a constraint is attached.
func (n *HomoskedasticNoise) NamedBounds() []NamedBound {
	if n.constraint == nil {
		return nil
	}
	lower, upper := n.constraint.RawBounds()
	return []NamedBound{{Name: "raw_noise", Lower: lower, Upper: upper}}
}

// GaussianLikelihood is a Gaussian observation likelihood with
// homoskedastic noise, held in the child module "noise_covar".
type GaussianLikelihood struct {
	noiseCovar *HomoskedasticNoise
}

// GaussianLikelihoodConfig configures a GaussianLikelihood.
type GaussianLikelihoodConfig struct {
	NoiseConstraint *Interval // Optional constraint on the noise parameter
	InitialValue    float64   // Initial noise in constrained space
	DType           tensor.DataType
	Device          tensor.Device
}

// NewGaussianLikelihood creates a GaussianLikelihood.
func NewGaussianLikelihood(config GaussianLikelihoodConfig) *GaussianLikelihood {
	return &GaussianLikelihood{
		noiseCovar: NewHomoskedasticNoise(HomoskedasticNoiseConfig{
			Constraint:   config.NoiseConstraint,
			InitialValue: config.InitialValue,
			DType:        config.DType,
			Device:       config.Device,
		}),
	}
}

// Noise returns the observation noise in constrained space.
func (l *GaussianLikelihood) Noise() float64 {
	return l.noiseCovar.Noise()
}

// NoiseCovar returns the noise child module.
func (l *GaussianLikelihood) NoiseCovar() *HomoskedasticNoise {
	return l.noiseCovar
}

// NamedParameters returns the noise parameter as "noise_covar.raw_noise".
func (l *GaussianLikelihood) NamedParameters() []Parameter {
	var params []Parameter
	for _, p := range l.noiseCovar.NamedParameters() {
		params = append(params, Parameter{Name: "noise_covar." + p.Name, Value: p.Value})
	}
	return params
}

// NamedBounds returns declared bounds prefixed like NamedParameters.
func (l *GaussianLikelihood) NamedBounds() []NamedBound {
	var bounds []NamedBound
	for _, b := range l.noiseCovar.NamedBounds() {
		bounds = append(bounds, NamedBound{Name: "noise_covar." + b.Name, Lower: b.Lower, Upper: b.Upper})
	}
	return bounds
}
