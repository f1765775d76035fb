package nn

import (
	"github.com/gofit-ml/gofit/internal/tensor"
)

// RBFKernel is a radial basis function covariance module.
//
// Its single parameter "raw_lengthscale" has shape [1, d] where d is the
// number of ARD dimensions (one lengthscale per input feature). Only the
// parameter surface is modeled here; covariance evaluation is out of scope
// for the marshalling layer.
type RBFKernel struct {
	rawLengthscale *tensor.RawTensor
	constraint     *Interval
	ardNumDims     int
}

// RBFKernelConfig configures an RBFKernel.
type RBFKernelConfig struct {
	ARDNumDims            int       // Number of per-dimension lengthscales (0 = 1)
	LengthscaleConstraint *Interval // Optional lengthscale constraint
	DType                 tensor.DataType
	Device                tensor.Device
}

// NewRBFKernel creates an RBFKernel.
func NewRBFKernel(config RBFKernelConfig) *RBFKernel {
	d := config.ARDNumDims
	if d <= 0 {
		d = 1
	}
	return &RBFKernel{
		rawLengthscale: zeros(tensor.Shape{1, d}, config.DType, config.Device),
		constraint:     config.LengthscaleConstraint,
		ardNumDims:     d,
	}
}

// ARDNumDims returns the number of per-dimension lengthscales.
func (k *RBFKernel) ARDNumDims() int {
	return k.ardNumDims
}

// Lengthscale returns the lengthscales in constrained space.
func (k *RBFKernel) Lengthscale() []float64 {
	out := make([]float64, k.ardNumDims)
	for i := range out {
		raw := getScalar(k.rawLengthscale, i)
		if k.constraint != nil {
			raw = k.constraint.Transform(raw)
		}
		out[i] = raw
	}
	return out
}

// NamedParameters returns the raw lengthscale parameter.
func (k *RBFKernel) NamedParameters() []Parameter {
	return []Parameter{{Name: "raw_lengthscale", Value: k.rawLengthscale}}
}

// NamedBounds declares the raw-space bound when a constraint is attached.
func (k *RBFKernel) NamedBounds() []NamedBound {
	if k.constraint == nil {
		return nil
	}
	lower, upper := k.constraint.RawBounds()
	return []NamedBound{{Name: "raw_lengthscale", Lower: lower, Upper: upper}}
}
