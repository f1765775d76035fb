package nn

import (
	"github.com/gofit-ml/gofit/internal/tensor"
)

// ConstantMean is a constant mean function with a single scalar
// (zero-dimensional) parameter "raw_constant".
type ConstantMean struct {
	rawConstant *tensor.RawTensor
}

// ConstantMeanConfig configures a ConstantMean.
type ConstantMeanConfig struct {
	DType  tensor.DataType
	Device tensor.Device
}

// NewConstantMean creates a ConstantMean with the constant at zero.
func NewConstantMean(config ConstantMeanConfig) *ConstantMean {
	return &ConstantMean{
		rawConstant: zeros(tensor.Shape{}, config.DType, config.Device),
	}
}

// Constant returns the mean constant.
func (m *ConstantMean) Constant() float64 {
	return getScalar(m.rawConstant, 0)
}

// SetConstant sets the mean constant.
func (m *ConstantMean) SetConstant(v float64) {
	setScalar(m.rawConstant, 0, v)
}

// NamedParameters returns the scalar constant parameter.
func (m *ConstantMean) NamedParameters() []Parameter {
	return []Parameter{{Name: "raw_constant", Value: m.rawConstant}}
}
