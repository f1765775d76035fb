package nn

import (
	"github.com/gofit-ml/gofit/internal/tensor"
)

// zeros allocates a zero-filled parameter tensor.
// Panics on invalid shape; module constructors only pass fixed valid shapes.
func zeros(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	raw, err := tensor.Zeros(shape, dtype, device)
	if err != nil {
		panic(err)
	}
	return raw
}

// full allocates a parameter tensor filled with the given value.
func full(shape tensor.Shape, value float64, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	raw, err := tensor.Full(shape, value, dtype, device)
	if err != nil {
		panic(err)
	}
	return raw
}

// getScalar reads element i of a parameter tensor as float64.
func getScalar(raw *tensor.RawTensor, i int) float64 {
	switch raw.DType() {
	case tensor.Float32:
		return float64(raw.AsFloat32()[i])
	default:
		return raw.AsFloat64()[i]
	}
}

// setScalar writes element i of a parameter tensor from float64,
// casting to the tensor's own dtype.
func setScalar(raw *tensor.RawTensor, i int, v float64) {
	switch raw.DType() {
	case tensor.Float32:
		raw.AsFloat32()[i] = float32(v)
	default:
		raw.AsFloat64()[i] = v
	}
}
