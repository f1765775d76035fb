package tensor

import "github.com/cockroachdb/errors"

// FromSlice creates a RawTensor from a Go slice.
// The slice is copied into the tensor's own memory.
func FromSlice[T Elem](data []T, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Newf("shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), device)
	if err != nil {
		return nil, err
	}

	switch dst := any(data).(type) {
	case []float32:
		copy(raw.AsFloat32(), dst)
	case []float64:
		copy(raw.AsFloat64(), dst)
	}

	return raw, nil
}

// Zeros creates a zero-filled RawTensor.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return NewRaw(shape, dtype, device)
}

// Full creates a RawTensor filled with the given value.
func Full(shape Shape, value float64, dtype DataType, device Device) (*RawTensor, error) {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float32:
		v := float32(value)
		data := raw.AsFloat32()
		for i := range data {
			data[i] = v
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = value
		}
	}

	return raw, nil
}
