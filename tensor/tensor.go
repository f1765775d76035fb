// Copyright 2025 GoFit ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/gofit-ml/gofit/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Type-safe zero-copy data access via AsFloat32(), AsFloat64()
//   - Deep copies via Clone()
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
// An empty Shape is a zero-dimensional (scalar) tensor with one element.
type Shape = tensor.Shape

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Device represents the storage location of a tensor's data.
type Device = tensor.Device

// Supported storage locations.
const (
	CPU    = tensor.CPU
	CUDA   = tensor.CUDA
	Metal  = tensor.Metal
	WebGPU = tensor.WebGPU
)

// Elem is a constraint for supported tensor element types.
type Elem = tensor.Elem

// NewRaw creates a new zero-initialized RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a RawTensor from a Go slice, copying the data.
func FromSlice[T Elem](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, device)
}

// Zeros creates a zero-filled RawTensor.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.Zeros(shape, dtype, device)
}

// Full creates a RawTensor filled with the given value.
func Full(shape Shape, value float64, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.Full(shape, value, dtype, device)
}
