// Copyright 2025 GoFit ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the named-value storage used by GoFit models.
//
// # Overview
//
// A RawTensor is a contiguous row-major buffer tagged with shape, element
// type and storage device. Model parameters are RawTensors addressed by
// dotted names; the optim package flattens them into optimizer vectors and
// writes results back in place.
//
// # Basic Usage
//
//	import "github.com/gofit-ml/gofit/tensor"
//
//	// A [1, 3] float64 tensor on the CPU
//	raw, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 3}, tensor.CPU)
//
//	// A zero-dimensional (scalar) tensor
//	scalar, err := tensor.Zeros(tensor.Shape{}, tensor.Float64, tensor.CPU)
//
// # Shapes
//
// An empty Shape is a scalar with one element. Multi-dimensional data is
// stored row-major; flattening and write-back both follow that layout.
//
// # Devices
//
// The Device tag records where a tensor's data lives. GoFit never moves
// data between devices; the tag is preserved through every operation.
package tensor
