package tensor

import (
	"testing"
)

func TestNewRawZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	data := raw.AsFloat64()
	if len(data) != 6 {
		t.Errorf("AsFloat64 length = %d, want 6", len(data))
	}
	for i, v := range data {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float64, CPU); err == nil {
		t.Error("NewRaw should reject invalid shape")
	}
}

func TestRawTensorZeroCopyViews(t *testing.T) {
	raw, _ := NewRaw(Shape{3}, Float32, CPU)
	data := raw.AsFloat32()

	data[0] = 42
	if raw.AsFloat32()[0] != 42 {
		t.Error("AsFloat32 should return zero-copy slice")
	}
}

func TestRawTensorScalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", raw.NumElements())
	}
	raw.AsFloat64()[0] = 5.0
	if raw.AsFloat64()[0] != 5.0 {
		t.Error("scalar element write failed")
	}
}

func TestRawTensorMetadata(t *testing.T) {
	raw, _ := NewRaw(Shape{1, 3}, Float32, WebGPU)

	if !raw.Shape().Equal(Shape{1, 3}) {
		t.Errorf("Shape = %v, want [1 3]", raw.Shape())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType = %v, want float32", raw.DType())
	}
	if raw.Device() != WebGPU {
		t.Errorf("Device = %v, want WebGPU", raw.Device())
	}
	if raw.ByteSize() != 12 {
		t.Errorf("ByteSize = %d, want 12", raw.ByteSize())
	}
}

func TestRawTensorClone(t *testing.T) {
	raw, _ := FromSlice([]float64{1, 2, 3}, Shape{3}, CPU)
	clone := raw.Clone()

	clone.AsFloat64()[0] = 99
	if raw.AsFloat64()[0] != 1 {
		t.Error("Clone should deep-copy the buffer")
	}
	if clone.DType() != raw.DType() || clone.Device() != raw.Device() {
		t.Error("Clone should preserve dtype and device")
	}
}

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, CPU)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if raw.AsFloat32()[5] != 6 {
		t.Error("FromSlice should copy data in order")
	}

	if _, err := FromSlice([]float64{1, 2}, Shape{3}, CPU); err == nil {
		t.Error("FromSlice should reject length mismatch")
	}
}

func TestFull(t *testing.T) {
	raw, err := Full(Shape{2, 2}, 0.5, Float32, CPU)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	for _, v := range raw.AsFloat32() {
		if v != 0.5 {
			t.Errorf("element = %v, want 0.5", v)
		}
	}
}

func TestDataTypeSizeAndString(t *testing.T) {
	if Float32.Size() != 4 || Float64.Size() != 8 {
		t.Error("wrong data type sizes")
	}
	if Float32.String() != "float32" || Float64.String() != "float64" {
		t.Error("wrong data type names")
	}
}
