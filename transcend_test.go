package softfloat

import (
	"math"
	"testing"
)

func TestExp2F32(t *testing.T) {
	status := NewStatus()
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 1},
		{1, 2},
		{-1, 0.5},
		{3, 8},
	}
	for _, tt := range tests {
		got := toF32(Exp2F32(f32(tt.in), status))
		if got != tt.want {
			t.Errorf("Exp2F32(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLog2F64(t *testing.T) {
	status := NewStatus()
	tests := []struct {
		in   float64
		want float64
	}{
		{1, 0},
		{2, 1},
		{8, 3},
		{0.5, -1},
	}
	for _, tt := range tests {
		got := toF64(Log2F64(f64(tt.in), status))
		if got != tt.want {
			t.Errorf("Log2F64(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLog2F32NegativeIsInvalid(t *testing.T) {
	status := NewStatus()
	got := Log2F32(f32(-2), status)
	if !got.IsNaN() {
		t.Errorf("Log2F32(-2) = %v, want NaN", toF32(got))
	}
	if status.ExceptionFlags&FlagInvalid == 0 {
		t.Errorf("Log2F32(-2) did not raise Invalid")
	}
}

func TestLog2F64OfZero(t *testing.T) {
	status := NewStatus()
	got := Log2F64(f64(0), status)
	if !got.IsInf() || !got.Signbit() {
		t.Errorf("Log2F64(0) = %v, want -Inf", toF64(got))
	}
	if status.ExceptionFlags&FlagDivByZero == 0 {
		t.Errorf("Log2F64(0) did not raise DivByZero")
	}
}

func TestExp2F32OfInf(t *testing.T) {
	status := NewStatus()
	posInf := f32(float32(math.Inf(1)))
	if got := Exp2F32(posInf, status); !got.IsInf() {
		t.Errorf("Exp2F32(+Inf) = %v, want +Inf", toF32(got))
	}
	negInf := f32(float32(math.Inf(-1)))
	if got := Exp2F32(negInf, status); toF32(got) != 0 {
		t.Errorf("Exp2F32(-Inf) = %v, want 0", toF32(got))
	}
}
