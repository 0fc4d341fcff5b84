package softfloat

import (
	"math"
	"testing"
)

func f32(v float32) F32 { return F32(math.Float32bits(v)) }
func toF32(a F32) float32 { return math.Float32frombits(uint32(a)) }

func TestAdd32(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want float32
	}{
		{"one plus two", 1, 2, 3},
		{"cancel to zero", 1.5, -1.5, 0},
		{"large plus small", 1e20, 1, 1e20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := NewStatus()
			got := Add32(f32(tt.a), f32(tt.b), status)
			if toF32(got) != tt.want {
				t.Errorf("Add32(%v, %v) = %v, want %v", tt.a, tt.b, toF32(got), tt.want)
			}
		})
	}
}

func TestDiv32ByZero(t *testing.T) {
	status := NewStatus()
	got := Div32(f32(1), f32(0), status)
	if !got.IsInf() {
		t.Errorf("Div32(1, 0) = %v, want Inf", toF32(got))
	}
	if status.ExceptionFlags&FlagDivByZero == 0 {
		t.Errorf("Div32(1, 0) did not raise FlagDivByZero")
	}
}

func TestSqrt32Negative(t *testing.T) {
	status := NewStatus()
	got := Sqrt32(f32(-4), status)
	if !got.IsNaN() {
		t.Errorf("Sqrt32(-4) = %v, want NaN", toF32(got))
	}
	if status.ExceptionFlags&FlagInvalid == 0 {
		t.Errorf("Sqrt32(-4) did not raise FlagInvalid")
	}
}

func TestCompare32Unordered(t *testing.T) {
	status := NewStatus()
	nan := f32(float32(math.NaN()))
	if got := CompareQuiet32(nan, f32(1), status); got != RelUnordered {
		t.Errorf("CompareQuiet32(NaN, 1) = %v, want RelUnordered", got)
	}
	if status.ExceptionFlags&FlagInvalid != 0 {
		t.Errorf("CompareQuiet32 with a quiet NaN should not raise Invalid")
	}
}

func TestRoundToInt32Modes(t *testing.T) {
	status := NewStatus()
	half := f32(2.5)
	if got := RoundToInt32(half, RoundNearestEven, false, status); toF32(got) != 2 {
		t.Errorf("RoundToInt32(2.5, nearest-even) = %v, want 2", toF32(got))
	}
	if got := RoundToInt32(half, RoundUpward, false, status); toF32(got) != 3 {
		t.Errorf("RoundToInt32(2.5, upward) = %v, want 3", toF32(got))
	}
	if got := RoundToInt32(half, RoundDownward, false, status); toF32(got) != 2 {
		t.Errorf("RoundToInt32(2.5, downward) = %v, want 2", toF32(got))
	}
}

func TestMulAdd32(t *testing.T) {
	status := NewStatus()
	got := MulAdd32(f32(2), f32(3), f32(1), 0, status)
	if toF32(got) != 7 {
		t.Errorf("MulAdd32(2, 3, 1) = %v, want 7", toF32(got))
	}
}

func TestMinMax32(t *testing.T) {
	status := NewStatus()
	if got := Min32(f32(1), f32(2), status); toF32(got) != 1 {
		t.Errorf("Min32(1, 2) = %v, want 1", toF32(got))
	}
	if got := Max32(f32(1), f32(2), status); toF32(got) != 2 {
		t.Errorf("Max32(1, 2) = %v, want 2", toF32(got))
	}
}
