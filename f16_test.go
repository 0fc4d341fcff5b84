package softfloat

import (
	"math"
	"testing"

	x448 "github.com/x448/float16"
)

func TestAdd16Basic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     F32
		expected F32
	}{
		{"one plus one", 0x3F800000, 0x3F800000, 0x40000000},    // 1 + 1 = 2
		{"one plus neg one", 0x3F800000, 0xBF800000, 0x00000000}, // 1 - 1 = 0
		{"half plus half", 0x3F000000, 0x3F000000, 0x3F800000},  // 0.5 + 0.5 = 1
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := f32ToF16(t, tt.a)
			b := f32ToF16(t, tt.b)
			want := f32ToF16(t, tt.expected)
			status := NewStatus()
			got := Add16(a, b, status)
			if got != want {
				t.Errorf("Add16(%#x, %#x) = %#x, want %#x", a, b, got, want)
			}
		})
	}
}

func f32ToF16(t *testing.T, bits F32) F16 {
	t.Helper()
	status := NewStatus()
	return F32ToF16(bits, status)
}

// TestF16RoundTripAgainstX448 cross-checks this package's f32<->f16
// rounding against github.com/x448/float16, an independent
// implementation, for values where round-to-nearest-even is
// unambiguous (see SPEC_FULL.md §5).
func TestF16RoundTripAgainstX448(t *testing.T) {
	values := []float32{
		0, 1, -1, 0.5, -0.5, 2, 100, -100, 3.14159, 65504, -65504,
		0.000061035156, 1e-8, 1e8,
	}
	for _, v := range values {
		t.Run("", func(t *testing.T) {
			status := NewStatus()
			got := F32ToF16(F32(math.Float32bits(v)), status)
			want := x448.Fromfloat32(v)
			if uint16(got) != uint16(want) {
				t.Errorf("F32ToF16(%v) = %#04x, x448 got %#04x", v, uint16(got), uint16(want))
			}

			gotBack := F16ToF32(got, status)
			wantBack := want.Float32()
			if math.Float32frombits(uint32(gotBack)) != wantBack {
				t.Errorf("F16ToF32 round trip of %v = %v, x448 got %v", v, math.Float32frombits(uint32(gotBack)), wantBack)
			}
		})
	}
}

func TestF16SpecialValues(t *testing.T) {
	status := NewStatus()
	posInf := F32ToF16(F32(math.Float32bits(float32(math.Inf(1)))), status)
	if !posInf.IsInf() {
		t.Errorf("expected +Inf to convert to an Inf F16")
	}
	nan := F32ToF16(F32(math.Float32bits(float32(math.NaN()))), status)
	if !nan.IsNaN() {
		t.Errorf("expected NaN to convert to a NaN F16")
	}
}
