package softfloat

import "testing"

// TestIntToFloatExactValues guards against the intPartsFromMagnitude
// doubling bug once found in this conversion path (see DESIGN.md): every
// integer-to-float conversion must reproduce the integer's value exactly
// for magnitudes that fit the destination's fraction.
func TestIntToFloatExactValues(t *testing.T) {
	status := NewStatus()
	tests := []struct {
		name string
		v    int64
		want float64
	}{
		{"one", 1, 1},
		{"neg one", -1, -1},
		{"three", 3, 3},
		{"large pow2", 1 << 40, 1 << 40},
		{"max uint32 magnitude", 1<<32 - 1, 1<<32 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toF64(Int64ToF64(tt.v, status))
			if got != tt.want {
				t.Errorf("Int64ToF64(%v) = %v, want %v", tt.v, got, tt.want)
			}
			got32 := float64(toF32(Int32ToF32(int32(tt.v), status)))
			if tt.v >= -(1<<31) && tt.v < 1<<31 && got32 != tt.want {
				t.Errorf("Int32ToF32(%v) = %v, want %v", tt.v, got32, tt.want)
			}
		})
	}
}

func TestUintToFloatExactValues(t *testing.T) {
	status := NewStatus()
	tests := []struct {
		v    uint64
		want float64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{1 << 40, 1 << 40},
	}
	for _, tt := range tests {
		got := toF64(Uint64ToF64(tt.v, status))
		if got != tt.want {
			t.Errorf("Uint64ToF64(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestF16ToF32ToF64Chain(t *testing.T) {
	status := NewStatus()
	half := F16(0x3800) // 0.5
	f32v := F16ToF32(half, status)
	f64v := F32ToF64(f32v, status)
	if toF64(f64v) != 0.5 {
		t.Errorf("F16(0.5) -> F32 -> F64 = %v, want 0.5", toF64(f64v))
	}
}
