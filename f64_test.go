package softfloat

import (
	"math"
	"testing"
)

func f64(v float64) F64    { return F64(math.Float64bits(v)) }
func toF64(a F64) float64 { return math.Float64frombits(uint64(a)) }

func TestAdd64(t *testing.T) {
	status := NewStatus()
	got := Add64(f64(1), f64(2), status)
	if toF64(got) != 3 {
		t.Errorf("Add64(1, 2) = %v, want 3", toF64(got))
	}
}

func TestRem64(t *testing.T) {
	status := NewStatus()
	got := Rem64(f64(5), f64(3), status)
	// IEEE remainder of 5 and 3 rounds the quotient to nearest (5/3 ~= 1.67 -> 2),
	// giving 5 - 2*3 = -1.
	if toF64(got) != -1 {
		t.Errorf("Rem64(5, 3) = %v, want -1", toF64(got))
	}
}

func TestScalbn64(t *testing.T) {
	status := NewStatus()
	got := Scalbn64(f64(1.5), 3, status)
	if toF64(got) != 12 {
		t.Errorf("Scalbn64(1.5, 3) = %v, want 12", toF64(got))
	}
}

func TestToInt64F64Overflow(t *testing.T) {
	status := NewStatus()
	got := ToInt64F64(f64(1e300), RoundTowardZero, status)
	if status.ExceptionFlags&FlagInvalid == 0 {
		t.Errorf("ToInt64F64(1e300) did not raise Invalid on overflow")
	}
	if got != math.MaxInt64 {
		t.Errorf("ToInt64F64(1e300) = %v, want MaxInt64 saturation", got)
	}
}

func TestInt64ToF64RoundTrip(t *testing.T) {
	status := NewStatus()
	for _, v := range []int64{0, 1, -1, 1 << 40, -(1 << 40), math.MinInt64, math.MaxInt64} {
		got := ToInt64F64(Int64ToF64(v, status), RoundTowardZero, status)
		if v >= -(1<<53) && v <= 1<<53 && got != v {
			t.Errorf("round trip of exactly representable %v gave %v", v, got)
		}
	}
}

func TestNaNPolicyPropagation(t *testing.T) {
	status := NewStatus()
	snan := F64(0x7FF0000000000001) // signaling NaN (top frac bit clear)
	got := Add64(snan, f64(1), status)
	if !got.IsNaN() {
		t.Errorf("Add64(sNaN, 1) = %#x, want NaN", uint64(got))
	}
	if status.ExceptionFlags&FlagInvalid == 0 {
		t.Errorf("Add64 with a signaling NaN operand did not raise Invalid")
	}
}
