package softfloat

import "testing"

// f80FromF64 round-trips a float64 value through F64ToF80 so tests can
// build F80 operands from ordinary Go literals without hand-encoding
// the 80-bit layout.
func f80FromF64(v float64, status *Status) F80 {
	return F64ToF80(f64(v), status)
}

func TestAdd80(t *testing.T) {
	status := NewStatus()
	a, b := f80FromF64(1.5, status), f80FromF64(2.25, status)
	got := Add80(a, b, status)
	back := F80ToF64(got, status)
	if toF64(back) != 3.75 {
		t.Errorf("Add80(1.5, 2.25) = %v, want 3.75", toF64(back))
	}
}

func TestMul80(t *testing.T) {
	status := NewStatus()
	a, b := f80FromF64(3, status), f80FromF64(4, status)
	got := Mul80(a, b, status)
	if toF64(F80ToF64(got, status)) != 12 {
		t.Errorf("Mul80(3, 4) = %v, want 12", toF64(F80ToF64(got, status)))
	}
}

func TestF80F128RoundTrip(t *testing.T) {
	status := NewStatus()
	a := f80FromF64(123.25, status)
	wide := F80ToF128(a, status)
	back := F128ToF80(wide, status)
	if back != a {
		t.Errorf("F80 -> F128 -> F80 round trip of 123.25 changed value: %+v vs %+v", back, a)
	}
}

func TestCompare80(t *testing.T) {
	status := NewStatus()
	a, b := f80FromF64(1, status), f80FromF64(2, status)
	if got := Compare80(a, b, status); got != RelLess {
		t.Errorf("Compare80(1, 2) = %v, want RelLess", got)
	}
}

func TestInt64ToF80RoundTrip(t *testing.T) {
	status := NewStatus()
	for _, v := range []int64{0, 1, -1, 1 << 62, -(1 << 62)} {
		got := ToInt64F80(Int64ToF80(v, status), RoundTowardZero, status)
		if got != v {
			t.Errorf("Int64ToF80/ToInt64F80 round trip of %v gave %v", v, got)
		}
	}
}

func TestSqrt80(t *testing.T) {
	status := NewStatus()
	a := f80FromF64(16, status)
	got := Sqrt80(a, status)
	if toF64(F80ToF64(got, status)) != 4 {
		t.Errorf("Sqrt80(16) = %v, want 4", toF64(F80ToF64(got, status)))
	}
}
