package softfloat

import "testing"

func f128FromF64(v float64, status *Status) F128 {
	return F64ToF128(f64(v), status)
}

func TestAdd128(t *testing.T) {
	status := NewStatus()
	a, b := f128FromF64(1.5, status), f128FromF64(2.25, status)
	got := Add128(a, b, status)
	if toF64(F128ToF64(got, status)) != 3.75 {
		t.Errorf("Add128(1.5, 2.25) = %v, want 3.75", toF64(F128ToF64(got, status)))
	}
}

func TestDiv128(t *testing.T) {
	status := NewStatus()
	a, b := f128FromF64(1, status), f128FromF64(4, status)
	got := Div128(a, b, status)
	if toF64(F128ToF64(got, status)) != 0.25 {
		t.Errorf("Div128(1, 4) = %v, want 0.25", toF64(F128ToF64(got, status)))
	}
}

func TestF128Zero(t *testing.T) {
	status := NewStatus()
	z := f128FromF64(0, status)
	if !z.IsZero() {
		t.Errorf("expected zero F128 to report IsZero")
	}
	neg := f128FromF64(-1, status)
	if neg.Signbit() == z.Signbit() {
		t.Errorf("expected -1 and 0 to have different sign bits")
	}
}

func TestUint64ToF128RoundTrip(t *testing.T) {
	status := NewStatus()
	for _, v := range []uint64{0, 1, 1 << 40, ^uint64(0)} {
		got := ToUint64F128(Uint64ToF128(v, status), RoundTowardZero, status)
		if got != v {
			t.Errorf("Uint64ToF128/ToUint64F128 round trip of %v gave %v", v, got)
		}
	}
}

func TestCompareQuiet128WithNaN(t *testing.T) {
	status := NewStatus()
	nan := DefaultNaN128(status)
	one := f128FromF64(1, status)
	if got := CompareQuiet128(nan, one, status); got != RelUnordered {
		t.Errorf("CompareQuiet128(NaN, 1) = %v, want RelUnordered", got)
	}
}
