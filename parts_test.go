package softfloat

import "testing"

// TestRoundAndPackNormalCarriedToNormalUnderflow exercises the rare
// subnormal-rounds-up-to-minimum-normal path directly: exp/frac are
// chosen (RoundNearestTiesAway, which always rounds up on any
// discarded nonzero bit) so the second applyRounding call inside the
// subnormal branch carries into the implicit bit. The pre-rounding
// magnitude is below the minimum normal regardless, so
// TininessBeforeRounding must still raise FlagUnderflow here even
// though the packed result is the smallest normal, not a subnormal.
func TestRoundAndPackNormalCarriedToNormalUnderflow(t *testing.T) {
	p := floatParts{class: classNormal, sign: false, exp: -127, frac: 0x7fffff0000000002}

	status := NewStatus()
	status.RoundingMode = RoundNearestTiesAway
	status.TininessMode = TininessBeforeRounding
	bits := roundAndPackNormal(format32, p, status)

	if status.ExceptionFlags&FlagInexact == 0 {
		t.Errorf("carried-to-normal rounding did not raise FlagInexact")
	}
	if status.ExceptionFlags&FlagUnderflow == 0 {
		t.Errorf("carried-to-normal rounding under TininessBeforeRounding did not raise FlagUnderflow")
	}
	wantExp := uint64(1)
	gotExp := (bits >> format32.fracBits) & (uint64(1)<<format32.expBits - 1)
	if gotExp != wantExp {
		t.Errorf("carried-to-normal result has biased exponent %d, want %d (smallest normal)", gotExp, wantExp)
	}

	status2 := NewStatus()
	status2.RoundingMode = RoundNearestTiesAway
	status2.TininessMode = TininessAfterRounding
	roundAndPackNormal(format32, p, status2)
	if status2.ExceptionFlags&FlagUnderflow != 0 {
		t.Errorf("carried-to-normal rounding under TininessAfterRounding raised FlagUnderflow, want none (result is exactly the minimum normal)")
	}
}
