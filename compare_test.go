package softfloat

import "testing"

// TestMinNumBothNaNUsesPickNaN exercises minNum/maxNum's two-NaN-operand
// case: it must route through NaNPolicy.pickNaN rather than always
// preferring the left operand, so a policy like x87's larger-significand
// tie-break actually changes which operand wins.
func TestMinNumBothNaNUsesPickNaN(t *testing.T) {
	a := F32(0x7fc00001) // quiet NaN, smaller payload
	b := F32(0x7fc00002) // quiet NaN, larger payload

	status := NewStatus()
	status.NaNPolicy = X87NaNPolicy
	got := MinNum32(a, b, status)
	if uint32(got) != uint32(b) {
		t.Errorf("MinNum32(a, b) with both NaN under X87NaNPolicy = %#x, want larger-significand operand %#x", uint32(got), uint32(b))
	}
	if status.ExceptionFlags&FlagInvalid != 0 {
		t.Errorf("MinNum32 with two quiet NaNs should not raise FlagInvalid")
	}
}
