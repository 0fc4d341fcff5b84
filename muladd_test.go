package softfloat

import (
	"math"
	"testing"
)

// TestMulAddInfZeroNaNPolicy exercises the (inf*0)+NaN(c) input class
// across NaN policies: PowerPC and MIPS-2008 still propagate a NaN c
// here, while ARM (the package default) always substitutes the
// default NaN regardless of c.
func TestMulAddInfZeroNaNPolicy(t *testing.T) {
	inf := f32(float32(math.Inf(1)))
	zero := f32(0)
	c := F32(0x7fc00001) // quiet NaN, payload distinct from the default NaN pattern

	t.Run("arm substitutes default NaN", func(t *testing.T) {
		status := NewStatus()
		status.NaNPolicy = ARMNaNPolicy
		got := MulAdd32(inf, zero, c, 0, status)
		if uint32(got) != 0x7fc00000 {
			t.Errorf("MulAdd32(Inf, 0, c) under ARMNaNPolicy = %#x, want default NaN 0x7fc00000", uint32(got))
		}
		if status.ExceptionFlags&FlagInvalid == 0 {
			t.Errorf("MulAdd32(Inf, 0, c) did not raise FlagInvalid")
		}
	})

	t.Run("powerpc propagates c", func(t *testing.T) {
		status := NewStatus()
		status.NaNPolicy = PowerPCNaNPolicy
		got := MulAdd32(inf, zero, c, 0, status)
		if uint32(got) != uint32(c) {
			t.Errorf("MulAdd32(Inf, 0, c) under PowerPCNaNPolicy = %#x, want c %#x", uint32(got), uint32(c))
		}
		if status.ExceptionFlags&FlagInvalid == 0 {
			t.Errorf("MulAdd32(Inf, 0, c) did not raise FlagInvalid")
		}
	})

	t.Run("mips2008 propagates c", func(t *testing.T) {
		status := NewStatus()
		status.NaNPolicy = MIPS2008NaNPolicy
		got := MulAdd32(inf, zero, c, 0, status)
		if uint32(got) != uint32(c) {
			t.Errorf("MulAdd32(Inf, 0, c) under MIPS2008NaNPolicy = %#x, want c %#x", uint32(got), uint32(c))
		}
	})

	t.Run("mips1985 substitutes default NaN", func(t *testing.T) {
		status := NewStatus()
		status.NaNPolicy = MIPS1985NaNPolicy
		got := MulAdd32(inf, zero, c, 0, status)
		if uint32(got) != 0x7fc00000 {
			t.Errorf("MulAdd32(Inf, 0, c) under MIPS1985NaNPolicy = %#x, want default NaN 0x7fc00000", uint32(got))
		}
	})
}
