package softfloat

import (
	"math"
	"sync"
)

// The host-FPU fast path (spec §4.13): for f32/f64, when the caller's
// status already shows it is tolerant of spurious host inexact, the
// rounding mode is nearest-even, and every operand is zero-or-normal,
// compute with the host's native arithmetic and validate the result
// cheaply instead of running the full soft-path state machine. Any
// nonzero result at or below the destination format's smallest normal bails
// out to the soft path — gradual underflow's flag semantics are too
// intricate to approximate here, per spec §4.13's rationale. The host
// exception register is never consulted; only the bailout conditions
// below stand in for it.
//
// Extracted as a strategy (predicate + host op + soft fallback) per
// spec §9's "Host FPU fast path as a strategy object" design note,
// rather than inlined into each F32_add-equivalent.

const (
	minNormal32 = 0x1p-126
	minNormal64 = 0x1p-1022
)

func fastPathGuard(status *Status) bool {
	return GetConfig().EnableHostFastPath &&
		status.ExceptionFlags&FlagInexact != 0 &&
		status.RoundingMode == RoundNearestEven &&
		!status.FlushToZero && !status.FlushInputsToZero
}

// rawClassNormalOrZero reports whether bits encode a zero or an
// ordinary normal value, without canonicalizing (so it has no status
// side effects) — a subnormal or Inf/NaN fails this check.
func rawClassNormalOrZero(f *format, bits uint64) bool {
	_, exp, frac := unpackRaw(f, bits)
	if exp == 0 {
		return frac == 0
	}
	return exp != f.expMax
}

var (
	forceSoftFMAOnce sync.Once
	forceSoftFMA     bool
)

// selftestForceSoftFMA runs once at first fast-path fma use, verifying
// the host's math.FMA produces the correct result for a near-underflow
// case known to expose broken fma implementations. If it disagrees,
// the fast path is permanently disabled for fma (spec §4.13's
// "self-test at library startup").
func selftestForceSoftFMA() {
	forceSoftFMAOnce.Do(func() {
		a := math.Float64frombits(0x0000000000000001) // smallest subnormal
		b := 1.0
		c := 0.0
		got := math.FMA(a, b, c)
		forceSoftFMA = got != a
	})
}

func tryFastAdd32(a, b F32, status *Status) (F32, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format32, uint64(a)) || !rawClassNormalOrZero(format32, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float32frombits(uint32(a)), math.Float32frombits(uint32(b))
	res := fa + fb
	return finishFast32(res, status)
}

func tryFastSub32(a, b F32, status *Status) (F32, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format32, uint64(a)) || !rawClassNormalOrZero(format32, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float32frombits(uint32(a)), math.Float32frombits(uint32(b))
	return finishFast32(fa-fb, status)
}

func tryFastMul32(a, b F32, status *Status) (F32, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format32, uint64(a)) || !rawClassNormalOrZero(format32, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float32frombits(uint32(a)), math.Float32frombits(uint32(b))
	return finishFast32(fa*fb, status)
}

func tryFastDiv32(a, b F32, status *Status) (F32, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format32, uint64(a)) {
		return 0, false
	}
	_, bExp, bFrac := unpackRaw(format32, uint64(b))
	if bExp == 0 && bFrac == 0 {
		return 0, false // divisor is zero: needs DivByZero, not overflow
	}
	if !rawClassNormalOrZero(format32, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float32frombits(uint32(a)), math.Float32frombits(uint32(b))
	return finishFast32(fa/fb, status)
}

func tryFastSqrt32(a F32, status *Status) (F32, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	sign, exp, frac := unpackRaw(format32, uint64(a))
	if sign && !(exp == 0 && frac == 0) {
		return 0, false // negative, non-zero: needs Invalid handling
	}
	if !rawClassNormalOrZero(format32, uint64(a)) {
		return 0, false
	}
	fa := math.Float32frombits(uint32(a))
	return finishFast32(float32(math.Sqrt(float64(fa))), status)
}

func tryFastMulAdd32(a, b, c F32, flags MulAddFlags, status *Status) (F32, bool) {
	if flags&MulAddHalveResult != 0 {
		return 0, false
	}
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format32, uint64(a)) || !rawClassNormalOrZero(format32, uint64(b)) || !rawClassNormalOrZero(format32, uint64(c)) {
		return 0, false
	}
	selftestForceSoftFMA()
	if forceSoftFMA {
		return 0, false
	}
	fa, fb, fc := math.Float32frombits(uint32(a)), math.Float32frombits(uint32(b)), math.Float32frombits(uint32(c))
	if flags&MulAddNegateProduct != 0 {
		fa = -fa
	}
	if flags&MulAddNegateAddend != 0 {
		fc = -fc
	}
	res := float32(math.FMA(float64(fa), float64(fb), float64(fc)))
	if flags&MulAddNegateResult != 0 {
		res = -res
	}
	return finishFast32(res, status)
}

func finishFast32(res float32, status *Status) (F32, bool) {
	if math.IsInf(float64(res), 0) {
		status.raise(FlagOverflow)
		return F32(math.Float32bits(res)), true
	}
	mag := res
	if mag < 0 {
		mag = -mag
	}
	if mag != 0 && mag <= minNormal32 {
		return 0, false
	}
	return F32(math.Float32bits(res)), true
}

func tryFastAdd64(a, b F64, status *Status) (F64, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format64, uint64(a)) || !rawClassNormalOrZero(format64, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float64frombits(uint64(a)), math.Float64frombits(uint64(b))
	return finishFast64(fa+fb, status)
}

func tryFastSub64(a, b F64, status *Status) (F64, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format64, uint64(a)) || !rawClassNormalOrZero(format64, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float64frombits(uint64(a)), math.Float64frombits(uint64(b))
	return finishFast64(fa-fb, status)
}

func tryFastMul64(a, b F64, status *Status) (F64, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format64, uint64(a)) || !rawClassNormalOrZero(format64, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float64frombits(uint64(a)), math.Float64frombits(uint64(b))
	return finishFast64(fa*fb, status)
}

func tryFastDiv64(a, b F64, status *Status) (F64, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format64, uint64(a)) {
		return 0, false
	}
	_, bExp, bFrac := unpackRaw(format64, uint64(b))
	if bExp == 0 && bFrac == 0 {
		return 0, false
	}
	if !rawClassNormalOrZero(format64, uint64(b)) {
		return 0, false
	}
	fa, fb := math.Float64frombits(uint64(a)), math.Float64frombits(uint64(b))
	return finishFast64(fa/fb, status)
}

func tryFastSqrt64(a F64, status *Status) (F64, bool) {
	if !fastPathGuard(status) {
		return 0, false
	}
	sign, exp, frac := unpackRaw(format64, uint64(a))
	if sign && !(exp == 0 && frac == 0) {
		return 0, false
	}
	if !rawClassNormalOrZero(format64, uint64(a)) {
		return 0, false
	}
	fa := math.Float64frombits(uint64(a))
	return finishFast64(math.Sqrt(fa), status)
}

func tryFastMulAdd64(a, b, c F64, flags MulAddFlags, status *Status) (F64, bool) {
	if flags&MulAddHalveResult != 0 {
		return 0, false
	}
	if !fastPathGuard(status) {
		return 0, false
	}
	if !rawClassNormalOrZero(format64, uint64(a)) || !rawClassNormalOrZero(format64, uint64(b)) || !rawClassNormalOrZero(format64, uint64(c)) {
		return 0, false
	}
	selftestForceSoftFMA()
	if forceSoftFMA {
		return 0, false
	}
	fa, fb, fc := math.Float64frombits(uint64(a)), math.Float64frombits(uint64(b)), math.Float64frombits(uint64(c))
	if flags&MulAddNegateProduct != 0 {
		fa = -fa
	}
	if flags&MulAddNegateAddend != 0 {
		fc = -fc
	}
	res := math.FMA(fa, fb, fc)
	if flags&MulAddNegateResult != 0 {
		res = -res
	}
	return finishFast64(res, status)
}

func finishFast64(res float64, status *Status) (F64, bool) {
	if math.IsInf(res, 0) {
		status.raise(FlagOverflow)
		return F64(math.Float64bits(res)), true
	}
	mag := res
	if mag < 0 {
		mag = -mag
	}
	if mag != 0 && mag <= minNormal64 {
		return 0, false
	}
	return F64(math.Float64bits(res)), true
}
