package softfloat

import "math/big"

// Cross-format conversions touching f80/f128, and the int <-> wideParts
// bridge, mirroring convert.go's "unpack source, pack destination" shape.
// Narrow (f16/f32/f64) <-> wide (f80/f128) conversions go through
// widenToWide/narrowFromWide, which just reposition the fraction between
// the two canonical widths — exact going narrow-to-wide, a single jammed
// shift going wide-to-narrow (the destination's own round-and-pack step
// is still what actually rounds). f80 <-> f128 needs no repositioning at
// all: both already share wideParts.

const wideToNarrowShift = canonicalWideFracBits - canonicalFracBits

// widenToWide exactly widens a 64-bit canonical floatParts into wideParts.
func widenToWide(p floatParts) wideParts {
	switch p.class {
	case classZero, classInf:
		return wideParts{class: p.class, sign: p.sign}
	default:
		hi, lo := shiftLeft128(0, p.frac, wideToNarrowShift)
		return wideParts{class: p.class, sign: p.sign, exp: p.exp, fracHi: hi, fracLo: lo}
	}
}

// narrowFromWide folds wideParts down to a full-precision 64-bit
// canonical floatParts, sticky-preserving whatever wideToNarrowShift
// bits it discards; the caller's pack16/32/64 still performs the actual
// rounding to the destination format's narrower precision.
func narrowFromWide(p wideParts) floatParts {
	switch p.class {
	case classZero, classInf:
		return floatParts{class: p.class, sign: p.sign}
	default:
		_, lo := shiftRightJam128(p.fracHi, p.fracLo, wideToNarrowShift)
		return floatParts{class: p.class, sign: p.sign, exp: p.exp, frac: lo}
	}
}

// --- f16/f32/f64 <-> f80 ---

func F16ToF80(a F16, status *Status) F80 {
	return pack80(widenToWide(unpack16(format16, a, status)), status)
}

func F32ToF80(a F32, status *Status) F80 {
	return pack80(widenToWide(unpack32(format32, a, status)), status)
}

func F64ToF80(a F64, status *Status) F80 {
	return pack80(widenToWide(unpack64(format64, a, status)), status)
}

func F80ToF16(a F80, status *Status) F16 {
	return pack16(format16, narrowFromWide(unpack80(a, status)), status)
}

func F80ToF32(a F80, status *Status) F32 {
	return pack32(format32, narrowFromWide(unpack80(a, status)), status)
}

func F80ToF64(a F80, status *Status) F64 {
	return pack64(format64, narrowFromWide(unpack80(a, status)), status)
}

// --- f16/f32/f64 <-> f128 ---

func F16ToF128(a F16, status *Status) F128 {
	return pack128(widenToWide(unpack16(format16, a, status)), status)
}

func F32ToF128(a F32, status *Status) F128 {
	return pack128(widenToWide(unpack32(format32, a, status)), status)
}

func F64ToF128(a F64, status *Status) F128 {
	return pack128(widenToWide(unpack64(format64, a, status)), status)
}

func F128ToF16(a F128, status *Status) F16 {
	return pack16(format16, narrowFromWide(unpack128(a, status)), status)
}

func F128ToF32(a F128, status *Status) F32 {
	return pack32(format32, narrowFromWide(unpack128(a, status)), status)
}

func F128ToF64(a F128, status *Status) F64 {
	return pack64(format64, narrowFromWide(unpack128(a, status)), status)
}

// --- f80 <-> f128 ---

// F80ToF128 re-rounds f80's 64-bit explicit significand to f128's wider
// 112-bit stored fraction; both already share wideParts so no
// repositioning is needed, only the destination's own round-and-pack.
func F80ToF128(a F80, status *Status) F128 {
	return pack128(unpack80(a, status), status)
}

func F128ToF80(a F128, status *Status) F80 {
	return pack80(unpack128(a, status), status)
}

// --- int/uint <-> wideParts ---

// wideIntPartsFromMagnitude builds an exact wideParts for a nonzero
// magnitude. Unlike intPartsFromMagnitude's 64-bit canonical frac, the
// 128-bit wide fraction has ample headroom for any uint64 magnitude, so
// no bit is ever folded into a sticky lsb here.
func wideIntPartsFromMagnitude(sign bool, mag uint64) wideParts {
	if mag == 0 {
		return wideParts{class: classZero, sign: sign}
	}
	lz := countLeadingZeros64(mag)
	m := int32(63 - lz)
	hi, lo := shiftLeft128(0, mag, canonicalWideFracBits-uint(m))
	return wideParts{class: classNormal, sign: sign, exp: m, fracHi: hi, fracLo: lo}
}

func wideInt64Parts(a int64) wideParts {
	if a == 0 {
		return wideParts{class: classZero}
	}
	sign := a < 0
	mag := uint64(a)
	if sign {
		mag = uint64(-(a + 1)) + 1 // avoids overflow on math.MinInt64
	}
	return wideIntPartsFromMagnitude(sign, mag)
}

// wideMagnitudeOfExactInt extracts the unsigned magnitude of a NORMAL
// wideParts already rounded to an integer; overflow is true when the
// value does not fit in a uint64, which wideFloatPartsToSignedInt/
// Unsigned treat as saturation.
func wideMagnitudeOfExactInt(p wideParts) (mag uint64, overflow bool) {
	if p.exp < 0 || p.exp > 63 {
		return 0, true
	}
	raw := wideRawBig(p)
	shift := uint(canonicalWideFracBits - p.exp)
	m := new(big.Int).Rsh(raw, shift)
	if !m.IsUint64() {
		return 0, true
	}
	return m.Uint64(), false
}

func wideFloatPartsToSignedInt(p wideParts, bits uint, rm RoundingMode, status *Status) int64 {
	if p.class.isNaN() {
		status.raise(FlagInvalid)
		return 0
	}
	maxVal := int64(1)<<(bits-1) - 1
	minVal := -(int64(1) << (bits - 1))
	if p.class == classInf {
		status.raise(FlagInvalid)
		if p.sign {
			return minVal
		}
		return maxVal
	}
	if p.class == classZero {
		return 0
	}

	rounded := roundToIntWideParts(p, rm, true, status)
	if rounded.class == classZero {
		return 0
	}
	mag, overflow := wideMagnitudeOfExactInt(rounded)
	if overflow {
		status.raise(FlagInvalid)
		if rounded.sign {
			return minVal
		}
		return maxVal
	}
	if rounded.sign {
		if mag > uint64(-minVal) {
			status.raise(FlagInvalid)
			return minVal
		}
		return -int64(mag)
	}
	if mag > uint64(maxVal) {
		status.raise(FlagInvalid)
		return maxVal
	}
	return int64(mag)
}

func wideFloatPartsToUnsignedInt(p wideParts, bits uint, rm RoundingMode, status *Status) uint64 {
	if p.class.isNaN() {
		status.raise(FlagInvalid)
		return 0
	}
	var maxVal uint64
	if bits == 64 {
		maxVal = ^uint64(0)
	} else {
		maxVal = uint64(1)<<bits - 1
	}
	if p.class == classInf {
		status.raise(FlagInvalid)
		if p.sign {
			return 0
		}
		return maxVal
	}
	if p.class == classZero {
		return 0
	}
	if p.sign {
		status.raise(FlagInvalid)
		return 0
	}

	rounded := roundToIntWideParts(p, rm, true, status)
	if rounded.class == classZero {
		return 0
	}
	mag, overflow := wideMagnitudeOfExactInt(rounded)
	if overflow || mag > maxVal {
		status.raise(FlagInvalid)
		return maxVal
	}
	return mag
}

// --- F80 <-> int/uint ---

func ToInt32Scalbn80(a F80, rm RoundingMode, scale int32, status *Status) int32 {
	p := scalbnWideParts(unpack80(a, status), scale, status)
	return int32(wideFloatPartsToSignedInt(p, 32, rm, status))
}

func ToInt64Scalbn80(a F80, rm RoundingMode, scale int32, status *Status) int64 {
	p := scalbnWideParts(unpack80(a, status), scale, status)
	return wideFloatPartsToSignedInt(p, 64, rm, status)
}

func ToUint32Scalbn80(a F80, rm RoundingMode, scale int32, status *Status) uint32 {
	p := scalbnWideParts(unpack80(a, status), scale, status)
	return uint32(wideFloatPartsToUnsignedInt(p, 32, rm, status))
}

func ToUint64Scalbn80(a F80, rm RoundingMode, scale int32, status *Status) uint64 {
	p := scalbnWideParts(unpack80(a, status), scale, status)
	return wideFloatPartsToUnsignedInt(p, 64, rm, status)
}

func ToInt32F80(a F80, rm RoundingMode, status *Status) int32 { return ToInt32Scalbn80(a, rm, 0, status) }
func ToInt64F80(a F80, rm RoundingMode, status *Status) int64 { return ToInt64Scalbn80(a, rm, 0, status) }
func ToUint32F80(a F80, rm RoundingMode, status *Status) uint32 {
	return ToUint32Scalbn80(a, rm, 0, status)
}
func ToUint64F80(a F80, rm RoundingMode, status *Status) uint64 {
	return ToUint64Scalbn80(a, rm, 0, status)
}

func Int32ToF80(a int32, status *Status) F80 { return pack80(wideInt64Parts(int64(a)), status) }
func Int64ToF80(a int64, status *Status) F80 { return pack80(wideInt64Parts(a), status) }
func Uint32ToF80(a uint32, status *Status) F80 {
	return pack80(wideIntPartsFromMagnitude(false, uint64(a)), status)
}
func Uint64ToF80(a uint64, status *Status) F80 {
	return pack80(wideIntPartsFromMagnitude(false, a), status)
}

// --- F128 <-> int/uint ---

func ToInt32Scalbn128(a F128, rm RoundingMode, scale int32, status *Status) int32 {
	p := scalbnWideParts(unpack128(a, status), scale, status)
	return int32(wideFloatPartsToSignedInt(p, 32, rm, status))
}

func ToInt64Scalbn128(a F128, rm RoundingMode, scale int32, status *Status) int64 {
	p := scalbnWideParts(unpack128(a, status), scale, status)
	return wideFloatPartsToSignedInt(p, 64, rm, status)
}

func ToUint32Scalbn128(a F128, rm RoundingMode, scale int32, status *Status) uint32 {
	p := scalbnWideParts(unpack128(a, status), scale, status)
	return uint32(wideFloatPartsToUnsignedInt(p, 32, rm, status))
}

func ToUint64Scalbn128(a F128, rm RoundingMode, scale int32, status *Status) uint64 {
	p := scalbnWideParts(unpack128(a, status), scale, status)
	return wideFloatPartsToUnsignedInt(p, 64, rm, status)
}

func ToInt32F128(a F128, rm RoundingMode, status *Status) int32 {
	return ToInt32Scalbn128(a, rm, 0, status)
}
func ToInt64F128(a F128, rm RoundingMode, status *Status) int64 {
	return ToInt64Scalbn128(a, rm, 0, status)
}
func ToUint32F128(a F128, rm RoundingMode, status *Status) uint32 {
	return ToUint32Scalbn128(a, rm, 0, status)
}
func ToUint64F128(a F128, rm RoundingMode, status *Status) uint64 {
	return ToUint64Scalbn128(a, rm, 0, status)
}

func Int32ToF128(a int32, status *Status) F128 { return pack128(wideInt64Parts(int64(a)), status) }
func Int64ToF128(a int64, status *Status) F128 { return pack128(wideInt64Parts(a), status) }
func Uint32ToF128(a uint32, status *Status) F128 {
	return pack128(wideIntPartsFromMagnitude(false, uint64(a)), status)
}
func Uint64ToF128(a uint64, status *Status) F128 {
	return pack128(wideIntPartsFromMagnitude(false, a), status)
}
