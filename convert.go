package softfloat

// Cross-format and integer conversions (spec §4.12). Because f16/f32/f64
// all unpack into the same canonical floatParts, a width conversion is
// simply "unpack in the source format, pack in the destination format" —
// the canonical form already carries the value at full precision, and
// roundAndPackCanonical applies whatever rounding the narrower
// destination format requires. Widening never loses information;
// narrowing goes through the ordinary round-and-pack path exactly like
// an arithmetic result would.

// F16ToF32 converts a to binary32, exactly (widening never rounds).
func F16ToF32(a F16, status *Status) F32 {
	return pack32(format32, unpack16(format16, a, status), status)
}

// F16ToF64 converts a to binary64, exactly.
func F16ToF64(a F16, status *Status) F64 {
	return pack64(format64, unpack16(format16, a, status), status)
}

// F32ToF16 converts a to binary16, rounding per status.
func F32ToF16(a F32, status *Status) F16 {
	return pack16(format16, unpack32(format32, a, status), status)
}

// F32ToF64 converts a to binary64, exactly.
func F32ToF64(a F32, status *Status) F64 {
	return pack64(format64, unpack32(format32, a, status), status)
}

// F64ToF16 converts a to binary16, rounding per status.
func F64ToF16(a F64, status *Status) F16 {
	return pack16(format16, unpack64(format64, a, status), status)
}

// F64ToF32 converts a to binary32, rounding per status.
func F64ToF32(a F64, status *Status) F32 {
	return pack32(format32, unpack64(format64, a, status), status)
}

// --- integer <-> floatParts ---

// intPartsFromMagnitude builds the floatParts for the integer whose sign
// is sign and whose absolute value is mag (a zero mag gives a signed
// zero). Callers pass the magnitude as a uint64, so math.MinInt64 needs
// no special case here.
func intPartsFromMagnitude(sign bool, mag uint64) floatParts {
	if mag == 0 {
		return floatParts{class: classZero, sign: sign}
	}
	lz := countLeadingZeros64(mag)
	exp := int32(63 - lz)
	var frac uint64
	if lz == 0 {
		// mag uses all 64 bits; canonical frac only holds 63 significant
		// bits (the implicit one plus 62 explicit), so the lowest bit is
		// folded into the sticky bit rather than kept exactly.
		frac = shiftRightJam64(mag, 1)
	} else {
		frac = mag << (lz - 1)
	}
	return floatParts{class: classNormal, sign: sign, exp: exp, frac: frac}
}

// floatPartsToSignedInt rounds p to an integer (per rm) and checks it
// against a signed bits-wide range, saturating and raising Invalid on
// overflow, raising Inexact if rounding changed the value.
func floatPartsToSignedInt(p floatParts, bits uint, rm RoundingMode, status *Status) int64 {
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

	rounded := roundToIntParts(p, rm, true, status)
	if rounded.class == classZero {
		return 0
	}
	mag := magnitudeOfExactInt(rounded)
	if mag == magnitudeOverflow {
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

// floatPartsToUnsignedInt is floatPartsToSignedInt's unsigned analogue.
func floatPartsToUnsignedInt(p floatParts, bits uint, rm RoundingMode, status *Status) uint64 {
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

	rounded := roundToIntParts(p, rm, true, status)
	if rounded.class == classZero {
		return 0
	}
	mag := magnitudeOfExactInt(rounded)
	if mag == magnitudeOverflow || mag > maxVal {
		status.raise(FlagInvalid)
		return maxVal
	}
	return mag
}

// magnitudeOverflow is returned by magnitudeOfExactInt when the exact
// integer value cannot be represented in a uint64 at all (exponent so
// large the value exceeds 2^64); every caller treats it as saturating
// overflow regardless of the destination width.
const magnitudeOverflow = ^uint64(0)

// magnitudeOfExactInt extracts the unsigned magnitude of a canonicalized
// NORMAL floatParts already known to be an exact integer (every
// fractional bit below the units place is zero, per roundToIntParts).
// p.exp is the bit position of the leading one; shifting frac by
// canonicalFracBits-exp recovers the integer when exp <= canonicalFracBits
// (a right shift), and frac<<1 recovers it when exp is exactly one bit
// larger (the only left shift that still fits in 64 bits, since the
// leading one sits at bit 62); anything past that is reported as overflow rather
// than computed with a shift amount that would silently wrap.
func magnitudeOfExactInt(p floatParts) uint64 {
	shift := p.exp - canonicalFracBits
	switch {
	case shift <= 0:
		return p.frac >> uint(-shift)
	case shift == 1:
		return p.frac << 1
	default:
		return magnitudeOverflow
	}
}

// --- F32 <-> int/uint ---

func ToInt32Scalbn32(a F32, rm RoundingMode, scale int32, status *Status) int32 {
	p := scalbnParts(unpack32(format32, a, status), scale, status)
	return int32(floatPartsToSignedInt(p, 32, rm, status))
}

func ToInt64Scalbn32(a F32, rm RoundingMode, scale int32, status *Status) int64 {
	p := scalbnParts(unpack32(format32, a, status), scale, status)
	return floatPartsToSignedInt(p, 64, rm, status)
}

func ToUint32Scalbn32(a F32, rm RoundingMode, scale int32, status *Status) uint32 {
	p := scalbnParts(unpack32(format32, a, status), scale, status)
	return uint32(floatPartsToUnsignedInt(p, 32, rm, status))
}

func ToUint64Scalbn32(a F32, rm RoundingMode, scale int32, status *Status) uint64 {
	p := scalbnParts(unpack32(format32, a, status), scale, status)
	return floatPartsToUnsignedInt(p, 64, rm, status)
}

func Int32ToF32(a int32, status *Status) F32 {
	if a == 0 {
		return pack32(format32, floatParts{class: classZero}, status)
	}
	sign := a < 0
	mag := uint64(a)
	if sign {
		mag = uint64(-int64(a))
	}
	return pack32(format32, intPartsFromMagnitude(sign, mag), status)
}

func Int64ToF32(a int64, status *Status) F32 {
	return pack32(format32, int64Parts(a), status)
}

func Uint32ToF32(a uint32, status *Status) F32 {
	return pack32(format32, intPartsFromMagnitude(false, uint64(a)), status)
}

func Uint64ToF32(a uint64, status *Status) F32 {
	return pack32(format32, intPartsFromMagnitude(false, a), status)
}

// --- F64 <-> int/uint ---

func ToInt32Scalbn64(a F64, rm RoundingMode, scale int32, status *Status) int32 {
	p := scalbnParts(unpack64(format64, a, status), scale, status)
	return int32(floatPartsToSignedInt(p, 32, rm, status))
}

func ToInt64Scalbn64(a F64, rm RoundingMode, scale int32, status *Status) int64 {
	p := scalbnParts(unpack64(format64, a, status), scale, status)
	return floatPartsToSignedInt(p, 64, rm, status)
}

func ToUint32Scalbn64(a F64, rm RoundingMode, scale int32, status *Status) uint32 {
	p := scalbnParts(unpack64(format64, a, status), scale, status)
	return uint32(floatPartsToUnsignedInt(p, 32, rm, status))
}

func ToUint64Scalbn64(a F64, rm RoundingMode, scale int32, status *Status) uint64 {
	p := scalbnParts(unpack64(format64, a, status), scale, status)
	return floatPartsToUnsignedInt(p, 64, rm, status)
}

func Int32ToF64(a int32, status *Status) F64 {
	return pack64(format64, int64Parts(int64(a)), status)
}

func Int64ToF64(a int64, status *Status) F64 {
	return pack64(format64, int64Parts(a), status)
}

func Uint32ToF64(a uint32, status *Status) F64 {
	return pack64(format64, intPartsFromMagnitude(false, uint64(a)), status)
}

func Uint64ToF64(a uint64, status *Status) F64 {
	return pack64(format64, intPartsFromMagnitude(false, a), status)
}

// --- F16 <-> int/uint ---

func ToInt32Scalbn16(a F16, rm RoundingMode, scale int32, status *Status) int32 {
	p := scalbnParts(unpack16(format16, a, status), scale, status)
	return int32(floatPartsToSignedInt(p, 32, rm, status))
}

func ToUint32Scalbn16(a F16, rm RoundingMode, scale int32, status *Status) uint32 {
	p := scalbnParts(unpack16(format16, a, status), scale, status)
	return uint32(floatPartsToUnsignedInt(p, 32, rm, status))
}

func Int32ToF16(a int32, status *Status) F16 {
	return pack16(format16, int64Parts(int64(a)), status)
}

func Uint32ToF16(a uint32, status *Status) F16 {
	return pack16(format16, intPartsFromMagnitude(false, uint64(a)), status)
}

func int64Parts(a int64) floatParts {
	if a == 0 {
		return floatParts{class: classZero}
	}
	sign := a < 0
	mag := uint64(a)
	if sign {
		mag = uint64(-(a + 1)) + 1 // avoids overflow on math.MinInt64
	}
	return intPartsFromMagnitude(sign, mag)
}
