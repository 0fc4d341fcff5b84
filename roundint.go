package softfloat

// roundToIntParts implements the round-to-integral-value operations
// (spec §4.11's RoundToInt family): round a to the nearest representable
// integer under mode, raising Inexact only when exact is true (the
// IEEE 754 roundToIntegralExact vs roundToIntegralTiesToEven/...
// distinction).
func roundToIntParts(a floatParts, mode RoundingMode, exact bool, status *Status) floatParts {
	if a.class.isNaN() {
		if a.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return silenceNaNParts(a, status)
	}
	if a.class == classInf || a.class == classZero {
		return a
	}
	if a.exp >= canonicalFracBits {
		return a
	}

	if a.exp < 0 {
		roundsToOne := roundMagnitudeBelowOneToInteger(a, mode)
		if exact {
			status.raise(FlagInexact)
		}
		if !roundsToOne {
			return floatParts{class: classZero, sign: a.sign}
		}
		return floatParts{class: classNormal, sign: a.sign, exp: 0, frac: uint64(1) << canonicalFracBits}
	}

	fracBitsBelow := uint(canonicalFracBits - a.exp)
	roundMask := uint64(1)<<fracBitsBelow - 1
	tmp := *status
	tmp.RoundingMode = mode
	rounded, inexact := applyRounding(&tmp, a.sign, a.frac, roundMask)

	if inexact && exact {
		status.raise(FlagInexact)
	}
	exp := a.exp
	if rounded >= uint64(1)<<(canonicalFracBits+1) {
		rounded = shiftRightJam64(rounded, 1)
		exp++
	}
	if rounded == 0 {
		return floatParts{class: classZero, sign: a.sign}
	}
	return floatParts{class: classNormal, sign: a.sign, exp: exp, frac: rounded}
}

// roundMagnitudeBelowOneToInteger decides, for a magnitude already
// known to be in (0, 1), whether rounding it to an integer under mode
// produces 1 (true) or 0 (false).
func roundMagnitudeBelowOneToInteger(a floatParts, mode RoundingMode) bool {
	switch mode {
	case RoundTowardZero, RoundToOdd:
		return false
	case RoundUpward:
		return !a.sign
	case RoundDownward:
		return a.sign
	case RoundNearestTiesAway:
		return a.exp == -1
	default: // RoundNearestEven
		if a.exp != -1 {
			return false
		}
		if a.frac == uint64(1)<<canonicalFracBits {
			return false // exact tie: round to even (zero)
		}
		return true
	}
}
