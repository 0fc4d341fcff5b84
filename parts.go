package softfloat

// floatClass is the classification of a canonicalized value.
type floatClass int

const (
	classUnclassified floatClass = iota
	classZero
	classNormal
	classInf
	classQNaN
	classSNaN
)

func (c floatClass) isNaN() bool { return c == classQNaN || c == classSNaN }

// floatParts is the canonical decomposed form shared by the f16, f32,
// and f64 arithmetic: a class tag, a sign, an unbiased exponent, and a
// 64-bit fraction with the binary point fixed two bits below the top
// (bit 62 holds a NORMAL's leading one; a NaN's payload is shifted so
// its discriminator bit lands at bit 61). classUnclassified must never
// escape this file — it only appears transiently inside unpackRaw.
type floatParts struct {
	class floatClass
	sign  bool
	exp   int32
	frac  uint64
}

// unpackRaw splits an encoded bit pattern into its sign/exponent/
// fraction fields without classifying them. Kept separate from
// canonicalize so that canonicalize alone is responsible for flag
// side effects (input_denormal), mirroring the reference's
// xxx_unpack_raw / xxx_canonicalize split.
func unpackRaw(f *format, bits uint64) (sign bool, rawExp int32, rawFrac uint64) {
	fracMask := uint64(1)<<f.fracBits - 1
	sign = bits>>(f.expBits+f.fracBits)&1 != 0
	rawExp = int32(bits >> f.fracBits & (uint64(1)<<f.expBits - 1))
	rawFrac = bits & fracMask
	return
}

// canonicalize classifies a raw-unpacked value and normalizes it into
// floatParts, consulting the format descriptor and NaN/denormal policy
// in status.
func canonicalize(f *format, sign bool, rawExp int32, rawFrac uint64, status *Status) floatParts {
	if f.noInfNaN {
		// ARM alternate half-precision: no Inf/NaN encoding at all;
		// the max-exponent encoding is an ordinary finite number.
		return canonicalizeFiniteOnly(f, sign, rawExp, rawFrac, status)
	}

	if rawExp == f.expMax {
		if rawFrac == 0 {
			return floatParts{class: classInf, sign: sign}
		}
		frac := rawFrac << f.fracShift
		if status.NoSignalingNaN {
			return floatParts{class: classQNaN, sign: sign, frac: frac}
		}
		if isSNaNFrac(frac, status) {
			return floatParts{class: classSNaN, sign: sign, frac: frac}
		}
		return floatParts{class: classQNaN, sign: sign, frac: frac}
	}

	if rawExp == 0 {
		if rawFrac == 0 {
			return floatParts{class: classZero, sign: sign}
		}
		return canonicalizeSubnormal(f, sign, rawFrac, status)
	}

	// Ordinary normal: set the implicit bit, shift into canonical
	// position, unbias the exponent.
	frac := (rawFrac << f.fracShift) | (uint64(1) << canonicalFracBits)
	return floatParts{class: classNormal, sign: sign, exp: rawExp - f.bias, frac: frac}
}

func canonicalizeSubnormal(f *format, sign bool, rawFrac uint64, status *Status) floatParts {
	if status.FlushInputsToZero {
		status.raise(FlagInputDenormal)
		return floatParts{class: classZero, sign: sign}
	}
	lz := countLeadingZeros64(rawFrac << (64 - f.fracBits))
	shift := f.fracShift + 1 + lz
	frac := rawFrac << shift
	exp := -f.bias - int32(lz)
	return floatParts{class: classNormal, sign: sign, exp: exp, frac: frac}
}

// canonicalizeFiniteOnly implements the ARM-alternate-half-precision
// rule: every encoding, including the all-ones exponent, is finite.
func canonicalizeFiniteOnly(f *format, sign bool, rawExp int32, rawFrac uint64, status *Status) floatParts {
	if rawExp == 0 {
		if rawFrac == 0 {
			return floatParts{class: classZero, sign: sign}
		}
		return canonicalizeSubnormal(f, sign, rawFrac, status)
	}
	frac := (rawFrac << f.fracShift) | (uint64(1) << canonicalFracBits)
	return floatParts{class: classNormal, sign: sign, exp: rawExp - f.bias, frac: frac}
}

// applyRounding rounds frac to the precision implied by roundMask (the
// bits of frac that roundMask covers are discarded), per the seven
// rounding modes of spec §4.4. It returns the rounded value — still in
// canonical units, i.e. a multiple of roundMask+1 — and whether any
// discarded bit was nonzero.
func applyRounding(status *Status, sign bool, frac uint64, roundMask uint64) (rounded uint64, inexact bool) {
	discarded := frac & roundMask
	kept := frac &^ roundMask
	ulp := roundMask + 1
	if discarded == 0 {
		return kept, false
	}
	half := ulp >> 1
	switch status.RoundingMode {
	case RoundNearestEven:
		switch {
		case discarded > half:
			return kept + ulp, true
		case discarded < half:
			return kept, true
		default: // exact tie: round to even
			if kept&ulp != 0 {
				return kept + ulp, true
			}
			return kept, true
		}
	case RoundNearestTiesAway:
		return kept + ulp, true
	case RoundTowardZero:
		return kept, true
	case RoundUpward:
		if sign {
			return kept, true
		}
		return kept + ulp, true
	case RoundDownward:
		if sign {
			return kept + ulp, true
		}
		return kept, true
	case RoundToOdd:
		if kept&ulp != 0 {
			return kept, true
		}
		return kept + ulp, true
	default:
		return kept, true
	}
}

// roundAndPackCanonical rounds a NORMAL floatParts to format f's
// precision and packs it into the destination encoding, running the
// full overflow/subnormal/tininess state machine from spec §4.4.
func roundAndPackCanonical(f *format, p floatParts, status *Status) uint64 {
	switch p.class {
	case classZero:
		return packZero(f, p.sign)
	case classInf:
		if f.noInfNaN {
			// Cannot happen: ARM-alt values are never classified Inf.
			unreachable("roundAndPackCanonical", "Inf class under no-Inf/NaN format")
		}
		return packInf(f, p.sign)
	case classQNaN, classSNaN:
		return packNaN(f, p)
	case classNormal:
		return roundAndPackNormal(f, p, status)
	default:
		unreachable("roundAndPackCanonical", "unclassified parts reached round-and-pack")
		return 0
	}
}

func packZero(f *format, sign bool) uint64 {
	return boolBit(sign) << (f.expBits + f.fracBits)
}

func packInf(f *format, sign bool) uint64 {
	return boolBit(sign)<<(f.expBits+f.fracBits) | uint64(f.expMax)<<f.fracBits
}

func packNaN(f *format, p floatParts) uint64 {
	fracOut := p.frac >> f.fracShift
	return boolBit(p.sign)<<(f.expBits+f.fracBits) | uint64(f.expMax)<<f.fracBits | (fracOut & (uint64(1)<<f.fracBits - 1))
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func roundAndPackNormal(f *format, p floatParts, status *Status) uint64 {
	roundMask := f.roundMask
	frac, inexact := applyRounding(status, p.sign, p.frac, roundMask)
	exp := p.exp

	// Carry into the bit above the implicit one: renormalize.
	if frac >= uint64(1)<<(canonicalFracBits+1) {
		frac = shiftRightJam64(frac, 1)
		exp++
	}

	maxNormalExp := f.expMax - 1 - f.bias
	if f.noInfNaN {
		maxNormalExp = f.expMax - f.bias
	}
	if exp > maxNormalExp {
		return roundOverflow(f, p.sign, status)
	}

	if exp >= 1-f.bias {
		if inexact {
			status.raise(FlagInexact)
		}
		fracOut := frac >> f.fracShift
		return boolBit(p.sign)<<(f.expBits+f.fracBits) | uint64(exp+f.bias)<<f.fracBits | (fracOut & (uint64(1)<<f.fracBits - 1))
	}

	// Subnormal candidate.
	if status.FlushToZero {
		status.raise(FlagOutputDenormal)
		return packZero(f, p.sign)
	}

	// Before-rounding tininess is always true here: exp < 1-f.bias
	// already means the magnitude is below the minimum normal.
	tinyBeforeRounding := true

	shift := uint(1 - f.bias - exp)
	shiftedFrac := shiftRightJam64(frac, shift)
	reShifted, reInexact := applyRounding(status, p.sign, shiftedFrac, roundMask)
	carriedToNormal := reShifted >= uint64(1)<<canonicalFracBits
	if carriedToNormal {
		// Rounding carried into the implicit bit: result becomes the
		// smallest normal (biased exponent 1). Under
		// TininessBeforeRounding the operand was already tiny prior to
		// this carry, so underflow is still raised; under
		// TininessAfterRounding the rounded result is exactly the
		// minimum normal, not tiny, so it is not.
		if reInexact {
			status.raise(FlagInexact)
			if status.TininessMode == TininessBeforeRounding {
				status.raise(FlagUnderflow)
			}
		}
		fracOut := reShifted >> f.fracShift
		return boolBit(p.sign)<<(f.expBits+f.fracBits) | uint64(1)<<f.fracBits | (fracOut & (uint64(1)<<f.fracBits - 1))
	}
	if reInexact {
		status.raise(FlagInexact)
		tiny := tinyBeforeRounding
		if status.TininessMode == TininessAfterRounding {
			tiny = !carriedToNormal
		}
		if tiny {
			status.raise(FlagUnderflow)
		}
	}
	fracOut := reShifted >> f.fracShift
	return boolBit(p.sign)<<(f.expBits+f.fracBits) | (fracOut & (uint64(1)<<f.fracBits - 1))
}

// roundOverflow packs the overflow result per the active rounding mode:
// Inf for modes that overflow to infinity, or the destination's max
// finite value for toward-zero/to-odd/the sign-appropriate directed
// mode.
func roundOverflow(f *format, sign bool, status *Status) uint64 {
	status.raise(FlagOverflow | FlagInexact)
	overflowToMax := false
	switch status.RoundingMode {
	case RoundTowardZero, RoundToOdd:
		overflowToMax = true
	case RoundUpward:
		overflowToMax = sign
	case RoundDownward:
		overflowToMax = !sign
	}
	if f.noInfNaN {
		status.raise(FlagInvalid)
		overflowToMax = true
	}
	if overflowToMax {
		maxFrac := uint64(1)<<f.fracBits - 1
		maxExp := uint64(f.expMax)
		if !f.noInfNaN {
			maxExp--
		}
		return boolBit(sign)<<(f.expBits+f.fracBits) | maxExp<<f.fracBits | maxFrac
	}
	return packInf(f, sign)
}

// isSNaNFrac reports whether a canonical NaN fraction (payload shifted
// into position, discriminator at bit 61) represents a signaling NaN
// under the active SNaNBitIsOne convention.
func isSNaNFrac(frac uint64, status *Status) bool {
	bit := frac&(uint64(1)<<61) != 0
	if status.SNaNBitIsOne {
		return bit
	}
	return !bit
}
