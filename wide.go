package softfloat

import "math/bits"

// wideParts is the canonical decomposed form for f80 and f128: spec §3.3
// says these two formats share no canonical struct with the 64-bit
// f16/f32/f64 path, but nothing stops them sharing ONE WITH EACH OTHER
// — both fit a 128-bit fraction with the same two bits of carry
// headroom the 64-bit floatParts uses, just scaled up. The leading one
// of a NORMAL sits at bit 125 of the 128-bit (fracHi:fracLo) pair (bit
// 61 of fracHi); a NaN's discriminator bit sits at bit 124 (fracHi bit
// 60). This lets f80 and f128 share one add/mul/div/sqrt/rem/round-
// pack implementation, parameterized by wideFormat, the way spec §9's
// design note recommends generalizing across the narrower formats.
type wideParts struct {
	class          floatClass
	sign           bool
	exp            int32
	fracHi, fracLo uint64
}

const canonicalWideFracBits = 125 // bit position of a NORMAL's leading one

// wideFormat is L2's descriptor for the extended/quad layer.
type wideFormat struct {
	name string

	bias   int32
	expMax int32

	// fracShift is the left shift from the format's native significand
	// position to the canonical wide position (bit 125). It is always
	// less than 64, so rounding only ever touches fracLo.
	fracShift   uint
	roundMaskLo uint64
}

var wideFormat80 = &wideFormat{
	name:        "f80",
	bias:        f80Bias,
	expMax:      f80ExpMax,
	fracShift:   canonicalWideFracBits - 63,
	roundMaskLo: (uint64(1) << (canonicalWideFracBits - 63)) - 1,
}

var wideFormat128 = &wideFormat{
	name:        "f128",
	bias:        f128Bias,
	expMax:      f128ExpMax,
	fracShift:   canonicalWideFracBits - f128FracBits,
	roundMaskLo: (uint64(1) << (canonicalWideFracBits - f128FracBits)) - 1,
}

func leadingZeros128(hi, lo uint64) uint {
	if hi != 0 {
		return countLeadingZeros64(hi)
	}
	return 64 + countLeadingZeros64(lo)
}

// isSNaNFracWide mirrors isSNaNFrac at the wide discriminator position
// (bit 60 of fracHi, one below the leading-one bit).
func isSNaNFracWide(hi uint64, status *Status) bool {
	bit := hi&(uint64(1)<<60) != 0
	if status.SNaNBitIsOne {
		return bit
	}
	return !bit
}

// --- f80 raw unpack / validation ---

// unpackRaw80 splits an F80 encoding into sign, biased exponent, and the
// full 64-bit explicit significand (integer bit included, at bit 63).
func unpackRaw80(a F80) (sign bool, rawExp int32, rawFrac64 uint64) {
	sign = a.High>>15 != 0
	rawExp = int32(a.High & f80ExpMax)
	rawFrac64 = a.Low
	return
}

// validF80Encoding implements spec §7/§9's pseudo-denormal/unnormal
// rejection: the explicit integer bit (bit 63) must be set in every
// encoding except a true zero-exponent denormal, where it must be
// clear. That single rule covers zero, normal, Inf, and NaN alike.
func validF80Encoding(rawExp int32, rawFrac64 uint64) bool {
	intBit := rawFrac64>>63 != 0
	return intBit == (rawExp != 0)
}

// canonicalizeWide80 classifies and normalizes an already-validated f80
// encoding (the caller must have checked validF80Encoding first).
func canonicalizeWide80(sign bool, rawExp int32, rawFrac64 uint64, status *Status) wideParts {
	if rawExp == f80ExpMax {
		if rawFrac64 == uint64(1)<<63 {
			return wideParts{class: classInf, sign: sign}
		}
		hi, lo := shiftLeft128(0, rawFrac64, wideFormat80.fracShift)
		if status.NoSignalingNaN {
			return wideParts{class: classQNaN, sign: sign, fracHi: hi, fracLo: lo}
		}
		if isSNaNFracWide(hi, status) {
			return wideParts{class: classSNaN, sign: sign, fracHi: hi, fracLo: lo}
		}
		return wideParts{class: classQNaN, sign: sign, fracHi: hi, fracLo: lo}
	}
	if rawExp == 0 {
		if rawFrac64 == 0 {
			return wideParts{class: classZero, sign: sign}
		}
		if status.FlushInputsToZero {
			status.raise(FlagInputDenormal)
			return wideParts{class: classZero, sign: sign}
		}
		lz := countLeadingZeros64(rawFrac64)
		hi, lo := shiftLeft128(0, rawFrac64, lz+wideFormat80.fracShift)
		return wideParts{class: classNormal, sign: sign, exp: 1 - wideFormat80.bias - int32(lz), fracHi: hi, fracLo: lo}
	}
	hi, lo := shiftLeft128(0, rawFrac64, wideFormat80.fracShift)
	return wideParts{class: classNormal, sign: sign, exp: rawExp - wideFormat80.bias, fracHi: hi, fracLo: lo}
}

func unpack80(a F80, status *Status) wideParts {
	sign, rawExp, rawFrac := unpackRaw80(a)
	if !validF80Encoding(rawExp, rawFrac) {
		status.raise(FlagInvalid)
		return wideDefaultNaNParts(status)
	}
	return canonicalizeWide80(sign, rawExp, rawFrac, status)
}

// --- f128 raw unpack ---

func unpackRaw128(a F128) (sign bool, rawExp int32, fracHi, fracLo uint64) {
	sign = a.High>>63 != 0
	rawExp = int32(a.High >> 48 & f128ExpMax)
	fracHi = a.High & (uint64(1)<<48 - 1)
	fracLo = a.Low
	return
}

func canonicalizeWide128(sign bool, rawExp int32, fracHi, fracLo uint64, status *Status) wideParts {
	if rawExp == f128ExpMax {
		if fracHi == 0 && fracLo == 0 {
			return wideParts{class: classInf, sign: sign}
		}
		hi, lo := shiftLeft128(fracHi, fracLo, wideFormat128.fracShift)
		if status.NoSignalingNaN {
			return wideParts{class: classQNaN, sign: sign, fracHi: hi, fracLo: lo}
		}
		if isSNaNFracWide(hi, status) {
			return wideParts{class: classSNaN, sign: sign, fracHi: hi, fracLo: lo}
		}
		return wideParts{class: classQNaN, sign: sign, fracHi: hi, fracLo: lo}
	}
	if rawExp == 0 {
		if fracHi == 0 && fracLo == 0 {
			return wideParts{class: classZero, sign: sign}
		}
		if status.FlushInputsToZero {
			status.raise(FlagInputDenormal)
			return wideParts{class: classZero, sign: sign}
		}
		alignedHi, alignedLo := shiftLeft128(fracHi, fracLo, 16) // left-justify the 112-bit field in 128 bits
		lz := leadingZeros128(alignedHi, alignedLo)
		shift := wideFormat128.fracShift + 1 + lz
		hi, lo := shiftLeft128(fracHi, fracLo, shift)
		return wideParts{class: classNormal, sign: sign, exp: -wideFormat128.bias - int32(lz), fracHi: hi, fracLo: lo}
	}
	hi, lo := shiftLeft128(fracHi, fracLo, wideFormat128.fracShift)
	hi |= uint64(1) << (canonicalWideFracBits - 64)
	return wideParts{class: classNormal, sign: sign, exp: rawExp - wideFormat128.bias, fracHi: hi, fracLo: lo}
}

func unpack128(a F128, status *Status) wideParts {
	sign, rawExp, fracHi, fracLo := unpackRaw128(a)
	return canonicalizeWide128(sign, rawExp, fracHi, fracLo, status)
}

// --- rounding ---

// applyRoundingWide is applyRounding (parts.go) widened to a 128-bit
// fraction; roundMaskLo always covers bits within fracLo alone, so a
// round-up only ever needs a 64-bit carry into fracHi.
func applyRoundingWide(status *Status, sign bool, hi, lo, roundMaskLo uint64) (rHi, rLo uint64, inexact bool) {
	discarded := lo & roundMaskLo
	kept := lo &^ roundMaskLo
	if discarded == 0 {
		return hi, kept, false
	}
	ulp := roundMaskLo + 1
	half := ulp >> 1
	roundUp := false
	switch status.RoundingMode {
	case RoundNearestEven:
		switch {
		case discarded > half:
			roundUp = true
		case discarded < half:
			roundUp = false
		default:
			roundUp = kept&ulp != 0
		}
	case RoundNearestTiesAway:
		roundUp = true
	case RoundTowardZero:
		roundUp = false
	case RoundUpward:
		roundUp = !sign
	case RoundDownward:
		roundUp = sign
	case RoundToOdd:
		roundUp = kept&ulp == 0
	}
	if !roundUp {
		return hi, kept, true
	}
	newLo, carry := bits.Add64(kept, ulp, 0)
	return hi + carry, newLo, true
}

func maxFiniteWide() (hi, lo uint64) {
	return uint64(1)<<(canonicalWideFracBits-64+1) - 1, ^uint64(0)
}

// roundAndPackWideNormal runs the overflow/subnormal/tininess state
// machine of roundAndPackNormal (parts.go), widened to 128 bits, and
// returns the pieces the caller needs to assemble a raw F80 or F128
// encoding: forceInf true means the caller should encode Inf outright
// (storedHi/storedLo are meaningless in that case); otherwise biasedExp
// and the already-right-shifted storedHi/storedLo are ready to mask
// into place (f80 keeps the leading one explicit, f128's caller must
// still strip it).
func roundAndPackWideNormal(f *wideFormat, p wideParts, status *Status) (sign, forceInf bool, biasedExp int32, storedHi, storedLo uint64) {
	sign = p.sign
	hi, lo, inexact := applyRoundingWide(status, sign, p.fracHi, p.fracLo, f.roundMaskLo)
	exp := p.exp

	if hi >= uint64(1)<<(canonicalWideFracBits-64+1) {
		hi, lo = shiftRightJam128(hi, lo, 1)
		exp++
	}

	maxNormalExp := f.expMax - 1 - f.bias
	if exp > maxNormalExp {
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
		if !overflowToMax {
			return sign, true, 0, 0, 0
		}
		maxHi, maxLo := maxFiniteWide()
		sHi, sLo := shiftRight128(maxHi, maxLo, f.fracShift)
		return sign, false, f.expMax - 1, sHi, sLo
	}

	if exp >= 1-f.bias {
		if inexact {
			status.raise(FlagInexact)
		}
		sHi, sLo := shiftRight128(hi, lo, f.fracShift)
		return sign, false, exp + f.bias, sHi, sLo
	}

	if status.FlushToZero {
		status.raise(FlagOutputDenormal)
		return sign, false, 0, 0, 0
	}

	shift := uint(1 - f.bias - exp)
	shHi, shLo := shiftRightJam128(hi, lo, shift)
	rHi, rLo, reInexact := applyRoundingWide(status, sign, shHi, shLo, f.roundMaskLo)
	carriedToNormal := rHi >= uint64(1)<<(canonicalWideFracBits-64)
	if carriedToNormal {
		if reInexact {
			status.raise(FlagInexact)
			if status.TininessMode == TininessBeforeRounding {
				status.raise(FlagUnderflow)
			}
		}
		sHi, sLo := shiftRight128(rHi, rLo, f.fracShift)
		return sign, false, 1, sHi, sLo
	}
	if reInexact {
		status.raise(FlagInexact)
		tiny := true
		if status.TininessMode == TininessAfterRounding {
			tiny = !carriedToNormal
		}
		if tiny {
			status.raise(FlagUnderflow)
		}
	}
	sHi, sLo := shiftRight128(rHi, rLo, f.fracShift)
	return sign, false, 0, sHi, sLo
}

// --- pack ---

func pack80(p wideParts, status *Status) F80 {
	switch p.class {
	case classZero:
		return F80{High: uint16(boolBit(p.sign)) << 15}
	case classInf:
		return F80{High: uint16(boolBit(p.sign))<<15 | f80ExpMax, Low: uint64(1) << 63}
	case classQNaN, classSNaN:
		_, lo := shiftRight128(p.fracHi, p.fracLo, wideFormat80.fracShift)
		lo |= uint64(1) << 63
		return F80{High: uint16(boolBit(p.sign))<<15 | f80ExpMax, Low: lo}
	case classNormal:
		sign, forceInf, biasedExp, _, lo := roundAndPackWideNormal(wideFormat80, p, status)
		if forceInf {
			return F80{High: uint16(boolBit(sign))<<15 | f80ExpMax, Low: uint64(1) << 63}
		}
		return F80{High: uint16(boolBit(sign))<<15 | uint16(biasedExp), Low: lo}
	default:
		unreachable("pack80", "unclassified wideParts reached pack80")
		return F80{}
	}
}

func pack128(p wideParts, status *Status) F128 {
	switch p.class {
	case classZero:
		return F128{High: uint64(boolBit(p.sign)) << 63}
	case classInf:
		return F128{High: uint64(boolBit(p.sign))<<63 | uint64(f128ExpMax)<<48}
	case classQNaN, classSNaN:
		hi, lo := shiftRight128(p.fracHi, p.fracLo, wideFormat128.fracShift)
		hi &= uint64(1)<<48 - 1
		return F128{High: uint64(boolBit(p.sign))<<63 | uint64(f128ExpMax)<<48 | hi, Low: lo}
	case classNormal:
		sign, forceInf, biasedExp, hi, lo := roundAndPackWideNormal(wideFormat128, p, status)
		if forceInf {
			return F128{High: uint64(boolBit(sign))<<63 | uint64(f128ExpMax)<<48}
		}
		hi &= uint64(1)<<48 - 1 // strip the implicit bit before storing
		return F128{High: uint64(boolBit(sign))<<63 | uint64(biasedExp)<<48 | hi, Low: lo}
	default:
		unreachable("pack128", "unclassified wideParts reached pack128")
		return F128{}
	}
}

// --- NaN handling, parallel to nanpolicy.go ---

func wideFracGreater(a, b wideParts) bool {
	if a.fracHi != b.fracHi {
		return a.fracHi > b.fracHi
	}
	return a.fracLo > b.fracLo
}

// wideSilenceNaN mirrors silenceNaNParts (nanpolicy.go): a quiet NaN (or
// any non-NaN class) passes through unchanged; only a signaling NaN is
// transformed.
func wideSilenceNaN(p wideParts, status *Status) wideParts {
	if p.class != classSNaN {
		return p
	}
	if status.SNaNBitIsOne {
		// No distinct quieting transformation under this convention:
		// the operation returns the architecture default NaN instead,
		// mirroring silenceNaNParts (nanpolicy.go).
		return wideDefaultNaNParts(status)
	}
	return wideParts{class: classQNaN, sign: p.sign, fracHi: p.fracHi | (uint64(1) << 60), fracLo: p.fracLo}
}

// wideDefaultNaNParts mirrors defaultNaNParts (nanpolicy.go) at wide
// width.
func wideDefaultNaNParts(status *Status) wideParts {
	switch status.DefaultNaNStyle {
	case DefaultNaNSPARC:
		return wideParts{class: classQNaN, sign: false, fracHi: uint64(1)<<61 - 1, fracLo: ^uint64(0)}
	case DefaultNaNX86:
		return wideParts{class: classQNaN, sign: true, fracHi: uint64(1) << 60}
	case DefaultNaNPARISC:
		return wideParts{class: classQNaN, sign: false, fracHi: uint64(1) << 59}
	default: // DefaultNaNIEEE754
		return wideParts{class: classQNaN, sign: false, fracHi: uint64(1) << 60}
	}
}

// widePickNaN implements spec §7's NaN-choice policy at wide width,
// reusing NaNPolicy.pickNaN — the policy function only ever looks at
// class tags and an aBigger bool, so it is agnostic to fraction width.
func widePickNaN(a, b wideParts, status *Status) wideParts {
	aIsNaN, bIsNaN := a.class.isNaN(), b.class.isNaN()
	if a.class == classSNaN || b.class == classSNaN {
		status.raise(FlagInvalid)
	}
	if status.DefaultNaNMode {
		return wideDefaultNaNParts(status)
	}
	var chosen wideParts
	switch {
	case aIsNaN && bIsNaN:
		if status.NaNPolicy.pickNaN(a.class, b.class, wideFracGreater(a, b)) == 0 {
			chosen = a
		} else {
			chosen = b
		}
	case aIsNaN:
		chosen = a
	default:
		chosen = b
	}
	if chosen.class == classSNaN {
		return wideSilenceNaN(chosen, status)
	}
	return chosen
}
