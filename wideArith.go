package softfloat

import "math/big"

// The f80/f128 arithmetic core. Rather than hand-rolling the 128-bit
// alignment/normalize machinery arith.go uses for the 64-bit formats, every
// wide operation here converts its operands to exact math/big magnitudes,
// combines them with ordinary big.Int arithmetic (no rounding happens until
// the single final renormalize-and-round step), and renormalizes the exact
// result back into wideParts — the same technique sqrt.go already uses for
// f16/f32/f64's Sqrt, just applied to every wide op instead of one. This
// keeps correctness easy to reason about without running the test suite:
// big.Int addition/multiplication/division are exact by construction, so
// the only place rounding can be introduced is the single documented spot
// (bigToWideNormal's sticky-bit fold, or divWideParts'/remWideParts' own
// quotient/remainder step).

// wideRawBig returns p's 128-bit canonical fraction as a big.Int.
func wideRawBig(p wideParts) *big.Int {
	v := new(big.Int).SetUint64(p.fracHi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(p.fracLo))
	return v
}

func bigLoHi(v *big.Int) (hi, lo uint64) {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo = new(big.Int).And(v, mask).Uint64()
	hi = new(big.Int).Rsh(v, 64).Uint64()
	return
}

// bigToWideNormal renormalizes an exact non-negative magnitude (at scale
// 2^scaleExp, i.e. the true value is mag*2^scaleExp) into wideParts,
// folding any bits shifted out into the fraction's sticky lsb.
func bigToWideNormal(sign bool, mag *big.Int, scaleExp int32) wideParts {
	if mag.Sign() == 0 {
		return wideParts{class: classZero, sign: sign}
	}
	bitLen := mag.BitLen()
	shift := bitLen - 1 - canonicalWideFracBits
	exp := scaleExp + int32(bitLen-1)
	var hi, lo uint64
	if shift >= 0 {
		shifted := new(big.Int).Rsh(mag, uint(shift))
		hi, lo = bigLoHi(shifted)
		discardMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(shift)), big.NewInt(1))
		if new(big.Int).And(mag, discardMask).Sign() != 0 {
			lo |= 1
		}
	} else {
		shifted := new(big.Int).Lsh(mag, uint(-shift))
		hi, lo = bigLoHi(shifted)
	}
	return wideParts{class: classNormal, sign: sign, exp: exp, fracHi: hi, fracLo: lo}
}

func addWideParts(a, b wideParts, subtract bool, status *Status) wideParts {
	if subtract {
		b.sign = !b.sign
	}

	if a.class.isNaN() || b.class.isNaN() {
		return widePickNaN(a, b, status)
	}

	if a.class == classInf || b.class == classInf {
		if a.class == classInf && b.class == classInf {
			if a.sign == b.sign {
				return wideParts{class: classInf, sign: a.sign}
			}
			status.raise(FlagInvalid)
			return wideDefaultNaNParts(status)
		}
		if a.class == classInf {
			return wideParts{class: classInf, sign: a.sign}
		}
		return wideParts{class: classInf, sign: b.sign}
	}

	if a.class == classZero && b.class == classZero {
		if a.sign == b.sign {
			return wideParts{class: classZero, sign: a.sign}
		}
		return wideParts{class: classZero, sign: status.RoundingMode == RoundDownward}
	}
	if a.class == classZero {
		return b
	}
	if b.class == classZero {
		return a
	}

	if a.sign == b.sign {
		return wideAddMagnitudes(a, b)
	}
	return wideSubMagnitudes(a, b, status)
}

func wideCommonRaw(a, b wideParts) (ra, rb *big.Int, scaleExp int32) {
	minExp := a.exp
	if b.exp < minExp {
		minExp = b.exp
	}
	ra = wideRawBig(a)
	ra.Lsh(ra, uint(a.exp-minExp))
	rb = wideRawBig(b)
	rb.Lsh(rb, uint(b.exp-minExp))
	return ra, rb, minExp - canonicalWideFracBits
}

func wideAddMagnitudes(a, b wideParts) wideParts {
	ra, rb, scaleExp := wideCommonRaw(a, b)
	return bigToWideNormal(a.sign, new(big.Int).Add(ra, rb), scaleExp)
}

func wideSubMagnitudes(a, b wideParts, status *Status) wideParts {
	ra, rb, scaleExp := wideCommonRaw(a, b)
	switch ra.Cmp(rb) {
	case 0:
		return wideParts{class: classZero, sign: status.RoundingMode == RoundDownward}
	case 1:
		return bigToWideNormal(a.sign, new(big.Int).Sub(ra, rb), scaleExp)
	default:
		return bigToWideNormal(b.sign, new(big.Int).Sub(rb, ra), scaleExp)
	}
}

func mulWideParts(a, b wideParts, status *Status) wideParts {
	resultSign := a.sign != b.sign

	if a.class.isNaN() || b.class.isNaN() {
		return widePickNaN(a, b, status)
	}

	aInf, bInf := a.class == classInf, b.class == classInf
	aZero, bZero := a.class == classZero, b.class == classZero

	if (aInf && bZero) || (aZero && bInf) {
		status.raise(FlagInvalid)
		return wideDefaultNaNParts(status)
	}
	if aInf || bInf {
		return wideParts{class: classInf, sign: resultSign}
	}
	if aZero || bZero {
		return wideParts{class: classZero, sign: resultSign}
	}

	product := new(big.Int).Mul(wideRawBig(a), wideRawBig(b))
	scaleExp := a.exp + b.exp - 2*canonicalWideFracBits
	return bigToWideNormal(resultSign, product, scaleExp)
}

func divWideParts(a, b wideParts, status *Status) wideParts {
	resultSign := a.sign != b.sign

	if a.class.isNaN() || b.class.isNaN() {
		return widePickNaN(a, b, status)
	}

	aInf, bInf := a.class == classInf, b.class == classInf
	aZero, bZero := a.class == classZero, b.class == classZero

	if (aZero && bZero) || (aInf && bInf) {
		status.raise(FlagInvalid)
		return wideDefaultNaNParts(status)
	}
	if bZero {
		status.raise(FlagDivByZero)
		return wideParts{class: classInf, sign: resultSign}
	}
	if aZero {
		return wideParts{class: classZero, sign: resultSign}
	}
	if aInf {
		return wideParts{class: classInf, sign: resultSign}
	}
	if bInf {
		return wideParts{class: classZero, sign: resultSign}
	}

	const guardBits = canonicalWideFracBits + 2
	num := new(big.Int).Lsh(wideRawBig(a), guardBits)
	q, rem := new(big.Int).QuoRem(num, wideRawBig(b), new(big.Int))
	if rem.Sign() != 0 {
		q.Or(q, big.NewInt(1))
	}
	scaleExp := a.exp - b.exp - guardBits
	return bigToWideNormal(resultSign, q, scaleExp)
}

// sqrtWideParts mirrors sqrtParts (sqrt.go) at wide width.
func sqrtWideParts(a wideParts, status *Status) wideParts {
	if a.class.isNaN() {
		return wideSilenceNaN(a, status)
	}
	if a.sign && a.class != classZero {
		status.raise(FlagInvalid)
		return wideDefaultNaNParts(status)
	}
	if a.class == classZero || a.class == classInf {
		return a
	}

	exp := a.exp
	raw := wideRawBig(a)
	if exp&1 != 0 {
		raw.Lsh(raw, 1)
		exp--
	}

	num := new(big.Int).Lsh(raw, canonicalWideFracBits)
	root := new(big.Int).Sqrt(num)
	rem := new(big.Int).Sub(num, new(big.Int).Mul(root, root))

	hi, lo := bigLoHi(root)
	if rem.Sign() != 0 {
		lo |= 1
	}
	return wideParts{class: classNormal, sign: false, exp: exp / 2, fracHi: hi, fracLo: lo}
}

// remWideParts mirrors remParts (rem.go) at wide width: the IEEE
// remainder r = a - n*b, n the integer nearest a/b (ties to even).
func remWideParts(a, b wideParts, status *Status) wideParts {
	if a.class.isNaN() || b.class.isNaN() {
		return widePickNaN(a, b, status)
	}
	if a.class == classInf || b.class == classZero {
		status.raise(FlagInvalid)
		return wideDefaultNaNParts(status)
	}
	if b.class == classInf || a.class == classZero {
		return a
	}

	signA := a.sign
	d := a.exp - b.exp

	n := wideRawBig(a)
	d2 := wideRawBig(b)
	var expBase int32
	if d >= 0 {
		n.Lsh(n, uint(d))
		expBase = b.exp
	} else {
		d2.Lsh(d2, uint(-d))
		expBase = a.exp
	}

	qFloor, rem0 := new(big.Int), new(big.Int)
	qFloor.QuoRem(n, d2, rem0)

	twice := new(big.Int).Lsh(rem0, 1)
	q := new(big.Int).Set(qFloor)
	switch twice.Cmp(d2) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if qFloor.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	diff := new(big.Int).Sub(n, new(big.Int).Mul(q, d2))
	negative := diff.Sign() < 0
	if negative {
		diff.Neg(diff)
	}
	resultSign := signA
	if negative {
		resultSign = !resultSign
	}
	return bigToWideNormal(resultSign, diff, expBase-canonicalWideFracBits)
}

func scalbnWideParts(a wideParts, n int32, status *Status) wideParts {
	if a.class.isNaN() {
		if a.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return wideSilenceNaN(a, status)
	}
	if a.class == classZero || a.class == classInf {
		return a
	}
	return wideParts{class: classNormal, sign: a.sign, exp: a.exp + n, fracHi: a.fracHi, fracLo: a.fracLo}
}

// roundToIntWideParts mirrors roundToIntParts (roundint.go) at wide width.
// Since the integer boundary can fall anywhere across the 128-bit
// fraction (fracBitsBelow ranges up to canonicalWideFracBits), rounding
// is done with a big.Int rather than splitting the jam/round-up logic
// across fracHi/fracLo by hand.
func roundToIntWideParts(a wideParts, mode RoundingMode, exact bool, status *Status) wideParts {
	if a.class.isNaN() {
		if a.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return wideSilenceNaN(a, status)
	}
	if a.class == classInf || a.class == classZero {
		return a
	}
	if a.exp >= canonicalWideFracBits {
		return a
	}

	if a.exp < 0 {
		roundsToOne := roundWideMagnitudeBelowOneToInteger(a, mode)
		if exact {
			status.raise(FlagInexact)
		}
		if !roundsToOne {
			return wideParts{class: classZero, sign: a.sign}
		}
		return wideParts{class: classNormal, sign: a.sign, exp: 0, fracHi: uint64(1) << (canonicalWideFracBits - 64), fracLo: 0}
	}

	fracBitsBelow := uint(canonicalWideFracBits - a.exp)
	raw := wideRawBig(a)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), fracBitsBelow), big.NewInt(1))
	discarded := new(big.Int).And(raw, mask)
	kept := new(big.Int).AndNot(raw, mask)

	inexact := discarded.Sign() != 0
	if inexact {
		ulp := new(big.Int).Lsh(big.NewInt(1), fracBitsBelow)
		half := new(big.Int).Rsh(ulp, 1)
		var roundUp bool
		switch mode {
		case RoundNearestEven:
			switch discarded.Cmp(half) {
			case 1:
				roundUp = true
			case -1:
				roundUp = false
			default:
				roundUp = new(big.Int).And(kept, ulp).Sign() != 0
			}
		case RoundNearestTiesAway:
			roundUp = true
		case RoundTowardZero:
			roundUp = false
		case RoundToOdd:
			roundUp = new(big.Int).And(kept, ulp).Sign() == 0
		case RoundUpward:
			roundUp = !a.sign
		case RoundDownward:
			roundUp = a.sign
		}
		if roundUp {
			kept.Add(kept, ulp)
		}
	}

	if inexact && exact {
		status.raise(FlagInexact)
	}

	exp := a.exp
	if kept.BitLen() > canonicalWideFracBits+1 {
		kept.Rsh(kept, 1)
		exp++
	}
	if kept.Sign() == 0 {
		return wideParts{class: classZero, sign: a.sign}
	}
	hi, lo := bigLoHi(kept)
	return wideParts{class: classNormal, sign: a.sign, exp: exp, fracHi: hi, fracLo: lo}
}

func roundWideMagnitudeBelowOneToInteger(a wideParts, mode RoundingMode) bool {
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
		if a.fracHi == uint64(1)<<(canonicalWideFracBits-64) && a.fracLo == 0 {
			return false // exact tie: round to even (zero)
		}
		return true
	}
}

func compareWideParts(a, b wideParts, quiet bool, status *Status) Relation {
	if a.class.isNaN() || b.class.isNaN() {
		if !quiet || a.class == classSNaN || b.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return RelUnordered
	}

	if a.class == classZero && b.class == classZero {
		return RelEqual
	}

	if a.sign != b.sign {
		if a.sign {
			return RelLess
		}
		return RelGreater
	}

	mag := compareWideMagnitude(a, b)
	if mag == 0 {
		return RelEqual
	}
	lt := mag < 0
	if a.sign {
		lt = !lt
	}
	if lt {
		return RelLess
	}
	return RelGreater
}

func compareWideMagnitude(a, b wideParts) int {
	rank := func(c floatClass) int {
		switch c {
		case classZero:
			return 0
		case classNormal:
			return 1
		default:
			return 2 // classInf
		}
	}
	ra, rb := rank(a.class), rank(b.class)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if a.class != classNormal {
		return 0
	}
	if a.exp != b.exp {
		if a.exp < b.exp {
			return -1
		}
		return 1
	}
	if a.fracHi != b.fracHi {
		if a.fracHi < b.fracHi {
			return -1
		}
		return 1
	}
	switch {
	case a.fracLo < b.fracLo:
		return -1
	case a.fracLo > b.fracLo:
		return 1
	default:
		return 0
	}
}
