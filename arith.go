package softfloat

// The L5 arithmetic core: add, sub, mul, div operate on the canonical
// floatParts shared by f16/f32/f64 (spec §4.6, §4.7, §4.9). Each
// returns an unrounded floatParts that the per-width wrapper (f16.go,
// f32.go, f64.go) passes through roundAndPackCanonical.

// addParts implements spec §4.6: same-sign magnitudes add, opposite-sign
// magnitudes subtract. subtract flips b's effective sign first.
func addParts(a, b floatParts, subtract bool, status *Status) floatParts {
	if subtract {
		b.sign = !b.sign
	}

	if a.class.isNaN() || b.class.isNaN() {
		return pickNaN(nil, "add", a, b, status)
	}

	if a.class == classInf || b.class == classInf {
		if a.class == classInf && b.class == classInf {
			if a.sign == b.sign {
				return floatParts{class: classInf, sign: a.sign}
			}
			status.raise(FlagInvalid)
			return defaultNaNParts(status)
		}
		if a.class == classInf {
			return floatParts{class: classInf, sign: a.sign}
		}
		return floatParts{class: classInf, sign: b.sign}
	}

	if a.class == classZero && b.class == classZero {
		if a.sign == b.sign {
			return floatParts{class: classZero, sign: a.sign}
		}
		return floatParts{class: classZero, sign: status.RoundingMode == RoundDownward}
	}
	if a.class == classZero {
		return b
	}
	if b.class == classZero {
		return a
	}

	if a.sign == b.sign {
		return addMagnitudes(a, b)
	}
	return subMagnitudes(a, b, status)
}

// addMagnitudes sums two same-signed NORMAL operands.
func addMagnitudes(a, b floatParts) floatParts {
	if a.exp < b.exp || (a.exp == b.exp && a.frac < b.frac) {
		a, b = b, a
	}
	diff := uint(a.exp - b.exp)
	bFrac := shiftRightJam64(b.frac, diff)
	sum := a.frac + bFrac
	exp := a.exp
	if sum >= uint64(1)<<63 {
		sum = shiftRightJam64(sum, 1)
		exp++
	}
	return floatParts{class: classNormal, sign: a.sign, exp: exp, frac: sum}
}

// subMagnitudes subtracts the smaller-magnitude operand from the
// larger; the result sign follows the larger operand, with the
// downward-rounding tie-break to "-" on an exact zero result.
func subMagnitudes(a, b floatParts, status *Status) floatParts {
	if a.exp < b.exp || (a.exp == b.exp && a.frac < b.frac) {
		a, b = b, a
	}
	diff := uint(a.exp - b.exp)
	bFrac := shiftRightJam64(b.frac, diff)
	d := a.frac - bFrac
	if d == 0 {
		return floatParts{class: classZero, sign: status.RoundingMode == RoundDownward}
	}
	lz := countLeadingZeros64(d)
	shift := lz - 1
	return floatParts{class: classNormal, sign: a.sign, exp: a.exp - int32(shift), frac: d << shift}
}

// mulParts implements spec §4.7.
func mulParts(a, b floatParts, status *Status) floatParts {
	resultSign := a.sign != b.sign

	if a.class.isNaN() || b.class.isNaN() {
		return pickNaN(nil, "mul", a, b, status)
	}

	aInf, bInf := a.class == classInf, b.class == classInf
	aZero, bZero := a.class == classZero, b.class == classZero

	if (aInf && bZero) || (aZero && bInf) {
		status.raise(FlagInvalid)
		return defaultNaNParts(status)
	}
	if aInf || bInf {
		return floatParts{class: classInf, sign: resultSign}
	}
	if aZero || bZero {
		return floatParts{class: classZero, sign: resultSign}
	}

	hi, lo := mul64To128(a.frac, b.frac)
	rHi, rLo := shiftRightJam128(hi, lo, 62)
	if rHi != 0 {
		unreachable("mul", "product exceeded 64-bit canonical width")
	}
	frac := rLo
	exp := a.exp + b.exp
	if frac >= uint64(1)<<63 {
		frac = shiftRightJam64(frac, 1)
		exp++
	}
	return floatParts{class: classNormal, sign: resultSign, exp: exp, frac: frac}
}

// divParts implements spec §4.9.
func divParts(a, b floatParts, status *Status) floatParts {
	resultSign := a.sign != b.sign

	if a.class.isNaN() || b.class.isNaN() {
		return pickNaN(nil, "div", a, b, status)
	}

	aInf, bInf := a.class == classInf, b.class == classInf
	aZero, bZero := a.class == classZero, b.class == classZero

	if (aZero && bZero) || (aInf && bInf) {
		status.raise(FlagInvalid)
		return defaultNaNParts(status)
	}
	if bZero {
		status.raise(FlagDivByZero)
		return floatParts{class: classInf, sign: resultSign}
	}
	if aZero {
		return floatParts{class: classZero, sign: resultSign}
	}
	if aInf {
		return floatParts{class: classInf, sign: resultSign}
	}
	if bInf {
		return floatParts{class: classZero, sign: resultSign}
	}

	nHi, nLo := shiftLeft128(0, a.frac, 62)
	q := estimateDiv128By64(nHi, nLo, b.frac)
	qHi, qLo := mul64To128(q, b.frac)
	remHi, remLo := sub128(nHi, nLo, qHi, qLo)
	for int64(remHi) < 0 {
		q--
		remHi, remLo = add128(remHi, remLo, 0, b.frac)
	}
	inexact := remHi != 0 || remLo != 0

	exp := a.exp - b.exp
	if q < uint64(1)<<62 {
		q <<= 1
		exp--
	}
	if inexact {
		q |= 1
	}
	return floatParts{class: classNormal, sign: resultSign, exp: exp, frac: q}
}

// compareMagnitude orders two NORMAL or ZERO floatParts by magnitude,
// ignoring sign: -1, 0, or 1.
func compareMagnitude(a, b floatParts) int {
	av, bv := magnitudeRank(a), magnitudeRank(b)
	switch {
	case lessMag(av, bv):
		return -1
	case lessMag(bv, av):
		return 1
	default:
		return 0
	}
}

type magRank struct {
	class floatClass
	exp   int32
	frac  uint64
}

func magnitudeRank(p floatParts) magRank {
	return magRank{class: p.class, exp: p.exp, frac: p.frac}
}

func lessMag(a, b magRank) bool {
	rank := func(c floatClass) int {
		switch c {
		case classZero:
			return 0
		case classNormal:
			return 1
		case classInf:
			return 2
		default:
			return 3
		}
	}
	ra, rb := rank(a.class), rank(b.class)
	if ra != rb {
		return ra < rb
	}
	if a.class != classNormal {
		return false
	}
	if a.exp != b.exp {
		return a.exp < b.exp
	}
	return a.frac < b.frac
}
