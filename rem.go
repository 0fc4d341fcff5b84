package softfloat

import "math/big"

// remParts implements spec §4.9/§6's Rem: the IEEE 754 remainder of
// a/b, r = a - n*b where n is the integer nearest the exact value a/b
// (ties to even). Unlike fmod/the C '%' operator, n is *rounded*, not
// truncated, so the result's sign is not simply a's sign — e.g.
// rem(1.5, 1.0) = -0.5, because n = round(1.5) = 2.
//
// The magnitude is computed exactly with math/big: the significands are
// aligned by the exponent difference, QuoRem gives the truncated
// quotient and remainder, and the quotient is then rounded to nearest
// (ties to even). math/big is used because a/b's exponent difference
// can require more than 192 bits of scratch (the L1 192-bit primitives
// only cover the fixed-width case divide needs); estimateDiv128By64 is
// not used here.
func remParts(a, b floatParts, status *Status) floatParts {
	if a.class.isNaN() || b.class.isNaN() {
		return pickNaN(nil, "rem", a, b, status)
	}
	if a.class == classInf || b.class == classZero {
		status.raise(FlagInvalid)
		return defaultNaNParts(status)
	}
	if b.class == classInf || a.class == classZero {
		return a
	}

	signA := a.sign
	d := a.exp - b.exp

	A := new(big.Int).SetUint64(a.frac)
	B := new(big.Int).SetUint64(b.frac)

	var n, d2 *big.Int
	var expBase int32
	if d >= 0 {
		n = new(big.Int).Lsh(A, uint(d))
		d2 = B
		expBase = b.exp
	} else {
		n = A
		d2 = new(big.Int).Lsh(B, uint(-d))
		expBase = a.exp
	}

	qFloor := new(big.Int)
	rem0 := new(big.Int)
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
	if diff.Sign() == 0 {
		return floatParts{class: classZero, sign: signA}
	}

	resultSign := signA
	if negative {
		resultSign = !resultSign
	}

	bitLen := diff.BitLen()
	shift := bitLen - 1 - canonicalFracBits
	var frac64 uint64
	if shift >= 0 {
		shifted := new(big.Int).Rsh(diff, uint(shift))
		frac64 = shifted.Uint64()
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(shift)), big.NewInt(1))
		if new(big.Int).And(diff, mask).Sign() != 0 {
			frac64 |= 1
		}
	} else {
		frac64 = diff.Uint64() << uint(-shift)
	}

	return floatParts{class: classNormal, sign: resultSign, exp: expBase + int32(shift), frac: frac64}
}
