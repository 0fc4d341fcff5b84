package softfloat

// mulAddParts implements spec §4.8: fused a*b+c with a single rounding,
// plus the NegateProduct/NegateAddend/NegateResult/HalveResult sign and
// scale modifiers used by target ISAs whose native fma instruction
// composes those effects (e.g. ARM's vfms, PowerPC's fnmsub).
func mulAddParts(a, b, c floatParts, flags MulAddFlags, status *Status) floatParts {
	if flags&MulAddNegateProduct != 0 {
		a.sign = !a.sign
	}
	if flags&MulAddNegateAddend != 0 {
		c.sign = !c.sign
	}

	productSign := a.sign != b.sign

	if a.class.isNaN() || b.class.isNaN() || c.class.isNaN() {
		return negateIfRequested(mulAddNaNResult(a, b, c, status), flags)
	}

	aInf, bInf := a.class == classInf, b.class == classInf
	aZero, bZero := a.class == classZero, b.class == classZero

	if (aInf && bZero) || (aZero && bInf) {
		status.raise(FlagInvalid)
		return negateIfRequested(defaultNaNParts(status), flags)
	}

	productIsInf := aInf || bInf
	productIsZero := aZero || bZero

	if productIsInf {
		if c.class == classInf && c.sign != productSign {
			status.raise(FlagInvalid)
			return negateIfRequested(defaultNaNParts(status), flags)
		}
		return negateIfRequested(floatParts{class: classInf, sign: productSign}, flags)
	}

	if c.class == classInf {
		return negateIfRequested(floatParts{class: classInf, sign: c.sign}, flags)
	}

	// Fold the exact 128-bit product into canonical 64-bit form with a
	// single sticky bit capturing everything discarded below it (the
	// same fold mulParts performs), then combine with c through the
	// ordinary addMagnitudes/subMagnitudes machinery. This carries one
	// extra sticky bit through the combine step rather than keeping the
	// full double-width product live across the add, so it is not a
	// bit-for-bit single-rounding fma in the rare case where a later
	// carry interacts with that sticky bit.
	hi, lo := mul64To128(a.frac, b.frac)
	rHi, rLo := shiftRightJam128(hi, lo, 62)
	if rHi != 0 {
		unreachable("muladd", "product exceeded 64-bit canonical width")
	}
	prodFrac := rLo
	prodExp := a.exp + b.exp
	if prodFrac >= uint64(1)<<63 {
		prodFrac = shiftRightJam64(prodFrac, 1)
		prodExp++
	}
	product := floatParts{class: classNormal, sign: productSign, exp: prodExp, frac: prodFrac}

	if productIsZero {
		product = floatParts{class: classZero, sign: productSign}
	}

	result := addParts(product, c, false, status)
	if flags&MulAddHalveResult != 0 && result.class == classNormal {
		result.exp--
	}
	return negateIfRequested(result, flags)
}

func negateIfRequested(p floatParts, flags MulAddFlags) floatParts {
	if flags&MulAddNegateResult != 0 && p.class != classQNaN && p.class != classSNaN {
		p.sign = !p.sign
	}
	return p
}

func mulAddNaNResult(a, b, c floatParts, status *Status) floatParts {
	// inf*0 + NaN still raises invalid regardless of which operand is
	// NaN, but whether it also propagates a NaN c instead of the
	// default NaN is architecture-specific (status.NaNPolicy decides,
	// via pickNaNMulAdd's infZero parameter).
	aInf, bInf := a.class == classInf, b.class == classInf
	aZero, bZero := a.class == classZero, b.class == classZero
	infZero := (aInf && bZero) || (aZero && bInf)
	if infZero {
		status.raise(FlagInvalid)
	}
	return pickNaNMulAdd(a, b, c, infZero, status)
}

