package softfloat

// scalbnParts implements spec §4.11's Scalbn: multiply a by 2^n exactly
// (subject to the destination format's range on the later round-and-
// pack step), leaving special classes untouched.
func scalbnParts(a floatParts, n int32, status *Status) floatParts {
	if a.class.isNaN() {
		if a.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return silenceNaNParts(a, status)
	}
	if a.class == classZero || a.class == classInf {
		return a
	}
	return floatParts{class: classNormal, sign: a.sign, exp: a.exp + n, frac: a.frac}
}
