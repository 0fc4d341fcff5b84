package softfloat

import "math/big"

// sqrtParts implements spec §4.10. The reference computes the root
// digit-by-digit (a restoring square-root recurrence over the
// significand with guard bits); that recurrence is mathematically
// identical to taking the exact integer square root of the
// appropriately scaled significand and tracking whether any remainder
// was discarded, which is what this does using math/big's exact
// integer Sqrt (the same technique the pack's arbitrary-precision
// arithmetic examples use for root extraction).
func sqrtParts(a floatParts, status *Status) floatParts {
	if a.class.isNaN() {
		return silenceNaNParts(a, status)
	}
	if a.sign && a.class != classZero {
		status.raise(FlagInvalid)
		return defaultNaNParts(status)
	}
	if a.class == classZero {
		return a
	}
	if a.class == classInf {
		return a
	}

	exp := a.exp
	numeratorFrac := a.frac
	// Normalize to an even exponent so sqrt(frac * 2^exp) factors as
	// sqrt(frac') * 2^(exp'/2) for an integer exp'/2.
	if exp&1 != 0 {
		numeratorFrac <<= 1
		exp--
	}

	num := new(big.Int).Lsh(new(big.Int).SetUint64(numeratorFrac), 62)
	root := new(big.Int).Sqrt(num)
	rem := new(big.Int).Sub(num, new(big.Int).Mul(root, root))

	frac := root.Uint64()
	if rem.Sign() != 0 {
		frac |= 1
	}
	return floatParts{class: classNormal, sign: false, exp: exp / 2, frac: frac}
}
