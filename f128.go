package softfloat

// F128 is the 128-bit IEEE 754 binary128 encoding: sign, 15-bit biased
// exponent, and 48-bit fraction high-part packed into High; the
// remaining 64 fraction bits in Low. See f16.go for the unpack/compute/
// round-pack shape every width follows; f128 shares wideParts (wide.go)
// with f80 instead of floatParts since neither fits a 64-bit fraction.
type F128 struct {
	High uint64
	Low  uint64
}

func Add128(a, b F128, status *Status) F128 {
	pa, pb := unpack128(a, status), unpack128(b, status)
	return pack128(addWideParts(pa, pb, false, status), status)
}

func Sub128(a, b F128, status *Status) F128 {
	pa, pb := unpack128(a, status), unpack128(b, status)
	return pack128(addWideParts(pa, pb, true, status), status)
}

func Mul128(a, b F128, status *Status) F128 {
	pa, pb := unpack128(a, status), unpack128(b, status)
	return pack128(mulWideParts(pa, pb, status), status)
}

func Div128(a, b F128, status *Status) F128 {
	pa, pb := unpack128(a, status), unpack128(b, status)
	return pack128(divWideParts(pa, pb, status), status)
}

func Sqrt128(a F128, status *Status) F128 {
	return pack128(sqrtWideParts(unpack128(a, status), status), status)
}

func Rem128(a, b F128, status *Status) F128 {
	pa, pb := unpack128(a, status), unpack128(b, status)
	return pack128(remWideParts(pa, pb, status), status)
}

func Scalbn128(a F128, n int32, status *Status) F128 {
	return pack128(scalbnWideParts(unpack128(a, status), n, status), status)
}

func RoundToInt128(a F128, mode RoundingMode, exact bool, status *Status) F128 {
	return pack128(roundToIntWideParts(unpack128(a, status), mode, exact, status), status)
}

func Compare128(a, b F128, status *Status) Relation {
	return compareWideParts(unpack128(a, status), unpack128(b, status), false, status)
}

func CompareQuiet128(a, b F128, status *Status) Relation {
	return compareWideParts(unpack128(a, status), unpack128(b, status), true, status)
}

func IsSignalingNaN128(a F128, status *Status) bool {
	sign, rawExp, fracHi, fracLo := unpackRaw128(a)
	scratch := NewStatus()
	return canonicalizeWide128(sign, rawExp, fracHi, fracLo, scratch).class == classSNaN
}

func IsQuietNaN128(a F128, status *Status) bool {
	sign, rawExp, fracHi, fracLo := unpackRaw128(a)
	scratch := NewStatus()
	return canonicalizeWide128(sign, rawExp, fracHi, fracLo, scratch).class == classQNaN
}

func SilenceNaN128(a F128, status *Status) F128 {
	p := unpack128(a, status)
	if p.class == classSNaN {
		status.raise(FlagInvalid)
	}
	return pack128(wideSilenceNaN(p, status), status)
}

func DefaultNaN128(status *Status) F128 {
	return pack128(wideDefaultNaNParts(status), status)
}

func SquashInputDenormal128(a F128, status *Status) F128 {
	return pack128(unpack128(a, status), status)
}

// IsNaN reports whether a is any NaN (quiet or signaling).
func (a F128) IsNaN() bool {
	_, rawExp, fracHi, fracLo := unpackRaw128(a)
	return rawExp == f128ExpMax && (fracHi != 0 || fracLo != 0)
}

// IsInf reports whether a is infinity.
func (a F128) IsInf() bool {
	_, rawExp, fracHi, fracLo := unpackRaw128(a)
	return rawExp == f128ExpMax && fracHi == 0 && fracLo == 0
}

// IsZero reports whether a is positive or negative zero.
func (a F128) IsZero() bool {
	return a.High&0x7FFFFFFFFFFFFFFF == 0 && a.Low == 0
}

// Signbit reports whether a's sign bit is set.
func (a F128) Signbit() bool { return a.High&0x8000000000000000 != 0 }
