package softfloat

// F80 is the 80-bit x87 extended-precision encoding: a 64-bit explicit
// significand (the integer bit is stored, not implicit) in Low, and the
// sign/15-bit biased exponent in the low 16 bits of High. See f16.go for
// the unpack/compute/round-pack shape every width follows; f80 and f128
// share wideParts (wide.go) instead of floatParts since neither fits a
// 64-bit fraction.
type F80 struct {
	High uint16
	Low  uint64
}

func Add80(a, b F80, status *Status) F80 {
	pa, pb := unpack80(a, status), unpack80(b, status)
	return pack80(addWideParts(pa, pb, false, status), status)
}

func Sub80(a, b F80, status *Status) F80 {
	pa, pb := unpack80(a, status), unpack80(b, status)
	return pack80(addWideParts(pa, pb, true, status), status)
}

func Mul80(a, b F80, status *Status) F80 {
	pa, pb := unpack80(a, status), unpack80(b, status)
	return pack80(mulWideParts(pa, pb, status), status)
}

func Div80(a, b F80, status *Status) F80 {
	pa, pb := unpack80(a, status), unpack80(b, status)
	return pack80(divWideParts(pa, pb, status), status)
}

func Sqrt80(a F80, status *Status) F80 {
	return pack80(sqrtWideParts(unpack80(a, status), status), status)
}

func Rem80(a, b F80, status *Status) F80 {
	pa, pb := unpack80(a, status), unpack80(b, status)
	return pack80(remWideParts(pa, pb, status), status)
}

func Scalbn80(a F80, n int32, status *Status) F80 {
	return pack80(scalbnWideParts(unpack80(a, status), n, status), status)
}

func RoundToInt80(a F80, mode RoundingMode, exact bool, status *Status) F80 {
	return pack80(roundToIntWideParts(unpack80(a, status), mode, exact, status), status)
}

func Compare80(a, b F80, status *Status) Relation {
	return compareWideParts(unpack80(a, status), unpack80(b, status), false, status)
}

func CompareQuiet80(a, b F80, status *Status) Relation {
	return compareWideParts(unpack80(a, status), unpack80(b, status), true, status)
}

func IsSignalingNaN80(a F80, status *Status) bool {
	sign, rawExp, rawFrac := unpackRaw80(a)
	if !validF80Encoding(rawExp, rawFrac) {
		return false
	}
	scratch := NewStatus()
	return canonicalizeWide80(sign, rawExp, rawFrac, scratch).class == classSNaN
}

func IsQuietNaN80(a F80, status *Status) bool {
	sign, rawExp, rawFrac := unpackRaw80(a)
	if !validF80Encoding(rawExp, rawFrac) {
		return false
	}
	scratch := NewStatus()
	return canonicalizeWide80(sign, rawExp, rawFrac, scratch).class == classQNaN
}

func SilenceNaN80(a F80, status *Status) F80 {
	p := unpack80(a, status)
	if p.class == classSNaN {
		status.raise(FlagInvalid)
	}
	return pack80(wideSilenceNaN(p, status), status)
}

func DefaultNaN80(status *Status) F80 {
	return pack80(wideDefaultNaNParts(status), status)
}

func SquashInputDenormal80(a F80, status *Status) F80 {
	return pack80(unpack80(a, status), status)
}

// IsNaN reports whether a is any NaN (quiet or signaling), including
// the pseudo-denormal/unnormal encodings spec §7 treats as invalid (any
// encoding rejected by validF80Encoding is surfaced here as a NaN since
// it has no finite value).
func (a F80) IsNaN() bool {
	_, rawExp, rawFrac := unpackRaw80(a)
	if !validF80Encoding(rawExp, rawFrac) {
		return true
	}
	return rawExp == f80ExpMax && rawFrac != uint64(1)<<63
}

// IsInf reports whether a is infinity.
func (a F80) IsInf() bool {
	_, rawExp, rawFrac := unpackRaw80(a)
	return rawExp == f80ExpMax && rawFrac == uint64(1)<<63
}

// IsZero reports whether a is positive or negative zero.
func (a F80) IsZero() bool { return a.High&0x7FFF == 0 && a.Low == 0 }

// Signbit reports whether a's sign bit is set.
func (a F80) Signbit() bool { return a.High&0x8000 != 0 }
