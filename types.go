package softfloat

// F16, F32, F64 are the encoded bit patterns for IEEE 754 binary16/32/64.
// F80 and F128 need more than one machine word; see f80.go and f128.go.
type (
	F16 uint16
	F32 uint32
	F64 uint64
)

// Relation is the result of a floating-point comparison.
type Relation int

const (
	RelLess Relation = iota
	RelEqual
	RelGreater
	RelUnordered
)

// MulAddFlags composes the sign-modifier options accepted by the
// muladd family (spec §4.8).
type MulAddFlags uint8

const (
	MulAddNegateProduct MulAddFlags = 1 << iota
	MulAddNegateAddend
	MulAddNegateResult
	MulAddHalveResult
)

func unpack16(f *format, a F16, status *Status) floatParts {
	sign, exp, frac := unpackRaw(f, uint64(a))
	return canonicalize(f, sign, exp, frac, status)
}

func unpack32(f *format, a F32, status *Status) floatParts {
	sign, exp, frac := unpackRaw(f, uint64(a))
	return canonicalize(f, sign, exp, frac, status)
}

func unpack64(f *format, a F64, status *Status) floatParts {
	sign, exp, frac := unpackRaw(f, uint64(a))
	return canonicalize(f, sign, exp, frac, status)
}

func pack16(f *format, p floatParts, status *Status) F16 {
	return F16(roundAndPackCanonical(f, p, status))
}

func pack32(f *format, p floatParts, status *Status) F32 {
	return F32(roundAndPackCanonical(f, p, status))
}

func pack64(f *format, p floatParts, status *Status) F64 {
	return F64(roundAndPackCanonical(f, p, status))
}

// classifyOnly canonicalizes purely for classification, never mutating
// the caller's status (used by the IsSignalingNaN/IsQuietNaN family,
// which must not itself raise exceptions).
func classifyOnly(f *format, sign bool, exp int32, frac uint64) floatParts {
	scratch := NewStatus()
	return canonicalize(f, sign, exp, frac, scratch)
}

// --- F16 predicates & basic accessors ---

// IsNaN reports whether a is any NaN (quiet or signaling).
func (a F16) IsNaN() bool {
	_, exp, frac := unpackRaw(format16, uint64(a))
	return exp == format16.expMax && frac != 0
}

// IsInf reports whether a is infinity.
func (a F16) IsInf() bool {
	_, exp, frac := unpackRaw(format16, uint64(a))
	return exp == format16.expMax && frac == 0
}

// IsZero reports whether a is positive or negative zero.
func (a F16) IsZero() bool { return a&0x7FFF == 0 }

// Signbit reports whether a's sign bit is set.
func (a F16) Signbit() bool { return a&0x8000 != 0 }

// IsNaN reports whether a is any NaN (quiet or signaling).
func (a F32) IsNaN() bool {
	_, exp, frac := unpackRaw(format32, uint64(a))
	return exp == format32.expMax && frac != 0
}

// IsInf reports whether a is infinity.
func (a F32) IsInf() bool {
	_, exp, frac := unpackRaw(format32, uint64(a))
	return exp == format32.expMax && frac == 0
}

// IsZero reports whether a is positive or negative zero.
func (a F32) IsZero() bool { return a&0x7FFFFFFF == 0 }

// Signbit reports whether a's sign bit is set.
func (a F32) Signbit() bool { return a&0x80000000 != 0 }

// IsNaN reports whether a is any NaN (quiet or signaling).
func (a F64) IsNaN() bool {
	_, exp, frac := unpackRaw(format64, uint64(a))
	return exp == format64.expMax && frac != 0
}

// IsInf reports whether a is infinity.
func (a F64) IsInf() bool {
	_, exp, frac := unpackRaw(format64, uint64(a))
	return exp == format64.expMax && frac == 0
}

// IsZero reports whether a is positive or negative zero.
func (a F64) IsZero() bool { return a&0x7FFFFFFFFFFFFFFF == 0 }

// Signbit reports whether a's sign bit is set.
func (a F64) Signbit() bool { return a&0x8000000000000000 != 0 }
