package softfloat

// The binary32 entry points; see f16.go for the unpack/compute/round-
// pack shape every width follows.

func Add32(a, b F32, status *Status) F32 {
	if r, ok := tryFastAdd32(a, b, status); ok {
		return r
	}
	pa, pb := unpack32(format32, a, status), unpack32(format32, b, status)
	return pack32(format32, addParts(pa, pb, false, status), status)
}

func Sub32(a, b F32, status *Status) F32 {
	if r, ok := tryFastSub32(a, b, status); ok {
		return r
	}
	pa, pb := unpack32(format32, a, status), unpack32(format32, b, status)
	return pack32(format32, addParts(pa, pb, true, status), status)
}

func Mul32(a, b F32, status *Status) F32 {
	if r, ok := tryFastMul32(a, b, status); ok {
		return r
	}
	pa, pb := unpack32(format32, a, status), unpack32(format32, b, status)
	return pack32(format32, mulParts(pa, pb, status), status)
}

func Div32(a, b F32, status *Status) F32 {
	if r, ok := tryFastDiv32(a, b, status); ok {
		return r
	}
	pa, pb := unpack32(format32, a, status), unpack32(format32, b, status)
	return pack32(format32, divParts(pa, pb, status), status)
}

func MulAdd32(a, b, c F32, flags MulAddFlags, status *Status) F32 {
	if r, ok := tryFastMulAdd32(a, b, c, flags, status); ok {
		return r
	}
	pa := unpack32(format32, a, status)
	pb := unpack32(format32, b, status)
	pc := unpack32(format32, c, status)
	return pack32(format32, mulAddParts(pa, pb, pc, flags, status), status)
}

func Sqrt32(a F32, status *Status) F32 {
	if r, ok := tryFastSqrt32(a, status); ok {
		return r
	}
	return pack32(format32, sqrtParts(unpack32(format32, a, status), status), status)
}

func Rem32(a, b F32, status *Status) F32 {
	pa, pb := unpack32(format32, a, status), unpack32(format32, b, status)
	return pack32(format32, remParts(pa, pb, status), status)
}

func Scalbn32(a F32, n int32, status *Status) F32 {
	return pack32(format32, scalbnParts(unpack32(format32, a, status), n, status), status)
}

func RoundToInt32(a F32, mode RoundingMode, exact bool, status *Status) F32 {
	return pack32(format32, roundToIntParts(unpack32(format32, a, status), mode, exact, status), status)
}

func Compare32(a, b F32, status *Status) Relation {
	return compareParts(unpack32(format32, a, status), unpack32(format32, b, status), false, status)
}

func CompareQuiet32(a, b F32, status *Status) Relation {
	return compareParts(unpack32(format32, a, status), unpack32(format32, b, status), true, status)
}

func minMax32(a, b F32, wantMax, byMag, propagateNaN bool, status *Status) F32 {
	pa, pb := unpack32(format32, a, status), unpack32(format32, b, status)
	return pack32(format32, minMaxParts(pa, pb, wantMax, byMag, propagateNaN, status), status)
}

func Min32(a, b F32, status *Status) F32       { return minMax32(a, b, false, false, true, status) }
func Max32(a, b F32, status *Status) F32       { return minMax32(a, b, true, false, true, status) }
func MinNum32(a, b F32, status *Status) F32    { return minMax32(a, b, false, false, false, status) }
func MaxNum32(a, b F32, status *Status) F32    { return minMax32(a, b, true, false, false, status) }
func MinNumMag32(a, b F32, status *Status) F32 { return minMax32(a, b, false, true, false, status) }
func MaxNumMag32(a, b F32, status *Status) F32 { return minMax32(a, b, true, true, false, status) }

func IsSignalingNaN32(a F32, status *Status) bool {
	sign, exp, frac := unpackRaw(format32, uint64(a))
	return classifyOnly(format32, sign, exp, frac).class == classSNaN
}

func IsQuietNaN32(a F32, status *Status) bool {
	sign, exp, frac := unpackRaw(format32, uint64(a))
	return classifyOnly(format32, sign, exp, frac).class == classQNaN
}

func SilenceNaN32(a F32, status *Status) F32 {
	p := unpack32(format32, a, status)
	if p.class == classSNaN {
		status.raise(FlagInvalid)
	}
	return pack32(format32, silenceNaNParts(p, status), status)
}

func DefaultNaN32(status *Status) F32 {
	return pack32(format32, defaultNaNParts(status), status)
}

func SquashInputDenormal32(a F32, status *Status) F32 {
	return pack32(format32, unpack32(format32, a, status), status)
}

// ToInt32F32 / ToUint32F32 / ToInt64F32 / ToUint64F32 are the zero-scale
// convenience forms of the Scalbn family (spec §6's "F_to_int<W>" with
// scale fixed at 0).
func ToInt32F32(a F32, rm RoundingMode, status *Status) int32 {
	return ToInt32Scalbn32(a, rm, 0, status)
}
func ToInt64F32(a F32, rm RoundingMode, status *Status) int64 {
	return ToInt64Scalbn32(a, rm, 0, status)
}
func ToUint32F32(a F32, rm RoundingMode, status *Status) uint32 {
	return ToUint32Scalbn32(a, rm, 0, status)
}
func ToUint64F32(a F32, rm RoundingMode, status *Status) uint64 {
	return ToUint64Scalbn32(a, rm, 0, status)
}
