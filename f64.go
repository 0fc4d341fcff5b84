package softfloat

// The binary64 entry points; see f16.go for the unpack/compute/round-
// pack shape every width follows.

func Add64(a, b F64, status *Status) F64 {
	if r, ok := tryFastAdd64(a, b, status); ok {
		return r
	}
	pa, pb := unpack64(format64, a, status), unpack64(format64, b, status)
	return pack64(format64, addParts(pa, pb, false, status), status)
}

func Sub64(a, b F64, status *Status) F64 {
	if r, ok := tryFastSub64(a, b, status); ok {
		return r
	}
	pa, pb := unpack64(format64, a, status), unpack64(format64, b, status)
	return pack64(format64, addParts(pa, pb, true, status), status)
}

func Mul64(a, b F64, status *Status) F64 {
	if r, ok := tryFastMul64(a, b, status); ok {
		return r
	}
	pa, pb := unpack64(format64, a, status), unpack64(format64, b, status)
	return pack64(format64, mulParts(pa, pb, status), status)
}

func Div64(a, b F64, status *Status) F64 {
	if r, ok := tryFastDiv64(a, b, status); ok {
		return r
	}
	pa, pb := unpack64(format64, a, status), unpack64(format64, b, status)
	return pack64(format64, divParts(pa, pb, status), status)
}

func MulAdd64(a, b, c F64, flags MulAddFlags, status *Status) F64 {
	if r, ok := tryFastMulAdd64(a, b, c, flags, status); ok {
		return r
	}
	pa := unpack64(format64, a, status)
	pb := unpack64(format64, b, status)
	pc := unpack64(format64, c, status)
	return pack64(format64, mulAddParts(pa, pb, pc, flags, status), status)
}

func Sqrt64(a F64, status *Status) F64 {
	if r, ok := tryFastSqrt64(a, status); ok {
		return r
	}
	return pack64(format64, sqrtParts(unpack64(format64, a, status), status), status)
}

func Rem64(a, b F64, status *Status) F64 {
	pa, pb := unpack64(format64, a, status), unpack64(format64, b, status)
	return pack64(format64, remParts(pa, pb, status), status)
}

func Scalbn64(a F64, n int32, status *Status) F64 {
	return pack64(format64, scalbnParts(unpack64(format64, a, status), n, status), status)
}

func RoundToInt64(a F64, mode RoundingMode, exact bool, status *Status) F64 {
	return pack64(format64, roundToIntParts(unpack64(format64, a, status), mode, exact, status), status)
}

func Compare64(a, b F64, status *Status) Relation {
	return compareParts(unpack64(format64, a, status), unpack64(format64, b, status), false, status)
}

func CompareQuiet64(a, b F64, status *Status) Relation {
	return compareParts(unpack64(format64, a, status), unpack64(format64, b, status), true, status)
}

func minMax64(a, b F64, wantMax, byMag, propagateNaN bool, status *Status) F64 {
	pa, pb := unpack64(format64, a, status), unpack64(format64, b, status)
	return pack64(format64, minMaxParts(pa, pb, wantMax, byMag, propagateNaN, status), status)
}

func Min64(a, b F64, status *Status) F64       { return minMax64(a, b, false, false, true, status) }
func Max64(a, b F64, status *Status) F64       { return minMax64(a, b, true, false, true, status) }
func MinNum64(a, b F64, status *Status) F64    { return minMax64(a, b, false, false, false, status) }
func MaxNum64(a, b F64, status *Status) F64    { return minMax64(a, b, true, false, false, status) }
func MinNumMag64(a, b F64, status *Status) F64 { return minMax64(a, b, false, true, false, status) }
func MaxNumMag64(a, b F64, status *Status) F64 { return minMax64(a, b, true, true, false, status) }

func IsSignalingNaN64(a F64, status *Status) bool {
	sign, exp, frac := unpackRaw(format64, uint64(a))
	return classifyOnly(format64, sign, exp, frac).class == classSNaN
}

func IsQuietNaN64(a F64, status *Status) bool {
	sign, exp, frac := unpackRaw(format64, uint64(a))
	return classifyOnly(format64, sign, exp, frac).class == classQNaN
}

func SilenceNaN64(a F64, status *Status) F64 {
	p := unpack64(format64, a, status)
	if p.class == classSNaN {
		status.raise(FlagInvalid)
	}
	return pack64(format64, silenceNaNParts(p, status), status)
}

func DefaultNaN64(status *Status) F64 {
	return pack64(format64, defaultNaNParts(status), status)
}

func SquashInputDenormal64(a F64, status *Status) F64 {
	return pack64(format64, unpack64(format64, a, status), status)
}

func ToInt32F64(a F64, rm RoundingMode, status *Status) int32 {
	return ToInt32Scalbn64(a, rm, 0, status)
}
func ToInt64F64(a F64, rm RoundingMode, status *Status) int64 {
	return ToInt64Scalbn64(a, rm, 0, status)
}
func ToUint32F64(a F64, rm RoundingMode, status *Status) uint32 {
	return ToUint32Scalbn64(a, rm, 0, status)
}
func ToUint64F64(a F64, rm RoundingMode, status *Status) uint64 {
	return ToUint64Scalbn64(a, rm, 0, status)
}
