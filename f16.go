package softfloat

// The binary16 entry points. Each is the thin unpack/compute/round-pack
// wrapper spec §9's design notes describe: canonicalize the operands
// with format16, run the shared L5 algebra on floatParts, then repack
// through format16. f16 has no host-FPU fast path; muladd and rem go
// straight to the soft path.

func Add16(a, b F16, status *Status) F16 {
	pa, pb := unpack16(format16, a, status), unpack16(format16, b, status)
	return pack16(format16, addParts(pa, pb, false, status), status)
}

func Sub16(a, b F16, status *Status) F16 {
	pa, pb := unpack16(format16, a, status), unpack16(format16, b, status)
	return pack16(format16, addParts(pa, pb, true, status), status)
}

func Mul16(a, b F16, status *Status) F16 {
	pa, pb := unpack16(format16, a, status), unpack16(format16, b, status)
	return pack16(format16, mulParts(pa, pb, status), status)
}

func Div16(a, b F16, status *Status) F16 {
	pa, pb := unpack16(format16, a, status), unpack16(format16, b, status)
	return pack16(format16, divParts(pa, pb, status), status)
}

func MulAdd16(a, b, c F16, flags MulAddFlags, status *Status) F16 {
	pa := unpack16(format16, a, status)
	pb := unpack16(format16, b, status)
	pc := unpack16(format16, c, status)
	return pack16(format16, mulAddParts(pa, pb, pc, flags, status), status)
}

func Sqrt16(a F16, status *Status) F16 {
	return pack16(format16, sqrtParts(unpack16(format16, a, status), status), status)
}

func Scalbn16(a F16, n int32, status *Status) F16 {
	return pack16(format16, scalbnParts(unpack16(format16, a, status), n, status), status)
}

func RoundToInt16(a F16, mode RoundingMode, exact bool, status *Status) F16 {
	return pack16(format16, roundToIntParts(unpack16(format16, a, status), mode, exact, status), status)
}

func Compare16(a, b F16, status *Status) Relation {
	return compareParts(unpack16(format16, a, status), unpack16(format16, b, status), false, status)
}

func CompareQuiet16(a, b F16, status *Status) Relation {
	return compareParts(unpack16(format16, a, status), unpack16(format16, b, status), true, status)
}

func minMax16(a, b F16, wantMax, byMag, propagateNaN bool, status *Status) F16 {
	pa, pb := unpack16(format16, a, status), unpack16(format16, b, status)
	return pack16(format16, minMaxParts(pa, pb, wantMax, byMag, propagateNaN, status), status)
}

func Min16(a, b F16, status *Status) F16      { return minMax16(a, b, false, false, true, status) }
func Max16(a, b F16, status *Status) F16      { return minMax16(a, b, true, false, true, status) }
func MinNum16(a, b F16, status *Status) F16   { return minMax16(a, b, false, false, false, status) }
func MaxNum16(a, b F16, status *Status) F16   { return minMax16(a, b, true, false, false, status) }
func MinNumMag16(a, b F16, status *Status) F16 { return minMax16(a, b, false, true, false, status) }
func MaxNumMag16(a, b F16, status *Status) F16 { return minMax16(a, b, true, true, false, status) }

// IsSignalingNaN16 reports whether a is a signaling NaN, without
// raising any exception flag (spec §6: the predicate family must not
// itself set Invalid).
func IsSignalingNaN16(a F16, status *Status) bool {
	sign, exp, frac := unpackRaw(format16, uint64(a))
	return classifyOnly(format16, sign, exp, frac).class == classSNaN
}

// IsQuietNaN16 reports whether a is a quiet NaN.
func IsQuietNaN16(a F16, status *Status) bool {
	sign, exp, frac := unpackRaw(format16, uint64(a))
	return classifyOnly(format16, sign, exp, frac).class == classQNaN
}

// SilenceNaN16 quiets a signaling NaN; any other class passes through.
func SilenceNaN16(a F16, status *Status) F16 {
	p := unpack16(format16, a, status)
	if p.class == classSNaN {
		status.raise(FlagInvalid)
	}
	return pack16(format16, silenceNaNParts(p, status), status)
}

// DefaultNaN16 returns the architecture-default NaN pattern selected by
// status.DefaultNaNStyle, encoded in binary16.
func DefaultNaN16(status *Status) F16 {
	return pack16(format16, defaultNaNParts(status), status)
}

// SquashInputDenormal16 applies status.FlushInputsToZero to a single
// operand, raising InputDenormal if it replaced a subnormal with zero.
func SquashInputDenormal16(a F16, status *Status) F16 {
	return pack16(format16, unpack16(format16, a, status), status)
}

// Rem16 recovers a useful library-complete rem for binary16 too, even
// though spec §6 only lists Rem for f32/f64/f80/f128: guest ISAs that
// expose fp16 remainder (e.g. ARM vfnma-class emulation helpers) still
// need it, and it shares remParts with every other width for free.
func Rem16(a, b F16, status *Status) F16 {
	pa, pb := unpack16(format16, a, status), unpack16(format16, b, status)
	return pack16(format16, remParts(pa, pb, status), status)
}

func ToInt32F16(a F16, rm RoundingMode, status *Status) int32 {
	return ToInt32Scalbn16(a, rm, 0, status)
}
func ToUint32F16(a F16, rm RoundingMode, status *Status) uint32 {
	return ToUint32Scalbn16(a, rm, 0, status)
}
