package softfloat

import "math"

// exp2f32/log2f32/log2f64 resolve spec.md §9's transcendentals Open
// Question (see SPEC_FULL.md §9): included, but not claimed to be
// correctly rounded — IEEE 754 never requires that of transcendentals.
// Rather than a hand-rolled polynomial that can't be test-verified here,
// these delegate to the host math package (already the fast path's
// source of truth in fastpath.go) for the transcendental core. The f32
// results are routed back through the ordinary canonical round-and-pack
// path (F64ToF32), so overflow/underflow/inexact flags from narrowing
// the host double are reported the way every other operation in this
// package reports them. log2f64 returns the host double's bits as they
// are, so it raises no rounding flags of its own.

// exp2f32 computes 2**a, rounded to binary32.
func exp2f32(a F32, status *Status) F32 {
	p := unpack32(format32, a, status)
	switch p.class {
	case classQNaN, classSNaN:
		if p.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return pack32(format32, silenceNaNParts(p, status), status)
	case classZero:
		return pack32(format32, intPartsFromMagnitude(false, 1), status)
	case classInf:
		if p.sign {
			return pack32(format32, floatParts{class: classZero}, status)
		}
		return pack32(format32, floatParts{class: classInf}, status)
	}

	x := float64(math.Float32frombits(uint32(a)))
	res := math.Exp2(x)
	return f64ValueToF32(res, status)
}

// log2f32 computes log2(a), rounded to binary32.
func log2f32(a F32, status *Status) F32 {
	p := unpack32(format32, a, status)
	if r, done := log2SpecialParts(p, status); done {
		return pack32(format32, r, status)
	}
	x := float64(math.Float32frombits(uint32(a)))
	return f64ValueToF32(math.Log2(x), status)
}

// log2f64 computes log2(a), rounded to binary64.
func log2f64(a F64, status *Status) F64 {
	p := unpack64(format64, a, status)
	if r, done := log2SpecialParts(p, status); done {
		return pack64(format64, r, status)
	}
	x := math.Float64frombits(uint64(a))
	return f64ValueToF64(math.Log2(x), status)
}

// log2SpecialParts handles the classes log2 shares across f32/f64: NaN,
// negative (Invalid, default NaN), zero (-Inf, DivByZero), +Inf (+Inf).
func log2SpecialParts(p floatParts, status *Status) (floatParts, bool) {
	switch p.class {
	case classQNaN, classSNaN:
		if p.class == classSNaN {
			status.raise(FlagInvalid)
		}
		return silenceNaNParts(p, status), true
	case classZero:
		status.raise(FlagDivByZero)
		return floatParts{class: classInf, sign: true}, true
	case classInf:
		if p.sign {
			status.raise(FlagInvalid)
			return defaultNaNParts(status), true
		}
		return floatParts{class: classInf}, true
	}
	if p.sign {
		status.raise(FlagInvalid)
		return defaultNaNParts(status), true
	}
	return floatParts{}, false
}

func f64ValueToF32(v float64, status *Status) F32 {
	if math.IsNaN(v) {
		status.raise(FlagInvalid)
		return pack32(format32, defaultNaNParts(status), status)
	}
	return F64ToF32(F64(math.Float64bits(v)), status)
}

func f64ValueToF64(v float64, status *Status) F64 {
	if math.IsNaN(v) {
		status.raise(FlagInvalid)
		return pack64(format64, defaultNaNParts(status), status)
	}
	return F64(math.Float64bits(v))
}

// Exp2F32 and Log2F32/Log2F64 are the exported entry points (spec.md
// §9's exp2/log2 trio).
func Exp2F32(a F32, status *Status) F32 { return exp2f32(a, status) }
func Log2F32(a F32, status *Status) F32 { return log2f32(a, status) }
func Log2F64(a F64, status *Status) F64 { return log2f64(a, status) }
