package softfloat

// format is the L2 descriptor: the handful of constants that parameterize
// unpack/canonicalize/round-and-pack across f16, f32, f64 (and the ARM
// alternate half-precision variant). There is no runtime format registry;
// call sites reference one of the package-level descriptors directly.
type format struct {
	name string

	expBits  uint // width of the biased exponent field
	fracBits uint // width of the stored fraction field

	bias   int32 // exponent bias: (1<<expBits - 1) >> 1
	expMax int32 // maximum biased exponent (all ones)

	// fracShift is the left shift that moves an encoded fraction into
	// canonical position, where the canonical frac is a 64-bit word
	// with two bits of headroom above the leading one (bit 62).
	fracShift uint

	// roundMask covers the bits of the canonical frac that are
	// discarded by rounding to this format's precision.
	roundMask uint64

	// noInfNaN is true only for the ARM alternate half-precision
	// encoding: the max-exponent encoding is an ordinary finite number,
	// not Inf/NaN.
	noInfNaN bool
}

// canonical frac layout: bit 63 is a carry-out guard bit, bit 62 is the
// leading one of a normalized significand, bits 61..(61-fracBits+1) hold
// the stored fraction, and everything below is sticky/rounding state.
const canonicalFracBits = 62

var format16 = &format{
	name:      "f16",
	expBits:   5,
	fracBits:  10,
	bias:      15,
	expMax:    31,
	fracShift: canonicalFracBits - 10,
	roundMask: (1 << (canonicalFracBits - 10)) - 1,
}

var format16Alt = &format{
	name:      "f16alt",
	expBits:   5,
	fracBits:  10,
	bias:      15,
	expMax:    31,
	fracShift: canonicalFracBits - 10,
	roundMask: (1 << (canonicalFracBits - 10)) - 1,
	noInfNaN:  true,
}

var format32 = &format{
	name:      "f32",
	expBits:   8,
	fracBits:  23,
	bias:      127,
	expMax:    255,
	fracShift: canonicalFracBits - 23,
	roundMask: (1 << (canonicalFracBits - 23)) - 1,
}

var format64 = &format{
	name:      "f64",
	expBits:   11,
	fracBits:  52,
	bias:      1023,
	expMax:    2047,
	fracShift: canonicalFracBits - 52,
	roundMask: (1 << (canonicalFracBits - 52)) - 1,
}

// f80 and f128 exponent field widths/bias are the same as f64's wider
// cousin; they do not use the format descriptor because they have no
// shared 64-bit canonical frac (spec: "no shared canonical struct").
const (
	f80ExpBits  = 15
	f80Bias     = 16383
	f80ExpMax   = 0x7FFF
	f80FracBits = 64 // explicit integer bit included

	f128ExpBits  = 15
	f128Bias     = 16383
	f128ExpMax   = 0x7FFF
	f128FracBits = 112
)
