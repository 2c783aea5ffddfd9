package fixnum

// Int is a signed integer of exactly W bits in two's complement form. It
// wraps a Uint of the same width and co-opts its most significant bit as the
// sign; the sign is read from the bit pattern on demand rather than stored.
//
// With W of 0 the only value is zero. With W of 1 the only values are 0 and
// -1; there is no representable 1.
//
// Int is a value type; all operations return new values and two Ints of the
// same width are equal under == if and only if they hold the same number.
type Int[W Width] struct {
	raw Uint[W]
}

// signMask returns the limb holding the sign bit and the bit's mask within
// it. For zero-width types the mask is zero and there is no sign bit.
func signMask(bits uint) (limb int, mask uint64) {
	if bits == 0 {
		return 0, 0
	}
	return int((bits - 1) / 64), 1 << ((bits - 1) % 64)
}

// IntFromRaw reinterprets the bits of an unsigned value as a two's
// complement signed value. Values with the top bit set become negative.
func IntFromRaw[W Width](u Uint[W]) Int[W] { return Int[W]{raw: u} }

// Raw returns the bits of x as an unsigned value. Negative values come back
// as the two's complement of their magnitude. See IntFromRaw() for the
// counterpart.
func (x Int[W]) Raw() Uint[W] { return x.raw }

func IntZero[W Width]() Int[W] { return Int[W]{} }

// IntOne returns the value with the bit pattern of unsigned 1. For a 1-bit
// width that pattern is -1.
func IntOne[W Width]() Int[W] { return Int[W]{raw: UintFrom64[W](1)} }

func IntMinusOne[W Width]() Int[W] { return Int[W]{raw: UintMax[W]()} }

// IntMin returns the most negative value: the sign bit set and every other
// bit clear.
func IntMin[W Width]() Int[W] {
	var x Int[W]
	limb, mask := signMask(widthOf[W]())
	x.raw.v[limb] = mask
	return x
}

// IntMax returns the most positive value: the sign bit clear and every other
// bit set.
func IntMax[W Width]() Int[W] {
	u := UintMax[W]()
	limb, mask := signMask(widthOf[W]())
	u.v[limb] &^= mask
	return Int[W]{raw: u}
}

// Bits returns the width of x in bits.
func (x Int[W]) Bits() uint { return widthOf[W]() }

// Sign returns Negative if the sign bit of x is set. Zero is Positive.
func (x Int[W]) Sign() Sign {
	limb, mask := signMask(widthOf[W]())
	// No bit above the sign bit can be set, so >= stands in for a bit test.
	if mask != 0 && x.raw.v[limb] >= mask {
		return Negative
	}
	return Positive
}

func (x Int[W]) IsZero() bool { return x.raw.IsZero() }

// IsPositive reports whether x > 0.
func (x Int[W]) IsPositive() bool { return !x.IsZero() && x.Sign() == Positive }

// IsNegative reports whether x < 0.
func (x Int[W]) IsNegative() bool { return x.Sign() == Negative }

func (x Int[W]) IsOdd() bool { return x.raw.IsOdd() }

// IntoSignAndAbs splits x into its sign and magnitude. The magnitude of
// IntMin does not fit in Int but does fit in Uint.
func (x Int[W]) IntoSignAndAbs() (Sign, Uint[W]) {
	sign := x.Sign()
	if sign == Negative {
		return sign, x.raw.Neg()
	}
	return sign, x.raw
}

// UnsignedAbs returns the magnitude of x. It cannot overflow.
func (x Int[W]) UnsignedAbs() Uint[W] {
	_, abs := x.IntoSignAndAbs()
	return abs
}

// OverflowingFromSignAndAbs builds the value with the given sign and
// magnitude. The result is wrapped if the magnitude does not fit, in which
// case overflow is true. A Negative sign with a zero magnitude is zero and is
// not an overflow.
func OverflowingFromSignAndAbs[W Width](sign Sign, abs Uint[W]) (x Int[W], overflow bool) {
	x.raw = abs
	if sign == Negative {
		x.raw = abs.Neg()
	}
	return x, x.Sign() != sign && !x.IsZero()
}

// CheckedFromSignAndAbs builds the value with the given sign and magnitude.
// ok is false if the magnitude does not fit.
func CheckedFromSignAndAbs[W Width](sign Sign, abs Uint[W]) (x Int[W], ok bool) {
	x, overflow := OverflowingFromSignAndAbs(sign, abs)
	if overflow {
		return Int[W]{}, false
	}
	return x, true
}

func (x Int[W]) OnesCount() uint     { return x.raw.OnesCount() }
func (x Int[W]) ZerosCount() uint    { return widthOf[W]() - x.raw.OnesCount() }
func (x Int[W]) LeadingZeros() uint  { return x.raw.LeadingZeros() }
func (x Int[W]) TrailingZeros() uint { return x.raw.TrailingZeros() }
func (x Int[W]) LeadingOnes() uint   { return x.raw.Not().LeadingZeros() }
func (x Int[W]) TrailingOnes() uint  { return x.raw.Not().TrailingZeros() }

// Bit reports whether bit i of the two's complement representation is set.
// It panics if i >= Bits().
func (x Int[W]) Bit(i uint) bool { return x.raw.Bit(i) }

// Byte returns byte i of the two's complement representation, numbered
// big-endian. It panics if i >= Bits()/8.
func (x Int[W]) Byte(i uint) byte { return x.raw.Byte(i) }

// BitLen returns the least number of bits needed to represent x as a signed
// integer of any width.
//
// Negative powers of two (0b11..1100..00) need no more bits than their
// magnitude does as an unsigned number: -128 fits in 8 bits, as does 128
// unsigned. Every other non-zero value needs one more bit for the sign.
func (x Int[W]) BitLen() uint {
	n := x.UnsignedAbs().BitLen()
	if x.ZerosCount() == x.TrailingZeros() {
		// zero, or a negative power of two
		return n
	}
	return n + 1
}

func (x Int[W]) And(y Int[W]) Int[W] { return Int[W]{raw: x.raw.And(y.raw)} }
func (x Int[W]) Or(y Int[W]) Int[W]  { return Int[W]{raw: x.raw.Or(y.raw)} }
func (x Int[W]) Xor(y Int[W]) Int[W] { return Int[W]{raw: x.raw.Xor(y.raw)} }
func (x Int[W]) Not() Int[W]         { return Int[W]{raw: x.raw.Not()} }

// cmpKey flips the sign bit so that unsigned ordering of the result matches
// signed ordering of x.
func (x Int[W]) cmpKey() limbs {
	limb, mask := signMask(widthOf[W]())
	k := x.raw.v
	k[limb] ^= mask
	return k
}

// Cmp compares x to y and returns:
//
//	< 0 if x <  y
//	  0 if x == y
//	> 0 if x >  y
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (x Int[W]) Cmp(y Int[W]) int {
	xk, yk := x.cmpKey(), y.cmpKey()
	return cmpLimbs(&xk, &yk)
}

func (x Int[W]) Equal(y Int[W]) bool            { return x.raw == y.raw }
func (x Int[W]) GreaterThan(y Int[W]) bool      { return x.Cmp(y) > 0 }
func (x Int[W]) GreaterOrEqualTo(y Int[W]) bool { return x.Cmp(y) >= 0 }
func (x Int[W]) LessThan(y Int[W]) bool         { return x.Cmp(y) < 0 }
func (x Int[W]) LessOrEqualTo(y Int[W]) bool    { return x.Cmp(y) <= 0 }
