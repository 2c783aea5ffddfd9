package fixnum

import (
	"math/big"
)

// Integer is the set of Go's built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntFrom converts any built-in integer to an Int. If the value does not fit
// in W bits the error is a ConversionError wrapping ErrLossyConversion.
func IntFrom[W Width, T Integer](v T) (out Int[W], err error) {
	var zero T
	sign, mag := Positive, uint64(v)
	if v < zero {
		// -MinInt64 wraps to itself, and uint64 of that is the right magnitude.
		sign, mag = Negative, uint64(-int64(v))
	}
	abs, ok := UintFromLimbs[W]([]uint64{mag})
	if !ok {
		return out, errLossy()
	}
	out, ok = CheckedFromSignAndAbs(sign, abs)
	if !ok {
		return out, errLossy()
	}
	return out, nil
}

// MustIntFrom is IntFrom, but it panics instead of returning an error.
func MustIntFrom[W Width, T Integer](v T) Int[W] {
	out, err := IntFrom[W](v)
	if err != nil {
		panic(err)
	}
	return out
}

// IntTo converts x to a built-in integer type. If x is outside the range of
// T the error is a ConversionError wrapping ErrLossyConversion.
//
//	v, err := fixnum.IntTo[int32](x)
func IntTo[T Integer, W Width](x Int[W]) (T, error) {
	sign, abs := x.IntoSignAndAbs()
	if !abs.IsUint64() {
		return 0, errLossy()
	}
	m := abs.AsUint64()

	var t T
	if sign == Negative {
		t = T(-int64(m))
	} else {
		t = T(m)
	}

	// Truncation and sign changes both show up as a failed round trip.
	back, err := IntFrom[W](t)
	if err != nil || back != x {
		return 0, errLossy()
	}
	return t, nil
}

// AsInt64 truncates x to an int64. Use IsInt64 to check first if the value
// must be preserved.
func (x Int[W]) AsInt64() int64 {
	v := int64(x.raw.v[0])
	if n := widthOf[W](); n > 0 && n < 64 {
		shift := 64 - n
		v = v << shift >> shift
	}
	return v
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int[W]) IsInt64() bool { return x.BitLen() <= 64 }

// AsUint64 truncates x to a uint64. Negative values come back as their 64-bit
// two's complement, as uint64(int64(v)) would.
func (x Int[W]) AsUint64() uint64 { return uint64(x.AsInt64()) }

// IsUint64 reports whether x can be represented as a uint64.
func (x Int[W]) IsUint64() bool { return !x.IsNegative() && x.raw.IsUint64() }

// IntFromUint converts an unsigned value of the same width. It fails if u
// has the top bit set, as such values only fit in Int as negatives.
func IntFromUint[W Width](u Uint[W]) (out Int[W], err error) {
	out = Int[W]{raw: u}
	if out.IsNegative() {
		return Int[W]{}, errLossy()
	}
	return out, nil
}

// Uint converts x to an unsigned value of the same width. It fails if x is
// negative; use Raw for the bit pattern instead.
func (x Int[W]) Uint() (Uint[W], error) {
	if x.IsNegative() {
		return Uint[W]{}, errLossy()
	}
	return x.raw, nil
}

// Resize converts x to another width, sign extending or truncating as
// needed. It fails if the value does not fit in the new width.
//
//	small, err := fixnum.Resize[fixnum.W64](big)
func Resize[To, From Width](x Int[From]) (out Int[To], err error) {
	sign, abs := x.IntoSignAndAbs()
	a, ok := UintFromLimbs[To](abs.v[:])
	if !ok {
		return out, errLossy()
	}
	out, ok = CheckedFromSignAndAbs(sign, a)
	if !ok {
		return out, errLossy()
	}
	return out, nil
}

// IntFromBigInt converts a big.Int to an Int. If the value does not fit it
// is clamped to IntMin or IntMax and accurate is false.
func IntFromBigInt[W Width](b *big.Int) (out Int[W], accurate bool) {
	sign := Positive
	if b.Sign() < 0 {
		sign = Negative
	}
	clamp := func() (Int[W], bool) {
		if sign == Negative {
			return IntMin[W](), false
		}
		return IntMax[W](), false
	}

	if uint(b.BitLen()) > widthOf[W]() {
		return clamp()
	}
	var buf [maxBytes]byte
	new(big.Int).Abs(b).FillBytes(buf[:])
	abs, _ := UintFromBigEndian[W](buf)

	out, ok := CheckedFromSignAndAbs(sign, abs)
	if !ok {
		return clamp()
	}
	return out, true
}

// IntoBigInt copies x into a big.Int, allowing you to retain and recycle
// memory.
func (x Int[W]) IntoBigInt(b *big.Int) {
	sign, abs := x.IntoSignAndAbs()
	abs.IntoBigInt(b)
	if sign == Negative {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies x into it.
func (x Int[W]) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

// IntFromLimbs builds an Int from the limbs of its two's complement bit
// pattern, least significant first. ok is false if a set bit falls outside
// the width; a negative value must therefore not be sign extended past it.
func IntFromLimbs[W Width](l []uint64) (out Int[W], ok bool) {
	u, ok := UintFromLimbs[W](l)
	return Int[W]{raw: u}, ok
}

// Limbs returns the two's complement bit pattern of x as ceil(Bits()/64)
// limbs, least significant first.
func (x Int[W]) Limbs() []uint64 { return x.raw.Limbs() }

// BigEndian returns the two's complement bit pattern of x as 32 big-endian
// bytes. Widths below 256 bits are zero-extended, not sign extended.
func (x Int[W]) BigEndian() [maxBytes]byte { return x.raw.BigEndian() }

// LittleEndian returns the two's complement bit pattern of x as 32
// little-endian bytes. Widths below 256 bits are zero-extended, not sign
// extended.
func (x Int[W]) LittleEndian() [maxBytes]byte { return x.raw.LittleEndian() }

// IntFromBigEndian is the counterpart to BigEndian. ok is false if a set bit
// falls outside the width.
func IntFromBigEndian[W Width](b [maxBytes]byte) (out Int[W], ok bool) {
	u, ok := UintFromBigEndian[W](b)
	return Int[W]{raw: u}, ok
}

// IntFromLittleEndian is the counterpart to LittleEndian. ok is false if a
// set bit falls outside the width.
func IntFromLittleEndian[W Width](b [maxBytes]byte) (out Int[W], ok bool) {
	u, ok := UintFromLittleEndian[W](b)
	return Int[W]{raw: u}, ok
}

// IntFromBigEndianSlice reads a bit pattern from any number of big-endian
// bytes. ok is false if it does not fit in the width.
func IntFromBigEndianSlice[W Width](b []byte) (out Int[W], ok bool) {
	u, ok := UintFromBigEndianSlice[W](b)
	return Int[W]{raw: u}, ok
}

// IntFromLittleEndianSlice reads a bit pattern from any number of
// little-endian bytes. ok is false if it does not fit in the width.
func IntFromLittleEndianSlice[W Width](b []byte) (out Int[W], ok bool) {
	u, ok := UintFromLittleEndianSlice[W](b)
	return Int[W]{raw: u}, ok
}
