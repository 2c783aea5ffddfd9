package fixnum

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Uint is an unsigned integer of exactly W bits. Arithmetic wraps modulo
// 2**W unless an Overflowing variant is used.
//
// Uint is a value type; all operations return new values. Two Uints of the
// same width are equal under == if and only if they hold the same number.
type Uint[W Width] struct {
	v limbs
}

// truncLimbs clears every bit at or above bit position n.
func truncLimbs(x limbs, n uint) limbs {
	for i := range x {
		lo := uint(i) * 64
		if lo >= n {
			x[i] = 0
		} else if n-lo < 64 {
			x[i] &= (1 << (n - lo)) - 1
		}
	}
	return x
}

func limbCount(n uint) int { return int((n + 63) / 64) }

func uintFromLimbs[W Width](x limbs) Uint[W] {
	return Uint[W]{v: truncLimbs(x, widthOf[W]())}
}

// UintFrom64 creates a Uint from a uint64. Bits that do not fit in W are
// discarded.
func UintFrom64[W Width](v uint64) Uint[W] {
	return uintFromLimbs[W](limbs{v})
}

// UintFromLimbs creates a Uint from a sequence of 64-bit limbs, least
// significant first. ok is false if a set bit falls outside the width.
func UintFromLimbs[W Width](l []uint64) (out Uint[W], ok bool) {
	var x limbs
	for i, limb := range l {
		if i >= maxLimbs {
			if limb != 0 {
				return out, false
			}
			continue
		}
		x[i] = limb
	}
	if bitLenLimbs(&x) > widthOf[W]() {
		return out, false
	}
	return Uint[W]{v: x}, true
}

// UintFromBigInt creates a Uint from a big.Int. Negative values produce zero,
// values too large produce UintMax; accurate is false in both cases.
func UintFromBigInt[W Width](b *big.Int) (out Uint[W], accurate bool) {
	if b.Sign() < 0 {
		return out, false
	}
	if uint(b.BitLen()) > widthOf[W]() {
		return UintMax[W](), false
	}
	var buf [maxBytes]byte
	b.FillBytes(buf[:])
	return UintFromBigEndian[W](buf)
}

// UintMax returns the largest value representable in W bits.
func UintMax[W Width]() Uint[W] {
	return uintFromLimbs[W](limbs{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)})
}

// Bits returns the width of u in bits.
func (u Uint[W]) Bits() uint { return widthOf[W]() }

// Limbs returns a copy of the limbs holding u, least significant first. The
// slice has one element for every started 64 bits of width.
func (u Uint[W]) Limbs() []uint64 {
	out := make([]uint64, limbCount(widthOf[W]()))
	copy(out, u.v[:])
	return out
}

func (u Uint[W]) IsZero() bool { return u.v == limbs{} }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint[W]) IsUint64() bool { return u.v[1]|u.v[2]|u.v[3] == 0 }

// AsUint64 truncates u to its low 64 bits. See IsUint64().
func (u Uint[W]) AsUint64() uint64 { return u.v[0] }

func (u Uint[W]) IsOdd() bool { return u.v[0]&1 == 1 }

func (u Uint[W]) Add(n Uint[W]) Uint[W] {
	v, _ := u.OverflowingAdd(n)
	return v
}

// OverflowingAdd returns u+n wrapped to the width and whether the true sum
// did not fit.
func (u Uint[W]) OverflowingAdd(n Uint[W]) (Uint[W], bool) {
	bits := widthOf[W]()
	z, carry := addLimbs(&u.v, &n.v)
	overflow := carry != 0 || bitLenLimbs(&z) > bits
	return Uint[W]{v: truncLimbs(z, bits)}, overflow
}

func (u Uint[W]) Sub(n Uint[W]) Uint[W] {
	v, _ := u.OverflowingSub(n)
	return v
}

// OverflowingSub returns u-n wrapped to the width and whether n was greater
// than u.
func (u Uint[W]) OverflowingSub(n Uint[W]) (Uint[W], bool) {
	z, borrow := subLimbs(&u.v, &n.v)
	return Uint[W]{v: truncLimbs(z, widthOf[W]())}, borrow != 0
}

// Mul returns the product of u and n. Overflow wraps around, as it does for
// Go's unsigned integers.
func (u Uint[W]) Mul(n Uint[W]) Uint[W] {
	v, _ := u.OverflowingMul(n)
	return v
}

func (u Uint[W]) OverflowingMul(n Uint[W]) (Uint[W], bool) {
	bits := widthOf[W]()
	z, high := mulLimbs(&u.v, &n.v)
	overflow := high || bitLenLimbs(&z) > bits
	return Uint[W]{v: truncLimbs(z, bits)}, overflow
}

// Neg returns the two's complement of u, (^u)+1 modulo 2**W.
func (u Uint[W]) Neg() Uint[W] {
	var zero Uint[W]
	return zero.Sub(u)
}

func (u Uint[W]) Inc() Uint[W] { return u.Add(UintFrom64[W](1)) }
func (u Uint[W]) Dec() Uint[W] { return u.Sub(UintFrom64[W](1)) }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero panic occurs.
func (u Uint[W]) QuoRem(by Uint[W]) (q, r Uint[W]) {
	if by.IsZero() {
		panic(ArithmeticError.Wrap(ErrDivisionByZero))
	}

	if by.IsUint64() {
		qv, rv := quoRemSmall(&u.v, by.v[0])
		return Uint[W]{v: qv}, Uint[W]{v: limbs{rv}}
	}

	if cmp := cmpLimbs(&u.v, &by.v); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.v[0] = 1 // dividend and divisor are the same
		return q, r
	}

	qv, rv := quoRemLimbs(u.v, by.v)
	return Uint[W]{v: qv}, Uint[W]{v: rv}
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// panic occurs.
func (u Uint[W]) Quo(by Uint[W]) (q Uint[W]) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero panic occurs.
func (u Uint[W]) Rem(by Uint[W]) (r Uint[W]) {
	_, r = u.QuoRem(by)
	return r
}

// OverflowingPow raises u to the power exp by repeated squaring, returning
// the result wrapped to the width and whether any step overflowed.
func (u Uint[W]) OverflowingPow(exp Uint[W]) (Uint[W], bool) {
	return u.pow(exp, false)
}

// pow stops as soon as an intermediate product overflows if stop is set. The
// returned value is then meaningless.
func (u Uint[W]) pow(exp Uint[W], stop bool) (acc Uint[W], overflow bool) {
	acc = UintFrom64[W](1)
	base := u

	for e := exp; !e.IsZero(); {
		var o bool
		if e.IsOdd() {
			acc, o = acc.OverflowingMul(base)
			overflow = overflow || o
		}
		e = e.Rsh(1)
		if !e.IsZero() {
			base, o = base.OverflowingMul(base)
			overflow = overflow || o
		}
		if overflow && stop {
			return acc, true
		}
	}
	return acc, overflow
}

func (u Uint[W]) And(n Uint[W]) Uint[W] {
	for i := range u.v {
		u.v[i] &= n.v[i]
	}
	return u
}

func (u Uint[W]) AndNot(n Uint[W]) Uint[W] {
	for i := range u.v {
		u.v[i] &^= n.v[i]
	}
	return u
}

func (u Uint[W]) Or(n Uint[W]) Uint[W] {
	for i := range u.v {
		u.v[i] |= n.v[i]
	}
	return u
}

func (u Uint[W]) Xor(n Uint[W]) Uint[W] {
	for i := range u.v {
		u.v[i] ^= n.v[i]
	}
	return u
}

func (u Uint[W]) Not() Uint[W] {
	for i := range u.v {
		u.v[i] = ^u.v[i]
	}
	return Uint[W]{v: truncLimbs(u.v, widthOf[W]())}
}

// Lsh shifts u left by n bits. Bits shifted past the width are discarded;
// shifting by n >= Bits() produces zero.
func (u Uint[W]) Lsh(n uint) Uint[W] {
	return Uint[W]{v: truncLimbs(lshLimbs(&u.v, n), widthOf[W]())}
}

// Rsh shifts u right by n bits, filling with zeros.
func (u Uint[W]) Rsh(n uint) Uint[W] {
	return Uint[W]{v: rshLimbs(&u.v, n)}
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (u Uint[W]) Cmp(n Uint[W]) int { return cmpLimbs(&u.v, &n.v) }

func (u Uint[W]) Equal(n Uint[W]) bool            { return u.v == n.v }
func (u Uint[W]) GreaterThan(n Uint[W]) bool      { return u.Cmp(n) > 0 }
func (u Uint[W]) GreaterOrEqualTo(n Uint[W]) bool { return u.Cmp(n) >= 0 }
func (u Uint[W]) LessThan(n Uint[W]) bool         { return u.Cmp(n) < 0 }
func (u Uint[W]) LessOrEqualTo(n Uint[W]) bool    { return u.Cmp(n) <= 0 }

// BitLen returns the number of bits needed to represent u; zero for zero.
func (u Uint[W]) BitLen() uint { return bitLenLimbs(&u.v) }

func (u Uint[W]) LeadingZeros() uint { return widthOf[W]() - u.BitLen() }

// TrailingZeros returns the number of trailing zero bits; Bits() for zero.
func (u Uint[W]) TrailingZeros() uint {
	if u.IsZero() {
		return widthOf[W]()
	}
	return trailingZerosLimbs(&u.v)
}

func (u Uint[W]) OnesCount() uint {
	var n int
	for _, l := range u.v {
		n += bits.OnesCount64(l)
	}
	return uint(n)
}

// Bit reports whether bit i is set. It panics if i >= Bits().
func (u Uint[W]) Bit(i uint) bool {
	if n := widthOf[W](); i >= n {
		panic(indexError("bit", i, n))
	}
	return (u.v[i/64]>>(i%64))&1 == 1
}

// Byte returns byte i of u, numbered big-endian: Byte(0) is the most
// significant whole byte. It panics if i >= Bits()/8.
func (u Uint[W]) Byte(i uint) byte {
	nbytes := widthOf[W]() / 8
	if i >= nbytes {
		panic(indexError("byte", i, nbytes))
	}
	pos := 8 * (nbytes - 1 - i)
	return byte(u.v[pos/64] >> (pos % 64))
}

// BigEndian returns u as 32 big-endian bytes. Widths below 256 bits are
// zero-extended.
func (u Uint[W]) BigEndian() (b [maxBytes]byte) {
	for i, l := range u.v {
		binary.BigEndian.PutUint64(b[maxBytes-8*(i+1):], l)
	}
	return b
}

// LittleEndian returns u as 32 little-endian bytes. Widths below 256 bits
// are zero-extended.
func (u Uint[W]) LittleEndian() (b [maxBytes]byte) {
	for i, l := range u.v {
		binary.LittleEndian.PutUint64(b[8*i:], l)
	}
	return b
}

// UintFromBigEndian is the counterpart to BigEndian. ok is false if a set
// bit falls outside the width.
func UintFromBigEndian[W Width](b [maxBytes]byte) (out Uint[W], ok bool) {
	var x limbs
	for i := range x {
		x[i] = binary.BigEndian.Uint64(b[maxBytes-8*(i+1):])
	}
	return UintFromLimbs[W](x[:])
}

// UintFromLittleEndian is the counterpart to LittleEndian. ok is false if a
// set bit falls outside the width.
func UintFromLittleEndian[W Width](b [maxBytes]byte) (out Uint[W], ok bool) {
	var x limbs
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return UintFromLimbs[W](x[:])
}

// UintFromBigEndianSlice accepts any number of big-endian bytes. Leading zero
// bytes are ignored; ok is false if the value does not fit in the width.
func UintFromBigEndianSlice[W Width](b []byte) (out Uint[W], ok bool) {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > maxBytes {
		return out, false
	}
	var buf [maxBytes]byte
	copy(buf[maxBytes-len(b):], b)
	return UintFromBigEndian[W](buf)
}

// UintFromLittleEndianSlice accepts any number of little-endian bytes.
// Trailing zero bytes are ignored; ok is false if the value does not fit in
// the width.
func UintFromLittleEndianSlice[W Width](b []byte) (out Uint[W], ok bool) {
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	if len(b) > maxBytes {
		return out, false
	}
	var buf [maxBytes]byte
	copy(buf[:], b)
	return UintFromLittleEndian[W](buf)
}

// IntoBigInt copies u into a big.Int, allowing you to retain and recycle
// memory.
func (u Uint[W]) IntoBigInt(b *big.Int) {
	be := u.BigEndian()
	b.SetBytes(be[:])
}

// AsBigInt allocates a new big.Int and copies u into it.
func (u Uint[W]) AsBigInt() *big.Int {
	b := new(big.Int)
	u.IntoBigInt(b)
	return b
}
