/*
Package fixnum provides fixed-width signed (Int) and unsigned (Uint) integers
of any width from 0 to 256 bits, implementing most of the big.Int API.

The width is part of the type, supplied as a marker type parameter:

	var x fixnum.Int[fixnum.W128]
	var y fixnum.I128 // the same type

Markers exist for 0, 1 and every multiple of 8 up to 256. Other widths can
be declared by the caller:

	type W100 struct{}

	func (W100) Bits() uint { return 100 }

Int and Uint are value types; all operations return new values, and two
values of the same type are equal under == if and only if they hold the same
number.

Int stores two's complement: the top bit of the width is the sign. It
follows Go's integer semantics where they are defined (Quo and Rem truncate,
Lsh and Rsh are logical) and big.Int's names where Go has none (Div and Mod
are Euclidean).

# Overflow

Every arithmetic operation comes in five forms which differ only in what
happens when the result does not fit:

	x.Add(y)            // panics
	x.CheckedAdd(y)     // (0, false)
	x.OverflowingAdd(y) // (wrapped, true)
	x.WrappingAdd(y)    // wrapped
	x.SaturatingAdd(y)  // IntMax or IntMin

The panicking form is the default so that an overflow cannot pass unnoticed.
Panics carry an error in the ArithmeticError class that wraps
ErrIntegerOverflow or ErrDivisionByZero.

# Conversions

Int can be created from a variety of sources:

	IntFrom[W](v T) (Int[W], error)        // any built-in integer type
	IntFromString[W](s string) (Int[W], error)
	IntFromDecString[W](s string) (Int[W], error)
	IntFromHexString[W](s string) (Int[W], error)
	IntFromBigInt[W](b *big.Int) (out Int[W], accurate bool)
	IntFromFloat64[W](f float64) (out Int[W], inRange bool)
	IntFromUint[W](u Uint[W]) (Int[W], error)
	IntFromRaw[W](u Uint[W]) Int[W]
	IntFromLimbs[W](l []uint64) (Int[W], bool)
	IntFromBigEndian[W](b [32]byte) (Int[W], bool)
	Resize[To](x Int[From]) (Int[To], error)

Int and Uint support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler (Int only)
  - json.Unmarshaler (Int only)
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package fixnum
