package fixnum

import "strconv"

// Width fixes the number of bits in a Uint or Int at compile time. It is
// implemented by zero-size marker types; the value of the receiver is never
// inspected, only its type.
//
// Markers are provided for 0, 1 and every multiple of 8 up to 256. Other
// widths can be declared by callers:
//
//	type W100 struct{}
//
//	func (W100) Bits() uint { return 100 }
//
//	type I100 = fixnum.Int[W100]
//
// Widths above 256 are not supported and will panic when first used.
type Width interface {
	Bits() uint
}

const (
	maxBits  = 256
	maxLimbs = maxBits / 64
	maxBytes = maxBits / 8
)

// widthOf returns the bit width of W, panicking if it is out of range.
func widthOf[W Width]() uint {
	var w W
	bits := w.Bits()
	if bits > maxBits {
		panic(errWidth(bits))
	}
	return bits
}

type errWidth uint

func (e errWidth) Error() string {
	return "fixnum: unsupported width " + strconv.FormatUint(uint64(e), 10) + ", maximum is 256 bits"
}

type (
	W0   struct{}
	W1   struct{}
	W8   struct{}
	W16  struct{}
	W24  struct{}
	W32  struct{}
	W40  struct{}
	W48  struct{}
	W56  struct{}
	W64  struct{}
	W72  struct{}
	W80  struct{}
	W88  struct{}
	W96  struct{}
	W104 struct{}
	W112 struct{}
	W120 struct{}
	W128 struct{}
	W136 struct{}
	W144 struct{}
	W152 struct{}
	W160 struct{}
	W168 struct{}
	W176 struct{}
	W184 struct{}
	W192 struct{}
	W200 struct{}
	W208 struct{}
	W216 struct{}
	W224 struct{}
	W232 struct{}
	W240 struct{}
	W248 struct{}
	W256 struct{}
)

func (W0) Bits() uint   { return 0 }
func (W1) Bits() uint   { return 1 }
func (W8) Bits() uint   { return 8 }
func (W16) Bits() uint  { return 16 }
func (W24) Bits() uint  { return 24 }
func (W32) Bits() uint  { return 32 }
func (W40) Bits() uint  { return 40 }
func (W48) Bits() uint  { return 48 }
func (W56) Bits() uint  { return 56 }
func (W64) Bits() uint  { return 64 }
func (W72) Bits() uint  { return 72 }
func (W80) Bits() uint  { return 80 }
func (W88) Bits() uint  { return 88 }
func (W96) Bits() uint  { return 96 }
func (W104) Bits() uint { return 104 }
func (W112) Bits() uint { return 112 }
func (W120) Bits() uint { return 120 }
func (W128) Bits() uint { return 128 }
func (W136) Bits() uint { return 136 }
func (W144) Bits() uint { return 144 }
func (W152) Bits() uint { return 152 }
func (W160) Bits() uint { return 160 }
func (W168) Bits() uint { return 168 }
func (W176) Bits() uint { return 176 }
func (W184) Bits() uint { return 184 }
func (W192) Bits() uint { return 192 }
func (W200) Bits() uint { return 200 }
func (W208) Bits() uint { return 208 }
func (W216) Bits() uint { return 216 }
func (W224) Bits() uint { return 224 }
func (W232) Bits() uint { return 232 }
func (W240) Bits() uint { return 240 }
func (W248) Bits() uint { return 248 }
func (W256) Bits() uint { return 256 }

// Signed integer aliases.
type (
	I0   = Int[W0]
	I1   = Int[W1]
	I8   = Int[W8]
	I16  = Int[W16]
	I24  = Int[W24]
	I32  = Int[W32]
	I40  = Int[W40]
	I48  = Int[W48]
	I56  = Int[W56]
	I64  = Int[W64]
	I72  = Int[W72]
	I80  = Int[W80]
	I88  = Int[W88]
	I96  = Int[W96]
	I104 = Int[W104]
	I112 = Int[W112]
	I120 = Int[W120]
	I128 = Int[W128]
	I136 = Int[W136]
	I144 = Int[W144]
	I152 = Int[W152]
	I160 = Int[W160]
	I168 = Int[W168]
	I176 = Int[W176]
	I184 = Int[W184]
	I192 = Int[W192]
	I200 = Int[W200]
	I208 = Int[W208]
	I216 = Int[W216]
	I224 = Int[W224]
	I232 = Int[W232]
	I240 = Int[W240]
	I248 = Int[W248]
	I256 = Int[W256]
)

// Unsigned integer aliases.
type (
	U0   = Uint[W0]
	U1   = Uint[W1]
	U8   = Uint[W8]
	U16  = Uint[W16]
	U24  = Uint[W24]
	U32  = Uint[W32]
	U40  = Uint[W40]
	U48  = Uint[W48]
	U56  = Uint[W56]
	U64  = Uint[W64]
	U72  = Uint[W72]
	U80  = Uint[W80]
	U88  = Uint[W88]
	U96  = Uint[W96]
	U104 = Uint[W104]
	U112 = Uint[W112]
	U120 = Uint[W120]
	U128 = Uint[W128]
	U136 = Uint[W136]
	U144 = Uint[W144]
	U152 = Uint[W152]
	U160 = Uint[W160]
	U168 = Uint[W168]
	U176 = Uint[W176]
	U184 = Uint[W184]
	U192 = Uint[W192]
	U200 = Uint[W200]
	U208 = Uint[W208]
	U216 = Uint[W216]
	U224 = Uint[W224]
	U232 = Uint[W232]
	U240 = Uint[W240]
	U248 = Uint[W248]
	U256 = Uint[W256]
)
