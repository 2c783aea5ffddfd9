package fixnum

// Lsh returns x shifted left by n bits, filling with zeros. Bits shifted past
// the top are discarded, so shifting by Bits() or more yields zero. The sign
// of the result is whatever lands in the sign bit.
func (x Int[W]) Lsh(n uint) Int[W] { return Int[W]{raw: x.raw.Lsh(n)} }

// Rsh returns x shifted right by n bits, filling with zeros. It is a logical
// shift and does not preserve the sign; see Asr.
func (x Int[W]) Rsh(n uint) Int[W] { return Int[W]{raw: x.raw.Rsh(n)} }

// OverflowingLsh returns x.Lsh(n) and whether n is at least Bits().
func (x Int[W]) OverflowingLsh(n uint) (Int[W], bool) {
	return x.Lsh(n), n >= widthOf[W]()
}

// CheckedLsh returns x.Lsh(n). ok is false if n is at least Bits().
func (x Int[W]) CheckedLsh(n uint) (Int[W], bool) {
	if n >= widthOf[W]() {
		return Int[W]{}, false
	}
	return x.Lsh(n), true
}

func (x Int[W]) WrappingLsh(n uint) Int[W] { return x.Lsh(n) }

// OverflowingRsh returns x.Rsh(n) and whether n is at least Bits().
func (x Int[W]) OverflowingRsh(n uint) (Int[W], bool) {
	return x.Rsh(n), n >= widthOf[W]()
}

// CheckedRsh returns x.Rsh(n). ok is false if n is at least Bits().
func (x Int[W]) CheckedRsh(n uint) (Int[W], bool) {
	if n >= widthOf[W]() {
		return Int[W]{}, false
	}
	return x.Rsh(n), true
}

func (x Int[W]) WrappingRsh(n uint) Int[W] { return x.Rsh(n) }

// Asr is an arithmetic right shift: the vacated high bits are copies of the
// sign bit. It rounds toward negative infinity, so a negative x shifted by
// Bits()-1 or more is -1 and a non-negative x shifted that far is 0.
func (x Int[W]) Asr(n uint) Int[W] {
	width := widthOf[W]()
	if n == 0 || width == 0 {
		return x
	}
	if !x.IsNegative() {
		return x.Rsh(n)
	}
	if n >= width-1 {
		return IntMinusOne[W]()
	}
	fill := UintMax[W]().Lsh(width - n)
	return Int[W]{raw: x.raw.Rsh(n).Or(fill)}
}

// Asl is an arithmetic left shift, x * 2**n. ok is false if any bit that
// differs from the sign would be shifted out or into the sign bit, which is
// exactly when x.Asl(n).Asr(n) would not give back x. Zero can be shifted by
// any amount.
func (x Int[W]) Asl(n uint) (out Int[W], ok bool) {
	if x.IsZero() {
		return x, true
	}
	if n >= widthOf[W]() {
		return out, false
	}
	out = x.Lsh(n)
	if out.Asr(n) != x {
		return Int[W]{}, false
	}
	return out, true
}
