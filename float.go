package fixnum

import (
	"math"
)

// IntFromFloat64 creates an Int from a float64, truncating toward zero.
//
// Floats outside the bounds of the width are clamped to IntMin or IntMax and
// inRange is false. NaN produces zero and inRange is false.
func IntFromFloat64[W Width](f float64) (out Int[W], inRange bool) {
	if f == 0 {
		return out, true
	} else if f != f { // f != f == isnan
		return out, false
	}

	sign := Positive
	if f < 0 {
		sign, f = Negative, -f
	}
	clamp := func() (Int[W], bool) {
		if sign == Negative {
			return IntMin[W](), false
		}
		return IntMax[W](), false
	}

	f = math.Trunc(f)
	if f < 1 {
		return out, true
	} else if math.IsInf(f, 0) {
		return clamp()
	}

	// f == frac * 2**exp with frac in [0.5, 1), so the magnitude needs exactly
	// exp bits.
	frac, exp := math.Frexp(f)
	if uint(exp) > widthOf[W]() {
		return clamp()
	}
	mant := limbs{uint64(math.Ldexp(frac, 53))}
	var abs Uint[W]
	if exp >= 53 {
		abs.v = lshLimbs(&mant, uint(exp-53))
	} else {
		abs.v = rshLimbs(&mant, uint(53-exp))
	}

	out, ok := CheckedFromSignAndAbs(sign, abs)
	if !ok {
		return clamp()
	}
	return out, true
}

// AsFloat64 returns the nearest float64 to x, rounding to even on ties.
func (x Int[W]) AsFloat64() float64 {
	sign, abs := x.IntoSignAndAbs()

	var f float64
	if n := abs.BitLen(); n <= 64 {
		f = float64(abs.v[0])
	} else {
		// Keep the top 64 bits and fold everything below into a sticky bit so
		// the single conversion to float64 rounds correctly.
		shift := n - 64
		top := abs.Rsh(shift).v[0]
		if abs.TrailingZeros() < shift {
			top |= 1
		}
		f = math.Ldexp(float64(top), int(shift))
	}
	if sign == Negative {
		f = -f
	}
	return f
}
