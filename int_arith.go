package fixnum

// Every arithmetic operation on Int is computed once, by an unexported
// method returning an outcome. The exported variants differ only in how they
// treat an outcome that overflowed:
//
//	Checked*      return ok == false
//	Overflowing*  return the wrapped value and true
//	Wrapping*     return the wrapped value
//	Saturating*   return IntMax or IntMin, whichever bound was exceeded
//	bare form     panic with an ArithmeticError wrapping ErrIntegerOverflow
//
// Division by zero is not an overflow. Checked variants report it as
// ok == false; every other variant panics with an ArithmeticError wrapping
// ErrDivisionByZero.

// bound records which side of the representable range the true result of
// an overflowing operation fell on. Zero means the true result is in range
// even though the operation is defined to overflow (IntMin % -1).
type bound uint8

const (
	aboveMax bound = iota + 1
	belowMin
)

func boundFor(s Sign) bound {
	if s == Negative {
		return belowMin
	}
	return aboveMax
}

type outcome[W Width] struct {
	v        Int[W]
	overflow bool
	bound    bound
}

func (o outcome[W]) overflowing() (Int[W], bool) { return o.v, o.overflow }

func (o outcome[W]) checked() (Int[W], bool) {
	if o.overflow {
		return Int[W]{}, false
	}
	return o.v, true
}

func (o outcome[W]) saturating() Int[W] {
	if o.overflow {
		switch o.bound {
		case aboveMax:
			return IntMax[W]()
		case belowMin:
			return IntMin[W]()
		}
	}
	return o.v
}

func (o outcome[W]) strict(op string) Int[W] {
	if o.overflow {
		panic(overflowPanic(op))
	}
	return o.v
}

func checkDivisor[W Width](y Int[W]) {
	if y.IsZero() {
		panic(ArithmeticError.Wrap(ErrDivisionByZero))
	}
}

// isMinByMinusOne reports whether x / y is IntMin / -1, the one quotient of
// two Ints that does not fit.
func isMinByMinusOne[W Width](x, y Int[W]) bool {
	return x == IntMin[W]() && y == IntMinusOne[W]()
}

func (x Int[W]) add(y Int[W]) outcome[W] {
	v := Int[W]{raw: x.raw.Add(y.raw)}
	if sx := x.Sign(); sx == y.Sign() && v.Sign() != sx {
		return outcome[W]{v: v, overflow: true, bound: boundFor(sx)}
	}
	return outcome[W]{v: v}
}

func (x Int[W]) sub(y Int[W]) outcome[W] {
	v := Int[W]{raw: x.raw.Sub(y.raw)}
	if sx := x.Sign(); sx != y.Sign() && v.Sign() != sx {
		return outcome[W]{v: v, overflow: true, bound: boundFor(sx)}
	}
	return outcome[W]{v: v}
}

func (x Int[W]) mul(y Int[W]) outcome[W] {
	if x.IsZero() || y.IsZero() {
		return outcome[W]{}
	}
	sx, ax := x.IntoSignAndAbs()
	sy, ay := y.IntoSignAndAbs()
	sign := sx.Mul(sy)

	abs, o1 := ax.OverflowingMul(ay)
	v, o2 := OverflowingFromSignAndAbs(sign, abs)
	return outcome[W]{v: v, overflow: o1 || o2, bound: boundFor(sign)}
}

func (x Int[W]) quo(y Int[W]) outcome[W] {
	checkDivisor(y)
	if isMinByMinusOne(x, y) {
		return outcome[W]{v: x, overflow: true, bound: aboveMax}
	}
	sx, ax := x.IntoSignAndAbs()
	sy, ay := y.IntoSignAndAbs()
	v, _ := OverflowingFromSignAndAbs(sx.Mul(sy), ax.Quo(ay))
	return outcome[W]{v: v}
}

// rem carries the sign of the dividend, or is zero.
func (x Int[W]) rem(y Int[W]) outcome[W] {
	checkDivisor(y)
	if isMinByMinusOne(x, y) {
		return outcome[W]{overflow: true}
	}
	sx, ax := x.IntoSignAndAbs()
	v, _ := OverflowingFromSignAndAbs(sx, ax.Rem(y.UnsignedAbs()))
	return outcome[W]{v: v}
}

// div is Euclidean division: the quotient is chosen so that mod is never
// negative.
func (x Int[W]) div(y Int[W]) outcome[W] {
	checkDivisor(y)
	if isMinByMinusOne(x, y) {
		return outcome[W]{v: x, overflow: true, bound: aboveMax}
	}
	q, r := x.quo(y).v, x.rem(y).v
	if r.IsNegative() {
		one := IntOne[W]()
		if y.IsPositive() {
			q = q.WrappingSub(one)
		} else {
			q = q.WrappingAdd(one)
		}
	}
	return outcome[W]{v: q}
}

// mod is the Euclidean remainder, 0 <= mod < |y|.
func (x Int[W]) mod(y Int[W]) outcome[W] {
	checkDivisor(y)
	if isMinByMinusOne(x, y) {
		return outcome[W]{overflow: true}
	}
	r := x.rem(y).v
	if r.IsNegative() {
		if y.IsNegative() {
			r = r.WrappingSub(y)
		} else {
			r = r.WrappingAdd(y)
		}
	}
	return outcome[W]{v: r}
}

// pow raises x to exp by repeated squaring of the magnitude. If stop is set
// the computation is abandoned at the first overflowing step and only the
// overflow flag and bound of the outcome are meaningful.
func (x Int[W]) pow(exp Uint[W], stop bool) outcome[W] {
	sign := Positive
	if x.IsNegative() && exp.IsOdd() {
		sign = Negative
	}
	abs, o1 := x.UnsignedAbs().pow(exp, stop)
	if o1 && stop {
		return outcome[W]{overflow: true, bound: boundFor(sign)}
	}
	v, o2 := OverflowingFromSignAndAbs(sign, abs)
	return outcome[W]{v: v, overflow: o1 || o2, bound: boundFor(sign)}
}

func (x Int[W]) neg() outcome[W] { return Int[W]{}.sub(x) }

func (x Int[W]) abs() outcome[W] {
	if x.IsNegative() {
		return x.neg()
	}
	return outcome[W]{v: x}
}

// Add returns x+y. It panics if the result overflows.
func (x Int[W]) Add(y Int[W]) Int[W]                    { return x.add(y).strict("add") }
func (x Int[W]) CheckedAdd(y Int[W]) (Int[W], bool)     { return x.add(y).checked() }
func (x Int[W]) OverflowingAdd(y Int[W]) (Int[W], bool) { return x.add(y).overflowing() }
func (x Int[W]) WrappingAdd(y Int[W]) Int[W]            { return x.add(y).v }
func (x Int[W]) SaturatingAdd(y Int[W]) Int[W]          { return x.add(y).saturating() }

// Sub returns x-y. It panics if the result overflows.
func (x Int[W]) Sub(y Int[W]) Int[W]                    { return x.sub(y).strict("sub") }
func (x Int[W]) CheckedSub(y Int[W]) (Int[W], bool)     { return x.sub(y).checked() }
func (x Int[W]) OverflowingSub(y Int[W]) (Int[W], bool) { return x.sub(y).overflowing() }
func (x Int[W]) WrappingSub(y Int[W]) Int[W]            { return x.sub(y).v }
func (x Int[W]) SaturatingSub(y Int[W]) Int[W]          { return x.sub(y).saturating() }

// Mul returns x*y. It panics if the result overflows.
func (x Int[W]) Mul(y Int[W]) Int[W]                    { return x.mul(y).strict("mul") }
func (x Int[W]) CheckedMul(y Int[W]) (Int[W], bool)     { return x.mul(y).checked() }
func (x Int[W]) OverflowingMul(y Int[W]) (Int[W], bool) { return x.mul(y).overflowing() }
func (x Int[W]) WrappingMul(y Int[W]) Int[W]            { return x.mul(y).v }
func (x Int[W]) SaturatingMul(y Int[W]) Int[W]          { return x.mul(y).saturating() }

// Quo returns the quotient x/y, truncated toward zero (like Go). It panics if
// y is zero or the result overflows, which only happens for IntMin / -1.
func (x Int[W]) Quo(y Int[W]) Int[W]                    { return x.quo(y).strict("quo") }
func (x Int[W]) OverflowingQuo(y Int[W]) (Int[W], bool) { return x.quo(y).overflowing() }
func (x Int[W]) WrappingQuo(y Int[W]) Int[W]            { return x.quo(y).v }
func (x Int[W]) SaturatingQuo(y Int[W]) Int[W]          { return x.quo(y).saturating() }

// CheckedQuo returns x/y. ok is false if y is zero or the result overflows.
func (x Int[W]) CheckedQuo(y Int[W]) (Int[W], bool) {
	if y.IsZero() {
		return Int[W]{}, false
	}
	return x.quo(y).checked()
}

// Rem returns the remainder x%y, which has the sign of x (like Go). It panics
// if y is zero or for IntMin % -1, which overflows to zero.
func (x Int[W]) Rem(y Int[W]) Int[W]                    { return x.rem(y).strict("rem") }
func (x Int[W]) OverflowingRem(y Int[W]) (Int[W], bool) { return x.rem(y).overflowing() }
func (x Int[W]) WrappingRem(y Int[W]) Int[W]            { return x.rem(y).v }

// SaturatingRem returns x%y. No remainder lies outside the range of Int, so
// this is the same as WrappingRem.
func (x Int[W]) SaturatingRem(y Int[W]) Int[W] { return x.rem(y).saturating() }

// CheckedRem returns x%y. ok is false if y is zero or for IntMin % -1.
func (x Int[W]) CheckedRem(y Int[W]) (Int[W], bool) {
	if y.IsZero() {
		return Int[W]{}, false
	}
	return x.rem(y).checked()
}

// Div returns the Euclidean quotient of x/y (like big.Int.Div). It panics if
// y is zero or the result overflows, which only happens for IntMin / -1.
//
// Euclidean division satisfies x == y*q + m with 0 <= m < |y|, where m is
// x.Mod(y).
func (x Int[W]) Div(y Int[W]) Int[W]                    { return x.div(y).strict("div") }
func (x Int[W]) OverflowingDiv(y Int[W]) (Int[W], bool) { return x.div(y).overflowing() }
func (x Int[W]) WrappingDiv(y Int[W]) Int[W]            { return x.div(y).v }
func (x Int[W]) SaturatingDiv(y Int[W]) Int[W]          { return x.div(y).saturating() }

// CheckedDiv returns the Euclidean quotient of x/y. ok is false if y is zero
// or the result overflows.
func (x Int[W]) CheckedDiv(y Int[W]) (Int[W], bool) {
	if y.IsZero() {
		return Int[W]{}, false
	}
	return x.div(y).checked()
}

// Mod returns the Euclidean remainder of x/y (like big.Int.Mod), which is
// never negative. It panics if y is zero or for IntMin mod -1, which
// overflows to zero.
func (x Int[W]) Mod(y Int[W]) Int[W]                    { return x.mod(y).strict("mod") }
func (x Int[W]) OverflowingMod(y Int[W]) (Int[W], bool) { return x.mod(y).overflowing() }
func (x Int[W]) WrappingMod(y Int[W]) Int[W]            { return x.mod(y).v }
func (x Int[W]) SaturatingMod(y Int[W]) Int[W]          { return x.mod(y).saturating() }

// CheckedMod returns the Euclidean remainder of x/y. ok is false if y is
// zero or for IntMin mod -1.
func (x Int[W]) CheckedMod(y Int[W]) (Int[W], bool) {
	if y.IsZero() {
		return Int[W]{}, false
	}
	return x.mod(y).checked()
}

// Pow returns x**exp. It panics if the result overflows.
func (x Int[W]) Pow(exp Uint[W]) Int[W]                    { return x.pow(exp, true).strict("pow") }
func (x Int[W]) CheckedPow(exp Uint[W]) (Int[W], bool)     { return x.pow(exp, true).checked() }
func (x Int[W]) OverflowingPow(exp Uint[W]) (Int[W], bool) { return x.pow(exp, false).overflowing() }
func (x Int[W]) WrappingPow(exp Uint[W]) Int[W]            { return x.pow(exp, false).v }

// SaturatingPow returns x**exp, or IntMax or IntMin if it overflows. The
// bound is IntMin only when x is negative and exp is odd. It stops at the
// first overflowing multiplication.
func (x Int[W]) SaturatingPow(exp Uint[W]) Int[W] { return x.pow(exp, true).saturating() }

// Neg returns -x. It panics for IntMin, which has no positive counterpart.
func (x Int[W]) Neg() Int[W]                    { return x.neg().strict("neg") }
func (x Int[W]) CheckedNeg() (Int[W], bool)     { return x.neg().checked() }
func (x Int[W]) OverflowingNeg() (Int[W], bool) { return x.neg().overflowing() }
func (x Int[W]) WrappingNeg() Int[W]            { return x.neg().v }
func (x Int[W]) SaturatingNeg() Int[W]          { return x.neg().saturating() }

// Abs returns |x|. It panics for IntMin, which has no positive counterpart;
// WrappingAbs returns IntMin unchanged.
func (x Int[W]) Abs() Int[W]                    { return x.abs().strict("abs") }
func (x Int[W]) CheckedAbs() (Int[W], bool)     { return x.abs().checked() }
func (x Int[W]) OverflowingAbs() (Int[W], bool) { return x.abs().overflowing() }
func (x Int[W]) WrappingAbs() Int[W]            { return x.abs().v }
func (x Int[W]) SaturatingAbs() Int[W]          { return x.abs().saturating() }

// Exp10 returns 10**n. It panics if the result does not fit in W bits.
func Exp10[W Width](n uint) Int[W] {
	out := MustIntFrom[W](1)
	if n == 0 {
		return out
	}
	ten := MustIntFrom[W](10)
	for i := uint(0); i < n; i++ {
		out = out.Mul(ten)
	}
	return out
}
