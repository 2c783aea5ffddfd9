package fixnum

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = UintFrom64[W128]

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("fixnum: big string %q invalid", s))
	}
	return b
}

func uints[W Width](s string) Uint[W] {
	out, acc := UintFromBigInt[W](bigs(s))
	if !acc {
		panic(fmt.Errorf("fixnum: inaccurate U%d %s", widthOf[W](), s))
	}
	return out
}

func TestUintAsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{u64(2), big.NewInt(2)},
		{uints[W128]("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE"), bigs("340282366920938463463374607431768211454")},
		{uints[W128]("0x1 0000000000000000"), bigs("18446744073709551616")},
		{uints[W128]("0x1 FFFFFFFFFFFFFFFF"), bigs("36893488147419103231")}, // (1<<65) - 1
		{uints[W128]("0x7FFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), bigs("170141183460469231731687303715884105727")},
		{MaxU128, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)

			back, acc := UintFromBigInt[W128](v)
			tt.MustAssert(acc)
			tt.MustEqual(tc.a, back)
		})
	}
}

func TestUintFromBigIntInaccurate(t *testing.T) {
	tt := assert.WrapTB(t)

	v, acc := UintFromBigInt[W96](big.NewInt(-1))
	tt.MustAssert(!acc)
	tt.MustEqual(Uint[W96]{}, v)

	v, acc = UintFromBigInt[W96](bigs("0x1 000000000000000000000000"))
	tt.MustAssert(!acc)
	tt.MustEqual(UintMax[W96](), v)
}

func TestUintAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c  U128
		overflow bool
	}{
		{u64(1), u64(2), u64(3), false},
		{u64(10), u64(3), u64(13), false},
		{MaxU128, u64(1), u64(0), true},
		{u64(math.MaxUint64), u64(1), uints[W128]("18446744073709551616"), false}, // lo carries to hi
		{uints[W128]("18446744073709551615"), uints[W128]("18446744073709551615"), uints[W128]("36893488147419103230"), false},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Add(tc.b))
			v, overflow := tc.a.OverflowingAdd(tc.b)
			tt.MustEqual(tc.c, v)
			tt.MustEqual(tc.overflow, overflow)
		})
	}
}

func TestUintAddSubNarrow(t *testing.T) {
	tt := assert.WrapTB(t)

	// The carry out of a partial limb is an overflow even though no limb
	// overflowed.
	v, overflow := UintMax[W96]().OverflowingAdd(UintFrom64[W96](1))
	tt.MustAssert(overflow)
	tt.MustEqual(Uint[W96]{}, v)

	v, overflow = Uint[W96]{}.OverflowingSub(UintFrom64[W96](1))
	tt.MustAssert(overflow)
	tt.MustEqual(UintMax[W96](), v)

	tt.MustEqual(UintMax[W96](), Uint[W96]{}.Dec())
	tt.MustEqual(Uint[W96]{}, UintMax[W96]().Inc())
	tt.MustEqual(UintFrom64[W96](1), UintMax[W96]().Neg())
}

func TestUintMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c  U128
		overflow bool
	}{
		{u64(1), u64(0), u64(0), false},
		{u64(2), u64(3), u64(6), false},
		{u64(math.MaxUint64), u64(math.MaxUint64), uints[W128]("340282366920938463426481119284349108225"), false},
		{MaxU128, u64(2), uints[W128]("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE"), true},
		{uints[W128]("0x1 0000000000000000"), uints[W128]("0x1 0000000000000000"), u64(0), true},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul(tc.b))
			v, overflow := tc.a.OverflowingMul(tc.b)
			tt.MustEqual(tc.c, v)
			tt.MustEqual(tc.overflow, overflow)
		})
	}
}

func TestUintQuoRem(t *testing.T) {
	for _, tc := range []struct {
		u, by, q, r U256
	}{
		{uints[W256]("1"), uints[W256]("2"), uints[W256]("0"), uints[W256]("1")},
		{uints[W256]("10000000000000000000000"), uints[W256]("3"), uints[W256]("3333333333333333333333"), uints[W256]("1")},
		{uints[W256]("0x1 0000000000000000 0000000000000000"), uints[W256]("0x1 0000000000000000"), uints[W256]("0x1 0000000000000000"), uints[W256]("0")},
		{MaxU256, uints[W256]("0x1 0000000000000000 0000000000000001"), uints[W256]("0xffffffffffffffffffffffffffffffff"), uints[W256]("0")},
		{MaxU256, uints[W256]("0x1 0000000000000000 0000000000000002"), uints[W256]("0xfffffffffffffffffffffffffffffffe"), uints[W256]("3")},
		{uints[W256]("12345678901234567890123456789"), uints[W256]("12345678901234567890123456789"), uints[W256]("1"), uints[W256]("0")},
		{uints[W256]("12345678901234567890123456788"), uints[W256]("12345678901234567890123456789"), uints[W256]("0"), uints[W256]("12345678901234567890123456788")},
	} {
		t.Run(fmt.Sprintf("%s÷%s=%s,%s", tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
			tt.MustEqual(tc.q, tc.u.Quo(tc.by))
			tt.MustEqual(tc.r, tc.u.Rem(tc.by))

			bq, br := new(big.Int).QuoRem(tc.u.AsBigInt(), tc.by.AsBigInt(), new(big.Int))
			tt.MustEqual(bq.String(), q.String())
			tt.MustEqual(br.String(), r.String())
		})
	}
}

func TestUintDivideByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	err := catchPanic(func() { u64(1).Quo(U128{}) })
	tt.MustAssert(errors.Is(err, ErrDivisionByZero), err)
	tt.MustAssert(ArithmeticError.Has(err))
}

func TestUintPow(t *testing.T) {
	tt := assert.WrapTB(t)

	v, overflow := u64(2).OverflowingPow(u64(127))
	tt.MustAssert(!overflow)
	tt.MustEqual(uints[W128]("0x8000000000000000 0000000000000000"), v)

	v, overflow = u64(2).OverflowingPow(u64(128))
	tt.MustAssert(overflow)
	tt.MustEqual(U128{}, v)

	v, overflow = u64(3).OverflowingPow(u64(0))
	tt.MustAssert(!overflow)
	tt.MustEqual(u64(1), v)

	v, overflow = u64(0).OverflowingPow(u64(1000))
	tt.MustAssert(!overflow)
	tt.MustEqual(U128{}, v)

	v, overflow = u64(10).OverflowingPow(u64(38))
	tt.MustAssert(!overflow)
	tt.MustEqual("100000000000000000000000000000000000000", v.String())

	_, overflow = u64(10).OverflowingPow(u64(39))
	tt.MustAssert(overflow)
}

func TestUintBitwise(t *testing.T) {
	tt := assert.WrapTB(t)

	a := uints[W96]("0xf0f0 f0f0f0f0f0f0f0f0")
	b := uints[W96]("0xffff 0000000000000000")

	tt.MustEqual(uints[W96]("0xf0f0 0000000000000000"), a.And(b))
	tt.MustEqual(uints[W96]("0xf0f0f0f0f0f0f0f0"), a.AndNot(b))
	tt.MustEqual(uints[W96]("0xffff f0f0f0f0f0f0f0f0"), a.Or(b))
	tt.MustEqual(uints[W96]("0x0f0f f0f0f0f0f0f0f0f0"), a.Xor(b))
	tt.MustEqual(uints[W96]("0xffff 0f0f 0f0f0f0f0f0f0f0f"), a.Not())

	tt.MustEqual(uints[W96]("0x8000000000000000 00000000"), UintFrom64[W96](1).Lsh(95))
	tt.MustEqual(Uint[W96]{}, UintFrom64[W96](1).Lsh(96))
	tt.MustEqual(UintFrom64[W96](1), UintMax[W96]().Rsh(95))
	tt.MustEqual(Uint[W96]{}, UintMax[W96]().Rsh(96))
}

func TestUintBitCounts(t *testing.T) {
	for _, tc := range []struct {
		in     U128
		bitLen uint
		lz, tz uint
		ones   uint
	}{
		{U128{}, 0, 128, 128, 0},
		{u64(1), 1, 127, 0, 1},
		{u64(0x80), 8, 120, 7, 1},
		{MaxU128, 128, 0, 0, 128},
		{uints[W128]("0x1 0000000000000000"), 65, 63, 64, 1},
	} {
		t.Run(tc.in.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.bitLen, tc.in.BitLen())
			tt.MustEqual(tc.lz, tc.in.LeadingZeros())
			tt.MustEqual(tc.tz, tc.in.TrailingZeros())
			tt.MustEqual(tc.ones, tc.in.OnesCount())
		})
	}
}

func TestUintBitAndByte(t *testing.T) {
	tt := assert.WrapTB(t)

	u := uints[W96]("0x0102030405060708090a0b0c")
	for i := uint(0); i < 12; i++ {
		tt.MustEqual(byte(i+1), u.Byte(i))
	}
	tt.MustAssert(u.Bit(0) == false)
	tt.MustAssert(u.Bit(2))
	tt.MustAssert(u.Bit(3))
	tt.MustAssert(u.Bit(88))

	err := catchPanic(func() { u.Byte(12) })
	tt.MustAssert(errors.Is(err, ErrIndexOutOfRange), err)
	err = catchPanic(func() { u.Bit(96) })
	tt.MustAssert(errors.Is(err, ErrIndexOutOfRange), err)
}

func TestUintCmp(t *testing.T) {
	tt := assert.WrapTB(t)

	small, large := u64(math.MaxUint64), uints[W128]("0x1 0000000000000000")
	tt.MustEqual(-1, small.Cmp(large))
	tt.MustEqual(1, large.Cmp(small))
	tt.MustEqual(0, large.Cmp(large))
	tt.MustAssert(small.LessThan(large))
	tt.MustAssert(small.LessOrEqualTo(small))
	tt.MustAssert(large.GreaterThan(small))
	tt.MustAssert(large.GreaterOrEqualTo(large))
	tt.MustAssert(large.Equal(large))
	tt.MustAssert(!large.Equal(small))

	tt.MustEqual(uints[W128]("0x1 0000000000000000"), DifferenceUint(u64(0), large))
	tt.MustEqual(u64(1), DifferenceUint(large, small))
}

func TestUintLimbs(t *testing.T) {
	tt := assert.WrapTB(t)

	u, ok := UintFromLimbs[W96]([]uint64{1, 2})
	tt.MustAssert(ok)
	tt.MustEqual([]uint64{1, 2}, u.Limbs())
	tt.MustAssert(!u.IsUint64())
	tt.MustEqual(uint64(1), u.AsUint64())

	_, ok = UintFromLimbs[W96]([]uint64{1, 1 << 32})
	tt.MustAssert(!ok)

	_, ok = UintFromLimbs[W256]([]uint64{1, 2, 3, 4, 5})
	tt.MustAssert(!ok)
}

func TestUintText(t *testing.T) {
	for _, tc := range []struct {
		in   U256
		base int
		out  string
	}{
		{U256{}, 10, "0"},
		{MaxU256, 10, "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{MaxU256, 16, strings.Repeat("f", 64)},
		{MaxU256, 2, strings.Repeat("1", 256)},
		{uints[W256]("0x1 0000000000000000"), 10, "18446744073709551616"},
		{uints[W256]("0x1 0000000000000000"), 36, "3w5e11264sgsg"},
		{uints[W256]("1000000000000000000000000000000000000000"), 10, "1000000000000000000000000000000000000000"},
	} {
		t.Run(fmt.Sprintf("%d/%s", tc.base, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.Text(tc.base))

			back, err := UintFromString[W256](tc.out, tc.base)
			tt.MustOK(err)
			tt.MustEqual(tc.in, back)
		})
	}
}

func TestUintFromStringErrors(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := UintFromString[W64]("18446744073709551616", 10)
	tt.MustAssert(errors.Is(err, ErrIntegerOverflow), err)

	_, err = UintFromString[W64]("", 10)
	tt.MustAssert(errors.Is(err, ErrEmptyDigits), err)

	_, err = UintFromString[W64]("12", 37)
	tt.MustAssert(errors.Is(err, ErrInvalidBase), err)

	_, err = UintFromString[W64]("-12", 10)
	var digitErr *DigitError
	tt.MustAssert(errors.As(err, &digitErr), err)
	tt.MustEqual(0, digitErr.Pos)
	tt.MustAssert(ParseError.Has(err))

	err = catchPanic(func() { MaxU128.Text(1) })
	tt.MustAssert(errors.Is(err, ErrInvalidBase), err)
}

func TestUintFormat(t *testing.T) {
	tt := assert.WrapTB(t)
	u := uints[W128]("0xdeadbeef cafebabe 0000000000000001")

	tt.MustEqual(u.String(), fmt.Sprintf("%v", u))
	tt.MustEqual("deadbeefcafebabe0000000000000001", fmt.Sprintf("%x", u))
	tt.MustEqual("0XDEADBEEFCAFEBABE0000000000000001", fmt.Sprintf("%#X", u))
	tt.MustEqual("+255", fmt.Sprintf("%+d", u64(255)))
	tt.MustEqual("0b1010", fmt.Sprintf("%#b", u64(10)))
	tt.MustEqual("  ff", fmt.Sprintf("%4x", u64(255)))
	tt.MustEqual("00ff", fmt.Sprintf("%04x", u64(255)))
}

func TestUintMarshalText(t *testing.T) {
	tt := assert.WrapTB(t)

	bts, err := MaxU128.MarshalText()
	tt.MustOK(err)
	tt.MustEqual("340282366920938463463374607431768211455", string(bts))

	var u U128
	tt.MustOK(u.UnmarshalText(bts))
	tt.MustEqual(MaxU128, u)

	err = u.UnmarshalText([]byte("340282366920938463463374607431768211456"))
	tt.MustAssert(errors.Is(err, ErrIntegerOverflow), err)
	tt.MustEqual(MaxU128, u)
}
