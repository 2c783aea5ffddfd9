package fixnum

import (
	"fmt"
	"strings"
)

// hexDigitsMax is the most hex digits a 256-bit magnitude can need. Longer
// input is rejected before it is scanned.
const hexDigitsMax = 2 * maxBytes

func splitSign(s string) (Sign, string) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			return Negative, s[1:]
		case '+':
			return Positive, s[1:]
		}
	}
	return Positive, s
}

// parseDigits parses the magnitude that follows the sign and any prefix of s.
// A *DigitError is reported against s rather than the digits alone.
func parseDigits(s, digits string, base int, width uint) (limbs, error) {
	abs, err := parseLimbs(digits, base, width)
	if de, ok := err.(*DigitError); ok {
		de.Input = s
		de.Pos += len(s) - len(digits)
	}
	return abs, err
}

func intFromParsed[W Width](sign Sign, abs limbs) (Int[W], error) {
	out, ok := CheckedFromSignAndAbs(sign, Uint[W]{v: abs})
	if !ok {
		return out, ErrIntegerOverflow
	}
	return out, nil
}

// IntFromDecString parses an optionally signed decimal string such as
// "-1_000_000". Underscores are ignored.
//
// All errors are ParseErrors. Input that is not a decimal number wraps a
// *DigitError or ErrEmptyDigits; a number outside the range of the width
// wraps ErrIntegerOverflow.
func IntFromDecString[W Width](s string) (out Int[W], err error) {
	defer ParseError.WrapP(&err)

	sign, digits := splitSign(s)
	abs, err := parseDigits(s, digits, 10, widthOf[W]())
	if err != nil {
		return out, err
	}
	return intFromParsed[W](sign, abs)
}

// IntFromHexString parses an optionally signed hex string with an optional
// "0x" prefix, which follows the sign: "-0xff" and "-ff" are both -255.
// Either case of digit is accepted and underscores are ignored.
//
// Errors are classified as for IntFromDecString.
func IntFromHexString[W Width](s string) (out Int[W], err error) {
	defer ParseError.WrapP(&err)

	sign, digits := splitSign(s)
	digits = strings.TrimPrefix(digits, "0x")
	if len(digits) > hexDigitsMax {
		return out, ErrIntegerOverflow
	}
	abs, err := parseDigits(s, digits, 16, widthOf[W]())
	if err != nil {
		return out, err
	}
	return intFromParsed[W](sign, abs)
}

// IntFromString parses s as decimal if it can, and as hex otherwise. Input
// made only of decimal digits is therefore always decimal: "1113" is 1113, not
// 0x1113. When neither parse succeeds the error is the one from the hex
// attempt.
func IntFromString[W Width](s string) (out Int[W], err error) {
	if out, err = IntFromDecString[W](s); err == nil {
		return out, nil
	}
	return IntFromHexString[W](s)
}

// MustIntFromString is IntFromString, but panics on error. It is intended for
// constants and tests.
func MustIntFromString[W Width](s string) Int[W] {
	out, err := IntFromString[W](s)
	if err != nil {
		panic(err)
	}
	return out
}

// String returns x in decimal with a leading '-' if negative.
func (x Int[W]) String() string {
	sign, abs := x.IntoSignAndAbs()
	return sign.String() + abs.Text(10)
}

// HexString returns x as a lowercase hex string with a "0x" prefix, after
// the sign: -255 is "-0xff".
func (x Int[W]) HexString() string {
	sign, abs := x.IntoSignAndAbs()
	return sign.String() + "0x" + abs.Text(16)
}

// Format implements fmt.Formatter. The sign is printed ahead of the magnitude
// and any '#' prefix, so fmt.Sprintf("%#x", x) for -255 is "-0xff". The '+'
// flag prints a '+' for zero and positive values.
func (x Int[W]) Format(s fmt.State, c rune) {
	sign, abs := x.IntoSignAndAbs()
	formatNumber(s, c, sign, abs.Text)
}

func (x Int[W]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText accepts anything IntFromString does.
func (x *Int[W]) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString[W](string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a quoted decimal string, as JSON numbers cannot
// be relied upon to hold more than 53 bits.
func (x Int[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted string or a bare number. null leaves x
// unchanged.
func (x *Int[W]) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return ParseError.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return x.UnmarshalText(bts)
}
