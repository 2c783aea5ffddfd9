package fixnum

import (
	"fmt"
	"io"
)

// Sign is the direction of a signed value, split from its magnitude by
// Int.IntoSignAndAbs. Zero has a Positive sign.
//
// Signs form a multiplicative group: Positive is the identity and Negative
// is its own inverse.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// Mul returns the sign of the product of two values with signs s and n.
func (s Sign) Mul(n Sign) Sign { return s ^ n }

// Inv returns the multiplicative inverse of s, which is always s.
func (s Sign) Inv() Sign { return s }

// Neg returns the opposite sign.
func (s Sign) Neg() Sign { return s ^ 1 }

func (s Sign) IsPositive() bool { return s == Positive }
func (s Sign) IsNegative() bool { return s == Negative }

// String returns "-" for Negative and "" for Positive.
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return ""
}

// Format implements fmt.Formatter. The '+' flag renders Positive as "+".
func (s Sign) Format(f fmt.State, c rune) {
	if s == Positive && f.Flag('+') {
		io.WriteString(f, "+")
		return
	}
	io.WriteString(f, s.String())
}
