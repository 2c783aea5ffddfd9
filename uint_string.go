package fixnum

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
)

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// parseLimbs reads an unsigned magnitude in base from s. Underscores are
// ignored. Errors are returned unwrapped so callers can classify them.
func parseLimbs(s string, base int, width uint) (x limbs, err error) {
	if base < 2 || base > 36 {
		return x, ErrInvalidBase
	}

	var digits int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if digitValue(c) >= base {
			return x, &DigitError{Input: s, Pos: i, Char: c, Base: base}
		}
		digits++
	}
	if digits == 0 {
		return x, ErrEmptyDigits
	}

	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			continue
		}
		var carry uint64
		x, carry = mulAddSmall(&x, uint64(base), uint64(digitValue(s[i])))
		if carry != 0 || bitLenLimbs(&x) > width {
			return limbs{}, ErrIntegerOverflow
		}
	}
	return x, nil
}

// UintFromString parses s as an unsigned integer in the given base (2 to
// 36). No sign or prefix is accepted. Underscores may be used to separate
// groups of digits.
func UintFromString[W Width](s string, base int) (out Uint[W], err error) {
	x, err := parseLimbs(s, base, widthOf[W]())
	if err != nil {
		return out, ParseError.Wrap(err)
	}
	return Uint[W]{v: x}, nil
}

// chunkFor returns the largest power of base that fits in a uint64 and the
// number of digits it spans.
func chunkFor(base uint64) (chunk uint64, digits int) {
	chunk, digits = base, 1
	for {
		hi, lo := bits.Mul64(chunk, base)
		if hi != 0 {
			return chunk, digits
		}
		chunk, digits = lo, digits+1
	}
}

// Text returns the string representation of u in the given base, which must
// be between 2 and 36. Letters are lowercase.
func (u Uint[W]) Text(base int) string {
	if base < 2 || base > 36 {
		panic(fmt.Errorf("fixnum: %w %d", ErrInvalidBase, base))
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.v[0], base)
	}

	chunk, digits := chunkFor(uint64(base))

	var parts []uint64
	x := u.v
	for x != (limbs{}) {
		var r uint64
		x, r = quoRemSmall(&x, chunk)
		parts = append(parts, r)
	}

	var sb strings.Builder
	sb.Grow(len(parts) * digits)
	sb.WriteString(strconv.FormatUint(parts[len(parts)-1], base))
	for i := len(parts) - 2; i >= 0; i-- {
		s := strconv.FormatUint(parts[i], base)
		for pad := digits - len(s); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func (u Uint[W]) String() string { return u.Text(10) }

func (u Uint[W]) Format(s fmt.State, c rune) {
	formatNumber(s, c, Positive, u.Text)
}

// formatNumber implements fmt.Formatter for both Uint and Int. text renders
// the magnitude in a base; sign is written ahead of any prefix.
func formatNumber(s fmt.State, verb rune, sign Sign, text func(base int) string) {
	var base int
	var prefix string

	switch verb {
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base = 16
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		base = 16
		if s.Flag('#') {
			prefix = "0X"
		}
	case 'o':
		base = 8
		if s.Flag('#') {
			prefix = "0"
		}
	case 'O':
		base, prefix = 8, "0o"
	case 'b':
		base = 2
		if s.Flag('#') {
			prefix = "0b"
		}
	default:
		fmt.Fprintf(s, "%%!%c(fixnum=%s%s)", verb, sign, text(10))
		return
	}

	digits := text(base)
	if verb == 'X' {
		digits = strings.ToUpper(digits)
	}

	if prec, ok := s.Precision(); ok {
		if prec == 0 && digits == "0" {
			digits = ""
		}
		if len(digits) < prec {
			digits = strings.Repeat("0", prec-len(digits)) + digits
		}
	}

	lead := sign.String()
	if sign == Positive {
		if s.Flag('+') {
			lead = "+"
		} else if s.Flag(' ') {
			lead = " "
		}
	}
	lead += prefix

	if width, ok := s.Width(); ok && len(lead)+len(digits) < width {
		pad := width - len(lead) - len(digits)
		_, hasPrec := s.Precision()
		switch {
		case s.Flag('-'):
			digits += strings.Repeat(" ", pad)
		case s.Flag('0') && !hasPrec:
			digits = strings.Repeat("0", pad) + digits
		default:
			lead = strings.Repeat(" ", pad) + lead
		}
	}

	io.WriteString(s, lead)
	io.WriteString(s, digits)
}

func (u Uint[W]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[W]) UnmarshalText(bts []byte) (err error) {
	v, err := UintFromString[W](string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
