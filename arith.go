package fixnum

import "math/bits"

// limbs is the storage shared by every width: four 64-bit words, least
// significant first. Widths below 256 bits leave the unused high bits zero.
type limbs = [maxLimbs]uint64

func addLimbs(x, y *limbs) (z limbs, carry uint64) {
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	return z, carry
}

func subLimbs(x, y *limbs) (z limbs, borrow uint64) {
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], borrow = bits.Sub64(x[3], y[3], borrow)
	return z, borrow
}

// mulLimbs returns the low 256 bits of x*y. high is true if any bit of the
// full 512-bit product above bit 255 was set.
func mulLimbs(x, y *limbs) (z limbs, high bool) {
	var p [maxLimbs * 2]uint64

	for i := 0; i < maxLimbs; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < maxLimbs; j++ {
			hi, lo := bits.Mul64(x[i], y[j])

			var c uint64
			lo, c = bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			p[i+j] = lo
			carry = hi
		}
		p[i+maxLimbs] = carry
	}

	copy(z[:], p[:maxLimbs])
	high = p[4]|p[5]|p[6]|p[7] != 0
	return z, high
}

// mulAddSmall returns x*m + a and the word carried out of the top limb.
func mulAddSmall(x *limbs, m, a uint64) (z limbs, carry uint64) {
	carry = a
	for i := 0; i < maxLimbs; i++ {
		hi, lo := bits.Mul64(x[i], m)
		var c uint64
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return z, carry
}

// quoRemSmall divides x by a single non-zero word.
func quoRemSmall(x *limbs, d uint64) (q limbs, r uint64) {
	for i := maxLimbs - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], d)
	}
	return q, r
}

func cmpLimbs(x, y *limbs) int {
	for i := maxLimbs - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

func lshLimbs(x *limbs, n uint) (z limbs) {
	if n >= maxBits {
		return z
	}
	words, shift := int(n/64), n%64
	for i := maxLimbs - 1; i >= words; i-- {
		z[i] = x[i-words] << shift
		if shift > 0 && i-words-1 >= 0 {
			z[i] |= x[i-words-1] >> (64 - shift)
		}
	}
	return z
}

func rshLimbs(x *limbs, n uint) (z limbs) {
	if n >= maxBits {
		return z
	}
	words, shift := int(n/64), n%64
	for i := 0; i+words < maxLimbs; i++ {
		z[i] = x[i+words] >> shift
		if shift > 0 && i+words+1 < maxLimbs {
			z[i] |= x[i+words+1] << (64 - shift)
		}
	}
	return z
}

func bitLenLimbs(x *limbs) uint {
	for i := maxLimbs - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(i*64 + bits.Len64(x[i]))
		}
	}
	return 0
}

func trailingZerosLimbs(x *limbs) uint {
	for i := 0; i < maxLimbs; i++ {
		if x[i] != 0 {
			return uint(i*64 + bits.TrailingZeros64(x[i]))
		}
	}
	return maxBits
}

// quoRemLimbs divides u by a non-zero divisor using word-level long
// division (Knuth, TAOCP vol. 2, 4.3.1, algorithm D). The divisor is
// normalized so its top word has the high bit set, which keeps each
// estimated quotient word at most two too large.
func quoRemLimbs(u, v limbs) (q, r limbs) {
	n := maxLimbs
	for n > 0 && v[n-1] == 0 {
		n--
	}
	if n == 1 {
		q, r[0] = quoRemSmall(&u, v[0])
		return q, r
	}
	m := maxLimbs
	for m > 0 && u[m-1] == 0 {
		m--
	}
	if m < n {
		return q, u
	}

	s := uint(bits.LeadingZeros64(v[n-1]))
	vn := lshLimbs(&v, s)
	un0 := lshLimbs(&u, s)

	var un [maxLimbs + 1]uint64
	copy(un[:], un0[:])
	if s > 0 {
		un[maxLimbs] = u[maxLimbs-1] >> (64 - s)
	}

	vtop, vnext := vn[n-1], vn[n-2]
	for j := m - n; j >= 0; j-- {
		qhat := ^uint64(0)
		if ujn := un[j+n]; ujn != vtop {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, un[j+n-1], vtop)
			for {
				hi, lo := bits.Mul64(qhat, vnext)
				if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
					break
				}
				qhat--
				prev := rhat
				rhat += vtop
				if rhat < prev {
					break
				}
			}
		}

		// un[j:j+n+1] -= qhat * vn[:n]
		var carry, borrow uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			carry = hi + c
			un[j+i], borrow = bits.Sub64(un[j+i], lo, borrow)
		}
		un[j+n], borrow = bits.Sub64(un[j+n], carry, borrow)

		if borrow != 0 {
			// qhat was one too large; add the divisor back.
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				un[j+i], c = bits.Add64(un[j+i], vn[i], c)
			}
			un[j+n] += c
		}
		q[j] = qhat
	}

	copy(r[:], un[:maxLimbs])
	return q, rshLimbs(&r, s)
}
