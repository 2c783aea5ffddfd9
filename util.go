package fixnum

type RandSource interface {
	Uint64() uint64
}

// RandUint generates an unsigned random integer of width W from an external
// source.
func RandUint[W Width](source RandSource) (out Uint[W]) {
	var x limbs
	for i := 0; i < limbCount(widthOf[W]()); i++ {
		x[i] = source.Uint64()
	}
	return uintFromLimbs[W](x)
}

// RandInt generates a non-negative signed random integer of width W from an
// external source.
func RandInt[W Width](source RandSource) (out Int[W]) {
	out.raw = RandUint[W](source)
	limb, mask := signMask(widthOf[W]())
	out.raw.v[limb] &^= mask
	return out
}

// DifferenceUint subtracts the smaller of a and b from the larger.
func DifferenceUint[W Width](a, b Uint[W]) Uint[W] {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// Larger returns the greater of a and b.
func Larger[W Width](a, b Int[W]) Int[W] {
	if a.LessThan(b) {
		return b
	}
	return a
}

// Smaller returns the lesser of a and b.
func Smaller[W Width](a, b Int[W]) Int[W] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// Sum adds up xs, returning zero if it is empty. Like Add, it panics if any
// partial sum overflows.
func Sum[W Width](xs ...Int[W]) (out Int[W]) {
	for _, x := range xs {
		out = out.Add(x)
	}
	return out
}

// Product multiplies xs together, returning one if it is empty. Like Mul, it
// panics if any partial product overflows, or if the width cannot hold one.
func Product[W Width](xs ...Int[W]) Int[W] {
	out := MustIntFrom[W](1)
	for _, x := range xs {
		out = out.Mul(x)
	}
	return out
}
