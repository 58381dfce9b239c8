package field

import "math/bits"

// The functions below are the raw constant-time kernels behind [Element].
// They use bits.Add64/bits.Sub64/bits.Mul64 carry chains and mask selects
// exclusively; none of them branches on limb data.

// madd0 returns the high word of a*b + c.
func madd0(a, b, c uint64) (hi uint64) {
	var carry, lo uint64
	hi, lo = bits.Mul64(a, b)
	_, carry = bits.Add64(lo, c, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return
}

// madd2 returns hi, lo = a*b + c + d. The result always fits in two
// words: (2^64-1)^2 + 2*(2^64-1) = 2^128 - 1.
func madd2(a, b, c, d uint64) (hi uint64, lo uint64) {
	var carry uint64
	hi, lo = bits.Mul64(a, b)
	c, carry = bits.Add64(c, d, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, c, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return
}

// feAdd sets v = x + y mod p.
func feAdd(v, x, y *Element) {
	t0, c := bits.Add64(x.l[0], y.l[0], 0)
	t1, c := bits.Add64(x.l[1], y.l[1], c)
	t2, c := bits.Add64(x.l[2], y.l[2], c)
	t3, c := bits.Add64(x.l[3], y.l[3], c)
	t4 := c

	// Subtract p; the borrow out of the full five-word chain says
	// whether x+y was already below p.
	s0, b := bits.Sub64(t0, feModulus[0], 0)
	s1, b := bits.Sub64(t1, feModulus[1], b)
	s2, b := bits.Sub64(t2, feModulus[2], b)
	s3, b := bits.Sub64(t3, feModulus[3], b)
	_, b = bits.Sub64(t4, 0, b)

	m := -b // all ones when x+y < p
	v.l[0] = t0&m | s0&^m
	v.l[1] = t1&m | s1&^m
	v.l[2] = t2&m | s2&^m
	v.l[3] = t3&m | s3&^m
}

// feSub sets v = x - y mod p.
func feSub(v, x, y *Element) {
	s0, b := bits.Sub64(x.l[0], y.l[0], 0)
	s1, b := bits.Sub64(x.l[1], y.l[1], b)
	s2, b := bits.Sub64(x.l[2], y.l[2], b)
	s3, b := bits.Sub64(x.l[3], y.l[3], b)

	// Add p back when the subtraction borrowed.
	m := -b
	var c uint64
	v.l[0], c = bits.Add64(s0, feModulus[0]&m, 0)
	v.l[1], c = bits.Add64(s1, feModulus[1]&m, c)
	v.l[2], c = bits.Add64(s2, feModulus[2]&m, c)
	v.l[3], _ = bits.Add64(s3, feModulus[3]&m, c)
}

// feNeg sets v = -x mod p.
func feNeg(v, x *Element) {
	s0, b := bits.Sub64(0, x.l[0], 0)
	s1, b := bits.Sub64(0, x.l[1], b)
	s2, b := bits.Sub64(0, x.l[2], b)
	s3, b := bits.Sub64(0, x.l[3], b)

	// x == 0 produces no borrow and the result stays zero.
	m := -b
	var c uint64
	v.l[0], c = bits.Add64(s0, feModulus[0]&m, 0)
	v.l[1], c = bits.Add64(s1, feModulus[1]&m, c)
	v.l[2], c = bits.Add64(s2, feModulus[2]&m, c)
	v.l[3], _ = bits.Add64(s3, feModulus[3]&m, c)
}

// feMul sets v = x * y / R mod p, the Montgomery product of x and y.
//
// This is CIOS multiplication, section 2.3.2 of Tolga Acar's thesis
// https://www.microsoft.com/en-us/research/wp-content/uploads/1998/06/97Acar.pdf
// in its full-carry form: the top bit of the brainpoolP256r1 modulus is
// set, so the shortened no-carry variant does not apply and the working
// state is n+2 words.
func feMul(v, x, y *Element) {
	var t [6]uint64

	for i := 0; i < 4; i++ {
		// t = t + x[i]*y
		var c uint64
		for j := 0; j < 4; j++ {
			c, t[j] = madd2(x.l[i], y.l[j], t[j], c)
		}
		var cy uint64
		t[4], cy = bits.Add64(t[4], c, 0)
		t[5] = cy

		// t = (t + m*p) / 2^64
		m := t[0] * feQInvNeg
		c = madd0(m, feModulus[0], t[0])
		for j := 1; j < 4; j++ {
			c, t[j-1] = madd2(m, feModulus[j], t[j], c)
		}
		t[3], cy = bits.Add64(t[4], c, 0)
		t[4] = t[5] + cy
		t[5] = 0
	}

	// t < 2p at this point; one conditional subtraction normalizes it.
	s0, b := bits.Sub64(t[0], feModulus[0], 0)
	s1, b := bits.Sub64(t[1], feModulus[1], b)
	s2, b := bits.Sub64(t[2], feModulus[2], b)
	s3, b := bits.Sub64(t[3], feModulus[3], b)
	_, b = bits.Sub64(t[4], 0, b)

	m := -b
	v.l[0] = t[0]&m | s0&^m
	v.l[1] = t[1]&m | s1&^m
	v.l[2] = t[2]&m | s2&^m
	v.l[3] = t[3]&m | s3&^m
}

// feFromMont sets v = x / R mod p, translating x out of the Montgomery
// domain. It is the n-round word-by-word Montgomery reduction, i.e.
// feMul with a second operand fixed to 1.
func feFromMont(v, x *Element) {
	t := x.l

	for i := 0; i < 4; i++ {
		m := t[0] * feQInvNeg
		c := madd0(m, feModulus[0], t[0])
		c, t[0] = madd2(m, feModulus[1], t[1], c)
		c, t[1] = madd2(m, feModulus[2], t[2], c)
		c, t[2] = madd2(m, feModulus[3], t[3], c)
		t[3] = c
	}

	s0, b := bits.Sub64(t[0], feModulus[0], 0)
	s1, b := bits.Sub64(t[1], feModulus[1], b)
	s2, b := bits.Sub64(t[2], feModulus[2], b)
	s3, b := bits.Sub64(t[3], feModulus[3], b)

	m := -b
	v.l[0] = t[0]&m | s0&^m
	v.l[1] = t[1]&m | s1&^m
	v.l[2] = t[2]&m | s2&^m
	v.l[3] = t[3]&m | s3&^m
}

// feToMont sets v = x * R mod p, translating the canonical limbs of x
// into the Montgomery domain.
func feToMont(v, x *Element) {
	feMul(v, x, feRSquare)
}

// feLessThan returns 1 if the canonical integer x is strictly below y,
// and 0 otherwise, in constant time.
func feLessThan(x, y *[4]uint64) uint64 {
	_, b := bits.Sub64(x[0], y[0], 0)
	_, b = bits.Sub64(x[1], y[1], b)
	_, b = bits.Sub64(x[2], y[2], b)
	_, b = bits.Sub64(x[3], y[3], b)
	return b
}
