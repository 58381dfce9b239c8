package field

import "math/bits"

// invertIterations is the divstep count sufficient for 256-bit inputs,
// per "Fast constant-time gcd computation and modular inversion"
// (Bernstein, Yang; https://gcd.cr.yp.to/papers.html#safegcd).
const invertIterations = (49*Bits + 57) / 17

// feInvert sets v = 1/x mod p, or v = 0 when x is zero.
//
// The algorithm is a constant-time Bernstein-Yang divstep iteration: a
// binary-GCD variant that runs for a fixed number of steps with identical
// control flow for every input. f and g carry the gcd state as five-limb
// two's-complement integers; u and r accumulate the Bezout coefficient
// of the input as ordinary residues mod p. Each step either swap-negates
// the state (masked, when delta > 0 and g is odd) and then unconditionally
// adds f into an odd g and halves it, mirroring the updates into r and u
// so that after k steps u*a = +-2^k * f holds mod p. After the final
// step g is zero, f is +-1, and the inverse is recovered by fixing the
// sign of u and Montgomery-multiplying by the precomputed 2^(512-k).
func feInvert(v, x *Element) {
	var a Element
	feFromMont(&a, x)

	f := [5]uint64{feModulus[0], feModulus[1], feModulus[2], feModulus[3], 0}
	g := [5]uint64{a.l[0], a.l[1], a.l[2], a.l[3], 0}
	d := uint64(1)

	var u, r Element
	r.l[0] = 1 // plain residue 1; u and r never enter the Montgomery domain

	for i := 0; i < invertIterations; i++ {
		negd := -d
		swap := -((negd >> 63) & (g[0] & 1)) // all ones when d > 0 and g odd

		// Masked (d, f, g, u, r) = (-d, g, -f, r, -u).
		d = negd&swap | d&^swap

		var nf [5]uint64
		var b uint64
		nf[0], b = bits.Sub64(0, f[0], 0)
		nf[1], b = bits.Sub64(0, f[1], b)
		nf[2], b = bits.Sub64(0, f[2], b)
		nf[3], b = bits.Sub64(0, f[3], b)
		nf[4], _ = bits.Sub64(0, f[4], b)
		for k := range f {
			f[k], g[k] = g[k]&swap|f[k]&^swap, nf[k]&swap|g[k]&^swap
		}

		var nu Element
		feNeg(&nu, &u)
		for k := range u.l {
			u.l[k], r.l[k] = r.l[k]&swap|u.l[k]&^swap, nu.l[k]&swap|r.l[k]&^swap
		}

		// Unconditional step: d += 1; g = (g + (g mod 2)*f) / 2 and the
		// matching r += (g mod 2)*u; u *= 2.
		d++
		odd := -(g[0] & 1)

		var c uint64
		g[0], c = bits.Add64(g[0], f[0]&odd, 0)
		g[1], c = bits.Add64(g[1], f[1]&odd, c)
		g[2], c = bits.Add64(g[2], f[2]&odd, c)
		g[3], c = bits.Add64(g[3], f[3]&odd, c)
		g[4], _ = bits.Add64(g[4], f[4]&odd, c)

		// Arithmetic shift right by one across the five limbs.
		g[0] = g[0]>>1 | g[1]<<63
		g[1] = g[1]>>1 | g[2]<<63
		g[2] = g[2]>>1 | g[3]<<63
		g[3] = g[3]>>1 | g[4]<<63
		g[4] = uint64(int64(g[4]) >> 1)

		t := Element{l: [4]uint64{u.l[0] & odd, u.l[1] & odd, u.l[2] & odd, u.l[3] & odd}}
		feAdd(&r, &r, &t)
		feAdd(&u, &u, &u)
	}

	// g is now zero and f holds +-1: negate u when f ended negative.
	fneg := -(f[4] >> 63)
	var nu Element
	feNeg(&nu, &u)
	for k := range u.l {
		u.l[k] = nu.l[k]&fneg | u.l[k]&^fneg
	}

	feMul(v, &u, feDivstepPrecomp)
}
