package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"

	"github.com/AlexanderYastrebov/bp256"
)

// Element represents an element of the field GF(p), where p is the
// brainpoolP256r1 prime.
//
// All arguments and receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t holds the value
	//     (t.l[0] + t.l[1]*2^64 + t.l[2]*2^128 + t.l[3]*2^192) / R  mod p
	// with R = 2^256, i.e. the limbs are the Montgomery form of the
	// value. The limbs always encode an integer below p.
	l [4]uint64
}

var _ bp256.Element[*Element] = (*Element)(nil)

// Uint256 is an unsigned 256-bit integer stored as four little-endian
// 64-bit limbs. It is the canonical (non-Montgomery) integer form used at
// the package boundary.
type Uint256 [4]uint64

var (
	// ErrInvalidLength is returned when decoding a byte slice whose
	// length is not exactly [Size].
	ErrInvalidLength = errors.New("bp256: invalid field element length")

	// ErrNonCanonical is returned when decoding a value that is not
	// strictly below the field modulus.
	ErrNonCanonical = errors.New("bp256: field element is not canonical")
)

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, where x is the 32-byte big-endian encoding of a
// canonical integer in [0, p). If x is not of the right length, SetBytes
// returns nil and [ErrInvalidLength]; if x encodes a value not below the
// modulus, it returns nil and [ErrNonCanonical]. In both error cases the
// receiver is unchanged.
//
// The range check is performed in constant time; only its outcome is
// observable.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != Size {
		return nil, ErrInvalidLength
	}

	var u Uint256
	u[3] = binary.BigEndian.Uint64(x[0*8:])
	u[2] = binary.BigEndian.Uint64(x[1*8:])
	u[1] = binary.BigEndian.Uint64(x[2*8:])
	u[0] = binary.BigEndian.Uint64(x[3*8:])

	return v.SetUint256(&u)
}

// SetUint256 sets v to the canonical integer u, converting it into
// Montgomery form. It returns nil and [ErrNonCanonical] if u is not
// below the modulus, leaving the receiver unchanged.
func (v *Element) SetUint256(u *Uint256) (*Element, error) {
	if feLessThan((*[4]uint64)(u), &feModulus) == 0 {
		return nil, ErrNonCanonical
	}

	v.l = *u
	feToMont(v, v)
	return v, nil
}

// SetUint64 sets v to the small integer u, and returns v.
//
// Any uint64 is below the modulus, so SetUint64 performs no validation.
// It is primarily intended for defining internal constants.
func (v *Element) SetUint64(u uint64) *Element {
	v.l = [4]uint64{u, 0, 0, 0}
	feToMont(v, v)
	return v
}

// Bytes returns the canonical 32-byte big-endian encoding of v.
// It round-trips with [Element.SetBytes].
func (v *Element) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var out [Size]byte
	return v.bytes(&out)
}

func (v *Element) bytes(out *[Size]byte) []byte {
	var t Element
	feFromMont(&t, v)

	binary.BigEndian.PutUint64(out[0*8:], t.l[3])
	binary.BigEndian.PutUint64(out[1*8:], t.l[2])
	binary.BigEndian.PutUint64(out[2*8:], t.l[1])
	binary.BigEndian.PutUint64(out[3*8:], t.l[0])

	return out[:]
}

// Uint256 returns the canonical integer represented by v, translated out
// of the Montgomery domain.
func (v *Element) Uint256() *Uint256 {
	var t Element
	feFromMont(&t, v)
	u := Uint256(t.l)
	return &u
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	sv, su := v.Bytes(), u.Bytes()
	return subtle.ConstantTimeCompare(sv, su)
}

// IsZero returns 1 if v is zero, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

// IsOdd returns 1 if the canonical integer represented by v is odd, and
// 0 otherwise.
func (v *Element) IsOdd() int {
	var t Element
	feFromMont(&t, v)
	return int(t.l[0] & 1)
}

// IsEven returns 1 if the canonical integer represented by v is even,
// and 0 otherwise.
func (v *Element) IsEven() int {
	return v.IsOdd() ^ 1
}

// mask64Bits returns 0xffffffff... if cond is 1, and 0 otherwise.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.l[0] = (m & a.l[0]) | (^m & b.l[0])
	v.l[1] = (m & a.l[1]) | (^m & b.l[1])
	v.l[2] = (m & a.l[2]) | (^m & b.l[2])
	v.l[3] = (m & a.l[3]) | (^m & b.l[3])
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := mask64Bits(cond)
	for i := range v.l {
		t := m & (v.l[i] ^ u.l[i])
		v.l[i] ^= t
		u.l[i] ^= t
	}
}

var feZero = &Element{}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// TwoInv sets v = 1/2, and returns v.
func (v *Element) TwoInv() *Element {
	*v = *feTwoInv
	return v
}

// RootOfUnity sets v to a fixed primitive 2^S-th root of unity, which
// for this field (S = 1) is p-1, and returns v.
func (v *Element) RootOfUnity() *Element {
	*v = *feRootOfUnity
	return v
}

// RootOfUnityInv sets v to the inverse of the [Element.RootOfUnity]
// value, and returns v. For this field it equals the root itself.
func (v *Element) RootOfUnityInv() *Element {
	*v = *feRootOfUnity
	return v
}

// Generator would set v to a fixed generator of the multiplicative
// group.
//
// A generator for this field has not been computed: certifying a
// candidate requires the full factorization of p-1, and (p-1)/2 is a
// composite with no known factorization here. Generator panics
// unconditionally rather than return a value that may have small order.
func (v *Element) Generator() *Element {
	panic("bp256: multiplicative generator is not computed for this field")
}

// Delta would set v to generator^(2^S), the standard companion constant
// of [Element.Generator]. It panics unconditionally for the same reason.
func (v *Element) Delta() *Element {
	panic("bp256: delta is not computed for this field")
}

// Add sets v = x + y, and returns v.
func (v *Element) Add(x, y *Element) *Element {
	feAdd(v, x, y)
	return v
}

// Subtract sets v = x - y, and returns v.
func (v *Element) Subtract(x, y *Element) *Element {
	feSub(v, x, y)
	return v
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	feMul(v, x, y)
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	feMul(v, x, x)
	return v
}

// Double sets v = x + x, and returns v.
func (v *Element) Double(x *Element) *Element {
	feAdd(v, x, x)
	return v
}

// Negate sets v = -x, and returns v.
func (v *Element) Negate(x *Element) *Element {
	feNeg(v, x)
	return v
}

// Invert sets v = 1/x, and returns v and 1. If x is zero, Invert sets
// v = 0 and returns v and 0.
//
// The zero test is constant time; only its public outcome decides the
// returned flag, and the inversion itself runs unconditionally.
func (v *Element) Invert(x *Element) (*Element, int) {
	ok := x.IsZero() ^ 1
	feInvert(v, x)
	return v, ok
}

// PowVarTime sets v = x^e, where e is the little-endian word encoding of
// the exponent, and returns v.
//
// PowVarTime is variable time with respect to the exponent. It must only
// be used with public exponents; for a fixed exponent it is effectively
// constant time.
func (v *Element) PowVarTime(x *Element, e []uint64) *Element {
	base := *x
	res := *feOne

	for i := len(e) - 1; i >= 0; i-- {
		for j := 63; j >= 0; j-- {
			feMul(&res, &res, &res)
			if (e[i]>>j)&1 == 1 {
				feMul(&res, &res, &base)
			}
		}
	}

	*v = res
	return v
}

// Sqrt sets v to a square root of x and returns v and 1. If x is not a
// square in the field, Sqrt sets v = 0 and returns v and 0.
//
// The modulus satisfies p = 3 (mod 4), so the candidate root is
// x^((p+1)/4); squaring it back decides in constant time whether x was a
// square.
func (v *Element) Sqrt(x *Element) (*Element, int) {
	var c, t Element
	c.PowVarTime(x, feSqrtExp[:])
	t.Square(&c)

	wasSquare := t.Equal(x)
	v.Select(&c, feZero, wasSquare)
	return v, wasSquare
}
