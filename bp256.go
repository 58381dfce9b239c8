// Package bp256 provides arithmetic for the [brainpoolP256r1] base field,
// the coordinate field of the brainpoolP256 elliptic curves.
//
// The [github.com/AlexanderYastrebov/bp256/field] package implements the
// field element type. All arithmetic on it is constant time: the executed
// instruction sequence and memory access pattern depend only on public
// parameters such as input length, never on the values themselves.
//
// This package defines the contract that the field element implementation
// satisfies, so that consumers such as curve point arithmetic can be
// written against the contract rather than a concrete type.
//
// [brainpoolP256r1]: https://datatracker.ietf.org/doc/html/rfc5639#section-3.4
package bp256

// Element is the contract of a prime field element implementation.
//
// The type parameter E is the element pointer type itself. Methods follow
// the setter convention: the receiver is set to the result and returned,
// and all arguments and receivers are allowed to alias. Predicates return
// 1 or 0 and are constant time.
type Element[E any] interface {
	Set(a E) E
	SetUint64(v uint64) E
	SetBytes(x []byte) (E, error)
	Bytes() []byte

	Zero() E
	One() E

	Add(x, y E) E
	Subtract(x, y E) E
	Multiply(x, y E) E
	Square(x E) E
	Double(x E) E
	Negate(x E) E

	// Invert returns the receiver set to 1/x and 1, or to 0 and 0 when
	// x is zero.
	Invert(x E) (E, int)

	// Sqrt returns the receiver set to a square root of x and 1, or to
	// 0 and 0 when x is not a square in the field.
	Sqrt(x E) (E, int)

	// PowVarTime computes x to the power of the little-endian exponent
	// words. It is variable time in the exponent and must only be used
	// with public exponents.
	PowVarTime(x E, exp []uint64) E

	Equal(u E) int
	IsZero() int
	IsOdd() int
	IsEven() int

	Select(a, b E, cond int) E
}
