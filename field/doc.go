// Package field implements arithmetic modulo the brainpoolP256r1 prime
//
//	p = 0xa9fb57dba1eea9bc3e660a909d838d726e3bf623d52620282013481d1f6e5377
//
// [Element] values are kept in Montgomery form internally so that
// multiplication reduces without division instructions; callers only ever
// observe the canonical big-endian byte encoding.
//
// Every arithmetic operation runs in constant time: the instruction
// sequence and memory access pattern depend only on public parameters,
// never on the values operated on. The only deliberate exceptions are
// [Element.PowVarTime], which is variable time in its (public) exponent,
// and the validity results of the checked constructors, which are public
// by definition.
//
// The numeric constants in fe_constants.go are produced by the generator
// in internal/generator from the modulus alone.
package field
