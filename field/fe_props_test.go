package field

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func genElement() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		b := make([]byte, 2*Size)
		genParams.Rng.Read(b)

		n := new(big.Int).SetBytes(b)
		n.Mod(n, modulusBig)

		return gopter.NewGenResult(*fieldElementFromBigInt(n), gopter.NoShrinker)
	}
}

func TestFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c Element) bool {
			var t1, t2 Element
			t1.Add(t1.Add(&a, &b), &c)
			t2.Add(&a, t2.Add(&b, &c))
			return t1.Equal(&t2) == 1
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c Element) bool {
			var t1, t2 Element
			t1.Multiply(t1.Multiply(&a, &b), &c)
			t2.Multiply(&a, t2.Multiply(&b, &c))
			return t1.Equal(&t2) == 1
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("negation is the additive inverse", prop.ForAll(
		func(a Element) bool {
			var neg, sum Element
			neg.Negate(&a)
			sum.Add(&a, &neg)
			return sum.IsZero() == 1
		},
		genElement(),
	))

	properties.Property("subtraction undoes addition", prop.ForAll(
		func(a, b Element) bool {
			var t Element
			t.Add(&a, &b)
			t.Subtract(&t, &b)
			return t.Equal(&a) == 1
		},
		genElement(), genElement(),
	))

	properties.Property("halving undoes doubling", prop.ForAll(
		func(a Element) bool {
			var t Element
			t.Double(&a)
			t.Multiply(&t, new(Element).TwoInv())
			return t.Equal(&a) == 1
		},
		genElement(),
	))

	properties.Property("nonzero elements have multiplicative inverses", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() == 1 {
				return true
			}
			inv, ok := new(Element).Invert(&a)
			if ok != 1 {
				return false
			}
			var prod Element
			prod.Multiply(&a, inv)
			return prod.Equal(new(Element).One()) == 1
		},
		genElement(),
	))

	properties.Property("byte encoding is canonical", prop.ForAll(
		func(a Element) bool {
			e, err := new(Element).SetBytes(a.Bytes())
			return err == nil && e.Equal(&a) == 1
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
