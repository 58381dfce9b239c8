// Generator for the derived field constants in fe_constants.go.
//
// Every emitted value is recomputed from the modulus with math/big, so
// the arithmetic kernels never have to trust hand-copied numbers.
package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const modulusHex = "a9fb57dba1eea9bc3e660a909d838d726e3bf623d52620282013481d1f6e5377"

//go:generate go run main.go
func main() {
	cfg, err := newFieldConfig(modulusHex)
	assertNoError(err)

	bgen := bavard.NewBatchGenerator("", 2025, "bp256/field/internal/generator")

	assertNoError(bgen.Generate(cfg, "field", "templates",
		bavard.Entry{
			File:      "../../fe_constants.go",
			Templates: []string{"fe_constants.go.tmpl"},
			BuildTag:  "",
		},
	))

	runCmd("gofmt", "-w", "../..")
}

type fieldConfig struct {
	ModulusHex     string
	Bits           int
	S              int
	Iterations     int
	Modulus        []string
	QInvNeg        string
	One            []string
	RSquare        []string
	TwoInv         []string
	RootOfUnity    []string
	DivstepPrecomp []string
	SqrtExp        []string
}

func newFieldConfig(hex string) (*fieldConfig, error) {
	p, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("invalid modulus %q", hex)
	}
	if p.BitLen() != 256 {
		return nil, fmt.Errorf("modulus must be 256 bits, got %d", p.BitLen())
	}
	if !p.ProbablyPrime(64) {
		return nil, fmt.Errorf("modulus is not prime")
	}
	if p.Bit(0) != 1 || p.Bit(1) != 1 {
		// The sqrt exponent below assumes p = 3 (mod 4).
		return nil, fmt.Errorf("modulus must be 3 mod 4")
	}

	one := big.NewInt(1)
	w64 := new(big.Int).Lsh(one, 64)
	r := new(big.Int).Lsh(one, 256)

	cfg := &fieldConfig{
		ModulusHex: hex,
		Bits:       256,
		S:          1,
		Iterations: (49*256 + 57) / 17,
	}

	mont := func(x *big.Int) []string {
		return limbs(new(big.Int).Mod(new(big.Int).Mul(x, r), p))
	}

	cfg.Modulus = limbs(p)

	// -p^-1 mod 2^64
	pInv := new(big.Int).ModInverse(p, w64)
	cfg.QInvNeg = fmt.Sprintf("%#018x", new(big.Int).Sub(w64, pInv))

	cfg.One = mont(one)
	cfg.RSquare = mont(r)
	cfg.TwoInv = mont(new(big.Int).ModInverse(big.NewInt(2), p))
	cfg.RootOfUnity = mont(new(big.Int).Sub(p, one))

	// 2^(512-k) mod p; Montgomery-multiplying the divstep Bezout
	// accumulator by this value folds away the 2^-k built up by k
	// halving steps and re-enters the Montgomery domain.
	precomp := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(512-cfg.Iterations)), p)
	cfg.DivstepPrecomp = limbs(precomp)

	sqrtExp := new(big.Int).Add(p, one)
	cfg.SqrtExp = limbs(sqrtExp.Rsh(sqrtExp, 2))

	return cfg, nil
}

// limbs formats x as four little-endian 64-bit limbs.
func limbs(x *big.Int) []string {
	var out []string
	t := new(big.Int).Set(x)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	for i := 0; i < 4; i++ {
		out = append(out, fmt.Sprintf("%#018x", new(big.Int).And(t, mask)))
		t.Rsh(t, 64)
	}
	return out
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run())
}

func assertNoError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
