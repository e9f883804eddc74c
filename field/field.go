// Package field adapts github.com/consensys/gnark-crypto's BLS12-381
// implementation to the small surface the sampling core needs: the scalar
// field Fr, the two pairing groups G1/G2, the pairing target GT, and the
// multi-scalar-multiplication and pairing-check primitives built on top of
// them.
//
// Nothing here reimplements curve arithmetic. Every exported name is a
// named pass-through to gnark-crypto so the rest of the module never
// imports ecc/bls12-381 directly.
package field

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// multiExpConfig builds the gnark-crypto worker-pool configuration for an
// MSM. nbTasks <= 0 means "let gnark-crypto pick", matching its own default.
func multiExpConfig(nbTasks int) ecc.MultiExpConfig {
	return ecc.MultiExpConfig{NbTasks: nbTasks}
}

// Fr is an element of the BLS12-381 scalar field.
type Fr = fr.Element

// G1 and G2 are affine points on the two pairing-friendly groups. GT is the
// pairing target group.
type G1 = bls12381.G1Affine
type G2 = bls12381.G2Affine
type GT = bls12381.GT

// G1Gen and G2Gen are the standard generators of G1 and G2.
var (
	G1Gen G1
	G2Gen G2
)

func init() {
	_, _, G1Gen, G2Gen = bls12381.Generators()
}

// Modulus returns the order of the BLS12-381 scalar field, MODULUS in
// spec terms.
func Modulus() *big.Int {
	return fr.Modulus()
}

// NewFr builds an Fr element from a small integer. Handy for constants such
// as the primitive root.
func NewFr(v uint64) Fr {
	var z Fr
	z.SetUint64(v)
	return z
}

// RandomFr draws a uniformly random nonzero element of Fr from rng. It is
// the seam the aggregated verifier uses for its per-call challenge: tests
// supply a deterministic rng, production callers pass crypto/rand.Reader.
func RandomFr(rng io.Reader) (Fr, error) {
	modulus := fr.Modulus()
	// oversample before reducing so the reduction bias is negligible.
	buf := make([]byte, fr.Bytes+16)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Fr{}, err
		}
		x := new(big.Int).SetBytes(buf)
		x.Mod(x, modulus)
		if x.Sign() == 0 {
			continue
		}
		var z Fr
		z.SetBigInt(x)
		return z, nil
	}
}

// PowFr returns base^exp mod MODULUS.
func PowFr(base Fr, exp *big.Int) Fr {
	var z Fr
	z.Exp(base, exp)
	return z
}

// PowFrUint64 returns base^exp mod MODULUS for a small exponent.
func PowFrUint64(base Fr, exp uint64) Fr {
	return PowFr(base, new(big.Int).SetUint64(exp))
}

// InvFr returns the multiplicative inverse of a nonzero element.
func InvFr(a Fr) Fr {
	var z Fr
	z.Inverse(&a)
	return z
}

// AddFr, SubFr and MulFr are named wrappers kept for call-site readability
// in the polynomial and FFT code, where expressions otherwise read as a
// wall of pointer-receiver method calls.
func AddFr(a, b Fr) Fr {
	var z Fr
	z.Add(&a, &b)
	return z
}

func SubFr(a, b Fr) Fr {
	var z Fr
	z.Sub(&a, &b)
	return z
}

func MulFr(a, b Fr) Fr {
	var z Fr
	z.Mul(&a, &b)
	return z
}

func NegFr(a Fr) Fr {
	var z Fr
	z.Neg(&a)
	return z
}

// ScalarMulG1 returns [s]P.
func ScalarMulG1(p G1, s *big.Int) G1 {
	var z G1
	z.ScalarMultiplication(&p, s)
	return z
}

// ScalarMulG2 returns [s]P.
func ScalarMulG2(p G2, s *big.Int) G2 {
	var z G2
	z.ScalarMultiplication(&p, s)
	return z
}

func AddG1(a, b G1) G1 {
	var z G1
	z.Add(&a, &b)
	return z
}

func AddG2(a, b G2) G2 {
	var z G2
	z.Add(&a, &b)
	return z
}

func NegG1(a G1) G1 {
	var z G1
	z.Neg(&a)
	return z
}

func NegG2(a G2) G2 {
	var z G2
	z.Neg(&a)
	return z
}

// MSMG1 computes the multi-scalar-multiplication (lincomb in spec terms)
// sum_i scalars[i]*points[i]. An empty input returns the G1 identity.
// nbTasks threads the caller's desired worker-pool width through to
// gnark-crypto's MultiExp, letting the prover and the aggregated verifier
// parallelise their MSMs per spec §5 without this package knowing why.
func MSMG1(points []G1, scalars []Fr, nbTasks int) (G1, error) {
	if len(points) == 0 {
		return G1{}, nil
	}
	var res G1
	if _, err := res.MultiExp(points, scalars, multiExpConfig(nbTasks)); err != nil {
		return G1{}, err
	}
	return res, nil
}

// PairingCheck2 reports whether e(p0, q0) * e(p1, q1) == 1_GT after final
// exponentiation. Both check_proof_multi (spec §4.3) and the aggregated
// verifier (spec §4.6) reduce to exactly this two-term pairing product, so
// every cryptographic accept/reject decision in the core funnels through
// this one call.
func PairingCheck2(p0 G1, q0 G2, p1 G1, q1 G2) (bool, error) {
	return bls12381.PairingCheck([]G1{p0, p1}, []G2{q0, q1})
}
