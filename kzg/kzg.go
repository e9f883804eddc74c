// Package kzg implements the commitment, multi-proof, and multi-proof
// verification primitives of spec.md §4.3: commit_to_poly,
// compute_proof_multi, and check_proof_multi. Polynomials are held in
// coefficient form, index 0 is the constant term.
package kzg

import (
	"math/big"

	"github.com/adietrichs/kzg-sharding-go/domain"
	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/fft"
	"github.com/adietrichs/kzg-sharding-go/precondition"
	"github.com/adietrichs/kzg-sharding-go/setup"
)

// CommitToPoly computes C = [P(s)]*G1 as the MSM of P's coefficients
// against the CRS's G1 powers.
func CommitToPoly(crs *setup.CRS, poly []field.Fr) (field.G1, error) {
	precondition.Require(len(poly) <= crs.Order(),
		"polynomial of length %d exceeds CRS order %d", len(poly), crs.Order())
	return field.MSMG1(crs.S1[:len(poly)], poly, 0)
}

// ComputeProofMulti computes the KZG multi-proof for poly at the coset
// x*<omega_n>: Z(X) = X^n - x^n vanishes on that coset, the quotient
// Q = poly/Z is committed to as the proof.
func ComputeProofMulti(crs *setup.CRS, poly []field.Fr, x field.Fr, n int) (field.G1, error) {
	precondition.Require(n > 0, "compute_proof_multi requires n > 0, got %d", n)

	vanishing := make([]field.Fr, n+1)
	vanishing[0] = field.NegFr(field.PowFrUint64(x, uint64(n)))
	vanishing[n] = field.NewFr(1)

	quotient := divPolys(poly, vanishing)
	return CommitToPoly(crs, quotient)
}

// CheckProofMulti verifies that commitment opens to ys at x*w^i for
// i = 0..n-1, where w is a primitive n-th root of unity and n = len(ys),
// via the single pairing check of spec §4.3.
func CheckProofMulti(crs *setup.CRS, commitment, proof field.G1, x field.Fr, ys []field.Fr) (bool, error) {
	n := len(ys)
	precondition.Require(n > 0, "check_proof_multi requires a nonempty ys")
	precondition.Require(crs.Order() > n, "CRS order %d too small for coset width %d", crs.Order(), n)

	root := domain.RootOfUnity(uint64(n))
	iRaw := fft.Scalar(ys, root, true)

	// Divide coefficient l by x^l: the coset is a shift of the subgroup by
	// x, so the raw IFFT coefficients are those of I(x*X), not I(X).
	xInv := field.InvFr(x)
	interp := make([]field.Fr, len(iRaw))
	xInvPow := field.NewFr(1)
	for l := range iRaw {
		interp[l] = field.MulFr(iRaw[l], xInvPow)
		xInvPow = field.MulFr(xInvPow, xInv)
	}

	var xnBig big.Int
	xn := field.PowFrUint64(x, uint64(n))
	xn.BigInt(&xnBig)
	xnG2 := field.ScalarMulG2(field.G2Gen, &xnBig)
	a := field.AddG2(crs.S2[n], field.NegG2(xnG2))

	interpCommit, err := field.MSMG1(crs.S1[:len(interp)], interp, 0)
	if err != nil {
		return false, err
	}
	b := field.AddG1(commitment, field.NegG1(interpCommit))
	negB := field.NegG1(b)

	return field.PairingCheck2(negB, field.G2Gen, proof, a)
}
