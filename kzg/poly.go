package kzg

import "github.com/adietrichs/kzg-sharding-go/field"

// divPolys performs schoolbook long division of dense coefficient-form
// polynomials a / b, returning the quotient. It discards the remainder —
// compute_proof_multi relies on the remainder vanishing for a well-formed
// proof (spec §4.3), and div_polys in the Python original does the same.
// If a's degree is lower than b's, the quotient is empty: this happens
// only in the degenerate single-coset case (N_cols == 1), where the
// "divisor" Z(X) = X^n - x^n has degree equal to the whole polynomial and
// the quotient is identically zero.
func divPolys(a, b []field.Fr) []field.Fr {
	aCopy := append([]field.Fr(nil), a...)
	apos := len(aCopy) - 1
	bpos := len(b) - 1
	diff := apos - bpos
	if diff < 0 {
		return []field.Fr{}
	}

	leadingInv := field.InvFr(b[bpos])
	out := make([]field.Fr, diff+1)
	for d := diff; d >= 0; d-- {
		quot := field.MulFr(aCopy[apos], leadingInv)
		out[d] = quot
		for i := bpos; i >= 0; i-- {
			term := field.MulFr(b[i], quot)
			aCopy[d+i] = field.SubFr(aCopy[d+i], term)
		}
		apos--
	}
	return out
}
