// Package verifier implements single-sample verification (spec.md §4.5)
// and the aggregated multi-sample pairing check (spec.md §4.6): collapsing
// an arbitrary batch of samples, possibly spanning many rows and columns,
// into one pairing equation via a random linear combination.
package verifier

import (
	"crypto/rand"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/adietrichs/kzg-sharding-go/domain"
	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/fft"
	"github.com/adietrichs/kzg-sharding-go/kzg"
	"github.com/adietrichs/kzg-sharding-go/precondition"
	"github.com/adietrichs/kzg-sharding-go/sample"
	"github.com/adietrichs/kzg-sharding-go/setup"
)

// Verify checks a single sample against its row's commitment (spec §4.5).
func Verify(crs *setup.CRS, s sample.Sample, commitments []field.G1) (bool, error) {
	precondition.Require(s.I >= 0 && s.I < len(commitments), "sample row %d out of range for %d commitments", s.I, len(commitments))

	h := domain.CosetFactor(s.J, len(s.Vs), uint64(crs.Order()))
	ys := domain.ReverseBitOrder(s.Vs)
	return kzg.CheckProofMulti(crs, commitments[s.I], s.Proof, h, ys)
}

// Operands are the two pairing arguments the aggregated verifier reduces a
// batch to: accept iff e(left.G1, left.G2) * e(right.G1, right.G2) == 1_GT
// after final exponentiation.
type Operands struct {
	LeftG1, RightG1 field.G1
	LeftG2, RightG2 field.G2
}

// AggregatedPairings implements spec §4.6: it collapses samples into the
// two pairing operands of the batched identity, using powerBase as the
// starting exponent for the random linear combination's weights (rho_k =
// r^(powerBase+k)). rng supplies the randomness for r; production callers
// should pass crypto/rand.Reader, tests an injected deterministic source
// (spec §9: r must be sampled after the samples are fixed).
func AggregatedPairings(crs *setup.CRS, samples []sample.Sample, commitments []field.G1, powerBase int, rng io.Reader) (Operands, error) {
	precondition.Require(len(samples) > 0, "aggregated verification requires a nonempty sample set")
	nLocs := len(samples[0].Vs)
	for _, s := range samples {
		precondition.Require(len(s.Vs) == nLocs, "samples have mismatched widths: %d vs %d", len(s.Vs), nLocs)
		precondition.Require(s.I >= 0 && s.I < len(commitments), "sample row %d out of range for %d commitments", s.I, len(commitments))
	}

	r, err := field.RandomFr(rng)
	if err != nil {
		return Operands{}, err
	}

	rho := make([]field.Fr, len(samples))
	exp := field.PowFrUint64(r, uint64(powerBase))
	for k := range samples {
		rho[k] = exp
		exp = field.MulFr(exp, r)
	}

	// Step 2: aggregate proofs.
	proofs := make([]field.G1, len(samples))
	for k, s := range samples {
		proofs[k] = s.Proof
	}
	bigPi, err := field.MSMG1(proofs, rho, 0)
	if err != nil {
		return Operands{}, err
	}

	// Step 3: W = S2[N_locs].
	precondition.Require(crs.Order() > nLocs, "CRS order %d too small for coset width %d", crs.Order(), nLocs)
	w := crs.S2[nLocs]

	// Step 4: per-row weights w_i, MSM'd against commitments with w_i != 0.
	// TouchedSet tracks which rows a sample in this batch actually touches,
	// so the MSM below only ever runs over rows with a (w.h.p. nonzero)
	// weight instead of the full row universe.
	nRows := len(commitments)
	touchedRows := domain.NewTouchedSet(nRows)
	rowWeight := make([]field.Fr, nRows)
	for k, s := range samples {
		rowWeight[s.I] = field.AddFr(rowWeight[s.I], rho[k])
		touchedRows.Mark(s.I)
	}
	rowPoints := make([]field.G1, 0, nRows)
	rowScalars := make([]field.Fr, 0, nRows)
	touchedRows.Each(func(i int) {
		rowPoints = append(rowPoints, commitments[i])
		rowScalars = append(rowScalars, rowWeight[i])
	})
	gamma, err := field.MSMG1(rowPoints, rowScalars, 0)
	if err != nil {
		return Operands{}, err
	}

	// Step 5: per-column aggregated evaluation vectors and their coset
	// interpolants, accumulated into a single length-N_locs vector. Only
	// columns TouchedSet marks as touched contribute, mirroring step 4.
	nCols := crs.Order() / nLocs
	touchedCols := domain.NewTouchedSet(nCols)
	colVecs := make([][]field.Fr, nCols)
	for k, s := range samples {
		if colVecs[s.J] == nil {
			colVecs[s.J] = make([]field.Fr, nLocs)
		}
		touchedCols.Mark(s.J)
		for l, v := range s.Vs {
			colVecs[s.J][l] = field.AddFr(colVecs[s.J][l], field.MulFr(rho[k], v))
		}
	}

	agg := make([]field.Fr, nLocs)
	root := domain.RootOfUnity(uint64(nLocs))
	touchedCols.Each(func(j int) {
		vec := colVecs[j]
		h := domain.CosetFactor(j, nLocs, uint64(crs.Order()))
		hInv := field.InvFr(h)
		iRaw := fft.Scalar(domain.ReverseBitOrder(vec), root, true)
		hInvPow := field.NewFr(1)
		for l := range iRaw {
			agg[l] = field.AddFr(agg[l], field.MulFr(iRaw[l], hInvPow))
			hInvPow = field.MulFr(hInvPow, hInv)
		}
	})

	// Step 6: E = MSM(S1[:N_locs], I); Gamma -= E.
	e, err := field.MSMG1(crs.S1[:nLocs], agg, 0)
	if err != nil {
		return Operands{}, err
	}
	gamma = field.AddG1(gamma, field.NegG1(e))

	// Step 7: Upsilon = MSM(proofs, rho_k * h_j^N_locs); Gamma += Upsilon.
	upsilonScalars := make([]field.Fr, len(samples))
	for k, s := range samples {
		h := domain.CosetFactor(s.J, nLocs, uint64(crs.Order()))
		weight := field.PowFrUint64(h, uint64(nLocs))
		upsilonScalars[k] = field.MulFr(rho[k], weight)
	}
	upsilon, err := field.MSMG1(proofs, upsilonScalars, 0)
	if err != nil {
		return Operands{}, err
	}
	gamma = field.AddG1(gamma, upsilon)

	return Operands{
		LeftG1:  bigPi,
		LeftG2:  w,
		RightG1: field.NegG1(gamma),
		RightG2: field.G2Gen,
	}, nil
}

// VerifyAggregated checks a batch of samples in a single pairing product
// (spec §4.6). An empty sample set trivially accepts (spec §8, boundary
// behaviours).
func VerifyAggregated(crs *setup.CRS, samples []sample.Sample, commitments []field.G1) (bool, error) {
	if len(samples) == 0 {
		return true, nil
	}
	ops, err := AggregatedPairings(crs, samples, commitments, 1, rand.Reader)
	if err != nil {
		return false, err
	}
	ok, err := field.PairingCheck2(ops.LeftG1, ops.LeftG2, ops.RightG1, ops.RightG2)
	if err != nil {
		return false, err
	}
	log.Debug().Int("samples", len(samples)).Bool("accepted", ok).Msg("aggregate verified")
	return ok, nil
}
