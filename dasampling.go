// Package dasampling is the public entry point: the five operations
// spec.md §6 lists as the core's external interface, wrapping the
// per-concern packages (setup, prover, verifier, detector) that do the
// actual work.
package dasampling

import (
	"io"

	"github.com/adietrichs/kzg-sharding-go/detector"
	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/prover"
	"github.com/adietrichs/kzg-sharding-go/sample"
	"github.com/adietrichs/kzg-sharding-go/setup"
	"github.com/adietrichs/kzg-sharding-go/verifier"
)

// Fr, G1 and Sample are re-exported so callers need not import the
// per-concern packages directly for the common case.
type (
	Fr     = field.Fr
	G1     = field.G1
	Sample = sample.Sample
	Matrix = sample.Matrix
	CRS    = setup.CRS
)

// GenerateSetup builds a CRS of order size+1 from the trapdoor s
// (spec §4.8, §6).
func GenerateSetup(s Fr, size int) *CRS {
	return setup.Generate(s, size)
}

// CreateMatrix shards blobs into samples of width nLocs, committing each
// row (spec §4.4, §6).
func CreateMatrix(crs *CRS, blobs [][]Fr, nLocs int) (Matrix, []G1, error) {
	return prover.CreateMatrix(crs, blobs, nLocs)
}

// Verify checks one sample against its row's commitment (spec §4.5, §6).
func Verify(crs *CRS, s Sample, commitments []G1) (bool, error) {
	return verifier.Verify(crs, s, commitments)
}

// VerifyAggregated checks a batch of samples in a single pairing product,
// drawing its randomness from crypto/rand.Reader (spec §4.6, §6).
func VerifyAggregated(crs *CRS, samples []Sample, commitments []G1) (bool, error) {
	return verifier.VerifyAggregated(crs, samples, commitments)
}

// VerifyAggregatedWithRNG is VerifyAggregated with an injectable
// randomness source, for deterministic tests (spec §9 "RNG ... must be
// injected (seam) for deterministic testing").
func VerifyAggregatedWithRNG(crs *CRS, samples []Sample, commitments []G1, rng io.Reader) (bool, error) {
	if len(samples) == 0 {
		return true, nil
	}
	ops, err := verifier.AggregatedPairings(crs, samples, commitments, 1, rng)
	if err != nil {
		return false, err
	}
	return field.PairingCheck2(ops.LeftG1, ops.LeftG2, ops.RightG1, ops.RightG2)
}

// DetectAggregated localises corrupted samples via binary search over
// VerifyAggregated (spec §4.7, §6).
func DetectAggregated(crs *CRS, samples []Sample, commitments []G1) ([]int, error) {
	return detector.DetectAggregated(crs, samples, commitments)
}
