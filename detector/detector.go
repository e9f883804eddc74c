// Package detector localises corrupted samples within a failing aggregated
// verification by binary search over the aggregated pairing check
// (spec.md §4.7).
package detector

import (
	"crypto/rand"

	"github.com/rs/zerolog/log"

	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/precondition"
	"github.com/adietrichs/kzg-sharding-go/sample"
	"github.com/adietrichs/kzg-sharding-go/setup"
	"github.com/adietrichs/kzg-sharding-go/verifier"
)

// DetectAggregated returns the ascending indices, into samples, of every
// sample detect_aggregated localises as corrupted (spec §4.7, §8).
func DetectAggregated(crs *setup.CRS, samples []sample.Sample, commitments []field.G1) ([]int, error) {
	precondition.Require(len(samples) > 0, "detect_aggregated requires a nonempty sample set")
	return detect(crs, samples, commitments, 0, len(samples))
}

// detect checks samples[begin:end] as one aggregated batch with power base
// begin+1. The base is tied to begin, not a constant, so that disjoint
// sub-ranges from the same top-level call use non-overlapping exponent
// windows of r across the whole recursion (spec §9).
func detect(crs *setup.CRS, samples []sample.Sample, commitments []field.G1, begin, end int) ([]int, error) {
	ops, err := verifier.AggregatedPairings(crs, samples[begin:end], commitments, begin+1, rand.Reader)
	if err != nil {
		return nil, err
	}
	ok, err := field.PairingCheck2(ops.LeftG1, ops.LeftG2, ops.RightG1, ops.RightG2)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, nil
	}
	if end-begin == 1 {
		log.Debug().Int("index", begin).Msg("corruption localised")
		return []int{begin}, nil
	}

	mid := (begin + end) / 2
	left, err := detect(crs, samples, commitments, begin, mid)
	if err != nil {
		return nil, err
	}
	right, err := detect(crs, samples, commitments, mid, end)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}
