// Package prover builds the sample matrix and per-row commitments from a
// set of blobs (spec.md §4.4). It is the only component that shards data;
// everything downstream only ever consumes Samples and Commitments.
package prover

import (
	"golang.org/x/sync/errgroup"

	"github.com/rs/zerolog/log"

	"github.com/adietrichs/kzg-sharding-go/domain"
	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/fft"
	"github.com/adietrichs/kzg-sharding-go/internal/params"
	"github.com/adietrichs/kzg-sharding-go/kzg"
	"github.com/adietrichs/kzg-sharding-go/precondition"
	"github.com/adietrichs/kzg-sharding-go/sample"
	"github.com/adietrichs/kzg-sharding-go/setup"
)

// CreateMatrix shards every blob into N_cols = len(blob)/nLocs samples,
// computing each row's commitment and per-sample multi-proof. Every blob
// must have the same length N, a power of two with N <= crs.Order() and
// nLocs | N. Coset factors are taken over the crs.Order()-th roots of
// unity, so crs.Order() must itself be a power of two. Rows are processed
// concurrently; their results are assembled back in row order.
func CreateMatrix(crs *setup.CRS, blobs [][]field.Fr, nLocs int) (sample.Matrix, []field.G1, error) {
	precondition.Require(len(blobs) > 0, "create_matrix requires at least one blob")

	p := params.New(len(blobs[0]), nLocs)
	precondition.Require(crs.Order() >= p.N, "CRS order %d is smaller than blob length %d", crs.Order(), p.N)
	for i, b := range blobs {
		precondition.Require(len(b) == p.N, "blob %d has length %d, want %d", i, len(b), p.N)
	}

	matrix := make(sample.Matrix, len(blobs))
	commitments := make([]field.G1, len(blobs))

	g := new(errgroup.Group)
	for i, blob := range blobs {
		i, blob := i, blob
		g.Go(func() error {
			row, commitment, err := buildRow(crs, i, blob, p.NLocs, p.NCols)
			if err != nil {
				return err
			}
			matrix[i] = row
			commitments[i] = commitment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return matrix, commitments, nil
}

// buildRow implements spec §4.4's per-blob steps: interpolate the row's
// polynomial, commit to it, and emit one sample per column.
func buildRow(crs *setup.CRS, i int, blob []field.Fr, nLocs, nCols int) ([]sample.Sample, field.G1, error) {
	n := len(blob)
	root := domain.RootOfUnity(uint64(n))
	poly := fft.Scalar(domain.ReverseBitOrder(blob), root, true)

	commitment, err := kzg.CommitToPoly(crs, poly)
	if err != nil {
		return nil, field.G1{}, err
	}
	log.Debug().Int("row", i).Msg("row committed")

	row := make([]sample.Sample, nCols)
	for j := 0; j < nCols; j++ {
		h := domain.CosetFactor(j, nLocs, uint64(crs.Order()))
		proof, err := kzg.ComputeProofMulti(crs, poly, h, nLocs)
		if err != nil {
			return nil, field.G1{}, err
		}
		vs := append([]field.Fr(nil), blob[nLocs*j:nLocs*(j+1)]...)
		row[j] = sample.Sample{I: i, J: j, Vs: vs, Proof: proof}
		log.Debug().Int("row", i).Int("col", j).Msg("sample proven")
	}

	return row, commitment, nil
}
