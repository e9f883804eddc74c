// Package sample defines the unit the prover emits and the verifiers
// consume: a single coset's worth of evaluations from one row, together
// with its KZG multi-proof (spec.md §3).
package sample

import "github.com/adietrichs/kzg-sharding-go/field"

// Sample is (i, j, vs, pi): row i, column j, the N_locs evaluations at
// that column's coset, and the multi-proof attesting to them.
type Sample struct {
	I     int
	J     int
	Vs    []field.Fr
	Proof field.G1
}

// Matrix is the per-row, per-column table of samples a prover run
// produces: Matrix[i][j] is the sample for row i, column j.
type Matrix [][]Sample
