// Package params validates the shape parameters a sampling run is
// configured with before any blob is touched: N (blob length), NLocs
// (sample width), and the NCols they imply. It plays the role the
// teacher's setup.Conf enum plays for a PLONK run — a small, validated
// configuration value rather than scattering the same preconditions
// across every entry point.
package params

import (
	"github.com/adietrichs/kzg-sharding-go/domain"
	"github.com/adietrichs/kzg-sharding-go/precondition"
)

// Params is the validated shape of a sampling run: N = NCols*NLocs
// scalars per blob, sharded into NCols samples of width NLocs.
type Params struct {
	N     int
	NLocs int
	NCols int
}

// New validates and builds a Params from a blob length and sample width
// (spec §3 "N must be a power of two and N_locs a power of two dividing
// N", §4.4's preconditions).
func New(n, nLocs int) Params {
	precondition.Require(domain.IsPowerOfTwo(uint64(n)), "blob length %d is not a power of two", n)
	precondition.Require(nLocs > 0 && domain.IsPowerOfTwo(uint64(nLocs)), "N_locs must be a positive power of two, got %d", nLocs)
	precondition.Require(n%nLocs == 0, "N_locs %d does not divide blob length %d", nLocs, n)

	return Params{N: n, NLocs: nLocs, NCols: n / nLocs}
}
