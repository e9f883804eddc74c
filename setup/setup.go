package setup

import (
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/precondition"
)

// CRS is the common reference string: S1[i] = [s^i]*G1 and S2[i] = [s^i]*G2
// for i in [0, size], where s is the (discarded) trapdoor. len(S1) ==
// len(S2) == size+1.
type CRS struct {
	S1 []field.G1
	S2 []field.G2
}

// Order is the number of distinct powers of s committed to, |S1|.
func (c *CRS) Order() int {
	return len(c.S1)
}

// Generate builds a CRS of order size+1 from the trapdoor s. This is the
// core's only stateful transition (spec.md §4.8: Uninitialised ->
// Initialised); callers are expected to discard s immediately afterwards.
// Re-running Generate with a fresh trapdoor produces an independent CRS —
// unlike the Python original's module-level singleton, nothing here
// prevents several CRSes from coexisting, which is what lets tests build a
// fresh one per case instead of sharing global state.
func Generate(s field.Fr, size int) *CRS {
	precondition.Require(size >= 0, "CRS size must be non-negative, got %d", size)

	s1 := make([]field.G1, size+1)
	s2 := make([]field.G2, size+1)

	power := field.NewFr(1)
	for i := 0; i <= size; i++ {
		var powerBig big.Int
		power.BigInt(&powerBig)
		s1[i] = field.ScalarMulG1(field.G1Gen, &powerBig)
		s2[i] = field.ScalarMulG2(field.G2Gen, &powerBig)
		power = field.MulFr(power, s)
	}

	log.Debug().Int("order", size+1).Msg("generated CRS")
	return &CRS{S1: s1, S2: s2}
}
