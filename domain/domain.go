// Package domain computes the roots-of-unity structure that ties the FFT's
// butterfly layout to the coset partition used by the sampling scheme:
// primitive roots, the reverse-bit-order permutation, and per-column coset
// factors (spec §4.1).
package domain

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/precondition"
)

// PrimitiveRoot is the generator used to derive roots of unity of the
// BLS12-381 scalar field, per spec §4.1.
const PrimitiveRoot = 5

// IsPowerOfTwo reports whether x is a power of two. Zero is not.
func IsPowerOfTwo(x uint64) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns log2(n), panicking if n is not a power of two.
func Log2(n uint64) uint {
	precondition.Require(IsPowerOfTwo(n), "%d is not a power of two", n)
	var l uint
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

// RootOfUnity returns the primitive order-th root of unity,
// PRIMITIVE_ROOT^((MODULUS-1)/order) mod MODULUS. order must be a power of
// two dividing MODULUS-1.
func RootOfUnity(order uint64) field.Fr {
	precondition.Require(IsPowerOfTwo(order), "root-of-unity order %d is not a power of two", order)

	modulus := field.Modulus()
	modulusMinus1 := new(big.Int).Sub(modulus, big.NewInt(1))
	orderBig := new(big.Int).SetUint64(order)

	quotient, remainder := new(big.Int).QuoRem(modulusMinus1, orderBig, new(big.Int))
	precondition.Require(remainder.Sign() == 0, "root-of-unity order %d does not divide MODULUS-1", order)

	return field.PowFr(field.NewFr(PrimitiveRoot), quotient)
}

// Expand returns [1, root, root^2, ...], terminated as soon as the running
// power returns to 1 (spec §4.1's "expansion").
func Expand(root field.Fr) []field.Fr {
	one := field.NewFr(1)
	rootz := []field.Fr{one, root}
	for !rootz[len(rootz)-1].Equal(&one) {
		rootz = append(rootz, field.MulFr(rootz[len(rootz)-1], root))
	}
	return rootz
}

// BitReverse reverses the low logN bits of k.
func BitReverse(k uint64, logN uint) uint64 {
	var r uint64
	for i := uint(0); i < logN; i++ {
		r |= ((k >> i) & 1) << (logN - 1 - i)
	}
	return r
}

// ReverseBitOrder permutes a power-of-two-length slice so that the element
// at position k moves to position bit_reverse(k, log2(len)). It is its own
// inverse (spec §4.1, testable property 6).
func ReverseBitOrder[T any](l []T) []T {
	n := uint64(len(l))
	logN := Log2(n)
	out := make([]T, n)
	for k := uint64(0); k < n; k++ {
		out[k] = l[BitReverse(k, logN)]
	}
	return out
}

// CosetFactor returns h_j, the shift that ties column j (at sample width
// nLocs) to its coset h_j * <omega_nLocs>. crsOrder is the CRS length |S1|,
// the number of N-th roots of unity the matrix's rows are evaluated over.
func CosetFactor(j, nLocs int, crsOrder uint64) field.Fr {
	precondition.Require(j >= 0 && nLocs > 0, "coset factor requires j >= 0 and nLocs > 0")
	idx := uint64(j) * uint64(nLocs)
	precondition.Require(idx < crsOrder, "column %d at width %d exceeds CRS order %d", j, nLocs, crsOrder)

	root := RootOfUnity(crsOrder)
	omega := Expand(root)[:crsOrder] // drop the repeated terminal 1
	reordered := ReverseBitOrder(omega)
	return reordered[idx]
}

// TouchedSet tracks which of a fixed universe of indices (rows or columns)
// a sample set touches, backed by bits-and-blooms/bitset rather than a
// hand-rolled []bool — the aggregated verifier (spec §4.6 steps 4 and 5)
// only ever needs membership and iteration over the set bits.
type TouchedSet struct {
	bits *bitset.BitSet
}

// NewTouchedSet allocates a TouchedSet over the universe [0, n).
func NewTouchedSet(n int) *TouchedSet {
	return &TouchedSet{bits: bitset.New(uint(n))}
}

// Mark records that index i is touched.
func (t *TouchedSet) Mark(i int) {
	t.bits.Set(uint(i))
}

// Has reports whether index i is touched.
func (t *TouchedSet) Has(i int) bool {
	return t.bits.Test(uint(i))
}

// Each calls f with every touched index in ascending order.
func (t *TouchedSet) Each(f func(i int)) {
	for i, ok := t.bits.NextSet(0); ok; i, ok = t.bits.NextSet(i + 1) {
		f(int(i))
	}
}
