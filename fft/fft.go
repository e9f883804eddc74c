// Package fft implements the radix-2 Cooley-Tukey transform twice: once
// over the scalar field Fr (to move between a row's coefficient-form
// polynomial and its evaluations) and once over G1. Per the
// REDESIGN FLAG in spec.md §9, the recursion is written once, generic over
// an (Add, Scale) capability pair, rather than dispatching on a runtime
// type switch the way the Python original does.
package fft

import (
	"math/big"

	"github.com/adietrichs/kzg-sharding-go/domain"
	"github.com/adietrichs/kzg-sharding-go/field"
	"github.com/adietrichs/kzg-sharding-go/precondition"
)

// Ops captures what an element type needs to support to be transformed:
// pointwise addition and scaling by an Fr coefficient.
type Ops[T any] struct {
	Zero  T
	Add   func(a, b T) T
	Scale func(a T, s field.Fr) T
}

// naiveThreshold is the small-input cutover to the O(n^2) direct DFT. It is
// a performance knob, not a semantic one (spec §4.2, §9): any power-of-two
// threshold produces identical results.
const naiveThreshold = 4

func negOne() field.Fr {
	return field.NegFr(field.NewFr(1))
}

func directDFT[T any](vals []T, roots []field.Fr, ops Ops[T]) []T {
	n := len(roots)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		acc := ops.Zero
		for j := 0; j < n; j++ {
			acc = ops.Add(acc, ops.Scale(vals[j], roots[(i*j)%n]))
		}
		out[i] = acc
	}
	return out
}

func transform[T any](vals []T, roots []field.Fr, ops Ops[T]) []T {
	n := len(vals)
	if n == 1 {
		return []T{vals[0]}
	}
	if n <= naiveThreshold {
		return directDFT(vals, roots, ops)
	}

	evenVals := strided(vals, 0)
	oddVals := strided(vals, 1)
	halfRoots := strided(roots, 0)

	l := transform(evenVals, halfRoots, ops)
	r := transform(oddVals, halfRoots, ops)

	out := make([]T, n)
	no := negOne()
	for i := range l {
		yTimesRoot := ops.Scale(r[i], roots[i])
		out[i] = ops.Add(l[i], yTimesRoot)
		out[i+len(l)] = ops.Add(l[i], ops.Scale(yTimesRoot, no))
	}
	return out
}

// strided returns every other element of s starting at offset.
func strided[T any](s []T, offset int) []T {
	out := make([]T, 0, (len(s)-offset+1)/2)
	for i := offset; i < len(s); i += 2 {
		out = append(out, s[i])
	}
	return out
}

// rootsForLength returns the order-n root sequence transform needs: the
// natural powers of root for the forward transform, or the powers of
// root^-1 for the inverse one (spec §4.2: "the inverse transform uses the
// reversed roots-of-unity sequence").
func rootsForLength(root field.Fr, n int, inverse bool) []field.Fr {
	if inverse {
		return domain.Expand(field.InvFr(root))[:n]
	}
	return domain.Expand(root)[:n]
}

func fftLength(root field.Fr) int {
	// Expand terminates with a repeated 1, so the order is one less than
	// the expansion's length.
	return len(domain.Expand(root)) - 1
}

// Scalar runs the forward or inverse transform over Fr. vals is zero-padded
// up to the order of root if shorter. fft(ifft(x)) == x for any
// power-of-two-length x no longer than that order (spec §4.2, testable
// property 7).
func Scalar(vals []field.Fr, root field.Fr, inverse bool) []field.Fr {
	n := fftLength(root)
	precondition.Require(domain.IsPowerOfTwo(uint64(n)), "fft order %d is not a power of two", n)
	precondition.Require(len(vals) <= n, "fft input length %d exceeds root order %d", len(vals), n)

	padded := make([]field.Fr, n)
	copy(padded, vals)

	roots := rootsForLength(root, n, inverse)
	ops := Ops[field.Fr]{
		Zero:  field.NewFr(0),
		Add:   field.AddFr,
		Scale: field.MulFr,
	}
	out := transform(padded, roots, ops)

	if inverse {
		invLen := field.InvFr(field.NewFr(uint64(n)))
		for i := range out {
			out[i] = field.MulFr(out[i], invLen)
		}
	}
	return out
}

// G1 is Scalar lifted to the G1 group: group addition replaces field
// addition, scalar multiplication replaces field multiplication. The
// prover and the verifiers work over Fr only and do not call it.
func G1(vals []field.G1, root field.Fr, inverse bool) []field.G1 {
	n := fftLength(root)
	precondition.Require(domain.IsPowerOfTwo(uint64(n)), "fft order %d is not a power of two", n)
	precondition.Require(len(vals) <= n, "fft input length %d exceeds root order %d", len(vals), n)

	padded := make([]field.G1, n)
	copy(padded, vals)

	roots := rootsForLength(root, n, inverse)
	ops := Ops[field.G1]{
		Zero: field.G1{},
		Add:  field.AddG1,
		Scale: func(a field.G1, s field.Fr) field.G1 {
			var sBig big.Int
			s.BigInt(&sBig)
			return field.ScalarMulG1(a, &sBig)
		},
	}
	out := transform(padded, roots, ops)

	if inverse {
		invLen := field.InvFr(field.NewFr(uint64(n)))
		var invLenBig big.Int
		invLen.BigInt(&invLenBig)
		for i := range out {
			out[i] = field.ScalarMulG1(out[i], &invLenBig)
		}
	}
	return out
}
