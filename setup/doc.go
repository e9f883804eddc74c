/*
Package setup holds the common reference string (CRS) the sampling scheme's
prover and verifiers share: the powers of a trapdoor scalar s, in both G1
and G2, as described in spec.md §3.

Unlike a production KZG deployment, this CRS is generated from a disclosed
trapdoor (spec.md §4.8, §6): there is no ceremony transcript to embed or
audit, and Generate is explicitly a one-shot, non-production operation —
anyone who learns s can forge commitments and proofs. The teacher's
embedded-ceremony-file pattern (loading pk.bin/vk.bin from a prior
multi-party computation) has no analogue here for exactly that reason; see
DESIGN.md.

A CRS is a read-only value once built (spec.md §5), passed explicitly to
every entry point rather than held in a package-level variable:
exactly one writer (Generate), arbitrarily many concurrent readers
afterwards, no locking required because nothing ever mutates it in place.
*/
package setup
