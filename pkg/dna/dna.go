// 12 Aug 2026

// Package dna has the small alphabet functions for making and turning
// around nucleotide sequences. Everything works on byte slices.
package dna

import (
	"fmt"
	"math/rand"
)

// Bases is the alphabet we draw from. Uniform, no ambiguity codes.
var Bases = []byte{'A', 'C', 'G', 'T'}

var cmpl [256]byte

func init() {
	cmpl['A'] = 'T'
	cmpl['T'] = 'A'
	cmpl['C'] = 'G'
	cmpl['G'] = 'C'
}

// Complement maps a base to its Watson-Crick partner. Anything outside
// ACGT means a caller has broken an invariant, so we panic rather than
// limp on with bad data.
func Complement(b byte) byte {
	c := cmpl[b]
	if c == 0 {
		panic(fmt.Sprintf("complement: not a nucleotide: %q", b))
	}
	return c
}

// RevComp returns the reverse complement of seq as a new slice.
// RevComp applied twice gives the original back.
func RevComp(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return out
}

// RandSeq returns seqlen bases drawn uniformly from Bases. A seqlen of
// zero gives an empty sequence, not an error.
func RandSeq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	l := int32(len(Bases))
	for i := 0; i < seqlen; i++ {
		ret[i] = Bases[rnd.Int31n(l)]
	}
	return ret
}
