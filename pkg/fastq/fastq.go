// 12 Aug 2026

// Package fastq writes four line fastq records and makes the random
// quality strings that go in them.
package fastq

import (
	"fmt"
	"io"
	"math/rand"
)

// Phred scores run from 0 to 40 and are stored as ascii characters
// with an offset of 33, so '!' up to 'I'.
const (
	QualOffset = 33
	QualTop    = 40
)

// RandQual returns seqlen quality characters, each drawn uniformly
// from the phred range. A seqlen of zero gives an empty string.
func RandQual(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := 0; i < seqlen; i++ {
		ret[i] = byte(QualOffset + rnd.Int31n(QualTop+1))
	}
	return ret
}

// A Record is one read. Mate says which side of the pair it is, 1 or 2.
type Record struct {
	Seq  []byte
	Qual []byte
	Id   int
	Mate int
}

// Wrt sends the record to w as four newline terminated lines,
//
//	@read_<id>/<mate>
//	sequence
//	+
//	quality
func (r *Record) Wrt(w io.Writer) error {
	_, err := fmt.Fprintf(w, "@read_%d/%d\n%s\n+\n%s\n", r.Id, r.Mate, r.Seq, r.Qual)
	return err
}
