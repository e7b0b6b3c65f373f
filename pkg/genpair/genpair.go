// 13 Aug 2026

// Package genpair is the loop that makes paired fastq files. R1 gets a
// random sequence and R2 gets its reverse complement. The qualities on
// the two sides are independent draws.
package genpair

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dan-sprague/fastqgen/pkg/dna"
	"github.com/dan-sprague/fastqgen/pkg/fastq"
)

// Args is the set of arguments passed to the main function.
type Args struct {
	Wrtr1 io.Writer // R1 records go here
	Wrtr2 io.Writer // and R2 records here
	NPair int       // number of read pairs
	Len   int       // length of each read
	Iseed int64     // random seed, 0 means seed from system entropy
}

// entropySeed gets a seed from the system entropy source. If that is
// broken we are probably in trouble anyway, but the clock will do.
func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// GenPairMain writes NPair read pairs to the two writers. Ids count
// from 1 and both mates of a pair share their id. NPair of zero writes
// nothing, which is a well formed, if empty, fastq file. Negative
// values are the caller's mistake and are refused before anything is
// written.
func GenPairMain(args *Args) error {
	if args.NPair < 0 || args.Len < 0 {
		return fmt.Errorf("read pair count %d and length %d must not be negative", args.NPair, args.Len)
	}
	iseed := args.Iseed
	if iseed == 0 {
		iseed = entropySeed()
	}
	rnd := rand.New(rand.NewSource(iseed))
	for i := 1; i <= args.NPair; i++ {
		seq := dna.RandSeq(args.Len, rnd)
		r1 := fastq.Record{Id: i, Mate: 1, Seq: seq, Qual: fastq.RandQual(args.Len, rnd)}
		if err := r1.Wrt(args.Wrtr1); err != nil {
			return fmt.Errorf("writing R1 record %d: %w", i, err)
		}
		r2 := fastq.Record{Id: i, Mate: 2, Seq: dna.RevComp(seq), Qual: fastq.RandQual(args.Len, rnd)}
		if err := r2.Wrt(args.Wrtr2); err != nil {
			return fmt.Errorf("writing R2 record %d: %w", i, err)
		}
	}
	return nil
}

// R1name and R2name say where GenPairFiles puts its output for a given
// prefix.
func R1name(prefix string) string { return prefix + "_R1.fastq" }
func R2name(prefix string) string { return prefix + "_R2.fastq" }

// GenPairFiles opens both output files before writing any record, so a
// failure on the second open does not leave a stray first file behind.
// Output is buffered. Both files are flushed and closed on all exit
// paths and the first error wins.
func GenPairFiles(prefix string, nPair, readLen int) error {
	f1, err := os.Create(R1name(prefix))
	if err != nil {
		return fmt.Errorf("file for R1 output: %w", err)
	}
	f2, err := os.Create(R2name(prefix))
	if err != nil {
		f1.Close()
		os.Remove(R1name(prefix))
		return fmt.Errorf("file for R2 output: %w", err)
	}

	b1 := bufio.NewWriter(f1)
	b2 := bufio.NewWriter(f2)
	args := Args{Wrtr1: b1, Wrtr2: b2, NPair: nPair, Len: readLen}
	err = GenPairMain(&args)

	for _, b := range []*bufio.Writer{b1, b2} {
		if ferr := b.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flushing output: %w", ferr)
		}
	}
	for _, fp := range []*os.File{f1, f2} {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", fp.Name(), cerr)
		}
	}
	return err
}
