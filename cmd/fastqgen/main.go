// 13 Aug 2026

package main

import (
	"flag"
	"fmt"
	"os"

	. "github.com/dan-sprague/fastqgen/pkg/common"
	"github.com/dan-sprague/fastqgen/pkg/genpair"
)

const version = "0.1.0"

const (
	dfltOutfile = "synthetic_reads"
	dfltNPair   = 1000
	dfltLen     = 150
)

func main() {
	f := flag.NewFlagSet("fastqgen", flag.ExitOnError)
	var outfile string
	var nPair, readLen int
	var vsn bool
	f.StringVar(&outfile, "o", dfltOutfile, "output filename prefix")
	f.StringVar(&outfile, "outfile", dfltOutfile, "output filename prefix")
	f.IntVar(&nPair, "n", dfltNPair, "number of read pairs")
	f.IntVar(&readLen, "l", dfltLen, "read length in bases")
	f.BoolVar(&vsn, "V", false, "print version and exit")
	f.BoolVar(&vsn, "version", false, "print version and exit")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if vsn {
		fmt.Println("fastqgen", version)
		os.Exit(ExitSuccess)
	}
	if nPair <= 0 || readLen <= 0 {
		fmt.Fprintln(os.Stderr, "Read pair count and read length must be positive, got", nPair, "and", readLen)
		f.Usage()
		os.Exit(ExitUsageError)
	}

	if err := genpair.GenPairFiles(outfile, nPair, readLen); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	fmt.Println("Wrote", nPair, "read pairs of length", readLen,
		"to", genpair.R1name(outfile), "and", genpair.R2name(outfile))
	os.Exit(ExitSuccess)
}
