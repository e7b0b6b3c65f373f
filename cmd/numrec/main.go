// 14 Aug 2026

// Print the number of fastq records in each file named on the command
// line. Handy for checking what fastqgen produced.

package main

import (
	"fmt"
	"os"

	. "github.com/dan-sprague/fastqgen/pkg/common"
	"github.com/dan-sprague/fastqgen/pkg/numrec"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "file [file...]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	ret := ExitSuccess
	for _, fname := range os.Args[1:] {
		if n, err := numrec.ByMmap(fname); err != nil {
			fmt.Fprintln(os.Stderr, err)
			ret = ExitFailure
		} else {
			fmt.Println(fname, n)
		}
	}
	os.Exit(ret)
}
