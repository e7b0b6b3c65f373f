// 14 Aug 2026

// Package numrec counts the records in a fastq file. A record is four
// lines, so we count newlines and divide. Counting '@' would be wrong,
// since '@' is a legal quality character and can start a quality line.
package numrec

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

var newline = []byte{'\n'}

// nFromLines converts a line count to a record count. A fastq file
// whose line count is not a multiple of four is broken.
func nFromLines(nLine int, fname string) (int, error) {
	if nLine%4 != 0 {
		return 0, fmt.Errorf("%s: %d lines, not a multiple of four", fname, nLine)
	}
	return nLine / 4, nil
}

// ByMmap maps the whole file and counts in one go. Mapping a zero
// length file fails on most systems, so that case is answered directly.
func ByMmap(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if fi.Size() == 0 {
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return nFromLines(bytes.Count(mm, newline), fname)
}

// ByReading walks through the file with a buffer of bufsize bytes. It
// needs no address space for the whole file, but is slower than the
// mmap version on anything big.
func ByReading(fname string, bufsize int) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	buf := make([]byte, bufsize)
	nLine := 0
	for {
		n, err := fp.Read(buf)
		nLine += bytes.Count(buf[:n], newline)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	return nFromLines(nLine, fname)
}
