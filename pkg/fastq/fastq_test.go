// 12 Aug 2026

package fastq_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dan-sprague/fastqgen/pkg/fastq"
)

func TestRandQualRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	for _, qlen := range []int{0, 1, 150, 2000} {
		q := fastq.RandQual(qlen, rnd)
		if len(q) != qlen {
			t.Fatal("Expected length", qlen, "got", len(q))
		}
		for _, c := range q {
			if c < 33 || c > 73 {
				t.Fatal("quality char out of range:", c)
			}
		}
	}
}

// Both ends of the range should appear given enough draws.
func TestRandQualExtremes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	q := string(fastq.RandQual(4000, rnd))
	if !strings.ContainsRune(q, '!') {
		t.Fatal("lowest quality char never drawn in 4000 tries")
	}
	if !strings.ContainsRune(q, 'I') {
		t.Fatal("highest quality char never drawn in 4000 tries")
	}
}

func TestWrt(t *testing.T) {
	var sb strings.Builder
	r := fastq.Record{Id: 7, Mate: 1, Seq: []byte("ACGT"), Qual: []byte("!I@#")}
	if err := r.Wrt(&sb); err != nil {
		t.Fatal(err)
	}
	if want := "@read_7/1\nACGT\n+\n!I@#\n"; sb.String() != want {
		t.Fatalf("Expected %q got %q", want, sb.String())
	}

	sb.Reset()
	r = fastq.Record{Id: 1, Mate: 2}
	if err := r.Wrt(&sb); err != nil {
		t.Fatal(err)
	}
	if want := "@read_1/2\n\n+\n\n"; sb.String() != want {
		t.Fatalf("zero length record came out as %q", sb.String())
	}
}
