package brokenio_test

import (
	"strings"
	"testing"

	"github.com/dan-sprague/fastqgen/brokenio"
)

const longstring = "0123456789012345678901234567890123456789"

func TestUnderLimit(t *testing.T) {
	var sb strings.Builder
	w := brokenio.NewWriter(&sb, 1000)
	if n, err := w.Write([]byte(longstring)); err != nil {
		t.Fatal(err)
	} else if n != len(longstring) {
		t.Fatal("Expected", len(longstring), "got", n)
	}
	if sb.String() != longstring {
		t.Fatal("contents changed on the way through:", sb.String())
	}
}

func TestStraddleLimit(t *testing.T) {
	var sb strings.Builder
	w := brokenio.NewWriter(&sb, 10)
	n, err := w.Write([]byte(longstring))
	if err == nil {
		t.Fatal("Expected an error on a write past the limit")
	}
	if n != 10 {
		t.Fatal("Expected short write of 10 got", n)
	}
	if sb.String() != longstring[:10] {
		t.Fatal("part before the limit not delivered, got", sb.String())
	}
}

func TestAfterLimit(t *testing.T) {
	var sb strings.Builder
	w := brokenio.NewWriter(&sb, 5)
	w.Write([]byte(longstring))
	if n, err := w.Write([]byte("x")); err == nil || n != 0 {
		t.Fatal("Expected nothing through after the limit, got", n, err)
	}
	if w.NByte() != 5 {
		t.Fatal("Expected 5 bytes through got", w.NByte())
	}
	if w.NCalled() != 2 {
		t.Fatal("Expected 2 calls got", w.NCalled())
	}
}
