// brokenio wraps an io.Writer so that writes start failing on purpose.
// Typical use: you have a writer going to a file or a pipe. You write
// w = brokenio.NewWriter(w, n) and the first n bytes pass through as
// before. Everything after that returns an error, the way a full disk
// or a closed pipe would. The error paths around file output never
// fire otherwise, so this is how we test them.

package brokenio

import (
	"fmt"
	"io"
)

// A BrknWrtr passes data through to the wrapped writer until the byte
// limit is reached, then refuses everything.
type BrknWrtr struct {
	wrtr_orig io.Writer // Wrapped writer
	limit     int       // bytes accepted before breaking
	nByte     int       // bytes that made it through
	nCalled   int
}

// NewWriter returns a writer that breaks after limit bytes.
func NewWriter(w io.Writer, limit int) *BrknWrtr {
	return &BrknWrtr{wrtr_orig: w, limit: limit}
}

// NByte says how many bytes made it through so far.
func (w *BrknWrtr) NByte() int { return w.nByte }

// NCalled says how often Write has been called.
func (w *BrknWrtr) NCalled() int { return w.nCalled }

// Write sends data on until the limit is crossed. A write that
// straddles the limit is a short write. The part before the limit is
// still delivered, which is what a real device does.
func (w *BrknWrtr) Write(p []byte) (int, error) {
	w.nCalled++
	room := w.limit - w.nByte
	if room <= 0 {
		return 0, fmt.Errorf("broken writer: limit of %d bytes reached", w.limit)
	}
	if len(p) <= room {
		n, err := w.wrtr_orig.Write(p)
		w.nByte += n
		return n, err
	}
	n, err := w.wrtr_orig.Write(p[:room])
	w.nByte += n
	if err != nil {
		return n, err
	}
	return n, fmt.Errorf("broken writer: write cut short after %d bytes", w.limit)
}
