package adapter

import (
	"bytes"
	"strings"
	"sync"
)

// LineWriter is an io.Writer that calls fn for every complete line written to it.
// Incomplete trailing data is held until the next newline or Flush.
type LineWriter struct {
	mu      sync.Mutex
	pending bytes.Buffer
	fn      func(line string)
}

// NewLineWriter returns a LineWriter calling fn per line, without the line terminator.
func NewLineWriter(fn func(line string)) *LineWriter {
	return &LineWriter{fn: fn}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending.Write(p)

	for {
		idx := bytes.IndexByte(w.pending.Bytes(), '\n')
		if idx < 0 {
			break
		}

		line := string(w.pending.Next(idx + 1))
		w.fn(strings.TrimRight(line, "\r\n"))
	}

	return len(p), nil
}

// Flush emits any unterminated trailing data as a final line.
func (w *LineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending.Len() > 0 {
		line := w.pending.String()
		w.pending.Reset()
		w.fn(strings.TrimRight(line, "\r"))
	}
}
