package logging

import (
	"bytes"
	"io"
	"sync"
)

// Held collects log output while a full-screen view owns the terminal.
// It is safe for concurrent writers.
type Held struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (h *Held) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Write(p)
}

// Flush writes everything collected so far to w and empties the buffer.
func (h *Held) Flush(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.buf.WriteTo(w)
	return err
}

// Hold returns a copy of l that writes all levels into a Held buffer
// instead of its outputs.
func (l Logger) Hold() (Logger, *Held) {
	h := &Held{}
	l.Out, l.Err = h, h
	return l, h
}
