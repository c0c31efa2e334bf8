package exec

import (
	"bytes"
	"io"
	"sync"
)

// multiWriter writes to multiple writers simultaneously.
type multiWriter struct {
	writers []io.Writer
	mu      sync.Mutex
}

// newMultiWriter creates a new multiWriter that writes to all provided writers.
func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{
		writers: writers,
	}
}

// Write writes data to all underlying writers.
func (mw *multiWriter) Write(p []byte) (n int, err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, w := range mw.writers {
		n, err = w.Write(p)
		if err != nil {
			return
		}
		if n != len(p) {
			err = io.ErrShortWrite
			return
		}
	}
	return len(p), nil
}

// outputCapture captures a child stream. The capture is bounded; once
// limit bytes are held, the oldest bytes are dropped so the tail of the
// stream survives.
type outputCapture struct {
	buffer bytes.Buffer
	limit  int
	mu     sync.Mutex
}

// stderrLimit bounds how much child stderr an ExecError carries.
const stderrLimit = 64 << 10

// newOutputCapture creates a capture holding at most limit bytes.
// A limit of 0 keeps everything.
func newOutputCapture(limit int) *outputCapture {
	return &outputCapture{limit: limit}
}

// Write records p.
func (oc *outputCapture) Write(p []byte) (int, error) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.buffer.Write(p)
	if over := oc.buffer.Len() - oc.limit; oc.limit > 0 && over > 0 {
		oc.buffer.Next(over)
	}
	return len(p), nil
}

// String returns the captured output as a string.
func (oc *outputCapture) String() string {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.buffer.String()
}
