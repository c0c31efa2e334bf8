package file

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jmgilman/scriptfile/codec"
	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/fs/core"
)

const (
	// Default selects an operation's default length: the rest of the file
	// for Read, DefaultLineLength for Readln and ReadAll, and the payload's
	// own length for Write.
	Default = -1

	// DefaultLineLength is the longest line Readln returns by default.
	DefaultLineLength = 512
)

// cut truncates b at the first end-of-record byte.
func (h *Handle) cut(b []byte) []byte {
	if h.etx == 0 {
		return b
	}
	if i := bytes.IndexByte(b, h.etx); i >= 0 {
		return b[:i]
	}
	return b
}

// Read reads up to maxLen bytes, or the rest of the file for Default, and
// returns them as text. The bytes are cut at the end-of-record byte,
// ROT13-rotated and then encoded per the handle's flags. ok is false when
// the handle is closed.
func (h *Handle) Read(maxLen int) (text string, ok bool) {
	if !h.IsOpen() {
		return "", false
	}

	var raw []byte
	var err error
	if maxLen < 0 && h.file != nil {
		if n := h.Length() - h.Position(); n >= 0 {
			maxLen = int(n)
		} else {
			maxLen = DefaultLineLength
		}
	}
	if maxLen < 0 {
		raw, err = io.ReadAll(h.src())
		h.eof = err == nil
	} else {
		raw, err = io.ReadAll(io.LimitReader(h.src(), int64(maxLen)))
		if err == nil && len(raw) < maxLen {
			h.eof = true
		}
	}
	if err != nil {
		h.fail("read", errors.WithOp(err, "read", h.name), "bytes", len(raw))
	} else {
		h.debugf("read", "read", "bytes", len(raw))
	}

	return string(h.flags.Encode(h.cut(raw))), true
}

// Readln reads one line of at most maxLen bytes (DefaultLineLength for
// Default) and strips its line terminator. The line is cut at the
// end-of-record byte and ROT13-rotated; the uu, yEnc and Base64 encodings
// do not apply to lines. ok is false when closed or at end of file.
func (h *Handle) Readln(maxLen int) (line string, ok bool) {
	if !h.IsOpen() {
		return "", false
	}
	if maxLen <= 0 {
		maxLen = DefaultLineLength
	}

	var buf []byte
	for len(buf) < maxLen {
		c, err := h.readByte()
		if err != nil {
			if err == io.EOF {
				h.eof = true
			} else {
				h.fail("readln", errors.WithOp(err, "readln", h.name))
			}
			if len(buf) == 0 {
				return "", false
			}
			break
		}
		buf = append(buf, c)
		if c == '\n' {
			break
		}
	}

	buf = h.cut(bytes.TrimRight(buf, "\r\n"))
	if h.flags.ROT13 {
		buf = codec.ROT13(buf)
	}
	return string(buf), true
}

// ReadAll reads lines with Readln until end of file.
func (h *Handle) ReadAll(maxLine int) []string {
	lines := []string{}
	for {
		line, ok := h.Readln(maxLine)
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

// write writes b at the logical position.
func (h *Handle) write(op string, b []byte) bool {
	if err := h.realign(); err != nil {
		h.fail(op, errors.WithOp(err, op, h.name))
		return false
	}
	n, err := h.stream.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		err = errors.WithOp(err, op, h.name)
	}
	h.logTransfer(op, n, err)
	return err == nil
}

// Write decodes text per the handle's flags, ROT13-rotates it and writes
// the result. With a non-negative length the record is cut to length bytes
// or padded to it with the end-of-record byte. A decode failure writes
// nothing.
func (h *Handle) Write(text string, length int) bool {
	if !h.IsOpen() {
		return false
	}
	raw, err := h.flags.Decode([]byte(text))
	if err != nil {
		h.fail("write", errors.WithOp(err, "write", h.name))
		return false
	}
	if length >= 0 {
		if len(raw) > length {
			raw = raw[:length]
		} else {
			raw = append(raw, bytes.Repeat([]byte{h.etx}, length-len(raw))...)
		}
	}
	return h.write("write", raw)
}

// Writeln writes text followed by a single LF, ROT13-rotating it first
// when enabled.
func (h *Handle) Writeln(text string) bool {
	if !h.IsOpen() {
		return false
	}
	b := []byte(text)
	if h.flags.ROT13 {
		b = codec.ROT13(b)
	}
	return h.write("writeln", append(b, '\n'))
}

// WriteAll writes each line with Writeln, stopping at the first failure.
func (h *Handle) WriteAll(lines []string) bool {
	if !h.IsOpen() {
		return false
	}
	for _, l := range lines {
		if !h.Writeln(l) {
			return false
		}
	}
	return true
}

// Printf writes formatted text without any transforms and returns the
// number of bytes written.
func (h *Handle) Printf(format string, args ...any) (int, error) {
	if h == nil {
		return 0, errNilHandle
	}
	if !h.IsOpen() {
		return 0, errors.WithOp(core.ErrClosed, "printf", h.name)
	}
	b := []byte(fmt.Sprintf(format, args...))
	if !h.write("printf", b) {
		return 0, h.lastErr
	}
	return len(b), nil
}
