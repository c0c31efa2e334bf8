package file

import (
	"io"
	"io/fs"
	"syscall"
	"time"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/fs/core"
)

// truncate sets the length of f when it supports it.
func truncate(f core.File, size int64) error {
	t, ok := f.(core.Truncater)
	if !ok {
		return core.ErrUnsupported
	}
	return t.Truncate(size)
}

// src returns the reader text and record reads consume.
func (h *Handle) src() io.Reader {
	if h.reader != nil {
		return h.reader
	}
	return h.stream
}

// readByte reads one byte through the read-ahead buffer if there is one.
func (h *Handle) readByte() (byte, error) {
	if h.reader != nil {
		return h.reader.ReadByte()
	}
	var b [1]byte
	for {
		n, err := h.stream.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// realign discards read-ahead and moves the file offset back to the
// logical position. Pipes keep their read-ahead since their reads and
// writes are independent.
func (h *Handle) realign() error {
	if h.reader == nil || h.file == nil {
		return nil
	}
	if n := h.reader.Buffered(); n > 0 {
		if _, err := h.file.Seek(-int64(n), io.SeekCurrent); err != nil {
			return err
		}
	}
	h.reader.Reset(h.stream)
	return nil
}

// seekable returns the open file, recording a failure for op when the
// handle is closed or attached to something that cannot seek.
func (h *Handle) seekable(op string) (core.File, bool) {
	if !h.IsOpen() {
		return nil, false
	}
	if h.file == nil {
		h.fail(op, errors.WithOp(core.ErrUnsupported, op, h.name))
		return nil, false
	}
	if err := h.realign(); err != nil {
		h.fail(op, errors.WithOp(err, op, h.name))
		return nil, false
	}
	return h.file, true
}

// Flush discards read-ahead and commits written data to stable storage.
func (h *Handle) Flush() bool {
	if !h.IsOpen() {
		return false
	}
	if err := h.realign(); err != nil {
		h.fail("flush", errors.WithOp(err, "flush", h.name))
		return false
	}
	if s, ok := h.stream.(core.Syncer); ok {
		if err := s.Sync(); err != nil {
			h.fail("flush", errors.WithOp(err, "flush", h.name))
			return false
		}
	}
	h.debugf("flush", "flushed")
	return true
}

// Rewind moves to the start of the file and clears the end-of-file and
// error indicators.
func (h *Handle) Rewind() bool {
	f, ok := h.seekable("rewind")
	if !ok {
		return false
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		h.fail("rewind", errors.WithOp(err, "rewind", h.name))
		return false
	}
	h.eof = false
	h.lastErr = nil
	return true
}

// ClearError clears the end-of-file and error indicators.
func (h *Handle) ClearError() bool {
	if !h.IsOpen() {
		return false
	}
	h.eof = false
	h.lastErr = nil
	return true
}

// Truncate sets the file length and moves the cursor to the new end.
func (h *Handle) Truncate(length int64) bool {
	f, ok := h.seekable("truncate")
	if !ok {
		return false
	}
	if length < 0 {
		h.fail("truncate", errors.Newf(errors.CodeInvalidInput, "invalid length %d", length))
		return false
	}
	if err := truncate(f, length); err != nil {
		h.fail("truncate", errors.WithOp(err, "truncate", h.name))
		return false
	}
	if _, err := f.Seek(length, io.SeekStart); err != nil {
		h.fail("truncate", errors.WithOp(err, "truncate", h.name))
		return false
	}
	h.eof = false
	h.debugf("truncate", "truncated", "length", length)
	return true
}

// lockRange resolves a zero length to the rest of the file.
func (h *Handle) lockRange(op string, offset, length int64) (core.Locker, int64, bool) {
	if !h.IsOpen() {
		return nil, 0, false
	}
	l, ok := h.stream.(core.Locker)
	if !ok {
		h.fail(op, errors.WithOp(core.ErrUnsupported, op, h.name))
		return nil, 0, false
	}
	if length == 0 {
		if length = h.Length() - offset; length < 0 {
			length = 0
		}
	}
	return l, length, true
}

// Lock places an advisory lock on length bytes from offset. A zero length
// covers the rest of the file as it is now.
func (h *Handle) Lock(offset, length int64) bool {
	l, length, ok := h.lockRange("lock", offset, length)
	if !ok {
		return false
	}
	if err := l.LockRange(offset, length); err != nil {
		h.fail("lock", errors.WithOp(err, "lock", h.name), "offset", offset, "length", length)
		return false
	}
	h.debugf("lock", "locked", "offset", offset, "length", length)
	return true
}

// Unlock releases a lock placed with the same offset and length.
func (h *Handle) Unlock(offset, length int64) bool {
	l, length, ok := h.lockRange("unlock", offset, length)
	if !ok {
		return false
	}
	if err := l.UnlockRange(offset, length); err != nil {
		h.fail("unlock", errors.WithOp(err, "unlock", h.name), "offset", offset, "length", length)
		return false
	}
	h.debugf("unlock", "unlocked", "offset", offset, "length", length)
	return true
}

// Position returns the logical cursor, or -1 when closed or unseekable.
func (h *Handle) Position() int64 {
	if !h.IsOpen() || h.file == nil {
		return -1
	}
	pos, err := h.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	if h.reader != nil {
		pos -= int64(h.reader.Buffered())
	}
	return pos
}

// SetPosition moves the cursor to an absolute offset.
func (h *Handle) SetPosition(pos int64) bool {
	f, ok := h.seekable("seek")
	if !ok {
		return false
	}
	if _, err := f.Seek(pos, io.SeekStart); err != nil {
		h.fail("seek", errors.WithOp(err, "seek", h.name), "position", pos)
		return false
	}
	h.eof = false
	return true
}

// stat describes the open file, or the named file when closed.
func (h *Handle) stat() (fs.FileInfo, error) {
	if h.IsOpen() {
		if h.file == nil {
			return nil, core.ErrUnsupported
		}
		return h.file.Stat()
	}
	return h.cfg.fs.Stat(h.name)
}

// Length returns the file size, or -1 when it cannot be determined.
func (h *Handle) Length() int64 {
	info, err := h.stat()
	if err != nil {
		return -1
	}
	return info.Size()
}

// SetLength truncates or extends the open file without moving the cursor.
func (h *Handle) SetLength(n int64) bool {
	f, ok := h.seekable("length")
	if !ok {
		return false
	}
	if err := truncate(f, n); err != nil {
		h.fail("length", errors.WithOp(err, "length", h.name), "length", n)
		return false
	}
	return true
}

// Date returns the modification time, or the zero time when unknown.
func (h *Handle) Date() time.Time {
	info, err := h.stat()
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (h *Handle) metadataFS(op string) (core.MetadataFS, bool) {
	m, ok := h.cfg.fs.(core.MetadataFS)
	if !ok {
		h.fail(op, errors.WithOp(core.ErrUnsupported, op, h.name))
	}
	return m, ok
}

// SetDate sets the modification time of the named file.
func (h *Handle) SetDate(t time.Time) bool {
	m, ok := h.metadataFS("date")
	if !ok {
		return false
	}
	if err := m.Chtimes(h.name, t, t); err != nil {
		h.fail("date", errors.WithOp(err, "date", h.name))
		return false
	}
	return true
}

// Attributes returns the permission bits, or -1 when unknown.
func (h *Handle) Attributes() int64 {
	info, err := h.stat()
	if err != nil {
		return -1
	}
	return int64(info.Mode().Perm())
}

// SetAttributes sets the permission bits of the named file.
func (h *Handle) SetAttributes(perm fs.FileMode) bool {
	m, ok := h.metadataFS("attributes")
	if !ok {
		return false
	}
	if err := m.Chmod(h.name, perm&fs.ModePerm); err != nil {
		h.fail("attributes", errors.WithOp(err, "attributes", h.name))
		return false
	}
	return true
}

// Exists reports whether the handle is open or the named file exists.
func (h *Handle) Exists() bool {
	if h.IsOpen() {
		return true
	}
	ok, err := h.cfg.fs.Exists(h.name)
	return err == nil && ok
}

// EOF reports whether a read reached the end of the stream. A closed
// handle is always at end of file.
func (h *Handle) EOF() bool {
	return !h.IsOpen() || h.eof
}

// ErrorNumber returns the system error number of the last failure, EIO
// for failures without one and 0 when there is none.
func (h *Handle) ErrorNumber() int64 {
	if h.lastErr == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(h.lastErr, &errno) {
		return int64(errno)
	}
	return int64(syscall.EIO)
}

// Descriptor returns the operating system descriptor, or -1 when the
// handle is closed or its stream has none.
func (h *Handle) Descriptor() int64 {
	if !h.IsOpen() {
		return -1
	}
	switch s := h.stream.(type) {
	case core.Descriptor:
		return s.Descriptor()
	case interface{ Fd() uintptr }:
		return int64(s.Fd())
	default:
		return -1
	}
}
