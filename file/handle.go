package file

import (
	"bufio"
	"log/slog"

	"github.com/jmgilman/scriptfile/codec"
	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/exec"
	"github.com/jmgilman/scriptfile/fs/core"
)

var errNilHandle = errors.New(errors.CodeInternal, "invalid file handle")

// Handle wraps one file or pipe. It is either fully open, with a stream, or
// fully closed.
type Handle struct {
	name string
	cfg  config
	log  *slog.Logger

	stream   core.Stream
	file     core.File
	pipe     *exec.Pipe
	reader   *bufio.Reader
	mode     string
	borrowed bool
	appends  bool
	eof      bool
	lastErr  error

	etx          byte
	flags        codec.Flags
	networkOrder bool
	debug        bool
}

// New returns a closed handle bound to name.
func New(name string, opts ...Option) *Handle {
	cfg := newConfig(opts)
	return &Handle{
		name:  name,
		cfg:   cfg,
		log:   cfg.logger,
		debug: cfg.debug,
	}
}

// Borrow returns an open handle over a stream the caller owns. Close
// detaches from the stream without closing it. The stream is seekable when
// it implements core.File.
func Borrow(name string, stream core.Stream, opts ...Option) *Handle {
	h := New(name, opts...)
	h.stream = stream
	h.borrowed = true
	if f, ok := stream.(core.File); ok {
		h.file = f
	}
	h.debugf("borrow", "attached borrowed stream")
	return h
}

// Name returns the name the handle was created with.
func (h *Handle) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// Mode returns the mode string of the last successful open.
func (h *Handle) Mode() string {
	if h == nil {
		return ""
	}
	return h.mode
}

// IsOpen reports whether the handle has a stream attached.
func (h *Handle) IsOpen() bool {
	return h != nil && h.stream != nil
}

// IsPipe reports whether the handle is attached to a subprocess.
func (h *Handle) IsPipe() bool {
	return h != nil && h.pipe != nil
}

// Borrowed reports whether the stream is owned by the caller.
func (h *Handle) Borrowed() bool {
	return h != nil && h.borrowed
}

// Err returns the cause of the last failed operation, or nil.
func (h *Handle) Err() error {
	if h == nil {
		return errNilHandle
	}
	return h.lastErr
}

// ETX returns the end-of-record byte; zero disables it.
func (h *Handle) ETX() byte { return h.etx }

// SetETX sets the end-of-record byte.
func (h *Handle) SetETX(b byte) { h.etx = b }

// Flags returns the text transforms applied by Read, Readln, Write and
// Writeln.
func (h *Handle) Flags() codec.Flags { return h.flags }

// SetFlags replaces the text transforms.
func (h *Handle) SetFlags(f codec.Flags) { h.flags = f }

// NetworkByteOrder reports whether binary records are big-endian.
func (h *Handle) NetworkByteOrder() bool { return h.networkOrder }

// SetNetworkByteOrder selects big-endian (true) or native byte order for
// binary records.
func (h *Handle) SetNetworkByteOrder(on bool) { h.networkOrder = on }

// Debug reports whether debug log records are emitted.
func (h *Handle) Debug() bool { return h.debug }

// SetDebug turns debug log records on or off.
func (h *Handle) SetDebug(on bool) { h.debug = on }

// reset returns the handle to the closed state.
func (h *Handle) reset() {
	h.stream = nil
	h.file = nil
	h.pipe = nil
	h.reader = nil
	h.borrowed = false
	h.appends = false
	h.eof = false
}

// attach makes s the handle's stream with a read-ahead of bufSize bytes.
func (h *Handle) attach(s core.Stream, bufSize int) {
	h.stream = s
	if f, ok := s.(core.File); ok {
		h.file = f
	}
	if bufSize > 0 {
		h.reader = bufio.NewReaderSize(s, bufSize)
	}
}
