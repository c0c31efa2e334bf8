package file

import (
	"time"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/exec"
	"github.com/jmgilman/scriptfile/fs/core"
)

const defaultPerm = 0o644

// OpenDefault opens with mode "w+", exclusive access and the default
// buffer size.
func (h *Handle) OpenDefault() (bool, error) {
	return h.Open("w+", false, DefaultBufferSize)
}

// Open opens the named file. mode is parsed as described by the r, w, a,
// +, b and e letters; bufSize sizes the read-ahead buffer and 0 disables
// it. A non-shareable open waits out lock contention per WithOpenRetry; a
// shareable open fails at once if an exclusive holder exists.
//
// Opening an already-open handle succeeds without changing it.
func (h *Handle) Open(mode string, shareable bool, bufSize int) (bool, error) {
	if h == nil {
		return false, errNilHandle
	}
	if h.IsOpen() {
		return true, nil
	}
	om, err := parseMode(mode)
	if err != nil {
		return false, err
	}
	if bufSize < 0 {
		return false, errors.Newf(errors.CodeInvalidInput, "invalid buffer size %d", bufSize)
	}

	lock, attempts := core.LockShared, 1
	if !shareable {
		lock, attempts = core.LockExclusive, h.cfg.attempts
	}

	var f core.File
	for attempt := 1; ; attempt++ {
		f, err = h.tryOpen(om, lock)
		if err == nil {
			break
		}
		if !errors.IsRetryable(err) || attempt >= attempts {
			h.fail("open", err, "mode", mode, "attempts", attempt)
			return false, err
		}
		h.debugf("open", "file is locked, retrying", "attempt", attempt)
		time.Sleep(h.cfg.delay)
	}

	h.attach(f, bufSize)
	h.appends = om.appends()
	h.mode = mode
	h.lastErr = nil
	h.debugf("open", "opened", "mode", mode, "shareable", shareable, "lock", lock.String())
	return true, nil
}

// tryOpen opens and locks the file once. Truncation is deferred until the
// lock is held so a contended open never destroys another holder's data.
func (h *Handle) tryOpen(om openMode, lock core.LockMode) (core.File, error) {
	f, err := h.cfg.fs.OpenFile(h.name, om.flag, defaultPerm)
	if err != nil {
		return nil, errors.WithOp(err, "open", h.name)
	}

	if l, ok := f.(core.Locker); ok {
		if err := l.TryLock(lock); err != nil {
			_ = f.Close()
			return nil, errors.WithOp(err, "open", h.name)
		}
	}
	if om.truncate {
		if err := truncate(f, 0); err != nil {
			_ = f.Close()
			return nil, errors.WithOp(err, "open", h.name)
		}
	}
	return f, nil
}

// PopenDefault starts the command in "r+" mode with the default buffer size.
func (h *Handle) PopenDefault() (bool, error) {
	return h.Popen("r+", DefaultBufferSize)
}

// Popen runs the handle's name as a shell command line and attaches to its
// standard streams: "r" reads its output, "w" writes its input and "r+" or
// "w+" does both.
func (h *Handle) Popen(mode string, bufSize int) (bool, error) {
	if h == nil {
		return false, errNilHandle
	}
	if h.IsOpen() {
		return true, nil
	}
	om, err := parseMode(mode)
	if err != nil {
		return false, err
	}
	if bufSize < 0 {
		return false, errors.Newf(errors.CodeInvalidInput, "invalid buffer size %d", bufSize)
	}

	p, err := exec.Shell(h.cfg.executor).Start(om.pipeMode(), h.name)
	if err != nil {
		err = errors.WithOp(errors.Wrap(err, errors.CodeExecutionFailed, "failed to start command"), "popen", h.name)
		h.fail("popen", err, "mode", mode)
		return false, err
	}

	if !om.read {
		bufSize = 0
	}
	h.attach(p, bufSize)
	h.pipe = p
	h.mode = mode
	h.lastErr = nil
	h.debugf("popen", "started", "mode", mode, "pid", p.Pid())
	return true, nil
}

// Close detaches the stream. Files are closed, releasing their locks;
// pipes are closed and waited for, and a non-zero exit is returned as an
// EXECUTION_FAILED error; borrowed streams are left open. Closing a closed
// handle does nothing.
func (h *Handle) Close() error {
	if h == nil {
		return errNilHandle
	}
	if !h.IsOpen() {
		return nil
	}

	var err error
	switch {
	case h.borrowed:
		h.debugf("close", "detached borrowed stream")
	case h.pipe != nil:
		if cerr := h.pipe.Close(); cerr != nil {
			err = errors.WithOp(errors.Wrap(cerr, errors.CodeExecutionFailed, "command failed"), "close", h.name)
		}
	default:
		if cerr := h.stream.Close(); cerr != nil {
			err = errors.WithOp(cerr, "close", h.name)
		}
	}

	if err != nil {
		h.fail("close", err)
	} else {
		h.debugf("close", "closed")
	}
	h.reset()
	return err
}

// Remove closes the handle and deletes the file. A failed close is
// recorded and the file is kept.
func (h *Handle) Remove() (bool, error) {
	if h == nil {
		return false, errNilHandle
	}
	if err := h.Close(); err != nil {
		h.debugf("remove", "close failed, file kept")
		return false, nil
	}
	if err := h.cfg.fs.Remove(h.name); err != nil {
		h.fail("remove", errors.WithOp(err, "remove", h.name))
		return false, nil
	}
	h.debugf("remove", "removed")
	return true, nil
}
