package file

import (
	"context"
	"log/slog"
)

// attrs returns the attributes every record carries.
func (h *Handle) attrs(op string, args []any) []any {
	return append([]any{"path", h.name, "descriptor", h.Descriptor(), "op", op}, args...)
}

// debugf logs at debug level when the debug property is set.
func (h *Handle) debugf(op, msg string, args ...any) {
	if !h.debug {
		return
	}
	h.log.Log(context.Background(), slog.LevelDebug, msg, h.attrs(op, args)...)
}

// fail records err as the handle's last failure and logs it.
func (h *Handle) fail(op string, err error, args ...any) {
	h.lastErr = err
	h.log.Log(context.Background(), slog.LevelError, op+" failed", h.attrs(op, append(args, "error", err.Error()))...)
}

// logTransfer logs the outcome of a read or write.
func (h *Handle) logTransfer(op string, n int, err error) {
	if err != nil {
		h.fail(op, err, "bytes", n)
		return
	}
	h.debugf(op, "transferred", "bytes", n)
}
