package file

import (
	"github.com/jmgilman/scriptfile/digest"
	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/value"
)

// Digest computes a whole-file digest without moving the cursor. Numeric
// kinds yield an Int and the MD5 kinds a String; a closed or unseekable
// handle yields Undefined.
func (h *Handle) Digest(kind digest.Kind) value.Value {
	op := string(kind)
	f, ok := h.seekable(op)
	if !ok {
		return value.Undefined
	}
	res, err := digest.Compute(f, kind)
	if err != nil {
		h.fail(op, errors.WithOp(err, op, h.name))
		return value.Undefined
	}
	h.debugf(op, "computed digest")
	if kind.Numeric() {
		return value.Int(int64(res.Number))
	}
	return value.String(res.Text)
}
