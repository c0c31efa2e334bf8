package file

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/value"
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (h *Handle) byteOrder() byteOrder {
	if h.networkOrder {
		return binary.BigEndian
	}
	return binary.NativeEndian
}

func checkSize(op string, size int) error {
	switch size {
	case 1, 2, 4:
		return nil
	}
	return errors.Newf(errors.CodeInvalidInput, "%s: unsupported record size %d", op, size)
}

// ReadBin reads count unsigned integers of size bytes (1, 2 or 4). A count
// of 1 yields an Int, or Int(-1) at end of file; any other count yields an
// IntList holding only the records actually read. An unsupported size
// yields Int(-1) and an INVALID_INPUT error.
func (h *Handle) ReadBin(size, count int) (value.Value, error) {
	if h == nil {
		return value.Int(-1), errNilHandle
	}
	if !h.IsOpen() {
		return value.Int(-1), nil
	}
	if err := checkSize("readBin", size); err != nil {
		h.fail("readBin", err)
		return value.Int(-1), err
	}
	if count < 0 {
		count = 0
	}
	if count > math.MaxInt/size {
		err := errors.Newf(errors.CodeResourceExhausted, "readBin: %d records of %d bytes", count, size)
		h.fail("readBin", err)
		return value.Int(-1), err
	}

	// The buffer grows with the data actually read rather than the request.
	want := size * count
	buf, err := io.ReadAll(io.LimitReader(h.src(), int64(want)))
	n := len(buf)
	if err != nil {
		h.fail("readBin", errors.WithOp(err, "readBin", h.name))
	} else if n < want {
		h.eof = true
	}
	h.debugf("readBin", "read", "bytes", n, "size", size)

	order := h.byteOrder()
	records := make([]int64, 0, n/size)
	for off := 0; off+size <= n; off += size {
		var v int64
		switch size {
		case 1:
			v = int64(buf[off])
		case 2:
			v = int64(order.Uint16(buf[off:]))
		case 4:
			v = int64(order.Uint32(buf[off:]))
		}
		records = append(records, v)
	}

	if count == 1 {
		if len(records) == 0 {
			return value.Int(-1), nil
		}
		return value.Int(records[0]), nil
	}
	return value.IntList(records...), nil
}

// WriteBin writes a scalar or each element of a list as unsigned integers
// of size bytes. Values wider than size are truncated to their low-order
// bytes.
func (h *Handle) WriteBin(v value.Value, size int) (bool, error) {
	if h == nil {
		return false, errNilHandle
	}
	if !h.IsOpen() {
		return false, nil
	}
	if err := checkSize("writeBin", size); err != nil {
		h.fail("writeBin", err)
		return false, err
	}
	if v.IsUndefined() {
		return false, errors.New(errors.CodeInvalidInput, "writeBin: no value")
	}

	order := h.byteOrder()
	records := v.Ints()
	buf := make([]byte, 0, size*len(records))
	for _, r := range records {
		switch size {
		case 1:
			buf = append(buf, byte(r))
		case 2:
			buf = order.AppendUint16(buf, uint16(r))
		case 4:
			buf = order.AppendUint32(buf, uint32(r))
		}
	}
	return h.write("writeBin", buf), nil
}
