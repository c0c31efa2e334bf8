package file

import (
	"io/fs"

	"github.com/jmgilman/scriptfile/codec"
	"github.com/jmgilman/scriptfile/digest"
	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/fs/core"
	"github.com/jmgilman/scriptfile/value"
)

// apply runs a setter and turns its failure into an error: the failure it
// recorded, or NOT_OPEN when it failed on a closed handle without one.
func (h *Handle) apply(op string, set func() bool) error {
	before := h.lastErr
	if set() {
		return nil
	}
	if h.lastErr != nil && h.lastErr != before {
		return h.lastErr
	}
	return errors.WithOp(core.ErrClosed, op, h.name)
}

// Access tells whether a property can be set.
type Access int

const (
	// ReadOnly properties reject Set.
	ReadOnly Access = iota
	// ReadWrite properties accept Set.
	ReadWrite
)

// String returns "read-only" or "read-write".
func (a Access) String() string {
	if a == ReadWrite {
		return "read-write"
	}
	return "read-only"
}

// Property describes one named handle property.
type Property struct {
	Name   string
	Kind   value.Kind
	Access Access
	Doc    string

	get func(*Handle) value.Value
	set func(*Handle, value.Value) error
}

func boolFlag(get func(*codec.Flags) *bool) (func(*Handle) value.Value, func(*Handle, value.Value) error) {
	return func(h *Handle) value.Value {
			return value.Bool(*get(&h.flags))
		}, func(h *Handle, v value.Value) error {
			*get(&h.flags) = v.Bool()
			return nil
		}
}

func digestProperty(kind digest.Kind, k value.Kind, doc string) Property {
	return Property{
		Name: string(kind), Kind: k, Access: ReadOnly, Doc: doc,
		get: func(h *Handle) value.Value { return h.Digest(kind) },
	}
}

var properties = func() []Property {
	rot13Get, rot13Set := boolFlag(func(f *codec.Flags) *bool { return &f.ROT13 })
	uueGet, uueSet := boolFlag(func(f *codec.Flags) *bool { return &f.UUE })
	yencGet, yencSet := boolFlag(func(f *codec.Flags) *bool { return &f.YEnc })
	b64Get, b64Set := boolFlag(func(f *codec.Flags) *bool { return &f.Base64 })

	return []Property{
		{
			Name: "name", Kind: value.KindString, Access: ReadOnly,
			Doc: "filename the handle was created with",
			get: func(h *Handle) value.Value { return value.String(h.name) },
		},
		{
			Name: "mode", Kind: value.KindString, Access: ReadOnly,
			Doc: "mode string of the last successful open",
			get: func(h *Handle) value.Value { return value.String(h.mode) },
		},
		{
			Name: "exists", Kind: value.KindBool, Access: ReadOnly,
			Doc: "handle is open or the file exists",
			get: func(h *Handle) value.Value { return value.Bool(h.Exists()) },
		},
		{
			Name: "is_open", Kind: value.KindBool, Access: ReadOnly,
			Doc: "handle has an open stream",
			get: func(h *Handle) value.Value { return value.Bool(h.IsOpen()) },
		},
		{
			Name: "eof", Kind: value.KindBool, Access: ReadOnly,
			Doc: "end of file reached, always true when closed",
			get: func(h *Handle) value.Value { return value.Bool(h.EOF()) },
		},
		{
			Name: "error", Kind: value.KindInt, Access: ReadOnly,
			Doc: "system error number of the last failure, 0 for none",
			get: func(h *Handle) value.Value { return value.Int(h.ErrorNumber()) },
		},
		{
			Name: "descriptor", Kind: value.KindInt, Access: ReadOnly,
			Doc: "operating system descriptor, -1 when there is none",
			get: func(h *Handle) value.Value { return value.Int(h.Descriptor()) },
		},
		{
			Name: "etx", Kind: value.KindInt, Access: ReadWrite,
			Doc: "end-of-record byte, 0 disables",
			get: func(h *Handle) value.Value { return value.Int(int64(h.etx)) },
			set: func(h *Handle, v value.Value) error {
				n := v.Int()
				if n < 0 || n > 255 {
					return errors.Newf(errors.CodeInvalidInput, "etx %d is not a byte", n)
				}
				h.etx = byte(n)
				return nil
			},
		},
		{
			Name: "debug", Kind: value.KindBool, Access: ReadWrite,
			Doc: "emit debug log records",
			get: func(h *Handle) value.Value { return value.Bool(h.debug) },
			set: func(h *Handle, v value.Value) error { h.debug = v.Bool(); return nil },
		},
		{
			Name: "position", Kind: value.KindInt, Access: ReadWrite,
			Doc: "cursor offset, -1 when closed",
			get: func(h *Handle) value.Value { return value.Int(h.Position()) },
			set: func(h *Handle, v value.Value) error {
				return h.apply("seek", func() bool { return h.SetPosition(v.Int()) })
			},
		},
		{
			Name: "date", Kind: value.KindInt, Access: ReadWrite,
			Doc: "modification time in epoch seconds, -1 when unknown",
			get: func(h *Handle) value.Value {
				if t := h.Date(); !t.IsZero() {
					return value.Int(t.Unix())
				}
				return value.Int(-1)
			},
			set: func(h *Handle, v value.Value) error {
				return h.apply("date", func() bool { return h.SetDate(v.Time()) })
			},
		},
		{
			Name: "length", Kind: value.KindInt, Access: ReadWrite,
			Doc: "file size, -1 when unknown; setting truncates or extends",
			get: func(h *Handle) value.Value { return value.Int(h.Length()) },
			set: func(h *Handle, v value.Value) error {
				if n := v.Int(); n < 0 {
					return errors.Newf(errors.CodeInvalidInput, "invalid length %d", n)
				}
				return h.apply("length", func() bool { return h.SetLength(v.Int()) })
			},
		},
		{
			Name: "attributes", Kind: value.KindInt, Access: ReadWrite,
			Doc: "permission bits, -1 when unknown",
			get: func(h *Handle) value.Value { return value.Int(h.Attributes()) },
			set: func(h *Handle, v value.Value) error {
				return h.apply("attributes", func() bool { return h.SetAttributes(fs.FileMode(v.Int())) })
			},
		},
		{
			Name: "network_byte_order", Kind: value.KindBool, Access: ReadWrite,
			Doc: "binary records are big-endian",
			get: func(h *Handle) value.Value { return value.Bool(h.networkOrder) },
			set: func(h *Handle, v value.Value) error { h.networkOrder = v.Bool(); return nil },
		},
		{Name: "rot13", Kind: value.KindBool, Access: ReadWrite, Doc: "ROT13 text I/O", get: rot13Get, set: rot13Set},
		{Name: "uue", Kind: value.KindBool, Access: ReadWrite, Doc: "UUencode text I/O", get: uueGet, set: uueSet},
		{Name: "yenc", Kind: value.KindBool, Access: ReadWrite, Doc: "yEnc text I/O", get: yencGet, set: yencSet},
		{Name: "base64", Kind: value.KindBool, Access: ReadWrite, Doc: "Base64 text I/O", get: b64Get, set: b64Set},
		digestProperty(digest.KindCRC16, value.KindInt, "CRC-16 of the file contents"),
		digestProperty(digest.KindCRC32, value.KindInt, "CRC-32 of the file contents"),
		digestProperty(digest.KindSum, value.KindInt, "sum of the file's bytes"),
		digestProperty(digest.KindMD5Hex, value.KindString, "MD5 of the file contents as hex"),
		digestProperty(digest.KindMD5Base64, value.KindString, "MD5 of the file contents as base64"),
	}
}()

var propertyIndex = func() map[string]int {
	idx := make(map[string]int, len(properties))
	for i, p := range properties {
		idx[p.Name] = i
	}
	return idx
}()

// Properties lists every handle property in a stable order.
func Properties() []Property {
	return append([]Property(nil), properties...)
}

// LookupProperty finds a property by name.
func LookupProperty(name string) (Property, bool) {
	i, ok := propertyIndex[name]
	if !ok {
		return Property{}, false
	}
	return properties[i], true
}

// Get reads a property.
func (h *Handle) Get(name string) (value.Value, error) {
	if h == nil {
		return value.Undefined, errNilHandle
	}
	p, ok := LookupProperty(name)
	if !ok {
		return value.Undefined, errors.Newf(errors.CodeInvalidInput, "unknown property %q", name)
	}
	return p.get(h), nil
}

// Set writes a property. Unknown and read-only properties are rejected
// with INVALID_INPUT. I/O failures while applying the value are recorded
// on the handle like any other failure.
func (h *Handle) Set(name string, v value.Value) error {
	if h == nil {
		return errNilHandle
	}
	p, ok := LookupProperty(name)
	if !ok {
		return errors.Newf(errors.CodeInvalidInput, "unknown property %q", name)
	}
	if p.Access != ReadWrite {
		return errors.Newf(errors.CodeInvalidInput, "property %q is read-only", name)
	}
	if err := p.set(h, v); err != nil {
		return err
	}
	h.debugf("set", "property set", "property", name, "value", v.String())
	return nil
}
