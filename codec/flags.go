package codec

import "fmt"

// Encoding identifies one of the mutually exclusive text encodings.
type Encoding int

const (
	// None passes bytes through unchanged.
	None Encoding = iota
	// UU is UUencode.
	UU
	// YEnc is yEnc.
	YEnc
	// Base64 is standard padded Base64.
	Base64
)

// String returns the property name associated with the encoding.
func (e Encoding) String() string {
	switch e {
	case UU:
		return "uue"
	case YEnc:
		return "yenc"
	case Base64:
		return "base64"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Encode applies the encoding to raw bytes.
func (e Encoding) Encode(b []byte) []byte {
	switch e {
	case UU:
		return UUEncode(b)
	case YEnc:
		return YEncode(b)
	case Base64:
		return Base64Encode(b)
	default:
		return append([]byte(nil), b...)
	}
}

// Decode reverses Encode. Malformed input returns a CODEC_FAILED error.
func (e Encoding) Decode(text []byte) ([]byte, error) {
	switch e {
	case UU:
		return UUDecode(text)
	case YEnc:
		return YDecode(text)
	case Base64:
		return Base64Decode(text)
	default:
		return append([]byte(nil), text...), nil
	}
}

// Flags is the set of transforms enabled on a handle.
type Flags struct {
	ROT13  bool
	UUE    bool
	YEnc   bool
	Base64 bool
}

// Encoding returns the effective encoding, resolving multiple enabled
// encodings by precedence UUencode > yEnc > Base64.
func (f Flags) Encoding() Encoding {
	switch {
	case f.UUE:
		return UU
	case f.YEnc:
		return YEnc
	case f.Base64:
		return Base64
	default:
		return None
	}
}

// Encode transforms raw bytes read from a file into caller text:
// ROT13 first (if enabled), then the effective encoding.
func (f Flags) Encode(raw []byte) []byte {
	if f.ROT13 {
		raw = ROT13(raw)
	}
	return f.Encoding().Encode(raw)
}

// Decode transforms caller text into bytes to write: the effective
// encoding is decoded first, then ROT13 (if enabled) is applied.
func (f Flags) Decode(text []byte) ([]byte, error) {
	raw, err := f.Encoding().Decode(text)
	if err != nil {
		return nil, err
	}
	if f.ROT13 {
		raw = ROT13(raw)
	}
	return raw, nil
}
