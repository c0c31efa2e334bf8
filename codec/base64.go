package codec

import (
	"bytes"
	"encoding/base64"

	"github.com/jmgilman/scriptfile/errors"
)

// Base64Encode encodes b with the standard padded alphabet on one line.
func Base64Encode(b []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out
}

// Base64Decode decodes standard Base64. Whitespace, including line breaks,
// is ignored and missing padding is tolerated.
func Base64Decode(text []byte) ([]byte, error) {
	clean := bytes.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, text)
	if rem := len(clean) % 4; rem != 0 {
		clean = append(clean, bytes.Repeat([]byte{'='}, 4-rem)...)
	}

	out := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, err := base64.StdEncoding.Decode(out, clean)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeCodec, "invalid base64 input")
	}
	return out[:n], nil
}
