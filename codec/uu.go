package codec

import (
	"bytes"

	"github.com/jmgilman/scriptfile/errors"
)

// uuLine is the number of raw bytes carried by one full UUencoded line.
const uuLine = 45

func uuChar(v byte) byte {
	if v == 0 {
		return '`'
	}
	return v + ' '
}

func uuValue(c byte) (byte, bool) {
	if c == '`' {
		return 0, true
	}
	if c < ' ' || c > ' '+63 {
		return 0, false
	}
	return c - ' ', true
}

// UUEncode encodes b as UUencoded body lines, each terminated by "\n".
// The output carries no "begin"/"end" framing.
func UUEncode(b []byte) []byte {
	var out bytes.Buffer
	for len(b) > 0 {
		n := min(len(b), uuLine)
		line := b[:n]
		b = b[n:]

		out.WriteByte(uuChar(byte(n)))
		for i := 0; i < n; i += 3 {
			var g [3]byte
			copy(g[:], line[i:])
			out.WriteByte(uuChar(g[0] >> 2))
			out.WriteByte(uuChar((g[0]<<4 | g[1]>>4) & 0x3f))
			out.WriteByte(uuChar((g[1]<<2 | g[2]>>6) & 0x3f))
			out.WriteByte(uuChar(g[2] & 0x3f))
		}
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// UUDecode decodes UUencoded text. Line endings may be LF or CRLF, a
// "begin" header and "end" trailer are skipped, and decoding stops at the
// first zero-length line.
func UUDecode(text []byte) ([]byte, error) {
	var out bytes.Buffer
	for _, line := range bytes.Split(text, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 || bytes.HasPrefix(line, []byte("begin ")) {
			continue
		}
		if bytes.Equal(line, []byte("end")) {
			break
		}

		n, ok := uuValue(line[0])
		if !ok {
			return nil, errors.Newf(errors.CodeCodec, "invalid uuencode length character %q", line[0])
		}
		if n == 0 {
			break
		}

		body := line[1:]
		groups := (int(n) + 2) / 3
		if len(body) < groups*4 {
			// Some encoders trim trailing spaces; treat them as zero.
			body = append(append([]byte(nil), body...), bytes.Repeat([]byte{' '}, groups*4-len(body))...)
		}

		decoded := make([]byte, 0, groups*3)
		for g := 0; g < groups; g++ {
			var v [4]byte
			for i := range v {
				c, ok := uuValue(body[g*4+i])
				if !ok {
					return nil, errors.Newf(errors.CodeCodec, "invalid uuencode character %q", body[g*4+i])
				}
				v[i] = c
			}
			decoded = append(decoded,
				v[0]<<2|v[1]>>4,
				v[1]<<4|v[2]>>2,
				v[2]<<6|v[3],
			)
		}
		out.Write(decoded[:n])
	}
	return out.Bytes(), nil
}
