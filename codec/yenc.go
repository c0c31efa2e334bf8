package codec

import (
	"bytes"

	"github.com/jmgilman/scriptfile/errors"
)

const (
	yEscape  = '='
	yOffset  = 42
	yEscOff  = 64
	yLineLen = 128
)

// yCritical reports whether an offset byte must be escaped.
func yCritical(c byte) bool {
	return c == 0 || c == '\n' || c == '\r' || c == yEscape
}

// YEncode encodes b with yEnc: each byte is offset by 42, and NUL, LF, CR
// and '=' are escaped as '=' followed by the byte offset by a further 64.
// Output lines are wrapped at 128 characters with CRLF. No =ybegin/=yend
// framing is produced.
func YEncode(b []byte) []byte {
	var out bytes.Buffer
	col := 0
	for _, raw := range b {
		c := raw + yOffset
		if yCritical(c) {
			out.WriteByte(yEscape)
			c += yEscOff
			col++
		}
		out.WriteByte(c)
		col++
		if col >= yLineLen {
			out.WriteString("\r\n")
			col = 0
		}
	}
	return out.Bytes()
}

// YDecode reverses YEncode. Line breaks are ignored, as are =ybegin, =ypart
// and =yend framing lines.
func YDecode(text []byte) ([]byte, error) {
	var out bytes.Buffer
	for _, line := range bytes.Split(text, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if bytes.HasPrefix(line, []byte("=ybegin")) ||
			bytes.HasPrefix(line, []byte("=ypart")) ||
			bytes.HasPrefix(line, []byte("=yend")) {
			continue
		}

		for i := 0; i < len(line); i++ {
			c := line[i]
			if c == yEscape {
				i++
				if i == len(line) {
					return nil, errors.New(errors.CodeCodec, "truncated yEnc escape sequence")
				}
				c = line[i] - yEscOff
			}
			out.WriteByte(c - yOffset)
		}
	}
	return out.Bytes(), nil
}
