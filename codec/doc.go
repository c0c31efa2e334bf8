// Package codec implements the reversible text transforms a file handle
// applies to record reads and writes: ROT13, UUencode, yEnc and Base64.
//
// Flags selects the transforms. ROT13 combines with any encoding; the three
// encodings are mutually exclusive and picked by fixed precedence:
// UUencode, then yEnc, then Base64.
//
//	f := codec.Flags{ROT13: true, Base64: true}
//	text := f.Encode(raw)          // rot13, then base64
//	raw, err := f.Decode(text)     // base64 decode, then rot13
package codec
