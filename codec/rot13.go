package codec

// ROT13 rotates ASCII letters by 13 places and returns the result in a new
// slice. Other bytes are unchanged. Applying ROT13 twice is the identity.
func ROT13(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			c = 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			c = 'A' + (c-'A'+13)%26
		}
		out[i] = c
	}
	return out
}
