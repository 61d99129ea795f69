package auth

import (
	"encoding/base64"
	"strings"
)

// rawURLStrict rejects encodings whose unused trailing bits are not zero.
var rawURLStrict = base64.RawURLEncoding.Strict()

// Encode renders b as base64url without padding: standard base64 with
// '+' replaced by '-', '/' by '_' and the trailing '=' removed.
func Encode(b []byte) string {
	s := base64.StdEncoding.EncodeToString(b)
	s = strings.TrimRight(s, "=")
	s = strings.ReplaceAll(s, "+", "-")
	return strings.ReplaceAll(s, "/", "_")
}

// Decode reverses Encode. Inputs with characters outside the URL-safe
// alphabet, whose length leaves a remainder of 1 modulo 4, or whose last
// character carries non-zero unused bits, fail with ErrMalformedEncoding.
func Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isURLAlphabet(s[i]) {
			return nil, ErrMalformedEncoding
		}
	}

	if len(s)%4 == 1 {
		return nil, ErrMalformedEncoding
	}

	b, err := rawURLStrict.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedEncoding
	}
	return b, nil
}

func isURLAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
