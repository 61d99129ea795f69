// Package cryptox derives and checks password credentials.
//
// Credentials are PBKDF2 with HMAC-SHA1, 10 000 iterations and a 32-byte
// output over a random 16-byte salt. The parameters are fixed so that
// hashes stored by earlier deployments keep verifying.
package cryptox

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of a generated salt in bytes.
	SaltSize = 16
	// KeySize is the length of a derived credential hash in bytes.
	KeySize = 32
	// Iterations is the PBKDF2 iteration count.
	Iterations = 10000
)

// randReader is a seam for tests that need a failing entropy source.
var randReader io.Reader = rand.Reader

// GenerateSalt returns SaltSize bytes from a cryptographically secure source.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey returns the KeySize-byte credential hash of password under salt.
// The password is used as its UTF-8 bytes without normalization.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha1.New)
}

// VerifyPassword reports whether password under salt derives expected. The
// comparison takes the same time wherever the first differing byte is.
func VerifyPassword(password string, salt, expected []byte) bool {
	return subtle.ConstantTimeCompare(DeriveKey(password, salt), expected) == 1
}
