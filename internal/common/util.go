package common

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// TemporaryPasswordSize is the number of random bytes behind a generated
// password; the hex form is twice as long.
const TemporaryPasswordSize = 12

// randReader is swapped in tests.
var randReader io.Reader = rand.Reader

// MakeRandHexString returns size random bytes as a hex string.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// TemporaryPassword generates the password mailed to a user who asked for a
// reset.
func TemporaryPassword() (string, error) {
	return MakeRandHexString(TemporaryPasswordSize)
}

// WipeByteArray zeroes b in place. Used on password buffers read from a
// terminal once they have been hashed.
func WipeByteArray(b []byte) {
	clear(b)
}
