package auth

import "errors"

var (
	// ErrMalformedEncoding is returned by Decode for text that is not valid
	// unpadded base64url.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrMalformedToken means the token does not have three sections or its
	// payload cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")

	// ErrBadSignature means the signature does not match the header and
	// payload under the configured secret.
	ErrBadSignature = errors.New("bad signature")

	// ErrExpired means the signature is valid but exp is not after the
	// verification time.
	ErrExpired = errors.New("token expired")
)
