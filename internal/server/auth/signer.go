// Package auth issues and verifies the compact HS256 bearer tokens handed to
// clients after registration or login.
//
// A token is base64url(header) "." base64url(payload) "." base64url(sig),
// where sig is HMAC-SHA256 over the first two encoded sections. Verification
// is pinned to HS256: the header is covered by the signature but never read.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues and verifies tokens with a single secret. It holds no
// mutable state and is safe for concurrent use.
type Signer struct {
	secret *Secret
}

// NewSigner returns a Signer bound to secret.
func NewSigner(secret *Secret) *Signer {
	return &Signer{secret: secret}
}

// Issue returns a token for subject that expires TokenValidity after now.
func (s *Signer) Issue(subject string, now time.Time) (string, error) {
	header, err := json.Marshal(Header{Alg: Algorithm, Typ: TokenType})
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(Payload{Sub: subject, Exp: &Instant{now.Add(TokenValidity)}})
	if err != nil {
		return "", err
	}

	unsigned := Encode(header) + "." + Encode(payload)
	signature, err := s.sign(unsigned)
	if err != nil {
		return "", err
	}

	return unsigned + "." + signature, nil
}

// Verify checks raw and returns the subject it was issued for. Errors wrap
// ErrMalformedToken, ErrBadSignature or ErrExpired.
func (s *Signer) Verify(raw string, now time.Time) (string, error) {
	sections := strings.Split(raw, ".")
	if len(sections) != 3 {
		return "", fmt.Errorf("%w: %d sections", ErrMalformedToken, len(sections))
	}

	expected, err := s.sign(sections[0] + "." + sections[1])
	if err != nil {
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sections[2])) != 1 {
		return "", ErrBadSignature
	}

	decoded, err := Decode(sections[1])
	if err != nil {
		return "", fmt.Errorf("%w: payload: %w", ErrMalformedToken, err)
	}
	var payload Payload
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return "", fmt.Errorf("%w: payload: %w", ErrMalformedToken, err)
	}

	validator := jwt.NewValidator(
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err := validator.Validate(payload); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	return payload.Sub, nil
}

func (s *Signer) sign(unsigned string) (string, error) {
	digest, err := jwt.SigningMethodHS256.Sign(unsigned, s.secret.key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return Encode(digest), nil
}
