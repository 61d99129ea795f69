package auth

import "log/slog"

// DevelopmentSecret is the signing key used when no secret is configured.
// It is public knowledge: any deployment running on it accepts tokens
// forged by anyone. The server logs a warning at startup when it is active.
const DevelopmentSecret = "development"

const redacted = "[redacted]"

// Secret is the HMAC key shared by token issuance and verification.
// It is created once at startup and never modified afterwards, so a single
// *Secret may be read from any number of goroutines.
type Secret struct {
	key      []byte
	fallback bool
}

// NewSecret returns the UTF-8 bytes of value as a signing key. An empty value
// resolves to DevelopmentSecret.
func NewSecret(value string) *Secret {
	if value == "" {
		return &Secret{key: []byte(DevelopmentSecret), fallback: true}
	}
	return &Secret{key: []byte(value)}
}

// IsFallback reports whether the secret is DevelopmentSecret because no
// value was configured.
func (s *Secret) IsFallback() bool {
	return s.fallback
}

// String keeps the key material out of fmt output.
func (s *Secret) String() string {
	return redacted
}

// LogValue keeps the key material out of structured logs.
func (s *Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}
