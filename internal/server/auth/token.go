package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Algorithm is the only signing algorithm issued or accepted.
	Algorithm = "HS256"
	// TokenType is the typ header value.
	TokenType = "JWT"
	// TokenValidity is the fixed lifetime of every issued token.
	TokenValidity = 7 * 24 * time.Hour
)

// instantLayout writes UTC instants with an explicit +00:00 offset and up to
// seven fractional digits, matching tokens already in circulation.
const instantLayout = "2006-01-02T15:04:05.9999999-07:00"

// Header is the first token section. Field order is part of the wire format.
type Header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Payload is the second token section. Field order is part of the wire
// format. A nil Exp means the claim was absent or null.
type Payload struct {
	Sub string   `json:"sub"`
	Exp *Instant `json:"exp"`
}

// Instant is a point in time serialized as an ISO-8601 string.
type Instant struct {
	time.Time
}

// MarshalJSON writes the instant in UTC using instantLayout.
func (t Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(instantLayout))
}

// UnmarshalJSON accepts any RFC 3339 instant.
func (t *Instant) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid instant %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Payload satisfies jwt.Claims so expiry is checked by the jwt validator.
// Only exp carries meaning; the remaining registered claims are absent.
var _ jwt.Claims = Payload{}

// GetExpirationTime returns exp without truncating it to whole seconds. A
// present exp is returned even when it is the zero instant.
func (p Payload) GetExpirationTime() (*jwt.NumericDate, error) {
	if p.Exp == nil {
		return nil, nil
	}
	return &jwt.NumericDate{Time: p.Exp.Time}, nil
}

func (p Payload) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (p Payload) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (p Payload) GetIssuer() (string, error)              { return "", nil }
func (p Payload) GetSubject() (string, error)             { return p.Sub, nil }
func (p Payload) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }
