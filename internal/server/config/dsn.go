package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ConnStringFromURL converts a postgres:// URL into a pgx keyword/value
// connection string that requires TLS without verifying the server
// certificate, which is what managed Postgres add-ons expect.
func ConnStringFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing database url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported database url scheme %q", u.Scheme)
	}
	if u.User == nil || u.Hostname() == "" {
		return "", fmt.Errorf("database url must include user and host")
	}

	password, _ := u.User.Password()
	port := u.Port()
	if port == "" {
		port = "5432"
	}

	parts := []string{
		"host=" + quoteDSNValue(u.Hostname()),
		"port=" + port,
		"dbname=" + quoteDSNValue(strings.TrimPrefix(u.Path, "/")),
		"user=" + quoteDSNValue(u.User.Username()),
		"password=" + quoteDSNValue(password),
		"sslmode=require",
	}
	return strings.Join(parts, " "), nil
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
