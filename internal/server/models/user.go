package models

import "time"

// User is a registered account. Salt and PasswordHash hold the raw
// PBKDF2 inputs and output; they never leave the server.
type User struct {
	ID           string
	UserName     string
	Email        string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}
