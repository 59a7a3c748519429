package models

import (
	"strings"
	"time"
)

// User represents a registered user account.
type User struct {
	// ID is the store-assigned identifier.
	ID int64

	// Name is the globally unique handle used to reference the user in requests.
	Name string

	// Email is the user's email address (unique, stored lower-cased).
	// Used for login.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser builds a user ready to be persisted. The email is normalized to lower case.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// NormalizeEmail trims and lower-cases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
