package domain

import (
	"strings"
	"time"
)

// Admin is an operator allowed to manage site content.
type Admin struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail lower-cases and trims an email so it can be used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session is the signed-in administrator handed to admin handlers.
// It is an immutable value; a new one is resolved for every request.
type Session struct {
	TokenID   string
	Email     string
	ExpiresAt time.Time
}
