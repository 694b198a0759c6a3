package entity

import "time"

// SessionClaims is the identity carried inside a session token.
// It holds identifiers only; balance and flags are re-read from storage.
type SessionClaims struct {
	UserID    string
	TgID      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a signed session token together with its expiry
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}
