package domain

import "time"

// TokenLifetime is the validity window of every issued token.
const TokenLifetime = 14 * 24 * time.Hour

// Credentials is the identity submitted to the login endpoint.
type Credentials struct {
	Email    string
	Password string
}

// Claims are the facts recovered from a verified token.
type Claims struct {
	Email     string
	NotBefore time.Time
	ExpiresAt time.Time
}
