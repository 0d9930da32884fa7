// Package identity describes verified caller identities and the token
// capabilities the platform provides.
package identity

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTokenMalformed means the token could not be parsed at all.
	ErrTokenMalformed = errors.New("identity token is malformed")
	// ErrTokenRejected means a well-formed token failed verification.
	ErrTokenRejected = errors.New("identity token was rejected")
)

// Claims is the verified content of an identity token.
type Claims struct {
	UID       string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Verifier checks an identity token and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}

// Subject is what a new token is issued for.
type Subject struct {
	UID   string
	Email string
}

type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// Issuer mints identity tokens that the Verifier accepts.
type Issuer interface {
	Issue(ctx context.Context, subject Subject) (*IssuedToken, error)
}
