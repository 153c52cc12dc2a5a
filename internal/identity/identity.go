// Package identity talks to the identity provider that owns accounts, passwords and ID tokens.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned by Verify for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// RejectedError is the provider refusing a request (bad credentials, duplicate account, weak
// password). Message is the provider's own text and is passed to clients verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// Session is what a successful sign-in or sign-up returns.
type Session struct {
	IDToken      string
	RefreshToken string
	ExpiresIn    string
	UID          string
	Email        string
}

// Claims are the decoded contents of a verified ID token.
type Claims map[string]interface{}

func (c Claims) UID() string {
	if uid, ok := c["uid"].(string); ok && uid != "" {
		return uid
	}
	sub, _ := c["sub"].(string)
	return sub
}

func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

// Verifier decodes and validates ID tokens.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

type Provider interface {
	Verifier
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*Session, error)
}
