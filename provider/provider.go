// Package provider defines the capability surface this application needs
// from the hosted auth backend. Identity is fully delegated: the
// application relays the backend's tokens as cookies and only ever
// observes whether a session is valid.
package provider

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials covers both an unknown account and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotConfigured is returned when the backend URL or API key is missing.
	ErrNotConfigured = errors.New("auth provider not configured")
)

// User is the identity record held by the auth backend.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session holds the tokens minted by the auth backend on a successful
// credential exchange. The tokens are opaque to this application.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Provider is the interchangeable auth backend.
type Provider interface {
	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignOut invalidates the session identified by accessToken.
	SignOut(ctx context.Context, accessToken string) error

	// GetUser returns the user owning accessToken, or an error if the
	// session is invalid or expired.
	GetUser(ctx context.Context, accessToken string) (*User, error)
}
