// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateEmail indicates that a user with the given email already
// exists. Email comparison is case-insensitive.
var ErrDuplicateEmail = errors.New("email already registered")

// User represents an account in the system. PasswordHash is nil for
// accounts created through an external identity provider; such accounts
// can never log in with a password.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash *string
	AvatarURL    string
	CreatedAt    time.Time
}

// Session is the identity reconstructed from a verified session token.
// It carries only public user fields, never the password hash.
type Session struct {
	UserID      string
	Email       string
	DisplayName string
	AvatarURL   string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// ExternalIdentity is a verified identity handed over by an OAuth/OIDC
// provider after a successful handshake.
type ExternalIdentity struct {
	Email     string
	Name      string
	AvatarURL string
}

// UserRepository defines the port for user persistence operations.
// FindByEmail returns (nil, nil) when no user exists. Create must be
// atomic with respect to the uniqueness check and return
// ErrDuplicateEmail on conflict.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, displayName string, passwordHash *string, avatarURL string) (*User, error)
}
