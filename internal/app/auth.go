package app

import (
	"context"
	"errors"
	"time"

	"accounts/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies login attempts against the user store and issues
// and verifies signed session tokens. The signing secret and session TTL
// are fixed at construction and never change while the process runs.
type AuthService struct {
	users  domain.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an authentication service signing sessions with
// secret and expiring them after ttl.
func NewAuthService(users domain.UserRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

// Login authenticates an email/password pair and returns a session token.
// Unknown email, a password-less (external identity) account and a wrong
// password all fail with the same ErrInvalidCredentials so callers cannot
// probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingField
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || user.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return signSession(user, s.secret, s.ttl)
}

// LoginExternal issues a session for an identity already verified by an
// OAuth/OIDC provider. Missing users are auto-provisioned without a
// password hash; no password check ever happens on this path.
func (s *AuthService) LoginExternal(ctx context.Context, identity domain.ExternalIdentity) (string, error) {
	email := NormalizeEmail(identity.Email)
	if email == "" {
		return "", ErrMissingField
	}

	name := identity.Name
	if name == "" {
		name = email
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.users.Create(ctx, email, name, nil, identity.AvatarURL)
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost a race with a concurrent first login; the record
			// exists now.
			user, err = s.users.FindByEmail(ctx, email)
		}
		if err != nil {
			return "", err
		}
		if user == nil {
			return "", errors.New("user missing after create")
		}
	}

	return signSession(user, s.secret, s.ttl)
}

// VerifySession validates a session token and reconstructs the caller's
// identity from its verified claims. It fails closed: any malformed,
// tampered or expired token yields ErrInvalidSession and the caller is
// treated as unauthenticated.
func (s *AuthService) VerifySession(token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	return parseSession(token, s.secret)
}
