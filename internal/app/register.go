// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"

	"accounts/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingField indicates that a required input was empty.
	ErrMissingField = errors.New("all fields are required")
	// ErrInvalidCredentials indicates that the email or password was
	// incorrect. It deliberately does not say which.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidSession indicates that a session token failed verification.
	ErrInvalidSession = errors.New("invalid session")
)

// RegisterService creates credential-based accounts.
type RegisterService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewRegisterService creates a registration service. cost is the bcrypt
// cost factor used for new passwords.
func NewRegisterService(users domain.UserRepository, cost int) *RegisterService {
	return &RegisterService{users: users, bcryptCost: cost}
}

// Register validates the signup request, hashes the password and stores
// the new user. The only password rule enforced here is non-empty;
// stricter policy belongs to the transport boundary.
func (s *RegisterService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	hashStr := string(hash)
	return s.users.Create(ctx, email, name, &hashStr, "")
}

// NormalizeEmail trims and lowercases an email for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
