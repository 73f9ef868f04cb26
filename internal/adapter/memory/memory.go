// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"accounts/internal/domain"

	"github.com/google/uuid"
)

// DB implements an in-memory user store. All operations take the store
// lock, so Create is atomic with respect to the uniqueness check.
type DB struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by lowercased email
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{users: make(map[string]*domain.User)}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)

// FindByEmail retrieves a user by email, case-insensitively.
func (db *DB) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// Create stores a new user, failing with domain.ErrDuplicateEmail when a
// user with the same email (case-insensitive) already exists.
func (db *DB) Create(ctx context.Context, email, displayName string, passwordHash *string, avatarURL string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := db.users[key]; ok {
		return nil, domain.ErrDuplicateEmail
	}

	u := &domain.User{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: displayName,
		AvatarURL:   avatarURL,
		CreatedAt:   time.Now(),
	}
	if passwordHash != nil {
		hash := *passwordHash
		u.PasswordHash = &hash
	}
	db.users[key] = u

	cp := *u
	return &cp, nil
}

// Count returns the number of stored users.
func (db *DB) Count() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users)
}
