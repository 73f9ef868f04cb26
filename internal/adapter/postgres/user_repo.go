package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"accounts/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

// FindByEmail retrieves a user by email, case-insensitively.
func (d *DB) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, email, display_name, password_hash, avatar_url, created_at FROM users WHERE lower(email) = lower($1)",
		email,
	).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.AvatarURL, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user, returning domain.ErrDuplicateEmail when the
// email is already taken. The unique index makes the insert the atomic
// uniqueness check.
func (d *DB) Create(ctx context.Context, email, displayName string, passwordHash *string, avatarURL string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (id, email, display_name, password_hash, avatar_url, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, email, display_name, password_hash, avatar_url, created_at",
		uuid.NewString(), email, displayName, passwordHash, avatarURL, time.Now(),
	).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.AvatarURL, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}
