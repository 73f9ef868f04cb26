package app

import (
	"fmt"
	"time"

	"accounts/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the payload of a session token. The subject claim
// carries the user id.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func signSession(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:  user.Email,
		Name:   user.DisplayName,
		Avatar: user.AvatarURL,
	})

	return token.SignedString(secret)
}

// parseSession verifies signature and expiry and reconstructs the Session
// from the token's claims alone. Any failure yields ErrInvalidSession.
func parseSession(tokenString string, secret []byte) (*domain.Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidSession
	}

	s := &domain.Session{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		AvatarURL:   claims.Avatar,
		ExpiresAt:   claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	return s, nil
}
