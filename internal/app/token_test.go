package app

import (
	"testing"
	"time"

	"accounts/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenUser = &domain.User{
	ID:          "u1",
	Email:       "ana@example.com",
	DisplayName: "Ana",
	AvatarURL:   "https://example.com/a.png",
}

func TestSignAndParseSession(t *testing.T) {
	secret := []byte("test-secret")

	token, err := signSession(tokenUser, secret, time.Hour)
	require.NoError(t, err)

	session, err := parseSession(token, secret)
	require.NoError(t, err)

	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "ana@example.com", session.Email)
	assert.Equal(t, "Ana", session.DisplayName)
	assert.Equal(t, "https://example.com/a.png", session.AvatarURL)
	assert.WithinDuration(t, time.Now(), session.IssuedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestParseSession_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := signSession(tokenUser, secret, -time.Minute)
	require.NoError(t, err)

	_, err = parseSession(token, secret)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSession_WrongSecret(t *testing.T) {
	token, err := signSession(tokenUser, []byte("test-secret"), time.Hour)
	require.NoError(t, err)

	_, err = parseSession(token, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSession_Malformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0..."} {
		_, err := parseSession(tok, []byte("test-secret"))
		assert.ErrorIs(t, err, ErrInvalidSession, "token %q", tok)
	}
}

// A token signed with alg "none" must never verify, even with a valid
// claims payload.
func TestParseSession_UnsignedAlgRejected(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "ana@example.com",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = parseSession(token, []byte("test-secret"))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSession_MissingSubject(t *testing.T) {
	secret := []byte("test-secret")
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "ana@example.com",
	})
	token, err := noSub.SignedString(secret)
	require.NoError(t, err)

	_, err = parseSession(token, secret)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
