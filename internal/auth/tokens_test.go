package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", "saathi", time.Hour)
	user := User{ID: 42, Email: "a@example.com"}

	token, expiresAt, err := manager.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := manager.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "a@example.com", claims.Email)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("secret-one", "saathi", time.Hour)
	token, _, err := issuer.GenerateAccessToken(User{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	verifier := NewTokenManager("secret-two", "saathi", time.Hour)
	_, err = verifier.ParseAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", "saathi", time.Minute)
	issued := time.Now()
	manager.now = func() time.Time { return issued }

	token, _, err := manager.GenerateAccessToken(User{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	manager.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = manager.ParseAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", "saathi", time.Hour)
	_, err := manager.ParseAccessToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
