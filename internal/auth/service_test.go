package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryStore(), NewTokenManager("test-secret", "saathi", time.Hour), nil)
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "  Aisha@Example.com ", "a strong password")
	require.NoError(t, err)
	require.Equal(t, "aisha@example.com", user.Email)
	require.NotEmpty(t, token)
	require.NotEmpty(t, user.PasswordHash)

	loggedIn, token, err := svc.Login(ctx, "aisha@example.com", "a strong password")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, token)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "not-an-email", "a strong password")
	require.Error(t, err)

	_, _, err = svc.Register(ctx, "a@example.com", "short")
	require.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@example.com", "a strong password")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "a@example.com", "another password")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@example.com", "a strong password")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@example.com", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email fails identically.
	_, _, err = svc.Login(ctx, "nobody@example.com", "a strong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, token, err := svc.Register(ctx, "a@example.com", "a strong password")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(ctx, "bogus")
	require.ErrorIs(t, err, ErrInvalidToken)
}
