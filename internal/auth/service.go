package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"saathi/internal/logging"
)

const minPasswordLength = 8

// Service implements registration and login on top of a UserStore.
type Service struct {
	store  UserStore
	tokens *TokenManager
	logger logging.Logger
}

// NewService constructs an auth service.
func NewService(store UserStore, tokens *TokenManager, logger logging.Logger) *Service {
	return &Service{store: store, tokens: tokens, logger: logging.OrNop(logger)}
}

// Register creates an account and returns it with a fresh access token.
func (s *Service) Register(ctx context.Context, email, password string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, "", fmt.Errorf("invalid email address")
	}
	if len(password) < minPasswordLength {
		return User{}, "", fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}
	user, err := s.store.Create(ctx, email, hash)
	if err != nil {
		return User{}, "", err
	}
	s.logger.Info("registered user %d (%s)", user.ID, user.Email)

	token, _, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with an access token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		// Same failure for unknown email and bad password.
		return User{}, "", ErrInvalidCredentials
	}
	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error("verify password for user %d: %v", user.ID, err)
		return User{}, "", ErrInvalidCredentials
	}
	if !ok {
		return User{}, "", ErrInvalidCredentials
	}

	token, _, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Authenticate validates an access token and loads the account it names.
func (s *Service) Authenticate(ctx context.Context, token string) (User, error) {
	claims, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		return User{}, err
	}
	user, err := s.store.GetByID(ctx, claims.UserID)
	if err != nil {
		return User{}, ErrInvalidToken
	}
	return user, nil
}
