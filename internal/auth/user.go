// Package auth provides account registration, password verification, and
// JWT access tokens for the HTTP API.
package auth

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUserNotFound indicates no account exists for the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken indicates an access token that failed validation.
	ErrInvalidToken = errors.New("invalid access token")
)

// User is a registered account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Claims are the validated contents of an access token.
type Claims struct {
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}
