package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and validates HS256 access tokens.
type TokenManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewTokenManager creates a token manager. A zero accessTTL defaults to 24h.
func NewTokenManager(secret, issuer string, accessTTL time.Duration) *TokenManager {
	if accessTTL == 0 {
		accessTTL = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, accessTTL: accessTTL, now: time.Now}
}

// GenerateAccessToken issues a signed token for the user.
func (m *TokenManager) GenerateAccessToken(user User) (string, time.Time, error) {
	if len(m.secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret not configured")
	}
	expiresAt := m.now().Add(m.accessTTL)
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"exp":   expiresAt.Unix(),
		"iss":   m.issuer,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAccessToken validates a token and extracts its claims.
func (m *TokenManager) ParseAccessToken(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return Claims{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	expValue, _ := claims["exp"].(float64)
	return Claims{
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Unix(int64(expValue), 0),
	}, nil
}
