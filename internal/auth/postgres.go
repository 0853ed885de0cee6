package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"saathi/internal/logging"
)

const userTable = "users"

// PostgresStore implements a Postgres-backed user store.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPostgresStore constructs a Postgres-backed user store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logging.NewComponentLogger("AuthPostgresStore"),
	}
}

// EnsureSchema creates the user table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("user store not initialized")
	}

	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id BIGSERIAL PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
`, userTable)

	_, err := s.pool.Exec(ctx, query)
	return err
}

func (s *PostgresStore) Create(ctx context.Context, email, passwordHash string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	if s == nil || s.pool == nil {
		return User{}, fmt.Errorf("user store not initialized")
	}

	user := User{Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	query := fmt.Sprintf(`
INSERT INTO %s (email, password_hash, created_at)
VALUES ($1, $2, $3)
RETURNING id
`, userTable)
	if err := s.pool.QueryRow(ctx, query, email, passwordHash, user.CreatedAt).Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.get(ctx, "email = $1", email)
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (User, error) {
	return s.get(ctx, "id = $1", id)
}

func (s *PostgresStore) get(ctx context.Context, where string, arg any) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	if s == nil || s.pool == nil {
		return User{}, fmt.Errorf("user store not initialized")
	}

	query := fmt.Sprintf(`
SELECT id, email, password_hash, created_at
FROM %s
WHERE %s
`, userTable, where)
	var user User
	err := s.pool.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

var _ UserStore = (*PostgresStore)(nil)
