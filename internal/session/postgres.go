package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"saathi/internal/logging"
)

const turnTable = "conversation_turns"

// PostgresStore implements a Postgres-backed conversation history store.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPostgresStore constructs a Postgres-backed history store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logging.NewComponentLogger("SessionPostgresStore"),
	}
}

// EnsureSchema creates the conversation turn table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("history store not initialized")
	}

	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversation_turns_user_id ON %s (user_id, id DESC);
`, turnTable, turnTable)

	_, err := s.pool.Exec(ctx, query)
	return err
}

func (s *PostgresStore) Append(ctx context.Context, userID int64, role, content string) (Turn, error) {
	if err := ctx.Err(); err != nil {
		return Turn{}, err
	}
	if s == nil || s.pool == nil {
		return Turn{}, fmt.Errorf("history store not initialized")
	}

	turn := Turn{UserID: userID, Role: role, Content: content, CreatedAt: time.Now()}
	query := fmt.Sprintf(`
INSERT INTO %s (user_id, role, content, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`, turnTable)
	if err := s.pool.QueryRow(ctx, query, userID, role, content, turn.CreatedAt).Scan(&turn.ID); err != nil {
		return Turn{}, fmt.Errorf("append turn: %w", err)
	}
	return turn, nil
}

func (s *PostgresStore) RecentTurns(ctx context.Context, userID int64, limit int) ([]Turn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.pool == nil {
		return nil, fmt.Errorf("history store not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`
SELECT id, user_id, role, content, created_at
FROM %s
WHERE user_id = $1
ORDER BY id DESC
LIMIT $2
`, turnTable)
	rows, err := s.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.UserID, &t.Role, &t.Content, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}

	// Rows arrive newest first; the engine wants chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

var _ HistoryStore = (*PostgresStore)(nil)
