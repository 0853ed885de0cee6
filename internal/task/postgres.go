package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskTable = "tasks"

// PostgresRepository is a Repository backed by Postgres via pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a Postgres-backed repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the tasks table if it does not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return fmt.Errorf("task repository not initialized")
	}
	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    user_id BIGINT NOT NULL,
    description VARCHAR(%d) NOT NULL,
    is_complete BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON %s (user_id);
`, taskTable, MaxDescriptionLength, taskTable)
	_, err := r.pool.Exec(ctx, query)
	return err
}

func (r *PostgresRepository) Create(ctx context.Context, t Task) (Task, error) {
	query := `
INSERT INTO tasks (user_id, description, is_complete, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := r.pool.QueryRow(ctx, query, t.UserID, t.Description, t.IsComplete, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	if err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Task, error) {
	query := `
SELECT id, user_id, description, is_complete, created_at, updated_at
FROM tasks WHERE user_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.IsComplete, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, userID, taskID int64) (Task, error) {
	query := `
SELECT id, user_id, description, is_complete, created_at, updated_at
FROM tasks WHERE id = $1 AND user_id = $2`
	var t Task
	err := r.pool.QueryRow(ctx, query, taskID, userID).Scan(&t.ID, &t.UserID, &t.Description, &t.IsComplete, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("query task: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, t Task) (Task, error) {
	query := `
UPDATE tasks SET description = $1, is_complete = $2, updated_at = $3
WHERE id = $4 AND user_id = $5`
	tag, err := r.pool.Exec(ctx, query, t.Description, t.IsComplete, t.UpdatedAt, t.ID, t.UserID)
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*PostgresRepository)(nil)
