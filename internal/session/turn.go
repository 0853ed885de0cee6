// Package session stores conversation turns per user so the dialogue
// engine can be replayed statelessly against recent history.
package session

import (
	"context"
	"time"

	"saathi/internal/agent"
)

// Turn is one recorded utterance in a user's conversation.
type Turn struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore persists conversation turns. RecentTurns returns up to limit
// turns in chronological order (oldest first).
type HistoryStore interface {
	Append(ctx context.Context, userID int64, role, content string) (Turn, error)
	RecentTurns(ctx context.Context, userID int64, limit int) ([]Turn, error)
}

// ToEngineTurns converts stored turns into the form the engine consumes.
func ToEngineTurns(turns []Turn) []agent.Turn {
	out := make([]agent.Turn, 0, len(turns))
	for _, t := range turns {
		out = append(out, agent.Turn{Role: agent.Role(t.Role), Content: t.Content})
	}
	return out
}
