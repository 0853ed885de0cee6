package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps conversation turns in process memory. Used by the CLI
// chat loop and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	turns  map[int64][]Turn
	now    func() time.Time
}

// NewMemoryStore constructs an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{turns: make(map[int64][]Turn), now: time.Now}
}

func (s *MemoryStore) Append(ctx context.Context, userID int64, role, content string) (Turn, error) {
	if err := ctx.Err(); err != nil {
		return Turn{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	turn := Turn{
		ID:        s.nextID,
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.turns[userID] = append(s.turns[userID], turn)
	return turn, nil
}

func (s *MemoryStore) RecentTurns(ctx context.Context, userID int64, limit int) ([]Turn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.turns[userID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]Turn, len(all))
	copy(out, all)
	return out, nil
}

var _ HistoryStore = (*MemoryStore)(nil)
