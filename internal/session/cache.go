package session

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedStore is a read-through cache over a HistoryStore. Recent-turn reads
// for a user are served from an LRU until that user's history changes.
type CachedStore struct {
	inner HistoryStore
	cache *lru.Cache[int64, []Turn]
	limit int
}

// NewCachedStore wraps inner with an LRU caching up to size users' histories.
// limit is the history window cached per user and must match the limit callers
// pass to RecentTurns.
func NewCachedStore(inner HistoryStore, size, limit int) (*CachedStore, error) {
	cache, err := lru.New[int64, []Turn](size)
	if err != nil {
		return nil, fmt.Errorf("create history cache: %w", err)
	}
	return &CachedStore{inner: inner, cache: cache, limit: limit}, nil
}

func (s *CachedStore) Append(ctx context.Context, userID int64, role, content string) (Turn, error) {
	turn, err := s.inner.Append(ctx, userID, role, content)
	if err != nil {
		return Turn{}, err
	}
	s.cache.Remove(userID)
	return turn, nil
}

func (s *CachedStore) RecentTurns(ctx context.Context, userID int64, limit int) ([]Turn, error) {
	if limit == s.limit {
		if cached, ok := s.cache.Get(userID); ok {
			out := make([]Turn, len(cached))
			copy(out, cached)
			return out, nil
		}
	}

	turns, err := s.inner.RecentTurns(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if limit == s.limit {
		stored := make([]Turn, len(turns))
		copy(stored, turns)
		s.cache.Add(userID, stored)
	}
	return turns, nil
}

var _ HistoryStore = (*CachedStore)(nil)
