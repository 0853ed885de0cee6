package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps accounts in process memory. Used by the CLI chat loop
// and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]User
	byEmail map[string]int64
}

// NewMemoryStore constructs an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[int64]User), byEmail: make(map[string]int64)}
}

func (s *MemoryStore) Create(ctx context.Context, email, passwordHash string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return User{}, ErrEmailTaken
	}
	s.nextID++
	user := User{ID: s.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.byID[user.ID] = user
	s.byEmail[email] = user.ID
	return user, nil
}

func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return s.byID[id], nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int64) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

var _ UserStore = (*MemoryStore)(nil)
