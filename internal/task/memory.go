package task

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is a Repository for tests and the local REPL.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]Task // keyed by task id
}

// NewMemoryRepository constructs an in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, tasks: make(map[int64]Task)}
}

func (r *MemoryRepository) Create(_ context.Context, t Task) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID int64) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, userID, taskID int64) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepository) Update(_ context.Context, t Task) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return Task{}, ErrNotFound
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, taskID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
