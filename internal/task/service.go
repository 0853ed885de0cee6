package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saathi/internal/logging"
)

// Service wraps a Repository with validation and timestamp handling.
type Service struct {
	repo   Repository
	logger logging.Logger
	now    func() time.Time
}

// NewService constructs a task service.
func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logging.OrNop(logger),
		now:    time.Now,
	}
}

// WithNow allows tests to control the clock.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyDescription
	}
	if len(description) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return description, nil
}

// Create adds a new task for the user.
func (s *Service) Create(ctx context.Context, userID int64, description string) (Task, error) {
	description, err := validateDescription(description)
	if err != nil {
		return Task{}, err
	}
	now := s.now()
	created, err := s.repo.Create(ctx, Task{
		UserID:      userID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}
	s.logger.Debug("created task %d for user %d", created.ID, userID)
	return created, nil
}

// List returns the user's tasks filtered by status.
func (s *Service) List(ctx context.Context, userID int64, filter StatusFilter) ([]Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if filter == "" || filter == StatusAll {
		return tasks, nil
	}
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Get returns one of the user's tasks.
func (s *Service) Get(ctx context.Context, userID, taskID int64) (Task, error) {
	return s.repo.Get(ctx, userID, taskID)
}

// UpdateDescription retitles a task.
func (s *Service) UpdateDescription(ctx context.Context, userID, taskID int64, description string) (Task, error) {
	description, err := validateDescription(description)
	if err != nil {
		return Task{}, err
	}
	t, err := s.repo.Get(ctx, userID, taskID)
	if err != nil {
		return Task{}, err
	}
	t.Description = description
	t.UpdatedAt = s.now()
	return s.repo.Update(ctx, t)
}

// SetComplete marks a task's completion state.
func (s *Service) SetComplete(ctx context.Context, userID, taskID int64, complete bool) (Task, error) {
	t, err := s.repo.Get(ctx, userID, taskID)
	if err != nil {
		return Task{}, err
	}
	if t.IsComplete == complete {
		return t, nil
	}
	t.IsComplete = complete
	t.UpdatedAt = s.now()
	return s.repo.Update(ctx, t)
}

// Toggle flips a task's completion state.
func (s *Service) Toggle(ctx context.Context, userID, taskID int64) (Task, error) {
	t, err := s.repo.Get(ctx, userID, taskID)
	if err != nil {
		return Task{}, err
	}
	t.IsComplete = !t.IsComplete
	t.UpdatedAt = s.now()
	return s.repo.Update(ctx, t)
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, userID, taskID int64) error {
	if err := s.repo.Delete(ctx, userID, taskID); err != nil {
		return err
	}
	s.logger.Debug("deleted task %d for user %d", taskID, userID)
	return nil
}
