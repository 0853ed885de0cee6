// Package task owns task records and their CRUD services. Tasks are always
// scoped to the owning user; no operation can see or touch another user's
// rows.
package task

import (
	"errors"
	"time"
)

// MaxDescriptionLength bounds a task description.
const MaxDescriptionLength = 500

var (
	// ErrNotFound is returned when a task id does not exist for the user.
	ErrNotFound = errors.New("task not found")
	// ErrEmptyDescription is returned for blank descriptions.
	ErrEmptyDescription = errors.New("task description is required")
	// ErrDescriptionTooLong is returned when a description exceeds the bound.
	ErrDescriptionTooLong = errors.New("task description too long")
)

// Task is one todo item.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusFilter narrows listings.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// matches reports whether a task passes the filter.
func (f StatusFilter) matches(t Task) bool {
	switch f {
	case StatusPending:
		return !t.IsComplete
	case StatusCompleted:
		return t.IsComplete
	default:
		return true
	}
}
