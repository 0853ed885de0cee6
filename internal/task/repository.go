package task

import "context"

// Repository persists task records. Implementations must keep rows isolated
// per user id.
type Repository interface {
	// Create inserts the task and returns it with its assigned id.
	Create(ctx context.Context, t Task) (Task, error)

	// ListByUser returns the user's tasks in creation order.
	ListByUser(ctx context.Context, userID int64) ([]Task, error)

	// Get returns one task owned by the user, or ErrNotFound.
	Get(ctx context.Context, userID, taskID int64) (Task, error)

	// Update overwrites the task's mutable fields, or ErrNotFound.
	Update(ctx context.Context, t Task) (Task, error)

	// Delete removes the task, or ErrNotFound.
	Delete(ctx context.Context, userID, taskID int64) error
}
