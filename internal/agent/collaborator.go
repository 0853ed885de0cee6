package agent

import "context"

// TaskStore is the synchronous task-storage collaborator. Each call returns
// an ActionResult-shaped value: failures travel as data, never as errors, so
// the engine can always turn the outcome into a reply. Implementations own
// their persistence; the engine neither retries nor times out.
type TaskStore interface {
	Create(ctx context.Context, userID int64, title string) ActionResult
	List(ctx context.Context, userID int64) ActionResult
	Update(ctx context.Context, userID int64, taskID int, title string) ActionResult
	Complete(ctx context.Context, userID int64, taskID int) ActionResult
	Delete(ctx context.Context, userID int64, taskID int) ActionResult
}
