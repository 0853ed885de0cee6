package task

import (
	"context"
	"errors"
	"fmt"

	"saathi/internal/agent"
	"saathi/internal/logging"
)

// AgentStore adapts the task Service to the dialogue engine's collaborator
// interface. Errors never cross the boundary: every outcome becomes an
// ActionResult, with internal errors replaced by user-safe reasons.
type AgentStore struct {
	service *Service
	logger  logging.Logger
}

// NewAgentStore wraps a Service for the engine.
func NewAgentStore(service *Service, logger logging.Logger) *AgentStore {
	return &AgentStore{service: service, logger: logging.OrNop(logger)}
}

func (s *AgentStore) failure(taskID int, err error) agent.ActionResult {
	var reason string
	switch {
	case errors.Is(err, ErrNotFound):
		reason = fmt.Sprintf("Task with ID %d not found", taskID)
	case errors.Is(err, ErrEmptyDescription):
		reason = "a title is required"
	case errors.Is(err, ErrDescriptionTooLong):
		reason = fmt.Sprintf("the title must be at most %d characters", MaxDescriptionLength)
	default:
		s.logger.Error("task store call failed: %v", err)
		reason = "the task store is unavailable right now"
	}
	return agent.ActionResult{Success: false, Reason: reason}
}

func processed(t Task) agent.ActionResult {
	return agent.ActionResult{Success: true, TaskID: int(t.ID), Title: t.Description}
}

func (s *AgentStore) Create(ctx context.Context, userID int64, title string) agent.ActionResult {
	t, err := s.service.Create(ctx, userID, title)
	if err != nil {
		return s.failure(0, err)
	}
	return processed(t)
}

func (s *AgentStore) List(ctx context.Context, userID int64) agent.ActionResult {
	tasks, err := s.service.List(ctx, userID, StatusAll)
	if err != nil {
		return s.failure(0, err)
	}
	summaries := make([]agent.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, agent.TaskSummary{
			ID:        int(t.ID),
			Title:     t.Description,
			Completed: t.IsComplete,
		})
	}
	return agent.ActionResult{Success: true, Listed: true, Tasks: summaries}
}

func (s *AgentStore) Update(ctx context.Context, userID int64, taskID int, title string) agent.ActionResult {
	t, err := s.service.UpdateDescription(ctx, userID, int64(taskID), title)
	if err != nil {
		return s.failure(taskID, err)
	}
	return processed(t)
}

func (s *AgentStore) Complete(ctx context.Context, userID int64, taskID int) agent.ActionResult {
	t, err := s.service.SetComplete(ctx, userID, int64(taskID), true)
	if err != nil {
		return s.failure(taskID, err)
	}
	return processed(t)
}

func (s *AgentStore) Delete(ctx context.Context, userID int64, taskID int) agent.ActionResult {
	if err := s.service.Delete(ctx, userID, int64(taskID)); err != nil {
		return s.failure(taskID, err)
	}
	return agent.ActionResult{Success: true, TaskID: taskID, Deleted: true}
}

var _ agent.TaskStore = (*AgentStore)(nil)
