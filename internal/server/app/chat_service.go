// Package app hosts the application services behind the HTTP handlers.
package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"saathi/internal/agent"
	"saathi/internal/logging"
	"saathi/internal/observability"
	"saathi/internal/session"
)

// ChatResponse is the outcome of one processed chat turn.
type ChatResponse struct {
	Reply           string `json:"reply"`
	Language        string `json:"language"`
	ActionPerformed bool   `json:"action_performed"`
}

// ChatService replays recent history through the dialogue engine and records
// the resulting turns.
type ChatService struct {
	engine       *agent.Engine
	history      session.HistoryStore
	historyLimit int
	metrics      *observability.MetricsCollector
	tracer       trace.Tracer
	logger       logging.Logger
}

// NewChatService constructs a chat service. historyLimit bounds how many
// stored turns feed each engine call.
func NewChatService(engine *agent.Engine, history session.HistoryStore, historyLimit int, metrics *observability.MetricsCollector, tracer trace.Tracer, logger logging.Logger) *ChatService {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &ChatService{
		engine:       engine,
		history:      history,
		historyLimit: historyLimit,
		metrics:      metrics,
		tracer:       tracer,
		logger:       logging.OrNop(logger),
	}
}

// ProcessMessage runs one user utterance through the engine and appends both
// sides of the exchange to the conversation log.
func (s *ChatService) ProcessMessage(ctx context.Context, userID int64, text string) (ChatResponse, error) {
	start := time.Now()
	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, "chat.process_message",
			trace.WithAttributes(attribute.Int64("user.id", userID)))
		defer span.End()
	}

	turns, err := s.history.RecentTurns(ctx, userID, s.historyLimit)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("load history: %w", err)
	}

	reply := s.engine.ProcessTurn(ctx, userID, text, session.ToEngineTurns(turns))
	performed := reply.Action != nil && reply.Result != nil && reply.Result.Success

	if _, err := s.history.Append(ctx, userID, string(agent.RoleUser), text); err != nil {
		return ChatResponse{}, fmt.Errorf("record user turn: %w", err)
	}
	if _, err := s.history.Append(ctx, userID, string(agent.RoleAgent), reply.Text); err != nil {
		return ChatResponse{}, fmt.Errorf("record agent turn: %w", err)
	}

	operation := "none"
	if reply.Action != nil {
		operation = string(reply.Action.Operation)
	}
	s.metrics.RecordChatTurn(ctx, operation, string(reply.Language), performed, time.Since(start))
	s.logger.Debug("chat turn for user %d: operation=%s performed=%t", userID, operation, performed)

	return ChatResponse{
		Reply:           reply.Text,
		Language:        string(reply.Language),
		ActionPerformed: performed,
	}, nil
}

// History returns the most recent stored turns for a user, oldest first.
func (s *ChatService) History(ctx context.Context, userID int64, limit int) ([]session.Turn, error) {
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	turns, err := s.history.RecentTurns(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return turns, nil
}
