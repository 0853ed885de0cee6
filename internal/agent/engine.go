// Package agent implements the intent and dialogue engine: it classifies
// free-text English/Urdu commands, resolves references against recent
// conversation turns, guards destructive operations behind a confirmation
// step, dispatches one task operation per turn, and renders the outcome back
// into prose in the input's language.
//
// The engine holds no state between invocations. Everything it remembers
// (the last referenced task, an outstanding confirmation) is recomputed from
// the history slice passed into ProcessTurn, so concurrent invocations for
// different users share nothing.
package agent

import (
	"context"
	"strings"

	"saathi/internal/logging"
)

// Engine composes the per-turn pipeline. Safe for concurrent use.
type Engine struct {
	tasks  TaskStore
	logger logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger; the engine only uses it for the
// fail-open warning on malformed confirmation state.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = logging.OrNop(l) }
}

// NewEngine creates an engine backed by the given task-storage collaborator.
func NewEngine(tasks TaskStore, opts ...Option) *Engine {
	e := &Engine{tasks: tasks, logger: logging.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProcessTurn runs one conversational turn: normalize, resolve context,
// short-circuit through a pending confirmation if one is live, classify,
// dispatch, summarize. Every path yields a reply; the engine never fails.
// The caller owns persisting both the user's turn and the returned reply.
func (e *Engine) ProcessTurn(ctx context.Context, userID int64, rawText string, history []Turn) Reply {
	text, lang := Normalize(rawText)
	if strings.TrimSpace(text) == "" {
		return Reply{Text: emptyInputReply(lang), Language: lang}
	}

	cctx := ResolveContext(history)
	if cctx.MalformedPending {
		e.logger.Warn("pending confirmation for user %d had no recoverable task id; treating as idle", userID)
	}

	var intent Intent
	if cctx.Pending != nil && cctx.Pending.Operation == OpDelete {
		switch EvaluateConfirmation(text, lang) {
		case ConfirmYes:
			intent = Intent{Kind: IntentDeleteConfirmed, TaskID: cctx.Pending.TaskID}
		case ConfirmNo:
			intent = Intent{Kind: IntentDeleteCancelled, TaskID: cctx.Pending.TaskID}
		default:
			// Confirmation lapses; the turn is a fresh command.
			intent = Classify(text, lang)
		}
	} else {
		intent = Classify(text, lang)
	}

	req, reply := Dispatch(intent, cctx, lang)
	if req == nil {
		return Reply{Text: reply, Language: lang}
	}

	result := e.invoke(ctx, userID, *req)
	return Reply{
		Text:     Summarize(result, lang),
		Language: lang,
		Action:   req,
		Result:   &result,
	}
}

// invoke performs the single synchronous collaborator call for the turn.
func (e *Engine) invoke(ctx context.Context, userID int64, req ActionRequest) ActionResult {
	switch req.Operation {
	case OpCreate:
		return e.tasks.Create(ctx, userID, req.Title)
	case OpList:
		return e.tasks.List(ctx, userID)
	case OpUpdate:
		return e.tasks.Update(ctx, userID, req.TaskID, req.Title)
	case OpComplete:
		return e.tasks.Complete(ctx, userID, req.TaskID)
	case OpDelete:
		return e.tasks.Delete(ctx, userID, req.TaskID)
	default:
		return ActionResult{Success: false, Reason: "unsupported operation"}
	}
}
