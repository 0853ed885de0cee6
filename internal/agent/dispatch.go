package agent

import "strings"

// resolveTaskID picks the explicit id when the rule captured one, otherwise
// falls back to the last-referenced task for bare references.
func resolveTaskID(intent Intent, cctx ConversationContext) int {
	if intent.TaskID > 0 {
		return intent.TaskID
	}
	if intent.Reference {
		return cctx.LastTaskID
	}
	return 0
}

// Dispatch maps a resolved intent to at most one ActionRequest. When no
// request can be produced this turn, the returned reply carries the
// clarification or confirmation text instead.
func Dispatch(intent Intent, cctx ConversationContext, lang Language) (*ActionRequest, string) {
	switch intent.Kind {
	case IntentList:
		return &ActionRequest{Operation: OpList}, ""

	case IntentCreate:
		title := strings.TrimSpace(intent.Title)
		if title == "" {
			return nil, missingTitleReply(lang)
		}
		return &ActionRequest{Operation: OpCreate, Title: title}, ""

	case IntentComplete:
		id := resolveTaskID(intent, cctx)
		if id == 0 {
			return nil, clarifyReply(OpComplete, lang)
		}
		return &ActionRequest{Operation: OpComplete, TaskID: id}, ""

	case IntentUpdate:
		id := resolveTaskID(intent, cctx)
		if id == 0 {
			return nil, clarifyReply(OpUpdate, lang)
		}
		title := strings.TrimSpace(intent.NewTitle)
		if title == "" {
			return nil, missingTitleReply(lang)
		}
		return &ActionRequest{Operation: OpUpdate, TaskID: id, Title: title}, ""

	case IntentDeleteRequest:
		// Destructive: pose the question, dispatch nothing this turn.
		id := resolveTaskID(intent, cctx)
		if id == 0 {
			return nil, clarifyReply(OpDelete, lang)
		}
		return nil, ConfirmDeleteQuestion(id, lang)

	case IntentDeleteConfirmed:
		return &ActionRequest{Operation: OpDelete, TaskID: intent.TaskID}, ""

	case IntentDeleteCancelled:
		return nil, cancelReply(intent.TaskID, lang)

	default:
		return nil, helpReply(lang)
	}
}
