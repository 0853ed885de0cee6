package agent

import (
	"regexp"
	"strconv"
)

// Confirmation questions the agent itself emitted. The id group is optional
// so a mangled question can still be recognized and flagged instead of being
// mistaken for ordinary chatter.
var (
	confirmQuestionEN = regexp.MustCompile(`(?i)are you sure you want to delete task\s*(\d+)?`)
	confirmQuestionUR = regexp.MustCompile(`کیا آپ واقعی ٹاسک\s*(\d+)?`)
)

// taskMention recovers a task id from free text: either an explicit
// "task N" / "ٹاسک N" mention or the "(ID: N)" suffix the summarizer puts on
// its own replies.
var taskMention = regexp.MustCompile(`(?i)\(id:\s*(\d+)\)|(?:task|ٹاسک)\s*#?\s*(\d+)`)

func mentionedTaskID(content string) int {
	m := taskMention.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		if id, err := strconv.Atoi(g); err == nil && id > 0 {
			return id
		}
	}
	return 0
}

func pendingDeleteID(content string) (int, bool) {
	for _, re := range []*regexp.Regexp{confirmQuestionEN, confirmQuestionUR} {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if m[1] == "" {
			return 0, true
		}
		id, err := strconv.Atoi(m[1])
		if err != nil || id <= 0 {
			return 0, true
		}
		return id, true
	}
	return 0, false
}

// ResolveContext derives the conversation context by scanning the history
// newest to oldest. Only the most recent agent turn can carry a live pending
// confirmation: any later agent reply means the question was already
// answered or abandoned. The scan stops once both fields are known.
func ResolveContext(history []Turn) ConversationContext {
	var cctx ConversationContext
	sawAgentTurn := false

	for i := len(history) - 1; i >= 0; i-- {
		turn := history[i]

		if turn.Role == RoleAgent && !sawAgentTurn {
			sawAgentTurn = true
			if id, isQuestion := pendingDeleteID(turn.Content); isQuestion {
				if id > 0 {
					cctx.Pending = &PendingAction{Operation: OpDelete, TaskID: id}
					if cctx.LastTaskID == 0 {
						cctx.LastTaskID = id
					}
				} else {
					// Question recognized but no id recoverable: fail open.
					cctx.MalformedPending = true
				}
			}
		}

		if cctx.LastTaskID == 0 {
			if id := mentionedTaskID(turn.Content); id > 0 {
				cctx.LastTaskID = id
			}
		}

		if cctx.LastTaskID != 0 && sawAgentTurn {
			break
		}
	}
	return cctx
}
