package agent

// Language identifies which rule table and reply templates apply to a turn.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageUrdu    Language = "ur"
)

// Role identifies which side of the conversation produced a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "assistant"
)

// Turn is one message in the conversation history, oldest first.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// IntentKind enumerates the classified user goals.
type IntentKind string

const (
	IntentCreate          IntentKind = "create"
	IntentList            IntentKind = "list"
	IntentComplete        IntentKind = "complete"
	IntentDeleteRequest   IntentKind = "delete_request"
	IntentDeleteConfirmed IntentKind = "delete_confirmed"
	IntentDeleteCancelled IntentKind = "delete_cancelled"
	IntentUpdate          IntentKind = "update"
	IntentUnknown         IntentKind = "unknown"
)

// Intent is the classified goal for a single turn plus any captured
// parameters. TaskID is zero when the rule captured no explicit id;
// Reference marks intents that point at "it"/"that"/an earlier task and
// need the conversation context to resolve an id.
type Intent struct {
	Kind      IntentKind
	TaskID    int
	Reference bool
	Title     string // create
	NewTitle  string // update
}

// Operation names the single task-storage call an intent maps to.
type Operation string

const (
	OpCreate   Operation = "create"
	OpList     Operation = "list"
	OpUpdate   Operation = "update"
	OpComplete Operation = "complete"
	OpDelete   Operation = "delete"
)

// ActionRequest is the unit handed to the task-storage collaborator.
// Exactly one or zero per turn.
type ActionRequest struct {
	Operation Operation `json:"operation"`
	TaskID    int       `json:"task_id,omitempty"`
	Title     string    `json:"title,omitempty"`
}

// TaskSummary is the collaborator's view of one task, as consumed by the
// result summarizer.
type TaskSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ActionResult is the collaborator's synchronous outcome. The summarizer is
// driven by shape: Tasks set means a listing, Deleted plus TaskID means a
// deletion, TaskID plus Title means a processed single task, and !Success
// means a failure with a user-safe reason.
type ActionResult struct {
	Success bool          `json:"success"`
	Tasks   []TaskSummary `json:"tasks,omitempty"`
	Listed  bool          `json:"listed,omitempty"`
	TaskID  int           `json:"task_id,omitempty"`
	Title   string        `json:"title,omitempty"`
	Deleted bool          `json:"deleted,omitempty"`
	Reason  string        `json:"reason,omitempty"`
}

// PendingAction is an outstanding confirmation recovered from history.
// Only destructive operations require one.
type PendingAction struct {
	Operation Operation
	TaskID    int
}

// ConversationContext is derived fresh each turn by scanning the history
// backward; it is never stored.
type ConversationContext struct {
	LastTaskID int
	Pending    *PendingAction

	// MalformedPending is set when the most recent agent turn looks like a
	// confirmation question but no task id could be recovered from it. The
	// engine fails open to Idle; the orchestration layer logs the warning.
	MalformedPending bool
}

// Reply is the outcome of one engine invocation.
type Reply struct {
	Text     string         `json:"text"`
	Language Language       `json:"language"`
	Action   *ActionRequest `json:"action,omitempty"`
	Result   *ActionResult  `json:"result,omitempty"`
}
