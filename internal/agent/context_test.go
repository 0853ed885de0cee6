package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveContextLastTaskID(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleUser, Content: "add a task to buy groceries"},
		{Role: RoleAgent, Content: "Task 'buy groceries' processed successfully (ID: 5)."},
	}
	cctx := ResolveContext(history)
	require.Equal(t, 5, cctx.LastTaskID)
	require.Nil(t, cctx.Pending)
	require.False(t, cctx.MalformedPending)
}

func TestResolveContextPrefersNewestMention(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleAgent, Content: "Task 'old' processed successfully (ID: 3)."},
		{Role: RoleUser, Content: "complete task 9"},
		{Role: RoleAgent, Content: "Task 'new' processed successfully (ID: 9)."},
	}
	require.Equal(t, 9, ResolveContext(history).LastTaskID)
}

func TestResolveContextPendingDelete(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleUser, Content: "delete task 7"},
		{Role: RoleAgent, Content: ConfirmDeleteQuestion(7, LanguageEnglish)},
	}
	cctx := ResolveContext(history)
	require.NotNil(t, cctx.Pending)
	require.Equal(t, OpDelete, cctx.Pending.Operation)
	require.Equal(t, 7, cctx.Pending.TaskID)
	require.Equal(t, 7, cctx.LastTaskID)
}

func TestResolveContextPendingDeleteUrdu(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleUser, Content: "ٹاسک 4 حذف کریں"},
		{Role: RoleAgent, Content: ConfirmDeleteQuestion(4, LanguageUrdu)},
	}
	cctx := ResolveContext(history)
	require.NotNil(t, cctx.Pending)
	require.Equal(t, 4, cctx.Pending.TaskID)
}

// Only the most recent agent turn can carry a live confirmation. Any later
// agent reply means the question was already resolved.
func TestResolveContextStaleConfirmation(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleAgent, Content: ConfirmDeleteQuestion(7, LanguageEnglish)},
		{Role: RoleUser, Content: "show my tasks"},
		{Role: RoleAgent, Content: "You have no tasks."},
	}
	cctx := ResolveContext(history)
	require.Nil(t, cctx.Pending)
	require.False(t, cctx.MalformedPending)
	// The stale question still counts as a task mention.
	require.Equal(t, 7, cctx.LastTaskID)
}

func TestResolveContextMalformedConfirmation(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleAgent, Content: "Are you sure you want to delete task ? Please confirm (yes/no)."},
	}
	cctx := ResolveContext(history)
	require.Nil(t, cctx.Pending)
	require.True(t, cctx.MalformedPending)
}

func TestResolveContextEmptyHistory(t *testing.T) {
	t.Parallel()

	cctx := ResolveContext(nil)
	require.Zero(t, cctx.LastTaskID)
	require.Nil(t, cctx.Pending)
}

func TestMentionedTaskID(t *testing.T) {
	t.Parallel()

	require.Equal(t, 12, mentionedTaskID("please look at task 12 now"))
	require.Equal(t, 5, mentionedTaskID("Task 'x' processed successfully (ID: 5)."))
	require.Equal(t, 8, mentionedTaskID("ٹاسک 8 کامیابی سے حذف کر دیا گیا۔"))
	require.Zero(t, mentionedTaskID("no ids here"))
}
