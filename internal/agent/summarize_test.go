package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeListing(t *testing.T) {
	t.Parallel()

	res := ActionResult{
		Success: true,
		Listed:  true,
		Tasks: []TaskSummary{
			{ID: 1, Title: "buy groceries", Completed: false},
			{ID: 2, Title: "call the plumber", Completed: true},
		},
	}
	got := Summarize(res, LanguageEnglish)
	require.Equal(t, "Your tasks:\n1. buy groceries ⏳\n2. call the plumber ✅", got)
}

func TestSummarizeEmptyListing(t *testing.T) {
	t.Parallel()

	res := ActionResult{Success: true, Listed: true}
	require.Equal(t, "You have no tasks.", Summarize(res, LanguageEnglish))
	require.Equal(t, "آپ کی فہرست خالی ہے۔", Summarize(res, LanguageUrdu))
}

func TestSummarizeProcessed(t *testing.T) {
	t.Parallel()

	res := ActionResult{Success: true, TaskID: 5, Title: "buy groceries"}
	require.Equal(t, "Task 'buy groceries' processed successfully (ID: 5).", Summarize(res, LanguageEnglish))
}

func TestSummarizeDeleted(t *testing.T) {
	t.Parallel()

	res := ActionResult{Success: true, Deleted: true, TaskID: 7}
	require.Equal(t, "Successfully deleted task 7.", Summarize(res, LanguageEnglish))
	require.Equal(t, "ٹاسک 7 کامیابی سے حذف کر دیا گیا۔", Summarize(res, LanguageUrdu))
}

func TestSummarizeFailure(t *testing.T) {
	t.Parallel()

	res := ActionResult{Success: false, Reason: "Task with ID 9 not found"}
	require.Equal(t, "I'm sorry, I couldn't complete that request: Task with ID 9 not found", Summarize(res, LanguageEnglish))

	res.Reason = ""
	require.Contains(t, Summarize(res, LanguageEnglish), "something went wrong")
}

// The summarizer's success template must keep carrying the "(ID: N)" suffix
// the context resolver reads back on later turns.
func TestSummarizeRoundTripsWithResolver(t *testing.T) {
	t.Parallel()

	reply := Summarize(ActionResult{Success: true, TaskID: 42, Title: "buy groceries"}, LanguageEnglish)
	require.Equal(t, 42, mentionedTaskID(reply))

	question := ConfirmDeleteQuestion(7, LanguageEnglish)
	id, pending := pendingDeleteID(question)
	require.True(t, pending)
	require.Equal(t, 7, id)

	question = ConfirmDeleteQuestion(3, LanguageUrdu)
	id, pending = pendingDeleteID(question)
	require.True(t, pending)
	require.Equal(t, 3, id)
}
