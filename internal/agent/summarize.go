package agent

import (
	"fmt"
	"strings"
)

// ConfirmDeleteQuestion is the fixed confirmation template. The context
// resolver's recognition patterns must keep matching whatever this emits.
func ConfirmDeleteQuestion(taskID int, lang Language) string {
	if lang == LanguageUrdu {
		return fmt.Sprintf("کیا آپ واقعی ٹاسک %d حذف کرنا چاہتے ہیں؟ یہ عمل واپس نہیں ہو سکتا۔ برائے مہربانی تصدیق کریں (ہاں/نہیں)۔", taskID)
	}
	return fmt.Sprintf("Are you sure you want to delete task %d? This action cannot be undone. Please confirm (yes/no).", taskID)
}

func cancelReply(taskID int, lang Language) string {
	if lang == LanguageUrdu {
		return fmt.Sprintf("ٹھیک ہے، ٹاسک %d حذف نہیں کیا جائے گا۔", taskID)
	}
	return fmt.Sprintf("Okay, I won't delete task %d.", taskID)
}

func helpReply(lang Language) string {
	if lang == LanguageUrdu {
		return "معذرت، میں سمجھ نہیں سکا۔ میں کام شامل کرنے، فہرست دیکھنے، اپ ڈیٹ کرنے یا حذف کرنے میں آپ کی مدد کر سکتا ہوں۔"
	}
	return "I'm sorry, I didn't quite catch that. I can help you add, list, update, or delete tasks."
}

func emptyInputReply(lang Language) string {
	if lang == LanguageUrdu {
		return "معذرت، آپ کا پیغام خالی معلوم ہوتا ہے۔ دوبارہ کوشش کریں۔"
	}
	return "I'm sorry, your message appears to be empty. Please try again."
}

func missingTitleReply(lang Language) string {
	if lang == LanguageUrdu {
		return "آپ اپنی فہرست میں کیا شامل کرنا چاہتے ہیں؟"
	}
	return "I'd be happy to add a task for you! What would you like to add to your todo list?"
}

func clarifyReply(op Operation, lang Language) string {
	if lang == LanguageUrdu {
		verb := map[Operation]string{
			OpComplete: "مکمل",
			OpDelete:   "حذف",
			OpUpdate:   "تبدیل",
		}[op]
		return fmt.Sprintf("آپ کون سا ٹاسک %s کرنا چاہتے ہیں؟ برائے مہربانی ٹاسک نمبر بتائیں۔", verb)
	}
	verb := map[Operation]string{
		OpComplete: "complete",
		OpDelete:   "delete",
		OpUpdate:   "update",
	}[op]
	return fmt.Sprintf("Which task would you like to %s? Please specify the task number (e.g., 'task 1').", verb)
}

// Summarize renders the collaborator's structured result into prose in the
// turn's language. It is driven by the shape of the result rather than the
// operation name, so one renderer serves every caller.
func Summarize(res ActionResult, lang Language) string {
	if !res.Success {
		return apology(res.Reason, lang)
	}
	switch {
	case res.Listed:
		return summarizeListing(res.Tasks, lang)
	case res.Deleted && res.TaskID > 0:
		if lang == LanguageUrdu {
			return fmt.Sprintf("ٹاسک %d کامیابی سے حذف کر دیا گیا۔", res.TaskID)
		}
		return fmt.Sprintf("Successfully deleted task %d.", res.TaskID)
	case res.TaskID > 0 && res.Title != "":
		if lang == LanguageUrdu {
			return fmt.Sprintf("ٹاسک '%s' کامیابی سے محفوظ کر لیا گیا۔ (ID: %d)", res.Title, res.TaskID)
		}
		return fmt.Sprintf("Task '%s' processed successfully (ID: %d).", res.Title, res.TaskID)
	default:
		if lang == LanguageUrdu {
			return "آپ کی درخواست پر عمل کر لیا گیا ہے۔"
		}
		return "I've processed your request."
	}
}

func summarizeListing(tasks []TaskSummary, lang Language) string {
	if len(tasks) == 0 {
		if lang == LanguageUrdu {
			return "آپ کی فہرست خالی ہے۔"
		}
		return "You have no tasks."
	}
	var b strings.Builder
	if lang == LanguageUrdu {
		b.WriteString("آپ کے کام:\n")
	} else {
		b.WriteString("Your tasks:\n")
	}
	for _, t := range tasks {
		marker := "⏳"
		if t.Completed {
			marker = "✅"
		}
		fmt.Fprintf(&b, "%d. %s %s\n", t.ID, t.Title, marker)
	}
	return strings.TrimRight(b.String(), "\n")
}

func apology(reason string, lang Language) string {
	if reason == "" {
		reason = "something went wrong"
	}
	if lang == LanguageUrdu {
		return fmt.Sprintf("معذرت، آپ کی درخواست مکمل نہیں ہو سکی: %s", reason)
	}
	return fmt.Sprintf("I'm sorry, I couldn't complete that request: %s", reason)
}
