package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateConfirmationEnglish(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want ConfirmDecision
	}{
		{"yes", ConfirmYes},
		{"yeah sure", ConfirmYes},
		{"ok go ahead", ConfirmYes},
		{"please do it", ConfirmYes},
		{"no", ConfirmNo},
		{"nope", ConfirmNo},
		{"cancel that", ConfirmNo},
		{"don't do it", ConfirmNo},
		{"leave it for now", ConfirmNo},
		{"show my tasks", ConfirmUnrecognized},
		{"maybe later", ConfirmUnrecognized},
		{"", ConfirmUnrecognized},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, EvaluateConfirmation(tc.text, LanguageEnglish), "input %q", tc.text)
	}
}

func TestEvaluateConfirmationUrdu(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want ConfirmDecision
	}{
		{"ہاں", ConfirmYes},
		{"جی ہاں", ConfirmYes},
		{"ٹھیک ہے", ConfirmYes},
		{"نہیں", ConfirmNo},
		{"رہنے دو", ConfirmNo},
		{"میرے کام دکھائیں", ConfirmUnrecognized},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, EvaluateConfirmation(tc.text, LanguageUrdu), "input %q", tc.text)
	}
}

// A polite refusal can embed an affirmative particle; negatives win.
func TestEvaluateConfirmationNegativesFirst(t *testing.T) {
	t.Parallel()

	require.Equal(t, ConfirmNo, EvaluateConfirmation("جی نہیں", LanguageUrdu))
	require.Equal(t, ConfirmNo, EvaluateConfirmation("yes wait no cancel", LanguageEnglish))
}
