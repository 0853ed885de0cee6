package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	require.Equal(t, LanguageEnglish, DetectLanguage("show my tasks"))
	require.Equal(t, LanguageUrdu, DetectLanguage("میرے کام دکھائیں"))
	// Mixed-script input counts as Urdu.
	require.Equal(t, LanguageUrdu, DetectLanguage("please ٹاسک 2 مکمل کریں"))
	require.Equal(t, LanguageEnglish, DetectLanguage(""))
}

func TestNormalizeEnglish(t *testing.T) {
	t.Parallel()

	text, lang := Normalize("  Add a Task to BUY GROCERIES  ")
	require.Equal(t, LanguageEnglish, lang)
	require.Equal(t, "add a task to buy groceries", text)
}

func TestNormalizeUrdu(t *testing.T) {
	t.Parallel()

	text, lang := Normalize("میرے کام دکھائیں؟")
	require.Equal(t, LanguageUrdu, lang)
	require.Equal(t, "میرے کام دکھائیں", text)

	// Arabic-Indic digits fold to ASCII so the id rules can read them.
	text, _ = Normalize("ٹاسک ۲ مکمل کریں۔")
	require.Equal(t, "ٹاسک 2 مکمل کریں", text)
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"  Add a Task to BUY GROCERIES  ",
		"ٹاسک ۲ مکمل کریں۔",
		"میرے کام دکھائیں؟",
	}
	for _, in := range inputs {
		once, lang1 := Normalize(in)
		twice, lang2 := Normalize(once)
		require.Equal(t, once, twice)
		require.Equal(t, lang1, lang2)
	}
}
