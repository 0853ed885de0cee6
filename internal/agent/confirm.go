package agent

import (
	"strings"
	"unicode"
)

// ConfirmDecision is the outcome of testing an utterance against the
// affirmative/negative word lists while a confirmation is pending.
type ConfirmDecision int

const (
	// ConfirmUnrecognized lapses the pending confirmation: the turn is
	// re-classified from scratch so the dialogue cannot get stuck.
	ConfirmUnrecognized ConfirmDecision = iota
	ConfirmYes
	ConfirmNo
)

var (
	affirmativeWords = map[Language][]string{
		LanguageEnglish: {"yes", "yeah", "yep", "yup", "sure", "ok", "okay", "confirm", "confirmed", "affirmative", "definitely", "proceed"},
		LanguageUrdu:    {"ہاں", "جی", "بالکل", "ضرور", "اوکے", "ٹھیک"},
	}
	affirmativePhrases = map[Language][]string{
		LanguageEnglish: {"go ahead", "do it"},
		LanguageUrdu:    {"جی ہاں", "ٹھیک ہے"},
	}
	negativeWords = map[Language][]string{
		LanguageEnglish: {"no", "nope", "nah", "cancel", "stop", "never", "negative", "dont", "don"},
		LanguageUrdu:    {"نہیں", "نہ", "مت", "کینسل"},
	}
	negativePhrases = map[Language][]string{
		LanguageEnglish: {"leave it"},
		LanguageUrdu:    {"رہنے دو", "چھوڑ دو"},
	}
)

// tokenize splits on anything that is not a letter or digit, giving the
// word-boundary semantics the pattern lists rely on. RE2's \b only knows
// ASCII word characters, so boundaries are handled here for both scripts.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func matchesWordList(tokens []string, joined string, words, phrases []string) bool {
	for _, t := range tokens {
		for _, w := range words {
			if t == w {
				return true
			}
		}
	}
	for _, p := range phrases {
		if strings.Contains(joined, " "+p+" ") {
			return true
		}
	}
	return false
}

// EvaluateConfirmation decides whether normalized input answers a pending
// yes/no question. Negatives are tested first so polite refusals that embed
// an affirmative particle ("جی نہیں") cancel rather than confirm.
func EvaluateConfirmation(text string, lang Language) ConfirmDecision {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return ConfirmUnrecognized
	}
	joined := " " + strings.Join(tokens, " ") + " "
	if matchesWordList(tokens, joined, negativeWords[lang], negativePhrases[lang]) {
		return ConfirmNo
	}
	if matchesWordList(tokens, joined, affirmativeWords[lang], affirmativePhrases[lang]) {
		return ConfirmYes
	}
	return ConfirmUnrecognized
}
