package agent

import "strings"

// urduPunctuation covers the sentence-final marks the classifier must not
// trip over: ۔ (full stop), ؟ (question mark), ، (comma), plus the Latin
// equivalents that show up in mixed input.
const urduPunctuation = "۔؟،!"

// DetectLanguage reports Urdu when any rune falls in the Arabic/Urdu block.
// Mixed-script input deliberately counts as Urdu so Urdu commands wrapped in
// Latin filler are not missed.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return LanguageUrdu
		}
	}
	return LanguageEnglish
}

// Normalize prepares raw input for pattern matching and returns the detected
// language. English input is case-folded and trimmed; Urdu input additionally
// has sentence punctuation stripped and whitespace collapsed.
func Normalize(raw string) (string, Language) {
	lang := DetectLanguage(raw)
	text := strings.ToLower(strings.TrimSpace(raw))
	if lang == LanguageUrdu {
		text = strings.Map(func(r rune) rune {
			switch {
			case strings.ContainsRune(urduPunctuation, r):
				return ' '
			case r >= '٠' && r <= '٩': // Arabic-Indic digits
				return '0' + (r - '٠')
			case r >= '۰' && r <= '۹': // Extended Arabic-Indic digits (Urdu keyboards)
				return '0' + (r - '۰')
			}
			return r
		}, text)
		text = strings.Join(strings.Fields(text), " ")
	}
	return text, lang
}
