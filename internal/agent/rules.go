package agent

import (
	"regexp"
	"strconv"
	"strings"
)

// rule pairs a compiled pattern with an extractor. Rules are evaluated in
// order and the first match wins; ordering is part of the contract, with the
// most specific phrasings listed before the catch-alls they would otherwise
// shadow.
type rule struct {
	re      *regexp.Regexp
	extract func(m []string) (Intent, bool)
}

// Classify maps normalized text to an Intent using the language's rule table.
// It is pure: the same text always yields the same Intent.
func Classify(text string, lang Language) Intent {
	rules := englishRules
	if lang == LanguageUrdu {
		rules = urduRules
	}
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if intent, ok := r.extract(m); ok {
			return intent
		}
	}
	return Intent{Kind: IntentUnknown}
}

// urduOrdinals maps the ordinal words the rules recognize to task positions.
// The mapping is closed: ordinals beyond the fifth are not recognized.
var urduOrdinals = map[string]int{
	"پہلا": 1, "پہلے": 1,
	"دوسرا": 2, "دوسرے": 2,
	"تیسرا": 3, "تیسرے": 3,
	"چوتھا": 4, "چوتھے": 4,
	"پانچواں": 5, "پانچویں": 5,
}

// parseTaskRef resolves a captured task reference to an id. Numeric strings
// parse as integers; Urdu ordinal words go through the fixed lookup.
func parseTaskRef(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n, true
	}
	if n, ok := urduOrdinals[s]; ok {
		return n, true
	}
	return 0, false
}

var numericOnly = regexp.MustCompile(`^\d+$`)

// scheduleTail marks where a captured title stops and scheduling chatter
// begins, so "buy groceries tomorrow" keeps only "buy groceries".
var scheduleTail = regexp.MustCompile(`\s+(?:tomorrow|today|tonight)\b|\s+at\s+\d|\s+on\s+|\s+next\s+|\s+by\s+|\s+in\s+`)

// cleanTitle trims a captured create title and strips a trailing schedule
// phrase. It rejects purely numeric candidates: "task 1" must never become a
// task titled "1".
func cleanTitle(raw string) (string, bool) {
	title := strings.Trim(strings.TrimSpace(raw), `'"`)
	if loc := scheduleTail.FindStringIndex(title); loc != nil {
		title = strings.TrimSpace(title[:loc[0]])
	}
	if title == "" || numericOnly.MatchString(title) {
		return "", false
	}
	return title, true
}

func completeByID(m []string) (Intent, bool) {
	id, ok := parseTaskRef(m[1])
	if !ok {
		return Intent{}, false
	}
	return Intent{Kind: IntentComplete, TaskID: id}, true
}

func deleteByID(m []string) (Intent, bool) {
	id, ok := parseTaskRef(m[1])
	if !ok {
		return Intent{}, false
	}
	return Intent{Kind: IntentDeleteRequest, TaskID: id}, true
}
