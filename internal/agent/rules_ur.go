package agent

import "regexp"

// urduTaskWord and urduRef are reused across the Urdu rules.
const (
	urduTaskWord   = `(?:ٹاسک|کام|نمبر)`
	urduOrdinalAlt = `پہلا|پہلے|دوسرا|دوسرے|تیسرا|تیسرے|چوتھا|چوتھے|پانچواں|پانچویں`
	urduIDGroup    = `(\d+|` + urduOrdinalAlt + `)`
)

// urduRules is the ordered Urdu rule table. The id-bearing rules come before
// the create rule: several Urdu command verbs end in the generic کریں, and a
// trailing کریں catch-all in the create rule would otherwise swallow every
// "ٹاسک N مکمل کریں" style command.
var urduRules = []rule{
	// Listing: فہرست / لسٹ or a show/tell verb.
	{
		re: regexp.MustCompile(`فہرست|لسٹ|دکھا|بتائیں|بتاؤ|کیا ہیں|کون سے کام`),
		extract: func([]string) (Intent, bool) {
			return Intent{Kind: IntentList}, true
		},
	},
	// Retitling: "ٹاسک N کو <title> کر دیں" and variants.
	{
		re: regexp.MustCompile(urduTaskWord + `?\s*` + urduIDGroup + `\s*` + urduTaskWord + `?\s*(?:کا نام بدل کر|کو بدل کر|کو|بدلو|اپڈیٹ کرو|اپڈیٹ)\s*['"]?(.*?)['"]?\s*(?:کر دیں|کر دو|تبدیل کریں|بنا دیں|کرو|کریں)$`),
		extract: func(m []string) (Intent, bool) {
			id, ok := parseTaskRef(m[1])
			if !ok {
				return Intent{}, false
			}
			title, ok := cleanTitle(m[2])
			if !ok {
				return Intent{}, false
			}
			return Intent{Kind: IntentUpdate, TaskID: id, NewTitle: title}, true
		},
	},
	// Completion: "ٹاسک N مکمل کریں", "پہلا کام ختم کرو".
	{
		re:      regexp.MustCompile(urduTaskWord + `?\s*` + urduIDGroup + `\s*` + urduTaskWord + `?\s*(?:مکمل|ختم|ہو گیا|ڈن)`),
		extract: completeByID,
	},
	// Deletion: "ٹاسک N حذف کریں", "دوسرا کام مٹائیں".
	{
		re:      regexp.MustCompile(urduTaskWord + `?\s*` + urduIDGroup + `\s*` + urduTaskWord + `?\s*(?:حذف|نکال|مٹائیں|مٹا دیں|ڈیلیٹ)`),
		extract: deleteByID,
	},
	// References: اسے = "it".
	{
		re: regexp.MustCompile(`اسے\s+(?:مکمل|ختم)`),
		extract: func([]string) (Intent, bool) {
			return Intent{Kind: IntentComplete, Reference: true}, true
		},
	},
	{
		re: regexp.MustCompile(`اسے\s+(?:حذف|ڈیلیٹ|مٹا)`),
		extract: func([]string) (Intent, bool) {
			return Intent{Kind: IntentDeleteRequest, Reference: true}, true
		},
	},
	// Creation: "<title> شامل کریں" and variants. The compound verbs must
	// stay ahead of the bare کریں fallback in the alternation.
	{
		re: regexp.MustCompile(`(.+?)\s*(?:شامل کریں|شامل کرو|لکھیں|ایڈ کریں|ڈالیں|ڈالو|اضافہ کرو|بنائیں|کریں)$`),
		extract: func(m []string) (Intent, bool) {
			title, ok := cleanTitle(m[1])
			if !ok {
				return Intent{}, false
			}
			return Intent{Kind: IntentCreate, Title: title}, true
		},
	},
}
