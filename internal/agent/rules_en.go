package agent

import "regexp"

// englishRules is the ordered English rule table. It collapses the handful of
// near-duplicate phrasings the classifier must accept into one entry each,
// keeping the specific "id N marked as ..." family ahead of the general
// "task N completed" catch-all that would otherwise swallow it.
var englishRules = []rule{
	// Listing.
	{
		re: regexp.MustCompile(`(?:show|list|get|fetch|what are|display).*(?:task|todo|list|items)`),
		extract: func([]string) (Intent, bool) {
			return Intent{Kind: IntentList}, true
		},
	},
	// Creation. The title is everything after the verb phrase, minus any
	// trailing schedule chatter.
	{
		re: regexp.MustCompile(`(?:add|create|new task|remember to|remind me to)\s+(?:a task to|a task|a todo to|a todo|task|todo|to)?\s*(.+)`),
		extract: func(m []string) (Intent, bool) {
			title, ok := cleanTitle(m[1])
			if !ok {
				return Intent{}, false
			}
			return Intent{Kind: IntentCreate, Title: title}, true
		},
	},
	// Completion, most specific phrasings first.
	{re: regexp.MustCompile(`id\s+(\d+)\s+marked\s+as\s+(?:completed|complete|done|finished)(?:\s+task)?`), extract: completeByID},
	{re: regexp.MustCompile(`id\s+(\d+)\s+task\s+(?:is\s+)?(?:done|complete|completed|finished|ready)`), extract: completeByID},
	{re: regexp.MustCompile(`task\s+(\d+)\s+(?:is\s+)?(?:done|complete|completed|finished|ready)`), extract: completeByID},
	{re: regexp.MustCompile(`(?:complete|mark|set|finish)\s+task\s+(\d+)`), extract: completeByID},
	{re: regexp.MustCompile(`id\s+(\d+)\s+(?:is\s+)?(?:done|complete|completed|finished|ready)`), extract: completeByID},
	{re: regexp.MustCompile(`^(\d+)\s+(?:is\s+)?(?:done|complete|completed|finished|ready)$`), extract: completeByID},
	{re: regexp.MustCompile(`(?:mark|set|complete|finish)\s+(?:task|todo|id)?\s*(\d+)\s*(?:as\s+)?(?:done|complete|completed|finished|ready)?`), extract: completeByID},
	{re: regexp.MustCompile(`(?:task|todo|id|number)?\s*(\d+)\s*(?:is\s+)?(?:done|complete|completed|finished|ready)`), extract: completeByID},
	// Completion by reference ("complete it").
	{
		re: regexp.MustCompile(`(?:complete|finish|mark)\s+(?:it|that one|that|this)\b`),
		extract: func([]string) (Intent, bool) {
			return Intent{Kind: IntentComplete, Reference: true}, true
		},
	},
	// Deletion, specific before general.
	{re: regexp.MustCompile(`id\s+(\d+)\s+(?:delete|deleted|remove|removed|clear|erase|drop)(?:\s+(?:task|tasks|todo|todos))?`), extract: deleteByID},
	{re: regexp.MustCompile(`(?:delete|deleted|remove|removed|clear|erase|drop)\s+(?:task|todo|id)?\s*(\d+)`), extract: deleteByID},
	// Deletion by reference ("delete it").
	{
		re: regexp.MustCompile(`(?:delete|remove|drop)\s+(?:it|that one|that|this)\b`),
		extract: func([]string) (Intent, bool) {
			return Intent{Kind: IntentDeleteRequest, Reference: true}, true
		},
	},
	// Retitling.
	{
		re: regexp.MustCompile(`(?:update|change|changed|edit|rename)\s+(?:task|todo|id)?\s*(\d+)\s*(?:to|with|:)\s+['"]?(.*?)['"]?$`),
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
	// Retitling by reference ("change it to buy bread").
	{
		re: regexp.MustCompile(`(?:update|change|edit|rename)\s+(?:it|that|this)\s+(?:to|with)\s+['"]?(.*?)['"]?$`),
		extract: func(m []string) (Intent, bool) {
			title, ok := cleanTitle(m[1])
			if !ok {
				return Intent{}, false
			}
			return Intent{Kind: IntentUpdate, Reference: true, NewTitle: title}, true
		},
	},
}
