package classify

import (
	"regexp"
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
)

// Local fast paths answer obvious utterances without an LLM round
// trip. Precedence is fixed: query shapes first, then reminder cues,
// then shopping-list adds, so ambiguous inputs resolve the same way
// every time.
var (
	shoppingQueryRe = regexp.MustCompile(`(?i)\b(what|show|list|display)\b.*\b(shopping|buy|grocer\w*|items?)\b`)
	reminderQueryRe = regexp.MustCompile(`(?i)\b(what|show|list|display)\b.*\b(reminders?|tasks?|todos?|to-dos?|events?)\b`)
	noteQueryRe     = regexp.MustCompile(`(?i)\b(what|show|list|display)\b.*\b(notes?|thoughts?|ideas?|recommendations?)\b`)
	addCueRe        = regexp.MustCompile(`(?i)\b(add|create|new)\b`)

	reminderCueRe  = regexp.MustCompile(`(?i)\b(remind|appointments?|meetings?|schedules?|events?)\b`)
	questionCueRe  = regexp.MustCompile(`(?i)\b(do|does|did|any|what|show|list|display|have|are there)\b`)
	remindPrefixRe = regexp.MustCompile(`(?i)^\s*(?:please\s+)?remind\s+me\s+(?:about|to|of)?\s*`)

	shoppingAddRe = regexp.MustCompile(`(?i)\b(?:add|put|get)\s+(.+?)\s+(?:to|on)\s+(?:my\s+|the\s+|our\s+)*(?:shopping|grocery)\s*list\b`)
	toBuyRe       = regexp.MustCompile(`(?i)\b(?:need\s+to\s+buy|have\s+to\s+buy|to\s+buy)\s+(.+?)[.!?]?\s*$`)
)

// FastIntent reports the locally decidable intent for input, if any.
func FastIntent(input string) (core.Intent, bool) {
	isAdd := addCueRe.MatchString(input)

	if !isAdd {
		switch {
		case shoppingQueryRe.MatchString(input):
			return core.Intent{Query: &core.Query{Type: core.EntryShoppingItem}}, true
		case reminderQueryRe.MatchString(input):
			return core.Intent{Query: &core.Query{Type: core.EntryReminder}}, true
		case noteQueryRe.MatchString(input):
			return core.Intent{Query: &core.Query{Type: core.EntryNote}}, true
		case reminderCueRe.MatchString(input) && questionCueRe.MatchString(input):
			// "do I have any appointments?" is a question, not an add
			return core.Intent{Query: &core.Query{Type: core.EntryReminder}}, true
		}
	}

	if reminderCueRe.MatchString(input) && !questionCueRe.MatchString(input) {
		text := strings.TrimSpace(remindPrefixRe.ReplaceAllString(input, ""))
		if text == "" {
			text = strings.TrimSpace(input)
		}
		return core.Intent{Drafts: []core.Draft{{
			Type: core.EntryReminder,
			Text: text,
		}}}, true
	}

	if m := shoppingAddRe.FindStringSubmatch(input); m != nil {
		return core.Intent{Drafts: shoppingDrafts(m[1])}, true
	}
	if m := toBuyRe.FindStringSubmatch(input); m != nil {
		return core.Intent{Drafts: shoppingDrafts(m[1])}, true
	}

	return core.Intent{}, false
}

func shoppingDrafts(list string) []core.Draft {
	drafts := make([]core.Draft, 0)
	for _, item := range splitItems(list) {
		drafts = append(drafts, core.Draft{
			Type:     core.EntryShoppingItem,
			Text:     item,
			Category: "shopping",
		})
	}
	return drafts
}

// splitItems breaks "milk, bread and eggs" into single items.
func splitItems(list string) []string {
	normalized := regexp.MustCompile(`(?i)\s+and\s+`).ReplaceAllString(list, ",")
	parts := strings.Split(normalized, ",")

	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
