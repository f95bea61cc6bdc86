package classify

import (
	"regexp"
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
)

// Bulk pastes look like exported journal lines:
//
//	reminder — 2026-08-27 14:00 dentist appointment
//	shoppinglist — 2026-08-27 oat milk
//
// They are ingested directly, one draft per line, no model call.
var bulkLineRe = regexp.MustCompile(`^(\w+)\s+—\s+([0-9][0-9\-: ]*[0-9])\s+(.+)$`)

// ParseBulk returns one draft per recognized line; an empty result
// means the text is not a bulk paste.
func ParseBulk(text string) []core.Draft {
	var drafts []core.Draft
	for _, line := range strings.Split(text, "\n") {
		m := bulkLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		category := strings.ToLower(m[1])
		draft := core.Draft{
			Type:     bulkType(category),
			Text:     strings.TrimSpace(m[3]),
			Category: category,
		}
		if draft.Type == core.EntryReminder {
			draft.DuePhrase = strings.TrimSpace(m[2])
		}
		drafts = append(drafts, draft)
	}
	return drafts
}

func bulkType(category string) core.EntryType {
	switch category {
	case "reminder", "reminders":
		return core.EntryReminder
	case "shopping", "shoppinglist", "grocery":
		return core.EntryShoppingItem
	default:
		return core.EntryNote
	}
}
