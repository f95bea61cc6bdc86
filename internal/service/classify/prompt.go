package classify

import (
	"encoding/json"

	"github.com/sandevgo/jotbot/internal/core"
)

const systemInstruction = `You are a personal journal assistant.
Classify the user's message and respond with function calls.

You can:
- Add entries when the user mentions notes, thoughts, reminders, or shopping items. Emit one add_entry call per item.
- Retrieve entries when the user asks to show, list, or view what they logged earlier. Use query_entries.
- Never ask for clarification; infer intent.

Entry types: note, reminder, shopping_item.
- reminder: anything with a due moment (appointments, meetings, events). Put the time phrase in "due" verbatim.
- shopping_item: one call per item to buy.
- note: everything else worth keeping.

Restrictions:
- Only handle journaling. Decline unrelated requests politely in plain text.
- Keep plain-text replies short and natural.`

const addEntrySchema = `{
  "type": "object",
  "properties": {
    "type": {"type": "string", "enum": ["note", "reminder", "shopping_item"]},
    "text": {"type": "string", "description": "the entry content, without the due-time phrase"},
    "category": {"type": "string", "description": "short lowercase category, e.g. \"shopping\", \"work\""},
    "due": {"type": "string", "description": "due-time phrase for reminders, e.g. \"tomorrow at 2pm\""}
  },
  "required": ["type", "text"]
}`

const queryEntriesSchema = `{
  "type": "object",
  "properties": {
    "type": {"type": "string", "enum": ["note", "reminder", "shopping_item"]},
    "category": {"type": "string"},
    "keyword": {"type": "string", "description": "free-text filter over entry content"}
  }
}`

func entryTools() []core.Tool {
	return []core.Tool{
		{
			Type: "function",
			Function: core.Function{
				Name:        "add_entry",
				Description: "Add a single journal entry.",
				Parameters:  json.RawMessage(addEntrySchema),
			},
		},
		{
			Type: "function",
			Function: core.Function{
				Name:        "query_entries",
				Description: "Search stored journal entries.",
				Parameters:  json.RawMessage(queryEntriesSchema),
			},
		},
	}
}
