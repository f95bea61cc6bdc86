package core

import "time"

// EntryType is fixed at creation and never changes afterwards.
type EntryType string

const (
	EntryNote         EntryType = "note"
	EntryReminder     EntryType = "reminder"
	EntryShoppingItem EntryType = "shopping_item"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryNote, EntryReminder, EntryShoppingItem:
		return true
	}
	return false
}

// Entry is a single journaled item. IDs are unique within a session.
type Entry struct {
	ID        string     `json:"id"`
	Type      EntryType  `json:"type"`
	Text      string     `json:"text"`
	Category  string     `json:"category,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DueAt     *time.Time `json:"due_at,omitempty"` // reminders only
	Done      bool       `json:"done,omitempty"`   // shopping items only
}

// Draft is an unvalidated creation request produced by the classifier
// or one of the local fast paths. The entry router turns drafts into
// stored entries.
type Draft struct {
	Type      EntryType
	Text      string
	Category  string
	DuePhrase string // raw due-time phrase, reminders only
}

// Query asks for the ordered subsequence of stored entries matching
// type and, when set, category/keyword (case-insensitive substring).
type Query struct {
	Type     EntryType // empty matches any type
	Category string
	Keyword  string
}

// Intent is the structured interpretation of one user message.
// Drafts and Query may both be set when a single utterance does both;
// Reply carries conversational text when neither applies.
type Intent struct {
	Drafts []Draft
	Query  *Query
	Reply  string
}

func (i Intent) IsCreate() bool { return len(i.Drafts) > 0 }
func (i Intent) IsQuery() bool  { return i.Query != nil }
