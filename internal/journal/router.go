package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandevgo/jotbot/internal/core"
)

// Router validates classifier drafts and commits them to a store.
// Commit is all-or-nothing: if any reminder carries an unresolvable
// due time, no entry is appended and the TimeParseError is surfaced.
type Router struct {
	now   func() time.Time
	newID func() string
}

func NewRouter() *Router {
	return &Router{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (r *Router) Commit(store *Store, drafts []core.Draft) ([]core.Entry, error) {
	entries := make([]core.Entry, 0, len(drafts))
	for _, d := range drafts {
		entry, ok, err := r.build(d)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, entry)
		}
	}

	for _, e := range entries {
		store.Append(e)
	}
	return entries, nil
}

func (r *Router) build(d core.Draft) (core.Entry, bool, error) {
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return core.Entry{}, false, nil
	}

	typ := d.Type
	if !typ.Valid() {
		// The model occasionally invents a category-like type;
		// fall back to a plain note rather than losing the text.
		typ = core.EntryNote
	}

	entry := core.Entry{
		ID:        r.newID(),
		Type:      typ,
		Text:      text,
		Category:  strings.ToLower(strings.TrimSpace(d.Category)),
		CreatedAt: r.now(),
	}

	if typ == core.EntryReminder {
		phrase := strings.TrimSpace(d.DuePhrase)
		fromText := phrase == ""
		if fromText {
			phrase = text
		}

		due, matched, err := resolveDue(phrase, r.now())
		if err != nil {
			return core.Entry{}, false, err
		}
		entry.DueAt = &due

		if fromText {
			if cleaned := stripPhrase(text, matched); cleaned != "" {
				entry.Text = cleaned
			}
		}
	}

	return entry, true, nil
}
