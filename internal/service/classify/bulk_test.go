package classify

import (
	"testing"

	"github.com/sandevgo/jotbot/internal/core"
)

func TestParseBulk(t *testing.T) {
	text := "reminder — 2026-08-27 14:00 dentist appointment\n" +
		"shoppinglist — 2026-08-27 oat milk\n" +
		"thoughts — 2026-08-26 the garden needs replanting"

	drafts := ParseBulk(text)
	if len(drafts) != 3 {
		t.Fatalf("got %d drafts, want 3", len(drafts))
	}

	if d := drafts[0]; d.Type != core.EntryReminder || d.Text != "dentist appointment" || d.DuePhrase != "2026-08-27 14:00" {
		t.Errorf("reminder draft = %+v", d)
	}
	if d := drafts[1]; d.Type != core.EntryShoppingItem || d.Text != "oat milk" || d.Category != "shoppinglist" {
		t.Errorf("shopping draft = %+v", d)
	}
	if d := drafts[2]; d.Type != core.EntryNote || d.Text != "the garden needs replanting" || d.Category != "thoughts" {
		t.Errorf("note draft = %+v", d)
	}
	if drafts[1].DuePhrase != "" {
		t.Errorf("non-reminder draft carries a due phrase: %q", drafts[1].DuePhrase)
	}
}

func TestParseBulkSkipsUnrecognizedLines(t *testing.T) {
	text := "hello there\n" +
		"reminder — 2026-08-27 14:00 dentist\n" +
		"\n" +
		"just chatting"

	drafts := ParseBulk(text)
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
	if drafts[0].Text != "dentist" {
		t.Errorf("draft = %+v", drafts[0])
	}
}

func TestParseBulkPlainMessage(t *testing.T) {
	if drafts := ParseBulk("remind me to call mom tomorrow"); drafts != nil {
		t.Errorf("ParseBulk() = %v, want nil for a plain message", drafts)
	}
}
