package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/jotbot/internal/core"
	"github.com/sandevgo/jotbot/internal/journal"
)

type stubClassifier struct {
	intent core.Intent
	err    error
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, input string, recent []core.Entry) (core.Intent, error) {
	s.calls++
	return s.intent, s.err
}

type stubCommands struct {
	reply string
}

func (s *stubCommands) Execute(ctx context.Context, sess *journal.Session, input string) (string, bool) {
	if strings.HasPrefix(input, "/") {
		return s.reply, true
	}
	return "", false
}

func newTestAssistant(c core.Classifier) *Assistant {
	return New(c, &stubCommands{reply: "command handled"})
}

func TestHandleMessageEmptyInput(t *testing.T) {
	c := &stubClassifier{}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := a.HandleMessage(context.Background(), sess, input)
		if !errors.Is(err, core.ErrEmptyInput) {
			t.Errorf("HandleMessage(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}

	if c.calls != 0 {
		t.Errorf("classifier called %d times on empty input, want 0", c.calls)
	}
	if sess.Store().Len() != 0 {
		t.Errorf("store has %d entries, want 0", sess.Store().Len())
	}
}

func TestHandleMessageCommand(t *testing.T) {
	c := &stubClassifier{}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	reply, err := a.HandleMessage(context.Background(), sess, "/help")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if reply != "command handled" {
		t.Errorf("reply = %q", reply)
	}
	if c.calls != 0 {
		t.Errorf("classifier called %d times for a command, want 0", c.calls)
	}
}

func TestHandleMessageShoppingFastPath(t *testing.T) {
	c := &stubClassifier{}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	reply, err := a.HandleMessage(context.Background(), sess, "Add milk and eggs to my shopping list")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if c.calls != 0 {
		t.Errorf("classifier called %d times, want fast path to handle it", c.calls)
	}
	if !strings.Contains(reply, "Added 2 entries.") {
		t.Errorf("reply = %q, want added-2 confirmation", reply)
	}

	entries := sess.Store().All()
	if len(entries) != 2 {
		t.Fatalf("store has %d entries, want 2", len(entries))
	}
	if entries[0].Text != "milk" || entries[1].Text != "eggs" {
		t.Errorf("entries = %q, %q, want milk then eggs in order", entries[0].Text, entries[1].Text)
	}
	for _, e := range entries {
		if e.Type != core.EntryShoppingItem {
			t.Errorf("entry %q has type %q, want shopping_item", e.Text, e.Type)
		}
	}
}

func TestHandleMessageReminderViaClassifier(t *testing.T) {
	c := &stubClassifier{
		intent: core.Intent{Drafts: []core.Draft{
			{Type: core.EntryReminder, Text: "dentist", DuePhrase: "tomorrow at 2pm"},
		}},
	}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	before := time.Now()
	_, err := a.HandleMessage(context.Background(), sess, "dentist tomorrow at 2pm")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if c.calls != 1 {
		t.Fatalf("classifier called %d times, want 1", c.calls)
	}

	entries := sess.Store().All()
	if len(entries) != 1 {
		t.Fatalf("store has %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Type != core.EntryReminder || e.DueAt == nil {
		t.Fatalf("entry = %+v, want reminder with due time", e)
	}

	wantDay := before.AddDate(0, 0, 1)
	y, m, d := e.DueAt.Date()
	wy, wm, wd := wantDay.Date()
	if y != wy || m != wm || d != wd {
		t.Errorf("due date = %04d-%02d-%02d, want tomorrow %04d-%02d-%02d", y, m, d, wy, wm, wd)
	}
	if e.DueAt.Hour() != 14 {
		t.Errorf("due hour = %d, want 14", e.DueAt.Hour())
	}
}

func TestHandleMessageUnresolvableReminder(t *testing.T) {
	c := &stubClassifier{
		intent: core.Intent{Drafts: []core.Draft{
			{Type: core.EntryReminder, Text: "pay rent", DuePhrase: "someday maybe"},
		}},
	}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	_, err := a.HandleMessage(context.Background(), sess, "pay rent someday maybe")
	var tpe *core.TimeParseError
	if !errors.As(err, &tpe) {
		t.Fatalf("HandleMessage() error = %v, want TimeParseError", err)
	}
	if sess.Store().Len() != 0 {
		t.Errorf("store has %d entries after failed commit, want 0", sess.Store().Len())
	}
}

func TestHandleMessageQueryViaClassifier(t *testing.T) {
	c := &stubClassifier{
		intent: core.Intent{Query: &core.Query{Keyword: "dentist"}},
	}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")
	sess.Store().Append(core.Entry{ID: "1", Type: core.EntryNote, Text: "dentist recommended flossing"})
	sess.Store().Append(core.Entry{ID: "2", Type: core.EntryNote, Text: "water the plants"})

	reply, err := a.HandleMessage(context.Background(), sess, "anything about the dentist in my journal?")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if !strings.Contains(reply, "dentist recommended flossing") {
		t.Errorf("reply = %q, want the matching entry", reply)
	}
	if strings.Contains(reply, "water the plants") {
		t.Errorf("reply = %q, leaked a non-matching entry", reply)
	}
}

func TestHandleMessageQueryEmptyStore(t *testing.T) {
	c := &stubClassifier{
		intent: core.Intent{Query: &core.Query{Type: core.EntryReminder}},
	}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	reply, err := a.HandleMessage(context.Background(), sess, "anything scheduled in my calendar?")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if !strings.Contains(reply, "No entries found.") {
		t.Errorf("reply = %q, want empty-result message", reply)
	}
}

func TestHandleMessageClassifierError(t *testing.T) {
	c := &stubClassifier{err: &core.ClassificationError{Err: errors.New("upstream 500")}}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	_, err := a.HandleMessage(context.Background(), sess, "mumble mumble")
	var ce *core.ClassificationError
	if !errors.As(err, &ce) {
		t.Fatalf("HandleMessage() error = %v, want ClassificationError", err)
	}
	if sess.Store().Len() != 0 {
		t.Errorf("store has %d entries after classification failure, want 0", sess.Store().Len())
	}
}

func TestHandleMessagePlainReply(t *testing.T) {
	c := &stubClassifier{intent: core.Intent{Reply: "I only handle journal entries."}}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	reply, err := a.HandleMessage(context.Background(), sess, "what's the meaning of life?")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if reply != "I only handle journal entries." {
		t.Errorf("reply = %q", reply)
	}
	if sess.Store().Len() != 0 {
		t.Errorf("store has %d entries for a plain reply, want 0", sess.Store().Len())
	}
}

func TestHandleMessageRecordsTranscript(t *testing.T) {
	c := &stubClassifier{intent: core.Intent{Reply: "noted"}}
	a := newTestAssistant(c)
	sess := journal.NewSession("test")

	if _, err := a.HandleMessage(context.Background(), sess, "thinking out loud"); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}

	tr := sess.Transcript()
	if len(tr) != 2 {
		t.Fatalf("transcript has %d messages, want user + assistant", len(tr))
	}
	if tr[0].Role != core.RoleUser || tr[1].Role != core.RoleAssistant {
		t.Errorf("transcript roles = %q, %q", tr[0].Role, tr[1].Role)
	}
}

func TestUserFacingError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "time parse",
			err:  &core.TimeParseError{Phrase: "someday"},
			want: "someday",
		},
		{
			name: "classification",
			err:  &core.ClassificationError{Raw: "garbage"},
			want: "Nothing was saved",
		},
		{
			name: "empty input",
			err:  core.ErrEmptyInput,
			want: "Say something first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserFacingError(tt.err); !strings.Contains(got, tt.want) {
				t.Errorf("UserFacingError() = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}
