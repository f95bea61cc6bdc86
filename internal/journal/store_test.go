package journal

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/sandevgo/jotbot/internal/core"
)

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Append(core.Entry{ID: fmt.Sprintf("id-%d", i), Type: core.EntryNote, Text: fmt.Sprintf("note %d", i)})
	}

	all := s.All()
	if len(all) != 5 {
		t.Fatalf("All() returned %d entries, want 5", len(all))
	}
	for i, e := range all {
		if e.ID != fmt.Sprintf("id-%d", i) {
			t.Errorf("entry %d has ID %s, want id-%d", i, e.ID, i)
		}
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(core.Entry{ID: "a", Type: core.EntryNote, Text: "original"})

	out := s.All()
	out[0].Text = "mutated"

	if got := s.All()[0].Text; got != "original" {
		t.Errorf("store text = %q after caller mutation, want %q", got, "original")
	}
}

func TestStoreFilter(t *testing.T) {
	s := NewStore()
	s.Append(core.Entry{ID: "1", Type: core.EntryNote, Text: "idea"})
	s.Append(core.Entry{ID: "2", Type: core.EntryShoppingItem, Text: "milk"})
	s.Append(core.Entry{ID: "3", Type: core.EntryShoppingItem, Text: "eggs"})

	got := s.Filter(func(e core.Entry) bool { return e.Type == core.EntryShoppingItem })

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []string{"2", "3"}) {
		t.Errorf("Filter() returned %v, want [2 3]", ids)
	}
}

func TestStoreFilterEmptyResult(t *testing.T) {
	s := NewStore()
	s.Append(core.Entry{ID: "1", Type: core.EntryNote, Text: "idea"})

	got := s.Filter(func(e core.Entry) bool { return false })
	if got == nil || len(got) != 0 {
		t.Errorf("Filter() = %v, want empty non-nil slice", got)
	}
}

func TestSessionsGetCreatesOnce(t *testing.T) {
	reg := NewSessions()
	a := reg.Get("cli-local")
	b := reg.Get("cli-local")
	if a != b {
		t.Error("Get() returned distinct sessions for the same id")
	}
	if c := reg.Get("telegram-42"); c == a {
		t.Error("Get() shared a session across distinct ids")
	}
}

func TestSessionReset(t *testing.T) {
	sess := NewSession("test")
	sess.Store().Append(core.Entry{ID: "1", Type: core.EntryNote, Text: "idea"})
	sess.AppendMessage(core.Message{Role: core.RoleUser, Content: "hi"})

	sess.Reset()

	if n := sess.Store().Len(); n != 0 {
		t.Errorf("store has %d entries after reset, want 0", n)
	}
	if n := len(sess.Transcript()); n != 0 {
		t.Errorf("transcript has %d messages after reset, want 0", n)
	}
}
