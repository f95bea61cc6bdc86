package classify

import (
	"reflect"
	"testing"

	"github.com/sandevgo/jotbot/internal/core"
)

func TestFastIntentQueries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.EntryType
	}{
		{"shopping list question", "what's on my shopping list?", core.EntryShoppingItem},
		{"show groceries", "show me my grocery items", core.EntryShoppingItem},
		{"reminder question", "what reminders do I have?", core.EntryReminder},
		{"list tasks", "list my tasks", core.EntryReminder},
		{"appointments question", "do I have any appointments this week?", core.EntryReminder},
		{"notes question", "show my notes", core.EntryNote},
		{"ideas question", "what ideas did I write down?", core.EntryNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, ok := FastIntent(tt.input)
			if !ok {
				t.Fatalf("FastIntent(%q) did not match", tt.input)
			}
			if !intent.IsQuery() {
				t.Fatalf("FastIntent(%q) = %+v, want query", tt.input, intent)
			}
			if intent.Query.Type != tt.want {
				t.Errorf("query type = %q, want %q", intent.Query.Type, tt.want)
			}
		})
	}
}

func TestFastIntentShoppingAdd(t *testing.T) {
	intent, ok := FastIntent("Add milk and eggs to my shopping list")
	if !ok {
		t.Fatal("FastIntent did not match")
	}
	if !intent.IsCreate() {
		t.Fatalf("intent = %+v, want create", intent)
	}

	want := []core.Draft{
		{Type: core.EntryShoppingItem, Text: "milk", Category: "shopping"},
		{Type: core.EntryShoppingItem, Text: "eggs", Category: "shopping"},
	}
	if !reflect.DeepEqual(intent.Drafts, want) {
		t.Errorf("drafts = %v, want %v", intent.Drafts, want)
	}
}

func TestFastIntentNeedToBuy(t *testing.T) {
	intent, ok := FastIntent("I need to buy bread, butter and jam.")
	if !ok {
		t.Fatal("FastIntent did not match")
	}
	if len(intent.Drafts) != 3 {
		t.Fatalf("got %d drafts, want 3", len(intent.Drafts))
	}
	for i, text := range []string{"bread", "butter", "jam"} {
		if intent.Drafts[i].Text != text {
			t.Errorf("draft %d = %q, want %q", i, intent.Drafts[i].Text, text)
		}
	}
}

func TestFastIntentReminderAdd(t *testing.T) {
	intent, ok := FastIntent("remind me to call mom tomorrow at 2pm")
	if !ok {
		t.Fatal("FastIntent did not match")
	}
	if !intent.IsCreate() {
		t.Fatalf("intent = %+v, want create", intent)
	}

	d := intent.Drafts[0]
	if d.Type != core.EntryReminder {
		t.Errorf("type = %q, want reminder", d.Type)
	}
	if d.Text != "call mom tomorrow at 2pm" {
		t.Errorf("text = %q, want prefix stripped only", d.Text)
	}
}

func TestFastIntentReminderCueBeatsShopping(t *testing.T) {
	// "remind me to buy milk" carries both cues; the reminder wins.
	intent, ok := FastIntent("remind me to buy milk")
	if !ok {
		t.Fatal("FastIntent did not match")
	}
	if len(intent.Drafts) != 1 || intent.Drafts[0].Type != core.EntryReminder {
		t.Errorf("drafts = %v, want a single reminder", intent.Drafts)
	}
}

func TestFastIntentNoMatch(t *testing.T) {
	for _, input := range []string{
		"I had a strange dream about whales",
		"project idea: a journal bot",
		"the dentist recommended a night guard",
	} {
		if intent, ok := FastIntent(input); ok {
			t.Errorf("FastIntent(%q) = %+v, want no match", input, intent)
		}
	}
}

func TestSplitItems(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"milk", []string{"milk"}},
		{"milk and eggs", []string{"milk", "eggs"}},
		{"milk, bread and eggs", []string{"milk", "bread", "eggs"}},
		{"milk,, eggs", []string{"milk", "eggs"}},
	}

	for _, tt := range tests {
		if got := splitItems(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitItems(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWantsContext(t *testing.T) {
	if !wantsContext("what's on my list?") {
		t.Error("query-shaped input should want context")
	}
	if wantsContext("dentist tomorrow") {
		t.Error("plain add should not want context")
	}
}
