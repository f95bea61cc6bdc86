package classify

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/sandevgo/jotbot/internal/core"
)

// Cue words suggesting the message refers to already-stored entries,
// so recent ones are worth sending along as context.
var contextCues = []string{
	"what", "list", "show", "remind", "buy", "task",
	"to-do", "remember", "summary", "note",
}

func wantsContext(input string) bool {
	lower := strings.ToLower(input)
	for _, cue := range contextCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

var (
	tkOnce sync.Once
	tk     *tiktoken.Tiktoken
)

func tokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return tk
}

func countTokens(text string) int {
	return len(tokenizer().Encode(text, nil, nil))
}

// renderContext formats the newest entries as bullet lines, newest
// last, dropping from the oldest end until the whole block fits the
// token budget.
func renderContext(entries []core.Entry, budget int) string {
	if len(entries) == 0 || budget <= 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		label := string(e.Type)
		if e.Category != "" {
			label = e.Category
		}
		lines = append(lines, fmt.Sprintf("- [%s] %s", label, e.Text))
	}

	for len(lines) > 0 {
		block := strings.Join(lines, "\n")
		if countTokens(block) <= budget {
			return block
		}
		lines = lines[1:]
	}
	return ""
}
