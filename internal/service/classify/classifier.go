package classify

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
	"github.com/sandevgo/jotbot/pkg/log"
)

// Classifier delegates intent detection to an external model and maps
// the returned tool calls onto a core.Intent. It gives no correctness
// guarantee beyond structural validity; anything unusable becomes a
// ClassificationError and the input is discarded.
type Classifier struct {
	ai     core.AIProvider
	budget int // token budget for recent-entry context
}

func New(ai core.AIProvider, contextBudget int) *Classifier {
	return &Classifier{
		ai:     ai,
		budget: contextBudget,
	}
}

func (c *Classifier) Classify(ctx context.Context, input string, recent []core.Entry) (core.Intent, error) {
	messages := []core.Message{
		{Role: core.RoleSystem, Content: systemInstruction},
	}

	if wantsContext(input) {
		if contextText := renderContext(recent, c.budget); contextText != "" {
			messages = append(messages, core.Message{
				Role:    core.RoleSystem,
				Content: "Recent journal entries:\n" + contextText,
			})
		}
	}

	messages = append(messages, core.Message{Role: core.RoleUser, Content: input})

	resp, err := c.ai.Chat(ctx, messages, entryTools())
	if err != nil {
		return core.Intent{}, &core.ClassificationError{Err: err}
	}

	intent, err := parseIntent(resp)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("unusable classifier output")
		return core.Intent{}, err
	}
	return intent, nil
}

type addEntryArgs struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Due      string `json:"due"`
}

type queryEntriesArgs struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

func parseIntent(msg core.Message) (core.Intent, error) {
	if len(msg.ToolCalls) == 0 {
		reply := strings.TrimSpace(msg.Content)
		if reply == "" {
			return core.Intent{}, &core.ClassificationError{Raw: "empty response"}
		}
		return core.Intent{Reply: reply}, nil
	}

	var intent core.Intent
	for _, tc := range msg.ToolCalls {
		switch tc.Function.Name {
		case "add_entry":
			var args addEntryArgs
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return core.Intent{}, &core.ClassificationError{Raw: tc.Function.Arguments}
			}
			intent.Drafts = append(intent.Drafts, core.Draft{
				Type:      core.EntryType(args.Type),
				Text:      args.Text,
				Category:  args.Category,
				DuePhrase: args.Due,
			})
		case "query_entries":
			var args queryEntriesArgs
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return core.Intent{}, &core.ClassificationError{Raw: tc.Function.Arguments}
			}
			intent.Query = &core.Query{
				Type:     core.EntryType(args.Type),
				Category: args.Category,
				Keyword:  args.Keyword,
			}
		default:
			return core.Intent{}, &core.ClassificationError{Raw: "unknown tool: " + tc.Function.Name}
		}
	}

	intent.Reply = strings.TrimSpace(msg.Content)
	return intent, nil
}
