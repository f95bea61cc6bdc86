package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
	"github.com/sandevgo/jotbot/internal/journal"
)

type ListCommand struct {
	resolver  *journal.Resolver
	formatter *ResponseFormatter
}

func NewListCommand() *ListCommand {
	return &ListCommand{
		resolver:  journal.NewResolver(),
		formatter: NewResponseFormatter(),
	}
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Description() string {
	return "List stored entries, optionally by type (notes, reminders, shopping)"
}

func (c *ListCommand) Execute(ctx context.Context, sess *journal.Session, args []string) (string, error) {
	var q core.Query
	if len(args) > 0 {
		typ, ok := parseTypeAlias(args[0])
		if !ok {
			return "", fmt.Errorf("unknown entry type %q (use notes, reminders or shopping)", args[0])
		}
		q.Type = typ
	}

	entries := c.resolver.Resolve(sess.Store(), q)
	return c.formatter.EntryList(entries), nil
}

func parseTypeAlias(s string) (core.EntryType, bool) {
	switch strings.ToLower(s) {
	case "note", "notes":
		return core.EntryNote, true
	case "reminder", "reminders":
		return core.EntryReminder, true
	case "shopping", "shopping_item", "shopping_items":
		return core.EntryShoppingItem, true
	}
	return "", false
}
