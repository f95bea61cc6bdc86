package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/jotbot/internal/journal"
)

type HelpCommand struct {
	router    *Router
	formatter *ResponseFormatter
}

func NewHelpCommand(router *Router) *HelpCommand {
	return &HelpCommand{
		router:    router,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sess *journal.Session, args []string) (string, error) {
	items := make([]string, 0)
	for _, cmd := range c.router.ListCommands() {
		items = append(items, fmt.Sprintf("`/%s` — %s", cmd.Name(), cmd.Description()))
	}
	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
	), nil
}
