package command

import (
	"context"

	"github.com/sandevgo/jotbot/internal/journal"
)

type ModelCommand struct {
	cfg       ProviderInfo
	formatter *ResponseFormatter
}

func NewModelCommand(cfg ProviderInfo) *ModelCommand {
	return &ModelCommand{
		cfg:       cfg,
		formatter: NewResponseFormatter(),
	}
}

func (c *ModelCommand) Name() string {
	return "model"
}

func (c *ModelCommand) Description() string {
	return "Show the configured model"
}

func (c *ModelCommand) Execute(ctx context.Context, sess *journal.Session, args []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info("Current Model"),
		c.formatter.Label("Provider", c.cfg.GetProvider()),
		c.formatter.Label("Model", c.cfg.GetModel()),
	), nil
}
