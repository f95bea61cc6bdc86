package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/jotbot/internal/journal"
)

type ClearCommand struct {
	formatter *ResponseFormatter
}

func NewClearCommand() *ClearCommand {
	return &ClearCommand{
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Discard all entries and the transcript of this session"
}

func (c *ClearCommand) Execute(ctx context.Context, sess *journal.Session, args []string) (string, error) {
	count := sess.Store().Len()
	sess.Reset()
	return c.formatter.Success(fmt.Sprintf("Cleared %d entries.", count)), nil
}
