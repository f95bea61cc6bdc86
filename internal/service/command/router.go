package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/jotbot/internal/journal"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, sess *journal.Session, args []string) (string, error)
}

// Router dispatches "/name args" inputs to registered commands. The
// second return value reports whether the input was a command at all.
type Router struct {
	commands map[string]Command
}

func New(commands []Command) *Router {
	r := &Router{
		commands: make(map[string]Command),
	}
	for _, cmd := range commands {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

func (r *Router) register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Router) Execute(ctx context.Context, sess *journal.Session, input string) (string, bool) {
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	args := parts[1:]

	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Sprintf("Unknown command: /%s", name), true
	}

	result, err := cmd.Execute(ctx, sess, args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return result, true
}

func (r *Router) ListCommands() []Command {
	res := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}
