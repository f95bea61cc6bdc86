package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/jotbot/internal/core"
	"github.com/sandevgo/jotbot/internal/journal"
	"github.com/sandevgo/jotbot/internal/service/classify"
	"github.com/sandevgo/jotbot/internal/service/command"
	"github.com/sandevgo/jotbot/pkg/log"
)

// CommandRouter handles "/name" inputs before anything else runs.
type CommandRouter interface {
	Execute(ctx context.Context, sess *journal.Session, input string) (string, bool)
}

// Assistant processes one user message synchronously end to end:
// commands, then bulk paste, then local fast paths, then the external
// classifier; creation intents are committed through the entry router
// and query intents answered by the resolver.
type Assistant struct {
	classifier core.Classifier
	commands   CommandRouter
	router     *journal.Router
	resolver   *journal.Resolver
	formatter  *command.ResponseFormatter
}

func New(classifier core.Classifier, commands CommandRouter) *Assistant {
	return &Assistant{
		classifier: classifier,
		commands:   commands,
		router:     journal.NewRouter(),
		resolver:   journal.NewResolver(),
		formatter:  command.NewResponseFormatter(),
	}
}

func (a *Assistant) HandleMessage(ctx context.Context, sess *journal.Session, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", core.ErrEmptyInput
	}

	if reply, ok := a.commands.Execute(ctx, sess, input); ok {
		return reply, nil
	}

	sess.AppendMessage(core.Message{Role: core.RoleUser, Content: input})

	reply, err := a.interpret(ctx, sess, input)
	if err != nil {
		return "", err
	}

	sess.AppendMessage(core.Message{Role: core.RoleAssistant, Content: reply})
	return reply, nil
}

func (a *Assistant) interpret(ctx context.Context, sess *journal.Session, input string) (string, error) {
	logger := log.FromCtx(ctx)

	if drafts := classify.ParseBulk(input); len(drafts) > 0 {
		logger.Debug().Int("lines", len(drafts)).Msg("bulk paste ingested")
		return a.commit(sess, drafts)
	}

	if intent, ok := classify.FastIntent(input); ok {
		logger.Debug().Msg("fast path hit")
		return a.dispatch(sess, intent)
	}

	intent, err := a.classifier.Classify(ctx, input, sess.Store().All())
	if err != nil {
		return "", err
	}
	return a.dispatch(sess, intent)
}

func (a *Assistant) dispatch(sess *journal.Session, intent core.Intent) (string, error) {
	var parts []string

	if intent.IsCreate() {
		reply, err := a.commit(sess, intent.Drafts)
		if err != nil {
			return "", err
		}
		parts = append(parts, reply)
	}

	if intent.IsQuery() {
		entries := a.resolver.Resolve(sess.Store(), *intent.Query)
		parts = append(parts, a.formatter.EntryList(entries))
	}

	if len(parts) == 0 {
		if intent.Reply == "" {
			return "", &core.ClassificationError{Raw: "empty intent"}
		}
		parts = append(parts, intent.Reply)
	}

	return strings.Join(parts, "\n\n"), nil
}

func (a *Assistant) commit(sess *journal.Session, drafts []core.Draft) (string, error) {
	entries, err := a.router.Commit(sess.Store(), drafts)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "Nothing to add.", nil
	}

	noun := "entry"
	if len(entries) > 1 {
		noun = "entries"
	}
	return a.formatter.Combine(
		a.formatter.Success(fmt.Sprintf("Added %d %s.", len(entries), noun)),
		a.formatter.EntryList(entries),
	), nil
}
