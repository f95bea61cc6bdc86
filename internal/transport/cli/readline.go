package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/jotbot/internal/config"
	"github.com/sandevgo/jotbot/internal/core"
	"github.com/sandevgo/jotbot/internal/journal"
	"github.com/sandevgo/jotbot/internal/service/assistant"
	"github.com/sandevgo/jotbot/pkg/log"
)

const defaultSessionID = "cli-local"

type ReadLine struct {
	cfg       *config.AppConfig
	assistant *assistant.Assistant
	sessions  *journal.Sessions
	rl        *readline.Instance
}

func NewReadLine(as *assistant.Assistant, sessions *journal.Sessions, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(config.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(config.GetRuntimePath(), "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:       cfg,
		assistant: as,
		sessions:  sessions,
		rl:        rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("journal chat started. Type 'exit' to quit.")

	sess := r.sessions.Get(defaultSessionID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		reply, err := r.assistant.HandleMessage(ctx, sess, line)
		if err != nil {
			if errors.Is(err, core.ErrEmptyInput) {
				continue
			}
			logger.Warn().Err(err).Msg("message not handled")
			fmt.Fprintf(r.rl.Stdout(), "%s\n", assistant.UserFacingError(err))
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s\n", reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
