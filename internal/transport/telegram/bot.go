package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/jotbot/internal/config"
	"github.com/sandevgo/jotbot/internal/core"
	"github.com/sandevgo/jotbot/internal/journal"
	"github.com/sandevgo/jotbot/internal/service/assistant"
	"github.com/sandevgo/jotbot/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant *assistant.Assistant
	sessions  *journal.Sessions
	sender    *sender
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	as *assistant.Assistant,
	sessions *journal.Sessions,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: as,
		sessions:  sessions,
		sender:    newSender(b),
		ownerID:   cfg.OwnerID,
	}

	// Carry the signal-aware context with logger into handlers
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only the owner talks to this journal
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sess := b.sessions.Get(fmt.Sprintf("telegram-%d", c.Chat().ID))

	_ = c.Notify(tele.Typing)

	reply, err := b.assistant.HandleMessage(ctx, sess, c.Text())
	if err != nil {
		if errors.Is(err, core.ErrEmptyInput) {
			return nil
		}
		logger.Warn().Err(err).Msg("message not handled")
		return b.sender.sendMarkdown(ctx, c.Chat(), assistant.UserFacingError(err), false)
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), reply, false)
}
