package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/jotbot/internal/config"
	"github.com/sandevgo/jotbot/internal/journal"
	"github.com/sandevgo/jotbot/internal/providers/llm"
	"github.com/sandevgo/jotbot/internal/service/assistant"
	"github.com/sandevgo/jotbot/internal/service/classify"
	"github.com/sandevgo/jotbot/internal/service/command"
	"github.com/sandevgo/jotbot/internal/transport/cli"
	mcptransport "github.com/sandevgo/jotbot/internal/transport/mcp"
	"github.com/sandevgo/jotbot/internal/transport/telegram"
	"github.com/sandevgo/jotbot/pkg/log"
	"github.com/sandevgo/jotbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. AI provider + classifier
	aiProvider, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}
	classifier := classify.New(aiProvider, appCfg.ContextTokenBudget)

	// 3. Sessions and assistant
	sessions := journal.NewSessions()
	as := assistant.New(classifier, command.NewRouter(appCfg))

	// 4. Transports
	transports, err := initTransports(ctx, appCfg, as, sessions)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	as *assistant.Assistant,
	sessions *journal.Sessions,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, as, sessions)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.IsMCPSelected() {
		services = append(services, mcptransport.NewServer(sessions))
	}

	if cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(as, sessions, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
