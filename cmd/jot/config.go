package main

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sandevgo/jotbot/internal/config"
	"github.com/sandevgo/jotbot/pkg/env"
)

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Print the effective configuration in .env format",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		envPath := filepath.Join(config.GetRuntimePath(), ".env")
		_ = godotenv.Load(envPath)

		cfg := config.NewAppConfig(ctx)
		redactConfig(cfg)

		out, err := env.MarshalEnv(cfg)
		if err != nil {
			return err
		}

		fmt.Print(out)
		return nil
	},
}

// redactConfig masks secrets so the output is safe to paste into bug reports.
func redactConfig(cfg *config.AppConfig) {
	for _, key := range []*string{&cfg.GeminiAPIKey, &cfg.OpenAIAPIKey, &cfg.OpenRouterAPIKey, &cfg.OllamaAPIKey} {
		if *key != "" {
			*key = "********"
		}
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
