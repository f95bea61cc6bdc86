package main

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sandevgo/jotbot/internal/config"
	"github.com/sandevgo/jotbot/internal/service/installer"
	"github.com/sandevgo/jotbot/pkg/log"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Interactive first-run setup",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting setup wizard")

		if err := installer.RunWizard(); err != nil {
			return err
		}

		// Load the newly created .env so a follow-up command sees it
		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Setup complete! You can now run 'jot start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
