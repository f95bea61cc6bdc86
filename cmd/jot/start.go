package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/jotbot/pkg/log"
	"github.com/sandevgo/jotbot/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the configured JotBot transports",
	Long:  `Initializes the journal session, the LLM classifier and all enabled transports (CLI, Telegram, MCP).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting jotbot")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("jotbot has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
