package config

import (
	"context"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/sandevgo/jotbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"JOT_RUNTIME_PATH" envDefault:".jotbot"`

	// Provider selection
	Provider string `env:"JOT_MODEL_PROVIDER" envDefault:"gemini"`
	Model    string `env:"JOT_MODEL" envDefault:"gemini-2.0-flash-lite"`

	GeminiAPIKey     string `env:"JOT_GEMINI_API_KEY"`
	OpenAIAPIKey     string `env:"JOT_OPENAI_API_KEY"`
	OpenRouterAPIKey string `env:"JOT_OPENROUTER_API_KEY"`
	OllamaBaseURL    string `env:"JOT_OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey     string `env:"JOT_OLLAMA_API_KEY"`

	// Transport flags
	EnableTelegram bool `env:"JOT_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"JOT_ENABLE_CLI" envDefault:"true"`
	EnableMCP      bool `env:"JOT_ENABLE_MCP" envDefault:"false"`

	// Token budget for recent-entry context sent to the classifier
	ContextTokenBudget int `env:"JOT_CONTEXT_TOKEN_BUDGET" envDefault:"600"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetProvider() string { return c.Provider }
func (c AppConfig) GetModel() string    { return c.Model }

// GetGeminiAPIKey falls back to the conventional Google AI variables
// so an existing GEMINI_API_KEY keeps working without a JOT_ prefix.
func (c AppConfig) GetGeminiAPIKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func (c AppConfig) IsTelegramSelected() bool { return c.EnableTelegram }
func (c AppConfig) IsCLISelected() bool      { return c.EnableCLI && !c.EnableMCP }

// IsMCPSelected wins over the CLI: both transports own stdio.
func (c AppConfig) IsMCPSelected() bool { return c.EnableMCP }
