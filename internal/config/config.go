package config

import (
	"os"
	"strconv"

	"github.com/versecraft/poem-api/internal/models"
)

// Config holds the application configuration.
// The service is stateless: everything comes from environment variables and
// nothing is persisted between requests.
type Config struct {
	// Environment
	Environment string
	Port        string

	// LLM API Keys
	OpenAIAPIKey    string // OpenAI API key for GPT models
	GeminiAPIKey    string // Google Gemini API key
	AnthropicAPIKey string // Anthropic API key for Claude models

	// Generation
	DefaultModel      string // model used when the request does not name one
	GenerationTimeout int    // seconds allowed for a single provider call

	// Poem defaults applied when optional request fields are omitted.
	// Tunable because the defaults are documented conventions, not contract.
	PoemDefaults models.PoemDefaults

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse

	// Auth
	// MCPToken guards the /mcp endpoints with a bearer check when set.
	// Empty means the endpoints are open (logged as a warning at startup).
	MCPToken string
}

func Load() *Config {
	fallback := models.DefaultPoemDefaults()

	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
		DefaultModel:      getEnv("DEFAULT_MODEL", "gpt-5-mini"),
		GenerationTimeout: getEnvInt("GENERATION_TIMEOUT_SECONDS", 60),
		PoemDefaults: models.PoemDefaults{
			Style:  getEnv("DEFAULT_POEM_STYLE", fallback.Style),
			Mood:   getEnv("DEFAULT_POEM_MOOD", fallback.Mood),
			Length: getEnv("DEFAULT_POEM_LENGTH", fallback.Length),
			Season: getEnv("DEFAULT_POEM_SEASON", fallback.Season),
		},
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
		MCPToken:          getEnv("MCP_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
