package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultModel      = "meta-llama/llama-3.3-70b-instruct"
	defaultLLMTimeout = 180 * time.Second
	defaultHTTPAddr   = ":8080"
	defaultDBPath     = "data/fine-ill-eat.db"
)

// Config holds the configuration for the application.
type Config struct {
	// Generation backend (optional — without a key the planner runs the
	// deterministic catalog path and reports fallback reason "no_credential").
	OpenRouterAPIKey string
	OpenRouterModel  string
	LLMTimeout       time.Duration

	// Gemini is used for image-based meal extraction.
	GeminiAPIKey string

	HTTPAddr      string
	APIAuthSecret string
	MetricsDBPath string

	// Telegram Config
	TelegramBotToken    string
	TelegramWebhookURL  string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		HTTPAddr:         os.Getenv("HTTP_ADDR"),
		APIAuthSecret:    os.Getenv("API_AUTH_SECRET"),
		MetricsDBPath:    os.Getenv("METRICS_DB_PATH"),
		LLMTimeout:       defaultLLMTimeout,
	}

	if cfg.OpenRouterModel == "" {
		cfg.OpenRouterModel = defaultModel
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.MetricsDBPath == "" {
		cfg.MetricsDBPath = defaultDBPath
	}

	if raw := os.Getenv("LLM_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("LLM_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.LLMTimeout = time.Duration(secs) * time.Second
	}

	// Telegram Config (optional for CLI and server, required for the bot)
	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.TelegramWebhookURL = os.Getenv("TELEGRAM_WEBHOOK_URL")
	if raw := os.Getenv("TELEGRAM_ALLOW_USER_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ALLOW_USER_ID must be an integer, got %q", raw)
		}
		cfg.TelegramAllowUserID = id
	}

	return cfg, nil
}

// HasGenerationBackend reports whether the multi-agent path can run at all.
func (c *Config) HasGenerationBackend() bool {
	return c.OpenRouterAPIKey != ""
}
