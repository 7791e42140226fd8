package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration. An empty Provider
// disables LLM features.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns defaults with no provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// ConfigFromEnv reads LEXIZ_* variables. When LEXIZ_LLM_PROVIDER is unset
// it falls back to DiscoverConfig; with no keys at all the result is
// disabled.
func ConfigFromEnv() Config {
	provider := os.Getenv("LEXIZ_LLM_PROVIDER")
	if provider == "" {
		if cfg, ok := DiscoverConfig(); ok {
			return cfg
		}
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	cfg.Provider = provider
	setFromEnv(&cfg.Anthropic.APIKey, "LEXIZ_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "LEXIZ_ANTHROPIC_MODEL")
	setFromEnv(&cfg.OpenAI.APIKey, "LEXIZ_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "LEXIZ_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "LEXIZ_OPENAI_BASE_URL")
	setFromEnv(&cfg.Gemini.APIKey, "LEXIZ_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "LEXIZ_GEMINI_MODEL")
	setFromEnv(&cfg.OpenRouter.APIKey, "LEXIZ_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "LEXIZ_OPENROUTER_MODEL")
	if d, err := time.ParseDuration(os.Getenv("LEXIZ_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard API key variables in order
// Gemini, OpenAI, Anthropic, OpenRouter and selects the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case "", ProviderMock:
		return nil
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "LEXIZ_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "LEXIZ_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "LEXIZ_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "LEXIZ_OPENROUTER_API_KEY"
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
