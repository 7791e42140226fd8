package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller -> retry -> logging -> base. events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logging.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, events, log)
	return WithRetry(logged, cfg.Retry, log), nil
}
