package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearLLMEnv(t *testing.T) {
	for _, k := range []string{
		"LEXIZ_LLM_PROVIDER", "LEXIZ_ANTHROPIC_API_KEY", "LEXIZ_OPENAI_API_KEY",
		"LEXIZ_GEMINI_API_KEY", "LEXIZ_OPENROUTER_API_KEY", "LEXIZ_LLM_TIMEOUT",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_DisabledWithoutKeys(t *testing.T) {
	clearLLMEnv(t)
	cfg := ConfigFromEnv()
	assert.False(t, cfg.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_Explicit(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("LEXIZ_LLM_PROVIDER", "openai")
	t.Setenv("LEXIZ_OPENAI_API_KEY", "sk-test")
	t.Setenv("LEXIZ_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_Discovers(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ak")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "ak", cfg.Anthropic.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderGemini
	assert.ErrorContains(t, cfg.Validate(), "LEXIZ_GEMINI_API_KEY")

	cfg.Provider = "llama.cpp"
	assert.Error(t, cfg.Validate())

	cfg.Provider = ProviderMock
	assert.NoError(t, cfg.Validate())
}
