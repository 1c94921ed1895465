package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/endevo/legacyready/internal/store"
	"go.uber.org/zap"
)

// NewProvider builds the configured backend and wraps it, outermost first,
// in timeout, retry and event logging. Logging sits inside the retry loop so
// every attempt is recorded.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}
	logged := WithLogging(base, eventRepo, logger)
	return WithTimeout(WithRetry(logged, cfg.Retry), cfg.Timeout), nil
}

func newBackend(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		return NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	case ProviderNone:
		return nil, errors.New("LLM provider is disabled")
	}
	return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
}
