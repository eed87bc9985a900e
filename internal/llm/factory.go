package llm

import (
	"context"
	"fmt"

	"github.com/kevinkeet/watershed/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with middleware:
// caller → usage limits → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown backend provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)
	limited := WithUsageLimits(retried, eventRepo, cfg.Usage)

	return limited, nil
}

// NewProviderFromEnv builds a Provider from environment configuration,
// falling back to key discovery when no explicit provider is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()

	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no backend configured: %w", err)
		}
		cfg = discovered
	}

	return NewProvider(ctx, cfg, eventRepo)
}
