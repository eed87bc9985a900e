package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider routes requests through OpenRouter. The service
// speaks the OpenAI wire protocol, so it rides on OpenAIProvider with
// only the base URL swapped out.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds a provider pointed at the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	base := cfg.BaseURL
	if base == "" {
		base = defaultOpenRouterBaseURL
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: base,
	})
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
