package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory picks the provider variant for a model at wiring time
type ProviderFactory struct {
	openaiAPIKey string
	geminiAPIKey string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey: openaiAPIKey,
		geminiAPIKey: geminiAPIKey,
	}
}

// GetProvider returns the provider for model. A missing credential for the
// model's provider yields the placeholder provider, never an error.
func (f *ProviderFactory) GetProvider(ctx context.Context, model string) (Provider, error) {
	if isGeminiModel(model) {
		if f.geminiAPIKey == "" {
			return NewStubProvider(), nil
		}
		provider, err := NewGeminiProvider(ctx, f.geminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("gemini provider for %s: %w", model, err)
		}
		return provider, nil
	}

	// GPT and unknown models use OpenAI
	if f.openaiAPIKey == "" {
		return NewStubProvider(), nil
	}
	return NewOpenAIProvider(f.openaiAPIKey), nil
}

func isGeminiModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), "gemini-")
}
