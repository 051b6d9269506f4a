package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory creates providers based on model name or explicit provider choice
type ProviderFactory struct {
	openaiAPIKey    string
	geminiAPIKey    string
	anthropicAPIKey string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, geminiAPIKey, anthropicAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey:    openaiAPIKey,
		geminiAPIKey:    geminiAPIKey,
		anthropicAPIKey: anthropicAPIKey,
	}
}

// GetProvider returns the appropriate provider for the given model/provider name
func (f *ProviderFactory) GetProvider(ctx context.Context, model, providerName string) (Provider, error) {
	// If provider is explicitly specified, use that
	if providerName != "" {
		return f.getProviderByName(ctx, providerName)
	}

	// Otherwise, infer from model name
	return f.getProviderByModel(ctx, model)
}

// getProviderByName creates a provider by explicit name
func (f *ProviderFactory) getProviderByName(ctx context.Context, providerName string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case providerNameOpenAI:
		if f.openaiAPIKey == "" {
			return nil, fmt.Errorf("openai API key not configured")
		}
		return NewOpenAIProvider(f.openaiAPIKey), nil

	case providerNameGemini:
		if f.geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini API key not configured")
		}
		return NewGeminiProvider(ctx, f.geminiAPIKey)

	case providerNameAnthropic:
		if f.anthropicAPIKey == "" {
			return nil, fmt.Errorf("anthropic API key not configured")
		}
		return NewAnthropicProvider(f.anthropicAPIKey), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: openai, gemini, anthropic)", providerName)
	}
}

// getProviderByModel infers provider from model name
func (f *ProviderFactory) getProviderByModel(ctx context.Context, model string) (Provider, error) {
	modelLower := strings.ToLower(model)

	switch {
	case strings.HasPrefix(modelLower, "gpt-"):
		return f.getProviderByName(ctx, providerNameOpenAI)
	case strings.HasPrefix(modelLower, "gemini-"):
		return f.getProviderByName(ctx, providerNameGemini)
	case strings.HasPrefix(modelLower, "claude-"):
		return f.getProviderByName(ctx, providerNameAnthropic)
	}

	// Default to OpenAI for unknown models
	if f.openaiAPIKey == "" {
		return nil, fmt.Errorf("openai API key not configured (default provider)")
	}
	return NewOpenAIProvider(f.openaiAPIKey), nil
}
