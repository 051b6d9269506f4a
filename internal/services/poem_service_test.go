package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versecraft/poem-api/internal/llm"
	"github.com/versecraft/poem-api/internal/models"
)

type stubProvider struct {
	name string
	text string
	err  error

	lastRequest *llm.GenerationRequest
}

func (p *stubProvider) Generate(_ context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	p.lastRequest = request
	if p.err != nil {
		return nil, p.err
	}
	return &llm.GenerationResponse{
		Text:  p.text,
		Model: request.Model,
		Usage: llm.Usage{InputTokens: 20, OutputTokens: 40, TotalTokens: 60},
	}, nil
}

func (p *stubProvider) Name() string { return p.name }

type stubResolver struct {
	provider llm.Provider
	err      error

	lastModel    string
	lastProvider string
}

func (r *stubResolver) GetProvider(_ context.Context, model, providerName string) (llm.Provider, error) {
	r.lastModel = model
	r.lastProvider = providerName
	if r.err != nil {
		return nil, r.err
	}
	return r.provider, nil
}

func validRequest() *models.PoemRequest {
	return &models.PoemRequest{
		Tool:   models.ToolGeneratePoem,
		Text:   "the sea",
		Style:  "free_verse",
		Mood:   "inspiring",
		Length: "medium",
		Season: "any",
	}
}

func TestGenerate_ReturnsCleanedPoem(t *testing.T) {
	provider := &stubProvider{name: "openai", text: "\n\nWaves rise and fall,\nendless and patient.\n"}
	svc := NewPoemServiceWithResolver(&stubResolver{provider: provider}, "gpt-5-mini", 30*time.Second)

	poem, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Waves rise and fall,\nendless and patient.", poem)

	// System and user prompts reach the provider intact.
	require.NotNil(t, provider.lastRequest)
	assert.NotEmpty(t, provider.lastRequest.SystemPrompt)
	assert.Contains(t, provider.lastRequest.UserPrompt, "the sea")
}

func TestGenerate_DefaultModelApplied(t *testing.T) {
	provider := &stubProvider{name: "openai", text: "a poem"}
	resolver := &stubResolver{provider: provider}
	svc := NewPoemServiceWithResolver(resolver, "gpt-5-mini", 30*time.Second)

	_, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-mini", resolver.lastModel)
	assert.Equal(t, "gpt-5-mini", provider.lastRequest.Model)
}

func TestGenerate_ExplicitModelWins(t *testing.T) {
	provider := &stubProvider{name: "anthropic", text: "a poem"}
	resolver := &stubResolver{provider: provider}
	svc := NewPoemServiceWithResolver(resolver, "gpt-5-mini", 30*time.Second)

	req := validRequest()
	req.Model = "claude-sonnet-4-20250514"
	req.Provider = "anthropic"

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-20250514", resolver.lastModel)
	assert.Equal(t, "anthropic", resolver.lastProvider)
}

func TestGenerate_ResolverFailure(t *testing.T) {
	resolver := &stubResolver{err: errors.New("openai API key not configured")}
	svc := NewPoemServiceWithResolver(resolver, "gpt-5-mini", 30*time.Second)

	_, err := svc.Generate(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationUnavailable))
}

func TestGenerate_ProviderFailure(t *testing.T) {
	provider := &stubProvider{name: "openai", err: errors.New("rate limited")}
	svc := NewPoemServiceWithResolver(&stubResolver{provider: provider}, "gpt-5-mini", 30*time.Second)

	_, err := svc.Generate(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationUnavailable))
}

func TestGenerate_EmptyOutput(t *testing.T) {
	provider := &stubProvider{name: "openai", text: "   \n  "}
	svc := NewPoemServiceWithResolver(&stubResolver{provider: provider}, "gpt-5-mini", 30*time.Second)

	_, err := svc.Generate(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationUnavailable))
	assert.Contains(t, err.Error(), "empty output")
}

func TestCleanPoemText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text trimmed",
			input:    "  \nRoses are red\n ",
			expected: "Roses are red",
		},
		{
			name:     "bare fence stripped",
			input:    "```\nRoses are red\nViolets are blue\n```",
			expected: "Roses are red\nViolets are blue",
		},
		{
			name:     "fence with language tag stripped",
			input:    "```text\nRoses are red\n```",
			expected: "Roses are red",
		},
		{
			name:     "inner fences preserved",
			input:    "A line about ``` marks",
			expected: "A line about ``` marks",
		},
		{
			name:     "empty input",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanPoemText(tt.input))
		})
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	svc := NewPoemServiceWithResolver(&stubResolver{}, "gpt-5-mini", time.Second)
	req := validRequest()

	assert.Equal(t, svc.BuildPrompt(req), svc.BuildPrompt(req))
	assert.Contains(t, svc.BuildPrompt(req), "the sea")
}
