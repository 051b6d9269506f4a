package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/versecraft/poem-api/internal/config"
	"github.com/versecraft/poem-api/internal/llm"
	"github.com/versecraft/poem-api/internal/logger"
	"github.com/versecraft/poem-api/internal/metrics"
	"github.com/versecraft/poem-api/internal/models"
	"github.com/versecraft/poem-api/internal/observability"
	"github.com/versecraft/poem-api/internal/prompt"
)

// ErrGenerationUnavailable indicates the external generation call failed,
// timed out, or produced no usable output. Check with errors.Is().
var ErrGenerationUnavailable = errors.New("poem generation is currently unavailable")

// ProviderResolver yields an LLM provider for a model/provider pair.
// *llm.ProviderFactory satisfies it; tests substitute a stub.
type ProviderResolver interface {
	GetProvider(ctx context.Context, model, providerName string) (llm.Provider, error)
}

// PoemService turns a validated PoemRequest into poem text: it renders the
// prompt, makes a single bounded call to the chosen LLM provider, and
// post-processes the output. No state survives the call.
type PoemService struct {
	resolver      ProviderResolver
	builder       *prompt.Builder
	defaultModel  string
	timeout       time.Duration
	sentryMetrics *metrics.SentryMetrics
	cloudwatch    *metrics.Client
}

// NewPoemService creates the service from configuration.
func NewPoemService(cfg *config.Config, cloudwatch *metrics.Client) *PoemService {
	return &PoemService{
		resolver:      llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey, cfg.AnthropicAPIKey),
		builder:       prompt.NewPromptBuilder(),
		defaultModel:  cfg.DefaultModel,
		timeout:       time.Duration(cfg.GenerationTimeout) * time.Second,
		sentryMetrics: metrics.NewSentryMetrics(),
		cloudwatch:    cloudwatch,
	}
}

// NewPoemServiceWithResolver is the dependency-injected constructor used by
// tests.
func NewPoemServiceWithResolver(resolver ProviderResolver, defaultModel string, timeout time.Duration) *PoemService {
	return &PoemService{
		resolver:      resolver,
		builder:       prompt.NewPromptBuilder(),
		defaultModel:  defaultModel,
		timeout:       timeout,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// BuildPrompt exposes the deterministic prompt rendering for a validated
// request without calling any provider.
func (s *PoemService) BuildPrompt(req *models.PoemRequest) string {
	return s.builder.BuildUserPrompt(req)
}

// Generate produces the poem text for a validated request. Any failure of
// the outbound call is reported as ErrGenerationUnavailable; no retries.
func (s *PoemService) Generate(ctx context.Context, req *models.PoemRequest) (string, error) {
	startTime := time.Now()

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	userPrompt := s.builder.BuildUserPrompt(req)

	provider, err := s.resolver.GetProvider(ctx, model, req.Provider)
	if err != nil {
		logger.Error("Provider resolution failed", err, logger.Fields{"model": model, "tool": req.Tool})
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	trace := observability.GetClient().StartTrace(ctx, "poem.generate", map[string]interface{}{
		"tool":     req.Tool,
		"provider": provider.Name(),
	})
	defer trace.Finish()

	gen := trace.Generation(req.Tool, map[string]interface{}{"model": model})
	gen.Input(userPrompt)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:        model,
		SystemPrompt: s.builder.BuildSystemPrompt(),
		UserPrompt:   userPrompt,
	})

	duration := time.Since(startTime)
	s.sentryMetrics.RecordGenerationDuration(ctx, duration, err == nil)
	if s.cloudwatch != nil {
		s.cloudwatch.RecordGeneration(req.Tool, provider.Name(), duration, err == nil)
	}

	if err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		logger.Error("Generation failed", err, logger.Fields{
			"model": model, "tool": req.Tool, "provider": provider.Name(),
		})
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	poem := CleanPoemText(resp.Text)
	if poem == "" {
		gen.SetLevel("ERROR")
		gen.Finish()
		return "", fmt.Errorf("%w: model returned empty output", ErrGenerationUnavailable)
	}

	gen.Output(poem)
	gen.Usage(map[string]interface{}{
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
		"total_tokens":  resp.Usage.TotalTokens,
	})
	gen.Finish()

	s.sentryMetrics.RecordTokenUsage(ctx, model, resp.Usage)
	if s.cloudwatch != nil {
		s.cloudwatch.RecordTokenUsage(model, resp.Usage.TotalTokens)
	}
	logger.LogGenerationRequest(model, duration, logger.Fields{
		"tool":          req.Tool,
		"provider":      provider.Name(),
		"total_tokens":  resp.Usage.TotalTokens,
		"output_length": len(poem),
	})

	return poem, nil
}

// CleanPoemText trims whitespace and strips a surrounding markdown code
// fence if the model added one.
func CleanPoemText(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		// Drop a language tag on the opening fence line
		if idx := strings.Index(cleaned, "\n"); idx >= 0 && !strings.ContainsAny(cleaned[:idx], " \t") {
			cleaned = cleaned[idx+1:]
		}
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}
