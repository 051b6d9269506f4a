package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/getsentry/sentry-go"
)

const (
	providerNameAnthropic = "anthropic"
	anthropicMaxTokens    = 2048
)

// AnthropicProvider implements the Provider interface using Anthropic's
// Messages API
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: &client}
}

// Name returns the provider name
func (p *AnthropicProvider) Name() string {
	return providerNameAnthropic
}

// Generate implements plain-text generation using Anthropic's Messages API
func (p *AnthropicProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	startTime := time.Now()

	transaction := sentry.StartTransaction(ctx, "anthropic.generate")
	defer transaction.Finish()
	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameAnthropic)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(request.Model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(request.UserPrompt)),
		},
		System: []anthropic.TextBlockParam{
			{Type: "text", Text: request.SystemPrompt},
		},
	}

	span := transaction.StartChild("anthropic.api_call")
	apiStartTime := time.Now()
	message, err := p.client.Messages.New(ctx, params)
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("anthropic request failed after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			sb.WriteString(content.Text)
		}
	}
	textOutput := sb.String()
	if textOutput == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("anthropic response did not include any output text")
	}

	transaction.SetTag("success", "true")
	log.Printf("anthropic generation completed in %v (output_length=%d, tokens=%d)",
		time.Since(startTime), len(textOutput),
		message.Usage.InputTokens+message.Usage.OutputTokens)

	return &GenerationResponse{
		Text:  textOutput,
		Model: request.Model,
		Usage: Usage{
			InputTokens:  message.Usage.InputTokens,
			OutputTokens: message.Usage.OutputTokens,
			TotalTokens:  message.Usage.InputTokens + message.Usage.OutputTokens,
		},
	}, nil
}
