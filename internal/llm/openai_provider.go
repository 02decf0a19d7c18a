package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// Provider name
	providerNameOpenAI = "openai"

	// Error code OpenAI sends with a true rate-limit 429
	openAIRateLimitCode = "rate_limit_exceeded"
)

// OpenAIProvider implements the Provider interface using OpenAI's Chat Completions API
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider.
// SDK retries are disabled: the caller decides whether to retry.
func NewOpenAIProvider(apiKey string, opts ...option.RequestOption) *OpenAIProvider {
	requestOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := openai.NewClient(requestOpts...)
	return &OpenAIProvider{
		client: &client,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Complete sends the system message and prompt as a two-message chat completion
func (p *OpenAIProvider) Complete(ctx context.Context, request *CompletionRequest) (*Completion, error) {
	log.Printf("📝 OPENAI COMPLETION STARTED (Model: %s, prompt: %d chars)", request.Model, len(request.UserPrompt))

	transaction := sentry.StartTransaction(ctx, "openai.complete")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameOpenAI)

	params := p.buildRequestParams(request)

	span := transaction.StartChild("openai.api_call")
	startTime := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	elapsed := time.Since(startTime)
	span.Finish()

	if err != nil {
		fault := classifyOpenAIError(err)
		log.Printf("❌ OPENAI REQUEST FAILED after %v: kind=%s status=%d code=%s", elapsed, fault.Kind, fault.Status, fault.Code)
		transaction.SetTag("success", "false")
		transaction.SetTag("fault_kind", string(fault.Kind))
		return nil, fault
	}

	log.Printf("⏱️  OPENAI API CALL COMPLETED in %v", elapsed)
	transaction.SetTag("success", "true")

	text := ""
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Completion{
		Text:    text,
		Elapsed: elapsed,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// buildRequestParams converts a CompletionRequest to Chat Completions params
func (p *OpenAIProvider) buildRequestParams(request *CompletionRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(request.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(request.SystemMessage),
			openai.UserMessage(request.UserPrompt),
		},
		Temperature: openai.Float(request.Temperature),
	}

	if request.MaxOutputTokens > 0 {
		params.MaxTokens = openai.Int(int64(request.MaxOutputTokens))
	}

	return params
}

// classifyOpenAIError converts an SDK error into a Fault
func classifyOpenAIError(err error) *Fault {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return transportFault(providerNameOpenAI, fmt.Errorf("openai request failed: %w", err))
	}

	fault := &Fault{
		Provider: providerNameOpenAI,
		Status:   apiErr.StatusCode,
		Code:     apiErr.Code,
		Err:      err,
	}
	if apiErr.Code == openAIRateLimitCode {
		fault.Kind = FaultRateLimited
	} else {
		fault.Kind = statusKind(apiErr.StatusCode)
	}
	return fault
}
