package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"

	// Status Gemini sends with quota and rate-limit 429s
	geminiRateLimitStatus = "RESOURCE_EXHAUSTED"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Complete sends the prompt with the system message as system instruction
func (p *GeminiProvider) Complete(ctx context.Context, request *CompletionRequest) (*Completion, error) {
	log.Printf("📝 GEMINI COMPLETION STARTED (Model: %s, prompt: %d chars)", request.Model, len(request.UserPrompt))

	transaction := sentry.StartTransaction(ctx, "gemini.complete")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameGemini)

	span := transaction.StartChild("gemini.api_call")
	startTime := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, request.Model, genai.Text(request.UserPrompt), buildGeminiConfig(request))
	elapsed := time.Since(startTime)
	span.Finish()

	if err != nil {
		fault := classifyGeminiError(err)
		log.Printf("❌ GEMINI REQUEST FAILED after %v: kind=%s status=%d", elapsed, fault.Kind, fault.Status)
		transaction.SetTag("success", "false")
		transaction.SetTag("fault_kind", string(fault.Kind))
		return nil, fault
	}

	log.Printf("⏱️  GEMINI API CALL COMPLETED in %v", elapsed)
	transaction.SetTag("success", "true")

	completion := &Completion{
		Text:    extractGeminiText(result),
		Elapsed: elapsed,
	}
	if result.UsageMetadata != nil {
		completion.Usage = &Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return completion, nil
}

func buildGeminiConfig(request *CompletionRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: request.SystemMessage}},
		},
		Temperature: genai.Ptr(float32(request.Temperature)),
	}
	if request.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(request.MaxOutputTokens)
	}
	return config
}

// extractGeminiText joins the text parts of the first candidate
func extractGeminiText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}
	candidate := result.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// classifyGeminiError converts an SDK error into a Fault.
// RESOURCE_EXHAUSTED is Gemini's quota/rate-limit status and counts as a true rate limit.
func classifyGeminiError(err error) *Fault {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) {
			return transportFault(providerNameGemini, fmt.Errorf("gemini request failed: %w", err))
		}
		apiErr = *apiErrPtr
	}

	kind := statusKind(apiErr.Code)
	if apiErr.Status == geminiRateLimitStatus {
		kind = FaultRateLimited
	}
	return &Fault{
		Kind:     kind,
		Provider: providerNameGemini,
		Status:   apiErr.Code,
		Code:     apiErr.Status,
		Err:      err,
	}
}
