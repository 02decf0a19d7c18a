package observability

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/config"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

const (
	traceNameEnhance      = "note.enhance"
	generationNameEnhance = "enhance_completion"
	observationLevelError = "ERROR"
)

// LangfuseClient wraps the Langfuse client with our configuration
type LangfuseClient struct {
	client  *langfuse.Langfuse
	enabled bool
}

// NewLangfuseClient creates a client. The henomis SDK reads its keys and host from
// LANGFUSE_PUBLIC_KEY, LANGFUSE_SECRET_KEY and LANGFUSE_HOST.
func NewLangfuseClient(ctx context.Context, cfg *config.Config) *LangfuseClient {
	if !cfg.LangfuseEnabled || cfg.LangfuseSecretKey == "" || cfg.LangfusePublicKey == "" {
		log.Println("⚠️  Langfuse not configured (LANGFUSE_ENABLED=false or keys not set)")
		return &LangfuseClient{enabled: false}
	}

	log.Printf("✅ Langfuse initialized (host: %s)", cfg.LangfuseHost)
	return &LangfuseClient{
		client:  langfuse.New(ctx),
		enabled: true,
	}
}

// IsEnabled returns whether Langfuse is enabled
func (c *LangfuseClient) IsEnabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// TraceCompletion records one provider call as a trace with a single generation.
func (c *LangfuseClient) TraceCompletion(ctx context.Context, request *llm.CompletionRequest, completion *llm.Completion, err error) {
	if !c.IsEnabled() || request == nil {
		return
	}

	trace, traceErr := c.client.Trace(&model.Trace{
		Name: traceNameEnhance,
		Metadata: map[string]interface{}{
			"model": request.Model,
		},
	})
	if traceErr != nil {
		log.Printf("⚠️  Failed to create Langfuse trace: %v", traceErr)
		return
	}

	start := time.Now()
	if completion != nil {
		start = start.Add(-completion.Elapsed)
	}
	generation, genErr := c.client.Generation(&model.Generation{
		TraceID:   trace.ID,
		Name:      generationNameEnhance,
		Model:     request.Model,
		StartTime: &start,
		Input: []map[string]interface{}{
			{"role": "system", "content": request.SystemMessage},
			{"role": "user", "content": request.UserPrompt},
		},
		ModelParameters: map[string]interface{}{
			"temperature": request.Temperature,
			"max_tokens":  request.MaxOutputTokens,
		},
	}, nil)
	if genErr != nil {
		log.Printf("⚠️  Failed to create Langfuse generation: %v", genErr)
		return
	}

	end := time.Now()
	generation.EndTime = &end
	if err != nil {
		generation.Level = model.ObservationLevel(observationLevelError)
		generation.Metadata = map[string]interface{}{"error": err.Error()}
	} else if completion != nil {
		generation.Output = completion.Text
		if completion.Usage != nil {
			cost := CalculateCost(request.Model, completion.Usage)
			generation.Usage = model.Usage{
				Input:     completion.Usage.InputTokens,
				Output:    completion.Usage.OutputTokens,
				Total:     completion.Usage.TotalTokens,
				Unit:      model.ModelUsageUnitTokens,
				TotalCost: cost,
			}
			generation.Metadata = map[string]interface{}{"cost_usd": FormatCost(cost)}
		}
	}

	if _, endErr := c.client.GenerationEnd(generation); endErr != nil {
		log.Printf("⚠️  Failed to end Langfuse generation: %v", endErr)
	}
	c.client.Flush(ctx)
}
