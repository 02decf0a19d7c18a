// Package enhance implements the note enhancement pipeline: entitlement-based
// settings normalization, the token budget gate, prompt composition, the
// provider call and classification of the outcome.
package enhance

import (
	"context"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/prompt"
)

// Temperature is fixed for every enhancement call
const Temperature = 0.7

// CompletionTracer observes each provider call, successful or not
type CompletionTracer interface {
	TraceCompletion(ctx context.Context, request *llm.CompletionRequest, completion *llm.Completion, err error)
}

// Result is a successful enhancement
type Result struct {
	EnhancedContent   string
	ProcessingTime    time.Duration
	WordCount         int
	EstimatedTokens   int
	EffectiveSettings models.EnhancementSettings
}

// Enhancer runs the pipeline for one request at a time. It holds no per-request
// state and is safe for concurrent use.
type Enhancer struct {
	provider llm.Provider
	registry llm.ModelRegistry
	builder  *prompt.Builder
	model    string
	tracer   CompletionTracer
}

// Option configures an Enhancer
type Option func(*Enhancer)

// WithTracer attaches a completion tracer
func WithTracer(tracer CompletionTracer) Option {
	return func(e *Enhancer) {
		e.tracer = tracer
	}
}

// NewEnhancer creates an enhancer bound to one provider and model
func NewEnhancer(provider llm.Provider, registry llm.ModelRegistry, model string, opts ...Option) *Enhancer {
	e := &Enhancer{
		provider: provider,
		registry: registry,
		builder:  prompt.NewPromptBuilder(),
		model:    model,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the configured model identifier
func (e *Enhancer) Model() string {
	return e.model
}

// ProviderName returns the name of the active provider variant
func (e *Enhancer) ProviderName() string {
	return e.provider.Name()
}

// Enhance runs one request. Errors are *BudgetError, *llm.Fault or an internal error;
// pass them to MapResult to build the response.
func (e *Enhancer) Enhance(ctx context.Context, caps entitlements.Capabilities, req models.EnhancementRequest) (*Result, error) {
	settings := NormalizeSettings(caps.IsPaid(), req.EnhancementSettings)
	modelConfig := e.registry.Lookup(e.model)

	estimated, err := CheckBudget(req.OriginalContent, modelConfig)
	if err != nil {
		return nil, err
	}

	completionReq := &llm.CompletionRequest{
		Model:           e.model,
		SystemMessage:   e.builder.SystemMessage(),
		UserPrompt:      e.builder.BuildEnhancementPrompt(req.Subject, req.OriginalContent, settings),
		MaxOutputTokens: modelConfig.MaxOutputTokens,
		Temperature:     Temperature,
		Subject:         req.Subject,
		OriginalContent: req.OriginalContent,
	}

	completion, err := e.provider.Complete(ctx, completionReq)
	if e.tracer != nil {
		e.tracer.TraceCompletion(ctx, completionReq, completion, err)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		EnhancedContent:   completion.Text,
		ProcessingTime:    completion.Elapsed,
		WordCount:         llm.WordCount(completion.Text),
		EstimatedTokens:   estimated,
		EffectiveSettings: settings,
	}, nil
}
