package llm

import (
	"context"
	"strings"
	"time"
)

// Provider defines the interface for completion providers.
// Implementations are chosen once at wiring time (see ProviderFactory).
type Provider interface {
	// Complete sends one system message and one user prompt to the model
	// and returns the generated text. Failures are returned as *Fault.
	Complete(ctx context.Context, request *CompletionRequest) (*Completion, error)

	// Name returns the provider name (e.g., "openai", "gemini", "placeholder")
	Name() string
}

// CompletionRequest contains all parameters needed for one completion
type CompletionRequest struct {
	Model           string
	SystemMessage   string
	UserPrompt      string
	MaxOutputTokens int
	Temperature     float64

	// Subject and OriginalContent are only consumed by the placeholder
	// provider, which echoes them instead of calling a model.
	Subject         string
	OriginalContent string
}

// Completion is the result of a successful provider call
type Completion struct {
	Text    string        // Generated markdown, empty if the provider returned no content
	Elapsed time.Duration // Wall-clock time of the provider call
	Usage   *Usage        // Token usage when reported by the provider
}

// Usage is provider-reported token usage
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// WordCount counts the words of text separated by runs of whitespace
func WordCount(text string) int {
	return len(strings.Fields(text))
}
