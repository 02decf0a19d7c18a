package llm

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/pkg/embedded"
)

const (
	// ProviderNamePlaceholder names the provider used when no credential is configured
	ProviderNamePlaceholder = "placeholder"

	// PlaceholderElapsed is the processing time reported for placeholder responses
	PlaceholderElapsed = 1000 * time.Millisecond

	placeholderSubject = "Untitled"
)

var placeholderTemplate = template.Must(template.New("placeholder").Parse(string(embedded.PlaceholderTmpl)))

// StubProvider returns a fixed placeholder document instead of calling a model.
// It is selected when no credential is configured for the model's provider.
type StubProvider struct{}

// NewStubProvider creates the placeholder provider
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

// Name returns the provider name
func (p *StubProvider) Name() string {
	return ProviderNamePlaceholder
}

// Complete renders the placeholder document for the request's subject and content
func (p *StubProvider) Complete(_ context.Context, request *CompletionRequest) (*Completion, error) {
	text, err := RenderPlaceholder(request.Subject, request.OriginalContent)
	if err != nil {
		return nil, &Fault{Kind: FaultUnknown, Provider: ProviderNamePlaceholder, Err: err}
	}
	return &Completion{
		Text:    text,
		Elapsed: PlaceholderElapsed,
	}, nil
}

// RenderPlaceholder builds the placeholder document
func RenderPlaceholder(subject, originalContent string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		subject = placeholderSubject
	}

	var b strings.Builder
	err := placeholderTemplate.Execute(&b, struct {
		Subject         string
		OriginalContent string
	}{
		Subject:         subject,
		OriginalContent: originalContent,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render placeholder: %w", err)
	}
	return b.String(), nil
}
