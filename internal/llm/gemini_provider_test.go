package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiProvider_Name(t *testing.T) {
	// We can't create a real client without an API key
	provider := &GeminiProvider{client: nil}
	assert.Equal(t, "gemini", provider.Name())
}

func TestBuildGeminiConfig(t *testing.T) {
	config := buildGeminiConfig(&CompletionRequest{
		SystemMessage:   "system",
		MaxOutputTokens: 65536,
		Temperature:     0.7,
	})

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "system", config.SystemInstruction.Parts[0].Text)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 1e-6)
	assert.Equal(t, int32(65536), config.MaxOutputTokens)
}

func TestExtractGeminiText(t *testing.T) {
	assert.Equal(t, "", extractGeminiText(nil))
	assert.Equal(t, "", extractGeminiText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "# Notes\n"}, {Text: "Body"}}}},
		},
	}
	assert.Equal(t, "# Notes\nBody", extractGeminiText(resp))
}

func TestClassifyGeminiError(t *testing.T) {
	fault := classifyGeminiError(genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"})
	assert.Equal(t, FaultRateLimited, fault.Kind)
	assert.Equal(t, 429, fault.Status)
	assert.Equal(t, "RESOURCE_EXHAUSTED", fault.Code)

	// A 429 without the quota status stays a capacity problem
	fault = classifyGeminiError(genai.APIError{Code: 429})
	assert.Equal(t, FaultCapacityExceeded, fault.Kind)

	fault = classifyGeminiError(fmt.Errorf("wrapped: %w", genai.APIError{Code: 503, Status: "UNAVAILABLE"}))
	assert.Equal(t, FaultTransient, fault.Kind)

	fault = classifyGeminiError(genai.APIError{Code: 400, Status: "INVALID_ARGUMENT"})
	assert.Equal(t, FaultUnknown, fault.Kind)

	fault = classifyGeminiError(errors.New("no route to host"))
	assert.Equal(t, FaultUnknown, fault.Kind)
	assert.Equal(t, 0, fault.Status)
}
