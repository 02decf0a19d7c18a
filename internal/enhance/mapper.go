package enhance

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
)

// ErrUnauthorized is returned when no identity is attached to the request
var ErrUnauthorized = errors.New("not authenticated")

// Outcome names, used for logs and metrics
const (
	OutcomeSuccess          = "success"
	OutcomeUnauthorized     = "unauthorized"
	OutcomeContentTooLarge  = "content_too_large"
	OutcomeRateLimited      = "rate_limited"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeInternalFailure  = "internal_failure"
)

// User-facing messages. Provider error text is never sent to callers.
const (
	msgNotAuthenticated = "Not authenticated"
	msgBudgetExceeded   = "Content is too large to process (estimated %d tokens). Please shorten your notes to under %d characters."
	msgCapacityExceeded = "Content too large for processing. Please try with shorter content."
	msgCapacityDetails  = "The request exceeded the model's token limit. Try splitting your notes into smaller sections."
	msgRateLimited      = "Rate limit exceeded. Please try again in a few moments."
	msgRateLimitDetails = "Try shortening your content or wait a minute before retrying."
	msgInternalFailure  = "Failed to enhance note. Please try again."
)

// Response is a status code and body ready to be written
type Response struct {
	Status  int
	Outcome string
	Body    models.EnhancementResult
}

// MapResult turns the result of Enhance into a response. It is a pure function;
// err is checked in priority order: unauthorized, budget, rate limit, capacity, anything else.
func MapResult(result *Result, err error) Response {
	if err == nil && result != nil {
		processingMS := int(result.ProcessingTime.Milliseconds())
		wordCount := result.WordCount
		content := result.EnhancedContent
		return Response{
			Status:  http.StatusOK,
			Outcome: OutcomeSuccess,
			Body: models.EnhancementResult{
				Success:         true,
				EnhancedContent: &content,
				ProcessingTime:  &processingMS,
				WordCount:       &wordCount,
			},
		}
	}

	if errors.Is(err, ErrUnauthorized) {
		return Response{
			Status:  http.StatusUnauthorized,
			Outcome: OutcomeUnauthorized,
			Body:    models.EnhancementResult{Success: false, Error: msgNotAuthenticated},
		}
	}

	var budgetErr *BudgetError
	if errors.As(err, &budgetErr) {
		estimated := budgetErr.EstimatedTokens
		maxChars := budgetErr.MaxChars()
		return Response{
			Status:  http.StatusBadRequest,
			Outcome: OutcomeContentTooLarge,
			Body: models.EnhancementResult{
				Success:         false,
				Error:           fmt.Sprintf(msgBudgetExceeded, estimated, maxChars),
				EstimatedTokens: &estimated,
				MaxTokens:       &maxChars,
			},
		}
	}

	if fault, ok := llm.AsFault(err); ok {
		switch fault.Kind {
		case llm.FaultRateLimited:
			return Response{
				Status:  http.StatusTooManyRequests,
				Outcome: OutcomeRateLimited,
				Body:    models.EnhancementResult{Success: false, Error: msgRateLimited, Details: msgRateLimitDetails},
			}
		case llm.FaultCapacityExceeded:
			// A bare 429 from the provider is reported as a size problem, not a rate limit
			return Response{
				Status:  http.StatusBadRequest,
				Outcome: OutcomeCapacityExceeded,
				Body:    models.EnhancementResult{Success: false, Error: msgCapacityExceeded, Details: msgCapacityDetails},
			}
		}
	}

	return Response{
		Status:  http.StatusInternalServerError,
		Outcome: OutcomeInternalFailure,
		Body:    models.EnhancementResult{Success: false, Error: msgInternalFailure},
	}
}
