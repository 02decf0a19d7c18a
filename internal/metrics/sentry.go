package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const outcomeSuccess = "success"

// SentryMetrics records request and enhancement spans in Sentry.
// Spans are dropped by the SDK when Sentry is not initialised.
type SentryMetrics struct{}

func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{}
}

// RecordAPIRequest records one HTTP request as an api.request span
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	ok := statusCode < http.StatusBadRequest
	finishSpan(ctx, "api.request", "API Request: "+endpoint, ok,
		map[string]string{
			"endpoint":    endpoint,
			"status_code": fmt.Sprintf("%d", statusCode),
			"success":     fmt.Sprintf("%t", ok),
		},
		map[string]interface{}{
			"duration_ms": duration.Milliseconds(),
			"status_code": statusCode,
		})
}

// RecordEnhancement implements EnhancementRecorder
func (m *SentryMetrics) RecordEnhancement(ctx context.Context, e Enhancement) {
	finishSpan(ctx, "enhance.request", "Enhancement: "+e.Outcome, e.Outcome == outcomeSuccess,
		map[string]string{
			"outcome":  e.Outcome,
			"model":    e.Model,
			"provider": e.Provider,
		},
		map[string]interface{}{
			"duration_ms":      e.Duration.Milliseconds(),
			"word_count":       e.WordCount,
			"estimated_tokens": e.EstimatedTokens,
		})
}

func finishSpan(ctx context.Context, op, description string, ok bool, tags map[string]string, data map[string]interface{}) {
	span := sentry.StartSpan(ctx, op)
	defer span.Finish()

	span.Description = description
	for k, v := range tags {
		span.SetTag(k, v)
	}
	for k, v := range data {
		span.SetData(k, v)
	}
	if ok {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
}
