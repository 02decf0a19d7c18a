package metrics

import (
	"context"
	"time"
)

// Enhancement describes one finished enhancement request
type Enhancement struct {
	Outcome         string
	Model           string
	Provider        string
	Duration        time.Duration // Provider time for successes, zero otherwise
	WordCount       int
	EstimatedTokens int
}

// EnhancementRecorder receives one event per enhancement request
type EnhancementRecorder interface {
	RecordEnhancement(ctx context.Context, e Enhancement)
}

// Recorders fans an event out to several recorders
type Recorders []EnhancementRecorder

// RecordEnhancement implements EnhancementRecorder
func (r Recorders) RecordEnhancement(ctx context.Context, e Enhancement) {
	for _, rec := range r {
		if rec != nil {
			rec.RecordEnhancement(ctx, e)
		}
	}
}
