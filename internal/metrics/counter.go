package metrics

import (
	"context"
	"sync"
	"time"
)

// OutcomeCounter keeps in-process enhancement totals for the metrics endpoint
type OutcomeCounter struct {
	mu            sync.Mutex
	outcomes      map[string]int64
	totalWords    int64
	totalDuration time.Duration
	successes     int64
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Requests         int64            `json:"requests"`
	Outcomes         map[string]int64 `json:"outcomes"`
	AverageLatencyMS int64            `json:"average_latency_ms"`
	AverageWordCount int64            `json:"average_word_count"`
}

func NewOutcomeCounter() *OutcomeCounter {
	return &OutcomeCounter{outcomes: make(map[string]int64)}
}

// RecordEnhancement implements EnhancementRecorder
func (c *OutcomeCounter) RecordEnhancement(_ context.Context, e Enhancement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outcomes[e.Outcome]++
	if e.Outcome == outcomeSuccess {
		c.successes++
		c.totalWords += int64(e.WordCount)
		c.totalDuration += e.Duration
	}
}

// Snapshot returns the current totals. Averages cover successful requests only.
func (c *OutcomeCounter) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{Outcomes: make(map[string]int64, len(c.outcomes))}
	for outcome, count := range c.outcomes {
		snap.Outcomes[outcome] = count
		snap.Requests += count
	}
	if c.successes > 0 {
		snap.AverageLatencyMS = c.totalDuration.Milliseconds() / c.successes
		snap.AverageWordCount = c.totalWords / c.successes
	}
	return snap
}
