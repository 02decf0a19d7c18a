package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

const (
	bytesToMB  = 1024 * 1024
	apiVersion = "1.0.0"
)

// Snapshotter exposes in-process enhancement totals
type Snapshotter interface {
	Snapshot() metrics.Snapshot
}

type MetricsHandler struct {
	startTime time.Time
	version   string
	model     string
	provider  string
	counter   Snapshotter
}

// NewMetricsHandler creates the metrics handler. counter may be nil.
func NewMetricsHandler(version, model, provider string, counter Snapshotter) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		model:     model,
		provider:  provider,
		counter:   counter,
	}
}

type MetricsResponse struct {
	Status      string             `json:"status"`
	Uptime      string             `json:"uptime"`
	Timestamp   string             `json:"timestamp"`
	Version     string             `json:"version"`
	APIVersion  string             `json:"api_version"`
	StartTime   string             `json:"start_time"`
	System      SystemMetrics      `json:"system"`
	Enhancement EnhancementMetrics `json:"enhancement"`
}

type SystemMetrics struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
	MemTotalMB   uint64 `json:"mem_total_mb"`
	NumGC        uint32 `json:"num_gc"`
}

type EnhancementMetrics struct {
	Model    string            `json:"model"`
	Provider string            `json:"provider"`
	Totals   *metrics.Snapshot `json:"totals,omitempty"`
}

// formatUptime renders d as 1h2m3.45s, dropping leading zero units
func formatUptime(d time.Duration) string {
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	seconds := (d % time.Minute).Seconds()

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm%.2fs", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm%.2fs", minutes, seconds)
	default:
		return fmt.Sprintf("%.2fs", seconds)
	}
}

// GetMetrics handles GET /api/metrics
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	resp := MetricsResponse{
		Status:     "healthy",
		Uptime:     formatUptime(time.Since(h.startTime)),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Version:    h.version,
		APIVersion: apiVersion,
		StartTime:  h.startTime.UTC().Format(time.RFC3339),
		System: SystemMetrics{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAllocMB:   m.Alloc / bytesToMB,
			MemTotalMB:   m.TotalAlloc / bytesToMB,
			NumGC:        m.NumGC,
		},
		Enhancement: EnhancementMetrics{
			Model:    h.model,
			Provider: h.provider,
		},
	}
	if h.counter != nil {
		snap := h.counter.Snapshot()
		resp.Enhancement.Totals = &snap
	}

	c.JSON(http.StatusOK, resp)
}
