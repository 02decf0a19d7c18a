package handlers

import (
	"context"
	"net/http"
	"time"

	apimiddleware "github.com/Conceptual-Machines/notes-enhance-api/internal/api/middleware"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/enhance"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/logger"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/metrics"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
	"github.com/gin-gonic/gin"
)

const msgInvalidRequestBody = "Invalid request body"

// Enhancer is the pipeline the handler drives
type Enhancer interface {
	Enhance(ctx context.Context, caps entitlements.Capabilities, req models.EnhancementRequest) (*enhance.Result, error)
	Model() string
	ProviderName() string
}

type EnhanceHandler struct {
	enhancer Enhancer
	resolver entitlements.Resolver
	recorder metrics.EnhancementRecorder
}

// NewEnhanceHandler creates the enhance handler. recorder may be nil.
func NewEnhanceHandler(enhancer Enhancer, resolver entitlements.Resolver, recorder metrics.EnhancementRecorder) *EnhanceHandler {
	return &EnhanceHandler{
		enhancer: enhancer,
		resolver: resolver,
		recorder: recorder,
	}
}

// Enhance handles POST /api/notes/enhance
func (h *EnhanceHandler) Enhance(c *gin.Context) {
	ctx := c.Request.Context()
	fields := logger.WithContext(c)
	fields["model"] = h.enhancer.Model()
	fields["provider"] = h.enhancer.ProviderName()

	identity, ok := apimiddleware.GetIdentity(c)
	if !ok {
		if reason := c.GetString("auth_error"); reason != "" {
			fields["auth_error"] = reason
		}
		h.respond(c, enhance.MapResult(nil, enhance.ErrUnauthorized), nil, 0, fields)
		return
	}

	var req models.EnhancementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields["error"] = err.Error()
		logger.Warn("Invalid enhancement request body", fields)
		c.JSON(http.StatusBadRequest, models.EnhancementResult{
			Success: false,
			Error:   msgInvalidRequestBody,
		})
		return
	}

	fields["note_id"] = req.NoteID
	fields["content_chars"] = enhance.CharCount(req.OriginalContent)
	estimated := enhance.EstimateTokens(req.OriginalContent)

	caps, err := h.resolver.Resolve(ctx, identity)
	if err != nil {
		h.respond(c, enhance.MapResult(nil, err), err, estimated, fields)
		return
	}
	fields["paid"] = caps.IsPaid()

	result, err := h.enhancer.Enhance(ctx, caps, req)
	response := enhance.MapResult(result, err)
	if result != nil {
		fields["word_count"] = result.WordCount
		fields["processing_ms"] = result.ProcessingTime.Milliseconds()
	}
	h.respond(c, response, err, estimated, fields)

	if response.Outcome == enhance.OutcomeSuccess {
		logger.LogCompletion(ctx, h.enhancer.Model(), result.ProcessingTime, fields)
	}
}

// respond logs, records metrics and writes the mapped response
func (h *EnhanceHandler) respond(c *gin.Context, response enhance.Response, err error, estimated int, fields logger.Fields) {
	fields["outcome"] = response.Outcome
	fields["status_code"] = response.Status

	switch {
	case response.Status >= http.StatusInternalServerError:
		logger.Error("Note enhancement failed", err, fields)
	case response.Status >= http.StatusBadRequest:
		if err != nil {
			fields["error"] = err.Error()
		}
		logger.Warn("Note enhancement rejected", fields)
	default:
		logger.Info("Note enhanced", fields)
	}

	if h.recorder != nil {
		event := metrics.Enhancement{
			Outcome:         response.Outcome,
			Model:           h.enhancer.Model(),
			Provider:        h.enhancer.ProviderName(),
			EstimatedTokens: estimated,
		}
		if response.Body.ProcessingTime != nil {
			event.Duration = msDuration(*response.Body.ProcessingTime)
		}
		if response.Body.WordCount != nil {
			event.WordCount = *response.Body.WordCount
		}
		h.recorder.RecordEnhancement(c.Request.Context(), event)
	}

	c.JSON(response.Status, response.Body)
}

// msDuration converts a millisecond count from a response body
func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
