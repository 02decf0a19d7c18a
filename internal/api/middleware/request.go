package middleware

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/logger"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	unmatchedRoute  = "unmatched"
	uuidLength      = 36
)

var sentryMetrics = metrics.NewSentryMetrics()

// APIRequestRecorder receives one event per HTTP request
type APIRequestRecorder interface {
	RecordAPIRequest(endpoint string, statusCode int, duration time.Duration)
}

// RequestTracking assigns a request ID, logs the finished request and records
// API metrics. requestMetrics may be nil.
func RequestTracking(requestMetrics APIRequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := acceptedRequestID(c.GetHeader(requestIDHeader))
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)
		statusCode := c.Writer.Status()

		fields := logger.WithContext(c)
		fields["duration_ms"] = duration.Milliseconds()
		fields["status_code"] = statusCode
		fields["client_ip"] = c.ClientIP()
		logRequest(statusCode, fields)

		// Route templates keep metric cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		sentryMetrics.RecordAPIRequest(c.Request.Context(), route, statusCode, duration)
		if requestMetrics != nil {
			requestMetrics.RecordAPIRequest(route, statusCode, duration)
		}
	}
}

// acceptedRequestID keeps a caller-supplied ID only when it is a UUID
func acceptedRequestID(header string) string {
	if id, err := uuid.Parse(header); err == nil && len(header) == uuidLength {
		return id.String()
	}
	return uuid.New().String()
}

func logRequest(statusCode int, fields logger.Fields) {
	switch {
	case statusCode >= http.StatusInternalServerError:
		logger.Error("Request failed with server error", nil, fields)
	case statusCode >= http.StatusBadRequest:
		logger.Warn("Request failed with client error", fields)
	default:
		logger.Info("Request completed", fields)
	}
}
