package middleware

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/logger"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

const sentryFlushTimeout = 2 * time.Second

// SentryMiddleware attaches a Sentry hub to every request
func SentryMiddleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         sentryFlushTimeout,
	})
}

// RecoverWithSentry turns panics into a 500 and reports them to Sentry.
// It must run before SentryMiddleware, which re-panics.
func RecoverWithSentry() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			requestID := c.GetString("request_id")
			capturePanic(c, recovered)

			logger.Error("Panic recovered", nil, logger.Fields{
				"request_id": requestID,
				"error":      recovered,
				"path":       c.Request.URL.Path,
			})

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success":    false,
				"error":      "Internal server error",
				"request_id": requestID,
			})
		}()
		c.Next()
	}
}

func capturePanic(c *gin.Context, recovered interface{}) {
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request)
		scope.SetContext("request", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"client_ip":  c.ClientIP(),
		})
		if identity, ok := GetIdentity(c); ok {
			scope.SetUser(sentry.User{ID: identity.UserID, Email: identity.Email})
		}
		hub.RecoverWithContext(c.Request.Context(), recovered)
	})
}
