package api

import (
	"github.com/Conceptual-Machines/notes-enhance-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/notes-enhance-api/internal/api/middleware"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/config"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/metrics"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Dependencies are the services the router wires into handlers
type Dependencies struct {
	Enhancer       handlers.Enhancer
	Resolver       entitlements.Resolver
	Recorder       metrics.EnhancementRecorder      // Optional
	RequestMetrics apimiddleware.APIRequestRecorder // Optional
	Counter        handlers.Snapshotter             // Optional, exposed on /api/metrics
}

func SetupRouter(cfg *config.Config, deps Dependencies, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.RequestMetrics))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.AllowedOrigin))

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.Enhancer.ProviderName(), deps.Enhancer.Model())
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, deps.Enhancer.Model(), deps.Enhancer.ProviderName(), deps.Counter)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Notes API. Auth middlewares never abort; the handler answers
	// unauthenticated requests itself.
	notes := router.Group("/api/notes")
	notes.Use(authMiddleware(cfg))
	{
		enhanceHandler := handlers.NewEnhanceHandler(deps.Enhancer, deps.Resolver, deps.Recorder)
		notes.POST("/enhance", enhanceHandler.Enhance)
	}

	return router
}

// authMiddleware selects the identity source for AUTH_MODE
func authMiddleware(cfg *config.Config) gin.HandlerFunc {
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		return middleware.JWTAuth(cfg.JWTSecret)
	case config.AuthModeNone:
		return apimiddleware.NoAuth()
	default:
		return apimiddleware.GatewayAuth()
	}
}
