package main

import (
	"context"
	"log"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/api"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/config"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/database"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/enhance"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/metrics"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/observability"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	ctx := context.Background()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "notes-enhance-api@" + releaseVersion,    // Use embedded release version
			EnableTracing:    true,                                     // Enable tracing for spans
			TracesSampleRate: 1.0,                                      // 100% sampling for now, adjust based on volume
			EnableLogs:       true,                                     // Enable Sentry Logs feature
			Debug:            cfg.Environment != environmentProduction, // Enable debug in non-prod
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				// Filter out sensitive data
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			// Flush on shutdown
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	// Entitlements come from the subscription database when one is configured,
	// otherwise from the plans asserted by the gateway or token
	var resolver entitlements.Resolver = entitlements.NewClaimsResolver()
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to connect to database:", err)
		}
		if err := database.Migrate(db); err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to run migrations:", err)
		}
		resolver = entitlements.NewDBResolver(db)
		log.Println("✅ Entitlements: subscription database")
	} else {
		log.Println("⚠️  DATABASE_URL not set, entitlements come from identity claims")
	}

	// Select the provider variant for the configured model
	provider, err := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey).GetProvider(ctx, cfg.Model)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to create LLM provider:", err)
	}
	if provider.Name() == llm.ProviderNamePlaceholder {
		log.Printf("⚠️  No API key for %s, serving placeholder enhancements", cfg.Model)
	} else {
		log.Printf("✅ LLM provider: %s (model: %s)", provider.Name(), cfg.Model)
	}

	var opts []enhance.Option
	if provider.Name() != llm.ProviderNamePlaceholder {
		if tracer := observability.NewLangfuseClient(ctx, cfg); tracer.IsEnabled() {
			opts = append(opts, enhance.WithTracer(tracer))
		}
	}
	registry, err := llm.LoadRegistryFile(cfg.ModelRegistryFile)
	if err != nil {
		log.Fatal("Failed to load model registry:", err)
	}
	enhancer := enhance.NewEnhancer(provider, registry, cfg.Model, opts...)

	// Metrics
	cloudwatchMetrics, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("Failed to initialize CloudWatch metrics: %v", err)
	}
	counter := metrics.NewOutcomeCounter()
	recorders := metrics.Recorders{metrics.NewSentryMetrics(), counter}
	deps := api.Dependencies{
		Enhancer: enhancer,
		Resolver: resolver,
		Counter:  counter,
	}
	if cloudwatchMetrics != nil {
		recorders = append(recorders, cloudwatchMetrics)
		deps.RequestMetrics = cloudwatchMetrics
	}
	deps.Recorder = recorders

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(cfg, deps, GetVersion())

	// Start server
	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
