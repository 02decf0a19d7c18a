package config

import (
	"fmt"
	"os"
)

// Auth modes
const (
	AuthModeNone    = "none"    // Every caller is an anonymous free-tier user (self-hosted, local dev)
	AuthModeGateway = "gateway" // Trust X-User-* headers from the upstream gateway
	AuthModeJWT     = "jwt"     // Validate HS256 bearer tokens issued by the account service
)

// DefaultModel is used when ENHANCE_MODEL is not set
const DefaultModel = "gpt-4o-mini"

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// LLM API Keys. An empty key for the selected model's provider
	// switches the service to placeholder responses.
	OpenAIAPIKey string
	GeminiAPIKey string

	// Model identifier override, resolved through the model registry
	Model string

	// Optional YAML file with model limit overrides
	ModelRegistryFile string

	// Auth
	AuthMode  string
	JWTSecret string

	// Optional subscription database for entitlement lookups
	DatabaseURL string

	// CORS
	AllowedOrigin string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		Model:             getEnv("ENHANCE_MODEL", DefaultModel),
		ModelRegistryFile: getEnv("MODEL_REGISTRY_FILE", ""),
		AuthMode:          getEnv("AUTH_MODE", AuthModeGateway),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		AllowedOrigin:     getEnv("CORS_ALLOWED_ORIGIN", "*"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// Validate reports configuration combinations the server cannot start with
func (c *Config) Validate() error {
	switch c.AuthMode {
	case AuthModeNone, AuthModeGateway:
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("AUTH_MODE=%s requires JWT_SECRET", AuthModeJWT)
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q (allowed: none, gateway, jwt)", c.AuthMode)
	}
	return nil
}

// IsGatewayMode returns true if running behind the gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == AuthModeGateway
}

// IsProduction returns true for the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
