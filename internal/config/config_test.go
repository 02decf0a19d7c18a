package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENHANCE_MODEL", "")
	t.Setenv("AUTH_MODE", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Load()
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, AuthModeGateway, cfg.AuthMode)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.True(t, cfg.IsGatewayMode())
	assert.False(t, cfg.LangfuseEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENHANCE_MODEL", "gpt-4o")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LANGFUSE_ENABLED", "true")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.True(t, cfg.LangfuseEnabled)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "gateway", cfg: Config{AuthMode: AuthModeGateway}},
		{name: "none", cfg: Config{AuthMode: AuthModeNone}},
		{name: "jwt with secret", cfg: Config{AuthMode: AuthModeJWT, JWTSecret: "s3cret"}},
		{name: "jwt without secret", cfg: Config{AuthMode: AuthModeJWT}, wantErr: true},
		{name: "unknown mode", cfg: Config{AuthMode: "oauth"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
