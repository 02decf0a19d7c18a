package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/config"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/enhance"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	enhancer := enhance.NewEnhancer(llm.NewStubProvider(), llm.NewRegistry(nil), config.DefaultModel)
	return SetupRouter(cfg, Dependencies{
		Enhancer: enhancer,
		Resolver: entitlements.NewClaimsResolver(),
	}, "test")
}

func testConfig(authMode string) *config.Config {
	return &config.Config{
		Environment:   "test",
		AuthMode:      authMode,
		JWTSecret:     "router-secret",
		AllowedOrigin: "*",
	}
}

func postNote(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/notes/enhance",
		bytes.NewBufferString(`{"noteId":"n1","originalContent":"Photosynthesis converts light to chemical energy.","subject":"Biology"}`))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(testConfig(config.AuthModeGateway))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"provider":"placeholder"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterGatewayMode(t *testing.T) {
	router := newTestRouter(testConfig(config.AuthModeGateway))

	assert.Equal(t, http.StatusUnauthorized, postNote(router, nil).Code)
	assert.Equal(t, http.StatusOK, postNote(router, map[string]string{"X-User-ID": "u1"}).Code)
}

func TestRouterNoAuthMode(t *testing.T) {
	router := newTestRouter(testConfig(config.AuthModeNone))

	assert.Equal(t, http.StatusOK, postNote(router, nil).Code)
}

func TestRouterJWTMode(t *testing.T) {
	router := newTestRouter(testConfig(config.AuthModeJWT))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"plans":   []string{"pro"},
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("router-secret"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, postNote(router, map[string]string{"X-User-ID": "u1"}).Code)
	assert.Equal(t, http.StatusOK, postNote(router, map[string]string{"Authorization": "Bearer " + signed}).Code)
}
