package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// identityEcho reports the identity the middleware attached
func identityEcho(c *gin.Context) {
	identity, ok := GetIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": ok,
		"user_id":       identity.UserID,
		"email":         identity.Email,
		"plans":         identity.Plans,
	})
}

func serve(t *testing.T, router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGatewayAuth(t *testing.T) {
	router := gin.New()
	router.Use(GatewayAuth())
	router.GET("/whoami", identityEcho)

	t.Run("headers present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-User-ID", "user-42")
		req.Header.Set("X-User-Email", "ada@example.edu")
		req.Header.Set("X-User-Plans", "student, ,pro")

		w := serve(t, router, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"user_id":"user-42","email":"ada@example.edu","plans":["student","pro"]}`, w.Body.String())
	})

	t.Run("missing user id passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-User-Email", "ada@example.edu")

		w := serve(t, router, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})
}

func TestNoAuth(t *testing.T) {
	router := gin.New()
	router.Use(NoAuth())
	router.GET("/whoami", identityEcho)

	w := serve(t, router, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"anonymous"`)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestCORS(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS("*"))
		router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(t, router, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight for configured origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS("https://notes.example.edu"))
		router.POST("/api/notes/enhance", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/api/notes/enhance", nil)
		req.Header.Set("Origin", "https://notes.example.edu")
		w := serve(t, router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://notes.example.edu", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("other origin gets no allow header", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS("https://notes.example.edu"))
		router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := serve(t, router, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

type recordedRequest struct {
	endpoint string
	status   int
}

type fakeRequestRecorder struct {
	requests []recordedRequest
}

func (f *fakeRequestRecorder) RecordAPIRequest(endpoint string, statusCode int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{endpoint: endpoint, status: statusCode})
}

func TestRequestTracking(t *testing.T) {
	recorder := &fakeRequestRecorder{}
	router := gin.New()
	router.Use(RequestTracking(recorder))
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates request id", func(t *testing.T) {
		w := serve(t, router, httptest.NewRequest(http.MethodGet, "/health", nil))
		requestID := w.Header().Get("X-Request-ID")
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, w.Body.String())
	})

	t.Run("reuses caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "3f2b8c1e-9a4d-4e6f-8b7a-1c2d3e4f5a6b")
		w := serve(t, router, req)
		assert.Equal(t, "3f2b8c1e-9a4d-4e6f-8b7a-1c2d3e4f5a6b", w.Header().Get("X-Request-ID"))
	})

	t.Run("replaces malformed request id", func(t *testing.T) {
		for _, bad := range []string{"req-123", strings.Repeat("x", 4096), "urn:uuid:3f2b8c1e-9a4d-4e6f-8b7a-1c2d3e4f5a6b"} {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("X-Request-ID", bad)
			w := serve(t, router, req)

			requestID := w.Header().Get("X-Request-ID")
			assert.NotEqual(t, bad, requestID)
			_, err := uuid.Parse(requestID)
			assert.NoError(t, err)
		}
	})

	require.Len(t, recorder.requests, 5)
	assert.Equal(t, recordedRequest{endpoint: "/health", status: http.StatusOK}, recorder.requests[0])
}

func TestRecoverWithSentry(t *testing.T) {
	router := gin.New()
	router.Use(RecoverWithSentry())
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(t, router, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
