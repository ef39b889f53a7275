package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	router.Any("/annotations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

func TestCORS(t *testing.T) {
	router := newMiddlewareRouter(CORS())

	t.Run("preflight request", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/annotations", nil)
		req.Header.Set("Origin", "https://portal.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("regular request passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/annotations", nil)
		req.Header.Set("Origin", "https://portal.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Body.String(), "success")
	})

	t.Run("request without origin still gets headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/annotations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestSizeLimitWithSize(t *testing.T) {
	limit := int64(1024)
	router := newMiddlewareRouter(RequestSizeLimitWithSize(limit))

	tests := []struct {
		name           string
		bodySize       int
		expectedStatus int
	}{
		{name: "body under limit", bodySize: 512, expectedStatus: http.StatusOK},
		{name: "body at limit", bodySize: 1024, expectedStatus: http.StatusOK},
		{name: "body over limit", bodySize: 2048, expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Repeat("a", tt.bodySize)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/annotations", strings.NewReader(body))
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("GET is not limited", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/annotations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPerClientRateLimit(t *testing.T) {
	doRequests := func(router *gin.Engine, clientIP string, count int, waitBetween time.Duration) (ok, blocked int) {
		for i := 0; i < count; i++ {
			if waitBetween > 0 && i > 0 {
				time.Sleep(waitBetween)
			}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/annotations", nil)
			req.RemoteAddr = clientIP
			router.ServeHTTP(w, req)
			switch w.Code {
			case http.StatusOK:
				ok++
			case http.StatusTooManyRequests:
				blocked++
			}
		}
		return ok, blocked
	}

	t.Run("requests within burst", func(t *testing.T) {
		rateLimiters := &sync.Map{}
		cleanupStop := make(chan struct{})
		defer close(cleanupStop)
		router := newMiddlewareRouter(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, 10, 5))

		ok, blocked := doRequests(router, "127.0.0.1:12345", 5, 0)
		assert.Equal(t, 5, ok)
		assert.Zero(t, blocked)
	})

	t.Run("burst exhaustion blocks", func(t *testing.T) {
		rateLimiters := &sync.Map{}
		cleanupStop := make(chan struct{})
		defer close(cleanupStop)
		router := newMiddlewareRouter(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, 2, 3))

		_, blocked := doRequests(router, "127.0.0.1:12345", 6, 0)
		assert.Greater(t, blocked, 0)
	})

	t.Run("spaced requests refill the bucket", func(t *testing.T) {
		rateLimiters := &sync.Map{}
		cleanupStop := make(chan struct{})
		defer close(cleanupStop)
		// 20 rps refills a token every 50ms; 150ms spacing keeps the
		// bucket ahead of the requests.
		router := newMiddlewareRouter(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, 20, 2))

		ok, blocked := doRequests(router, "127.0.0.1:12345", 5, 150*time.Millisecond)
		assert.Equal(t, 5, ok)
		assert.Zero(t, blocked)
	})

	t.Run("limits are per client", func(t *testing.T) {
		rateLimiters := &sync.Map{}
		cleanupStop := make(chan struct{})
		defer close(cleanupStop)
		router := newMiddlewareRouter(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, 2, 2))

		// First client exhausts its bucket
		doRequests(router, "127.0.0.1:12345", 3, 0)

		// A different client is unaffected
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/annotations", nil)
		req.RemoteAddr = "10.0.0.9:54321"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCleanupOldRateLimitersStops(t *testing.T) {
	rateLimiters := &sync.Map{}
	rateLimiters.Store("10.0.0.9", &clientLimiter{lastSeen: time.Now().Add(-time.Hour)})

	cleanupStop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		cleanupOldRateLimiters(rateLimiters, cleanupStop)
		close(done)
	}()

	close(cleanupStop)
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "cleanup goroutine did not stop")
	}
}
