package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/config"
	"github.com/tala-app/backend/internal/http/middleware"
)

func TestRateLimit(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	doRequest := func(h http.Handler, remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("should allow requests within the burst and reject the rest", func(t *testing.T) {
		cfg := &config.RateLimitConfig{RequestsPerMinute: 1, Burst: 3}
		h := middleware.RateLimit(cfg)(okHandler)

		for i := 0; i < 3; i++ {
			require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1234"))
		}
		require.Equal(t, http.StatusTooManyRequests, doRequest(h, "10.0.0.1:1234"))
	})

	t.Run("should track clients independently by IP", func(t *testing.T) {
		cfg := &config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}
		h := middleware.RateLimit(cfg)(okHandler)

		require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1234"))
		require.Equal(t, http.StatusTooManyRequests, doRequest(h, "10.0.0.1:5678"))
		require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.2:1234"))
	})

	t.Run("should pass everything through when disabled", func(t *testing.T) {
		h := middleware.RateLimit(nil)(okHandler)

		for i := 0; i < 20; i++ {
			require.Equal(t, http.StatusOK, doRequest(h, "10.0.0.3:1234"))
		}
	})

	t.Run("should fall back to the raw remote address when not host:port", func(t *testing.T) {
		cfg := &config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}
		h := middleware.RateLimit(cfg)(okHandler)

		require.Equal(t, http.StatusOK, doRequest(h, "no-port-here"))
		require.Equal(t, http.StatusTooManyRequests, doRequest(h, "no-port-here"))
	})
}
