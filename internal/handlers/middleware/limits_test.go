package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alsaqri/phoneshop/internal/handlers/middleware"
)

func TestThrottle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := middleware.Throttle(ctx, 2, time.Second)(http.HandlerFunc(ok))

	send := func(path, remote, forwarded string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = remote
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, send("/api/v1/phones", "127.0.0.1:1234", "").Code)
	}

	limited := send("/api/v1/phones", "127.0.0.1:1234", "")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), "rate_limited")

	assert.Equal(t, http.StatusOK, send("/health", "127.0.0.1:1234", "").Code, "health is never throttled")
	assert.Equal(t, http.StatusOK, send("/api/v1/phones", "192.168.1.1:5678", "").Code)
	assert.Equal(t, http.StatusOK, send("/api/v1/phones", "127.0.0.1:1234", "10.0.0.7").Code)
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		delay   time.Duration
		status  int
		body    string
	}{
		{name: "fast", timeout: 200 * time.Millisecond, delay: 10 * time.Millisecond, status: http.StatusOK, body: "rendered"},
		{name: "slow", timeout: 50 * time.Millisecond, delay: 500 * time.Millisecond, status: http.StatusServiceUnavailable, body: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.Timeout(tt.timeout)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(tt.delay):
					_, _ = w.Write([]byte("rendered"))
				case <-r.Context().Done():
				}
			}))

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/labels/phone/000001", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}
