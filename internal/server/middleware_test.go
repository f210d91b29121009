package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/apiary"
	"github.com/osse101/Apiary_Go/internal/clock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewRequestGuard(nil, GuardConfig{}))

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{name: "Valid API Key", providedKey: apiKey, path: "/api/v1/state", expectedStatus: http.StatusOK},
		{name: "Invalid API Key", providedKey: "wrong-key", path: "/api/v1/state", expectedStatus: http.StatusUnauthorized},
		{name: "Missing API Key", path: "/api/v1/state", expectedStatus: http.StatusUnauthorized},
		{name: "Public Path - Healthz", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "Public Path - Metrics", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "Public Path - Version", path: "/version", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_DisabledWithoutKey(t *testing.T) {
	middleware := AuthMiddleware("", nil, NewRequestGuard(nil, GuardConfig{}))

	rec := httptest.NewRecorder()
	middleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_ReportsFailuresToGuard(t *testing.T) {
	guard := NewRequestGuard(clock.NewFake(guardStart), GuardConfig{})
	middleware := AuthMiddleware("k", nil, guard)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		middleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)
	}

	failed, _ := guard.counts("10.0.0.7")
	assert.Equal(t, 3, failed)
}

func TestRateLimitMiddleware(t *testing.T) {
	fake := clock.NewFake(guardStart)
	h := RateLimitMiddleware(nil, NewRequestGuard(fake, GuardConfig{RateLimit: 5, Window: time.Minute}))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	fake.Advance(time.Minute)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"crop_id":"tomato"}`))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestSessionMiddleware(t *testing.T) {
	var seen string
	capture := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = apiary.SessionFromContext(r.Context())
	})

	t.Run("header wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(HeaderPlayerID, " alice ")
		SessionMiddleware("fallback")(capture).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "alice", seen)
	})

	t.Run("fallback", func(t *testing.T) {
		SessionMiddleware("fallback")(capture).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, "fallback", seen)
	})

	t.Run("none", func(t *testing.T) {
		SessionMiddleware("")(capture).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Empty(t, seen)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set(HeaderForwardedFor, "1.1.1.1, 2.2.2.2")

	assert.Equal(t, "10.0.0.1", clientIP(req, nil), "untrusted peers cannot forward")
	assert.Equal(t, "2.2.2.2", clientIP(req, []string{"10.0.0.1"}))
}
