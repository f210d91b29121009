package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/osse101/Apiary_Go/internal/apiary"
	"github.com/osse101/Apiary_Go/internal/logger"
)

// AuthMiddleware requires X-API-Key on every non-public path and reports
// mismatches to the guard. An empty apiKey turns authentication off.
func AuthMiddleware(apiKey string, trustedProxies []string, guard *RequestGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			guard.AuthFailed(r.Context(), ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", key != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RateLimitMiddleware rejects clients that exceed the guard's request budget
func RateLimitMiddleware(trustedProxies []string, guard *RequestGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(r.Context(), clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps the request body at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets the browser hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range SecurityHeaders {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionMiddleware attaches the acting player id to the request context.
// X-Player-ID wins over the configured fallback; with neither the request has no session.
func SessionMiddleware(fallbackPlayerID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			player := strings.TrimSpace(r.Header.Get(HeaderPlayerID))
			if player == "" {
				player = fallbackPlayerID
			}
			if player != "" {
				r = r.WithContext(apiary.WithSession(r.Context(), player))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	return slices.ContainsFunc(PublicPaths, func(p string) bool { return strings.HasPrefix(path, p) })
}

// clientIP is the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy
func clientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}
