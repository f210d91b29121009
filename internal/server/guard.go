package server

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/metrics"
)

// GuardConfig holds the per-client limits of a RequestGuard.
// Non-positive fields fall back to the Default* values.
type GuardConfig struct {
	AuthAlertThreshold int
	RateLimit          int
	Window             time.Duration
}

func (c GuardConfig) withDefaults() GuardConfig {
	if c.AuthAlertThreshold <= 0 {
		c.AuthAlertThreshold = DefaultAuthAlertThreshold
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.Window <= 0 {
		c.Window = DefaultRateWindow
	}
	return c
}

// RequestGuard counts failed logins and requests per client IP over a fixed
// window. Both counters reset when the window rolls over. Outcomes are
// exported as apiary_security_events_total by kind.
type RequestGuard struct {
	mu      sync.Mutex
	clock   clock.Clock
	cfg     GuardConfig
	started time.Time
	failed  map[string]int
	seen    map[string]int
}

// NewRequestGuard creates a guard whose first window opens now
func NewRequestGuard(c clock.Clock, cfg GuardConfig) *RequestGuard {
	if c == nil {
		c = clock.System{}
	}
	return &RequestGuard{
		clock:   c,
		cfg:     cfg.withDefaults(),
		started: c.Now(),
		failed:  make(map[string]int),
		seen:    make(map[string]int),
	}
}

// AuthFailed records a rejected credential from ip. Reaching the alert
// threshold inside one window logs a single alert for that client.
func (g *RequestGuard) AuthFailed(ctx context.Context, ip string) {
	g.mu.Lock()
	g.roll()
	g.failed[ip]++
	n := g.failed[ip]
	g.mu.Unlock()

	metrics.SecurityEvents.WithLabelValues(metrics.SecurityAuthFailed).Inc()
	if n == g.cfg.AuthAlertThreshold {
		metrics.SecurityEvents.WithLabelValues(metrics.SecurityAuthAlert).Inc()
		logger.FromContext(ctx).Warn(LogMsgAuthAlert, "ip", ip, "failures", n, "window", g.cfg.Window)
	}
}

// Allow counts a request from ip and reports whether it is within the rate limit
func (g *RequestGuard) Allow(ctx context.Context, ip string) bool {
	g.mu.Lock()
	g.roll()
	g.seen[ip]++
	n := g.seen[ip]
	g.mu.Unlock()

	if n <= g.cfg.RateLimit {
		return true
	}
	metrics.SecurityEvents.WithLabelValues(metrics.SecurityRateLimited).Inc()
	if n == g.cfg.RateLimit+1 {
		logger.FromContext(ctx).Warn(LogMsgRateLimited, "ip", ip, "limit", g.cfg.RateLimit, "window", g.cfg.Window)
	}
	return false
}

// counts returns the failures and requests recorded for ip in the current window
func (g *RequestGuard) counts(ip string) (failed, seen int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roll()
	return g.failed[ip], g.seen[ip]
}

// roll starts a new window once the current one has elapsed.
// Callers must hold g.mu.
func (g *RequestGuard) roll() {
	now := g.clock.Now()
	if now.Sub(g.started) < g.cfg.Window {
		return
	}
	clear(g.failed)
	clear(g.seen)
	g.started = now
}
