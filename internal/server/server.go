package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Apiary_Go/internal/apiary"
	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/feed"
	"github.com/osse101/Apiary_Go/internal/handler"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	PlayerID       string
	Clock          clock.Clock
	Ready          handler.HealthCheckFunc
	Guard          GuardConfig
}

type Server struct {
	httpServer *http.Server
	svc        apiary.Service
	hub        *feed.Hub
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc apiary.Service, hub *feed.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc, hub),
			ReadHeaderTimeout: 5 * time.Second,
		},
		svc: svc,
		hub: hub,
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(opts Options, svc apiary.Service, hub *feed.Hub) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewRequestGuard(opts.Clock, opts.Guard)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, guard))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(SessionMiddleware(opts.PlayerID))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Ready))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	h := handler.NewApiaryHandler(svc, opts.Clock)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Get("/crops", h.GetCrops)
		r.Get("/quality", h.GetQuality)

		r.Route("/plots/{id}", func(r chi.Router) {
			r.Post("/till", h.TillPlot)
			r.Post("/plant", h.PlantSeed)
			r.Post("/water", h.WaterPlot)
			r.Post("/harvest", h.HarvestPlot)
			r.Post("/clear", h.ClearPlot)
		})

		r.Route("/hives", func(r chi.Router) {
			r.Post("/", h.BuildHive)
			r.Post("/{id}/bottle", h.BottleHoney)
			r.Post("/{id}/classify", h.Classify)
		})
		r.Post("/nectar/bottle", h.BottleNectar)
		r.Post("/hatching/check", h.CheckHatching)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.GetOrders)
			r.Post("/generate", h.GenerateOrders)
			r.Post("/{id}/fulfill", h.FulfillOrder)
		})
		r.Route("/honey-orders", func(r chi.Router) {
			r.Get("/", h.GetHoneyOrders)
			r.Post("/{id}/fulfill", h.FulfillHoneyOrder)
		})

		if hub != nil {
			r.Get("/events/ws", handler.NewEventsHandler(hub).Connect)
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Hijack lets websocket upgrades pass through the wrapper
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.written = true
	return h.Hijack()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully. Open websocket feeds are closed first.
func (s *Server) Stop(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
