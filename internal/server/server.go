package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/PredictionLeague_Go/internal/database"
	"github.com/osse101/PredictionLeague_Go/internal/handler"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/metrics"
)

// Server is the HTTP front of the prediction league core
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, api *handler.APIHandler, admin *handler.AdminHandler, stream http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, api, admin, stream),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes. Middleware runs in the
// order it is added, outermost first. stream may be nil.
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, api *handler.APIHandler, admin *handler.AdminHandler, stream http.Handler) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", api.HandleRegisterUser)
			r.Get("/{userID}/stats", api.HandleGetUserStats)
		})

		r.Get("/cohort", api.HandleGetCohort)
		r.Get("/status", api.HandleGetStatus)
		if stream != nil {
			r.Get("/events/stream", stream.ServeHTTP)
		}

		r.Route("/predictions", func(r chi.Router) {
			r.Get("/", api.HandleGetPredictions)
			r.Post("/", api.HandleSubmitPrediction)
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", api.HandleGetLeaderboard)
			r.Get("/weekly", api.HandleGetWeeklyLeaderboard)
		})

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", api.HandleListLeagues)
			r.Post("/", api.HandleCreateLeague)
			r.Get("/lookup", api.HandleLookupLeague)
			r.Post("/join", api.HandleJoinLeague)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/cohort/refresh", admin.HandleRefreshCohort)
			r.Post("/cohort/publish", admin.HandlePublishCohort)
			r.Post("/markets/{marketID}/resolve", admin.HandleResolveMarket)
			r.Get("/cache/stats", admin.HandleGetCacheStats)
			r.Post("/weekly-reset", admin.HandleWeeklyReset)
			r.Get("/events", admin.HandleListEvents)
		})
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
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

// Unwrap lets http.ResponseController reach the flusher of event streams
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// requestID keeps a caller supplied id (the bots send one per interaction)
// and mints one otherwise
func requestID(r *http.Request) string {
	if id := r.Header.Get(HeaderRequestID); id != "" && len(id) <= MaxRequestIDLength {
		return id
	}
	return logger.GenerateRequestID()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) && r.URL.Path != "/version" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()

		id := requestID(r)
		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, id)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
