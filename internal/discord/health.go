package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

// Stats counts interactions for the health endpoint
type Stats struct {
	started     time.Time
	commands    atomic.Int64
	lastCommand atomic.Int64
}

// NewStats starts the uptime clock
func NewStats() *Stats {
	return &Stats{started: time.Now()}
}

// RecordCommand increments the command counter
func (s *Stats) RecordCommand(at time.Time) {
	s.commands.Add(1)
	s.lastCommand.Store(at.UnixNano())
}

// Snapshot returns the counter and last command time (nil before the first)
func (s *Stats) Snapshot() (int64, *time.Time) {
	n := s.commands.Load()
	last := s.lastCommand.Load()
	if last == 0 {
		return n, nil
	}
	t := time.Unix(0, last).UTC()
	return n, &t
}

// Pinger checks that the API is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer serves the bot's health and metrics endpoints
type HTTPServer struct {
	server    *http.Server
	stats     *Stats
	api       Pinger
	connected func() bool
}

// NewHTTPServer creates the health server. connected reports the gateway state.
func NewHTTPServer(addr string, stats *Stats, api Pinger, connected func() bool) *HTTPServer {
	srv := &HTTPServer{stats: stats, api: api, connected: connected}

	r := chi.NewRouter()
	r.Get("/healthz", srv.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	srv.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv
}

// Handler exposes the router for tests
func (h *HTTPServer) Handler() http.Handler {
	return h.server.Handler
}

// Start serves in the background
func (h *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServer, "addr", h.server.Addr)
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogErrHealthServer, "error", err)
		}
	}()
}

// Stop shuts the server down
func (h *HTTPServer) Stop(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		slog.Error(LogErrHealthShutdown, "error", err)
	}
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.connected != nil && h.connected()

	apiReachable := false
	if h.api != nil {
		ctx, cancel := context.WithTimeout(r.Context(), DefaultHealthTimeout)
		apiReachable = h.api.Ping(ctx) == nil
		cancel()
	}

	commands, last := h.stats.Snapshot()
	health := HealthStatus{
		Status:           HealthStatusHealthy,
		Uptime:           time.Since(h.stats.started).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commands,
		LastCommandTime:  last,
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = HealthStatusDegraded
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Error(LogErrHealthEncode, "error", err)
	}
}
