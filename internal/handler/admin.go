package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PredictionLeague_Go/internal/cohort"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/eventlog"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
	"github.com/osse101/PredictionLeague_Go/internal/user"
)

// WeeklyResetter runs the weekly points reset on demand
type WeeklyResetter interface {
	ExecuteReset(ctx context.Context) (int64, error)
}

// AdminHandler serves cohort management and operational endpoints
type AdminHandler struct {
	cohorts cohort.Service
	users   user.Service
	reset   WeeklyResetter
	events  eventlog.Service
	now     func() time.Time
}

// NewAdminHandler creates the admin handler. reset may be nil.
func NewAdminHandler(cohorts cohort.Service, users user.Service, reset WeeklyResetter) *AdminHandler {
	return &AdminHandler{cohorts: cohorts, users: users, reset: reset, now: time.Now}
}

// WithClock replaces the handler's clock
func (h *AdminHandler) WithClock(now func() time.Time) *AdminHandler {
	h.now = now
	return h
}

// WithEventLog enables the event log query endpoint
func (h *AdminHandler) WithEventLog(events eventlog.Service) *AdminHandler {
	h.events = events
	return h
}

// HandleRefreshCohort fetches markets from the feed (or the fallback) and
// publishes them into the current week
// @Summary Refresh the weekly cohort
// @Description Fetch markets from the feed, or the fallback set, and publish them into the current week
// @Tags admin
// @Produce json
// @Success 200 {object} domain.RefreshResult "Refresh result"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/admin/cohort/refresh [post]
func (h *AdminHandler) HandleRefreshCohort(w http.ResponseWriter, r *http.Request) {
	result, err := h.cohorts.Refresh(r.Context(), h.now().UTC())
	if err != nil {
		respondServiceError(w, r, OpRefreshCohort, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgCohortRefreshed,
		"week_start", result.WeekStart, "source", result.Source, "published", result.Published)
	respondJSON(w, http.StatusOK, result)
}

// HandlePublishCohort publishes a hand-picked batch of markets
// @Summary Publish a cohort
// @Description Publish a hand-picked batch of markets
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.PublishCohortRequest true "Markets to publish"
// @Success 200 {object} domain.PublishCohortResponse "Published count"
// @Failure 400 {object} domain.APIError "Invalid request"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/admin/cohort/publish [post]
func (h *AdminHandler) HandlePublishCohort(w http.ResponseWriter, r *http.Request) {
	var req domain.PublishCohortRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPublishCohort); err != nil {
		return
	}

	week := domain.WeekStart(h.now())
	if req.WeekStart != "" {
		var err error
		if week, err = domain.ParseWeekStart(req.WeekStart); err != nil {
			respondServiceError(w, r, OpPublishCohort, err)
			return
		}
	}

	n, err := h.cohorts.PublishWeeklyCohort(r.Context(), req.Markets, week)
	if err != nil {
		respondServiceError(w, r, OpPublishCohort, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgCohortPublished, "week_start", week, "published", n)
	respondJSON(w, http.StatusOK, domain.PublishCohortResponse{WeekStart: week, Published: n})
}

// HandleResolveMarket records a market outcome and settles its predictions
// @Summary Resolve a market
// @Description Record a market outcome and settle its predictions
// @Tags admin
// @Accept json
// @Produce json
// @Param marketID path string true "Market ID"
// @Param request body domain.ResolveMarketRequest true "Outcome"
// @Success 200 {object} domain.SettlementResult "Settlement result"
// @Failure 400 {object} domain.APIError "Invalid request"
// @Failure 404 {object} domain.APIError "Market not found"
// @Failure 409 {object} domain.APIError "Market already resolved"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/admin/markets/{marketID}/resolve [post]
func (h *AdminHandler) HandleResolveMarket(w http.ResponseWriter, r *http.Request) {
	var req domain.ResolveMarketRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpResolveMarket); err != nil {
		return
	}
	marketID := chi.URLParam(r, "marketID")

	result, err := h.cohorts.Resolve(r.Context(), marketID, *req.Outcome)
	if err != nil {
		respondServiceError(w, r, OpResolveMarket, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgMarketResolved,
		"market_id", marketID, "outcome", result.Outcome, "scored", result.Scored, "points", result.PointsAwarded)
	respondJSON(w, http.StatusOK, result)
}

// HandleGetCacheStats returns current user cache statistics
// @Summary Get user cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} user.CacheStats "Cache statistics"
// @Security ApiKeyAuth
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.users.GetCacheStats())
}

// HandleWeeklyReset manually triggers the weekly points reset
// @Summary Run the weekly reset
// @Description Manually reset weekly points for every user
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Reset result"
// @Failure 503 {object} domain.APIError "Reset not configured"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/admin/weekly-reset [post]
func (h *AdminHandler) HandleWeeklyReset(w http.ResponseWriter, r *http.Request) {
	if h.reset == nil {
		respondError(w, http.StatusServiceUnavailable, domain.CodeInternal, ErrMsgResetUnavailable)
		return
	}
	log := logger.FromContext(r.Context())
	log.Info(LogMsgWeeklyResetManual)

	affected, err := h.reset.ExecuteReset(r.Context())
	if err != nil {
		respondServiceError(w, r, OpWeeklyReset, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":        MsgWeeklyResetDone,
		"users_affected": affected,
	})
}

// HandleListEvents returns recent event log entries, newest first
// @Summary List event log entries
// @Description Return recent event log entries, newest first
// @Tags admin
// @Produce json
// @Param type query string false "Event type"
// @Param user_id query string false "User ID"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} map[string]interface{} "Events"
// @Failure 400 {object} domain.APIError "Invalid query"
// @Failure 503 {object} domain.APIError "Event log not configured"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/admin/events [get]
func (h *AdminHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		respondError(w, http.StatusServiceUnavailable, domain.CodeInternal, ErrMsgEventLogUnavailable)
		return
	}
	limit, ok := queryInt64(r, w, "limit", domain.DefaultEventLogLimit)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := repository.EventLogFilter{
		EventType: q.Get("type"),
		UserID:    q.Get("user_id"),
		Limit:     int(min(limit, domain.MaxEventLogLimit)),
	}
	if raw := q.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, "since"))
			return
		}
		filter.Since = &since
	}

	entries, err := h.events.Recent(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, OpListEvents, err)
		return
	}
	if entries == nil {
		entries = []repository.EventLogEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": entries})
}
