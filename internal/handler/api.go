package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// APIHandler serves the prediction league core over HTTP. It exposes the
// same operations the chat dispatcher uses, so remote bots run unchanged.
type APIHandler struct {
	core chat.Core
	now  func() time.Time
}

// NewAPIHandler creates the public API handler
func NewAPIHandler(core chat.Core) *APIHandler {
	return &APIHandler{core: core, now: time.Now}
}

// WithClock replaces the handler's clock
func (h *APIHandler) WithClock(now func() time.Time) *APIHandler {
	h.now = now
	return h
}

// HandleRegisterUser registers a platform user on first interaction
// @Summary Register a user
// @Description Register a platform user on first interaction, or return the existing record
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.RegisterUserRequest true "Registration request"
// @Success 200 {object} domain.User "Registered user"
// @Failure 400 {object} domain.APIError "Invalid request"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/users/register [post]
func (h *APIHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRegisterUser); err != nil {
		return
	}

	user, err := h.core.RegisterUser(r.Context(), req.Platform, req.PlatformUserID, req.DisplayName)
	if err != nil {
		respondServiceError(w, r, OpRegisterUser, err)
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgUserRegistered, "user_id", user.ID)
	respondJSON(w, http.StatusOK, user)
}

// HandleGetUserStats returns a user's personal stats
// @Summary Get user stats
// @Description Return points, streak and accuracy for one user
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.UserStats "User stats"
// @Failure 404 {object} domain.APIError "User not found"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/users/{userID}/stats [get]
func (h *APIHandler) HandleGetUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.core.GetUserStats(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		respondServiceError(w, r, OpGetUserStats, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// HandleGetCohort returns the current week's markets
// @Summary Get the current cohort
// @Description Return the markets published for the current week
// @Tags cohort
// @Produce json
// @Success 200 {object} domain.CohortResponse "Current cohort"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/cohort [get]
func (h *APIHandler) HandleGetCohort(w http.ResponseWriter, r *http.Request) {
	markets, err := h.core.GetCurrentCohort(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetCohort, err)
		return
	}
	if markets == nil {
		markets = []domain.Market{}
	}
	respondJSON(w, http.StatusOK, domain.CohortResponse{
		WeekStart: domain.WeekStart(h.now()),
		Markets:   markets,
	})
}

// HandleSubmitPrediction records or replaces a prediction
// @Summary Submit a prediction
// @Description Record or replace a user's choice on an open market in one league
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body domain.SubmitPredictionRequest true "Prediction request"
// @Success 200 {object} domain.Prediction "Stored prediction"
// @Failure 400 {object} domain.APIError "Invalid request or market closed"
// @Failure 403 {object} domain.APIError "Not a league member"
// @Failure 404 {object} domain.APIError "User, market or league not found"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/predictions [post]
func (h *APIHandler) HandleSubmitPrediction(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitPredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSubmit); err != nil {
		return
	}

	p, err := h.core.SubmitPrediction(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, OpSubmit, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgPredictionStored,
		"user_id", p.UserID, "market_id", p.MarketID, "league_id", p.LeagueID, "choice", p.Choice)
	respondJSON(w, http.StatusOK, p)
}

// HandleGetPredictions returns a user's choices on the given markets in one league
// @Summary Get a user's picks
// @Description Return a user's choices on the given markets in one league
// @Tags predictions
// @Produce json
// @Param user_id query string true "User ID"
// @Param league_id query int false "League ID (0 for global)"
// @Param market_id query []string false "Market IDs" collectionFormat(multi)
// @Success 200 {object} domain.PicksResponse "Picks keyed by market"
// @Failure 400 {object} domain.APIError "Invalid query"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/predictions [get]
func (h *APIHandler) HandleGetPredictions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	leagueID, ok := queryInt64(r, w, "league_id", domain.DefaultLeagueID)
	if !ok {
		return
	}
	marketIDs := r.URL.Query()["market_id"]

	picks := map[string]bool{}
	if len(marketIDs) > 0 {
		var err error
		if picks, err = h.core.GetUserLeaguePredictions(r.Context(), userID, leagueID, marketIDs); err != nil {
			respondServiceError(w, r, OpGetPredictions, err)
			return
		}
	}
	respondJSON(w, http.StatusOK, domain.PicksResponse{Picks: picks})
}

// HandleGetLeaderboard returns the all-time leaderboard of a league
// @Summary Get the all-time leaderboard
// @Description Return the all-time standings of a league
// @Tags leaderboard
// @Produce json
// @Param league_id query int false "League ID (0 for global)"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} domain.Leaderboard "Leaderboard"
// @Failure 400 {object} domain.APIError "Invalid query"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/leaderboard [get]
func (h *APIHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	leagueID, limit, ok := leagueAndLimit(r, w)
	if !ok {
		return
	}
	lb, err := h.core.GetLeaderboard(r.Context(), leagueID, limit)
	if err != nil {
		respondServiceError(w, r, OpLeaderboard, err)
		return
	}
	respondJSON(w, http.StatusOK, lb)
}

// HandleGetWeeklyLeaderboard returns the current week's leaderboard of a league
// @Summary Get the weekly leaderboard
// @Description Return the current week's standings of a league
// @Tags leaderboard
// @Produce json
// @Param league_id query int false "League ID (0 for global)"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} domain.Leaderboard "Weekly leaderboard"
// @Failure 400 {object} domain.APIError "Invalid query"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/leaderboard/weekly [get]
func (h *APIHandler) HandleGetWeeklyLeaderboard(w http.ResponseWriter, r *http.Request) {
	leagueID, limit, ok := leagueAndLimit(r, w)
	if !ok {
		return
	}
	lb, err := h.core.GetWeeklyLeaderboard(r.Context(), leagueID, limit)
	if err != nil {
		respondServiceError(w, r, OpWeekly, err)
		return
	}
	respondJSON(w, http.StatusOK, lb)
}

// HandleGetStatus returns the activity snapshot
// @Summary Get system status
// @Description Return the activity snapshot shown by the status command
// @Tags status
// @Produce json
// @Success 200 {object} domain.SystemStatus "Status snapshot"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/status [get]
func (h *APIHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.core.GetSystemStatus(r.Context())
	if err != nil {
		respondServiceError(w, r, OpStatus, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleListLeagues lists the leagues a user belongs to
// @Summary List a user's leagues
// @Tags leagues
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.LeaguesResponse "Leagues"
// @Failure 400 {object} domain.APIError "Missing user_id"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/leagues [get]
func (h *APIHandler) HandleListLeagues(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	leagues, err := h.core.ListUserLeagues(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, OpListLeagues, err)
		return
	}
	if leagues == nil {
		leagues = []domain.League{}
	}
	respondJSON(w, http.StatusOK, domain.LeaguesResponse{Leagues: leagues})
}

// HandleLookupLeague finds a league by id or by name
// @Summary Look up a league
// @Description Find a league by id or by case-insensitive name
// @Tags leagues
// @Produce json
// @Param league_id query int false "League ID"
// @Param name query string false "League name"
// @Success 200 {object} domain.League "League"
// @Failure 400 {object} domain.APIError "Neither id nor name given"
// @Failure 404 {object} domain.APIError "League not found"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/leagues/lookup [get]
func (h *APIHandler) HandleLookupLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt64(r, w, "league_id", 0)
	if !ok {
		return
	}
	ref := domain.LeagueRef{ID: id, Name: strings.TrimSpace(r.URL.Query().Get("name"))}
	if ref.ID == 0 && ref.Name == "" {
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, ErrMsgLeagueRefRequired)
		return
	}

	league, err := h.core.GetLeague(r.Context(), ref)
	if err != nil {
		respondServiceError(w, r, OpLookupLeague, err)
		return
	}
	respondJSON(w, http.StatusOK, league)
}

// HandleCreateLeague creates a league and enrolls its creator
// @Summary Create a league
// @Description Create a league and enroll its creator
// @Tags leagues
// @Accept json
// @Produce json
// @Param request body domain.CreateLeagueRequest true "League request"
// @Success 201 {object} domain.League "Created league"
// @Failure 400 {object} domain.APIError "Invalid request"
// @Failure 404 {object} domain.APIError "Creator not found"
// @Failure 409 {object} domain.APIError "Name taken"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/leagues [post]
func (h *APIHandler) HandleCreateLeague(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeagueRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateLeague); err != nil {
		return
	}

	league, err := h.core.CreateLeague(r.Context(), req.Name, req.CreatorID)
	if err != nil {
		respondServiceError(w, r, OpCreateLeague, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgLeagueCreated, "league_id", league.ID, "creator_id", req.CreatorID)
	respondJSON(w, http.StatusCreated, league)
}

// HandleJoinLeague joins a league by id or name; joining twice is not an error
// @Summary Join a league
// @Description Join a league by id or name
// @Tags leagues
// @Accept json
// @Produce json
// @Param request body domain.JoinLeagueRequest true "Join request"
// @Success 200 {object} domain.JoinLeagueResponse "League and whether the user was newly added"
// @Failure 400 {object} domain.APIError "Invalid request"
// @Failure 404 {object} domain.APIError "User or league not found"
// @Failure 500 {object} domain.APIError "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/leagues/join [post]
func (h *APIHandler) HandleJoinLeague(w http.ResponseWriter, r *http.Request) {
	var req domain.JoinLeagueRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpJoinLeague); err != nil {
		return
	}
	ref := domain.LeagueRef{ID: req.LeagueID, Name: strings.TrimSpace(req.Name)}
	if ref.ID == 0 && ref.Name == "" {
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, ErrMsgLeagueRefRequired)
		return
	}

	league, joined, err := h.core.JoinLeague(r.Context(), req.UserID, ref)
	if err != nil {
		respondServiceError(w, r, OpJoinLeague, err)
		return
	}
	if joined {
		logger.FromContext(r.Context()).Info(LogMsgLeagueJoined, "league_id", league.ID, "user_id", req.UserID)
	}
	respondJSON(w, http.StatusOK, domain.JoinLeagueResponse{League: *league, Joined: joined})
}
