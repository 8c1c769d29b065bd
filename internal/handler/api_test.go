package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/handler"
	"github.com/osse101/PredictionLeague_Go/mocks"
)

var fixedNow = time.Date(2024, 6, 5, 15, 0, 0, 0, time.UTC)

func apiRouter(core *mocks.MockChatCore) http.Handler {
	h := handler.NewAPIHandler(core).WithClock(func() time.Time { return fixedNow })
	r := chi.NewRouter()
	r.Post("/users/register", h.HandleRegisterUser)
	r.Get("/users/{userID}/stats", h.HandleGetUserStats)
	r.Get("/cohort", h.HandleGetCohort)
	r.Post("/predictions", h.HandleSubmitPrediction)
	r.Get("/predictions", h.HandleGetPredictions)
	r.Get("/leaderboard", h.HandleGetLeaderboard)
	r.Get("/leaderboard/weekly", h.HandleGetWeeklyLeaderboard)
	r.Get("/status", h.HandleGetStatus)
	r.Get("/leagues", h.HandleListLeagues)
	r.Get("/leagues/lookup", h.HandleLookupLeague)
	r.Post("/leagues", h.HandleCreateLeague)
	r.Post("/leagues/join", h.HandleJoinLeague)
	return r
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, &buf))
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) domain.APIError {
	t.Helper()
	var e domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestHandleRegisterUser(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	core.On("RegisterUser", mock.Anything, "telegram", "42", "ana").
		Return(&domain.User{ID: "telegram:42", DisplayName: "ana"}, nil)

	rec := do(t, apiRouter(core), http.MethodPost, "/users/register",
		domain.RegisterUserRequest{Platform: "telegram", PlatformUserID: "42", DisplayName: "ana"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "telegram:42", user.ID)
}

func TestHandleRegisterUser_Validation(t *testing.T) {
	core := mocks.NewMockChatCore(t)

	rec := do(t, apiRouter(core), http.MethodPost, "/users/register",
		domain.RegisterUserRequest{Platform: "myspace", PlatformUserID: ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeAPIError(t, rec)
	assert.Equal(t, domain.CodeInvalidInput, e.Code)
	assert.Contains(t, e.Fields, "platform")
	assert.Contains(t, e.Fields, "platform_user_id")
}

func TestHandleRegisterUser_BadJSON(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	rec := httptest.NewRecorder()
	apiRouter(core).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBufferString("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handler.ErrMsgInvalidRequest, decodeAPIError(t, rec).Error)
}

func TestHandleSubmitPrediction_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"closed", fmt.Errorf("%w: KX-1", domain.ErrMarketClosed), http.StatusConflict, domain.CodeMarketClosed},
		{"missing market", domain.ErrMarketNotFound, http.StatusNotFound, domain.CodeMarketNotFound},
		{"not member", domain.ErrNotLeagueMember, http.StatusForbidden, domain.CodeNotMember},
		{"timeout", domain.ErrStorageTimeout, http.StatusServiceUnavailable, domain.CodeStorageTimeout},
		{"internal", fmt.Errorf("pq: connection reset"), http.StatusInternalServerError, domain.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := mocks.NewMockChatCore(t)
			req := domain.SubmitPredictionRequest{UserID: "telegram:1", MarketID: "KX-1", LeagueID: 1, Choice: true}
			core.On("SubmitPrediction", mock.Anything, req).Return(nil, tt.err)

			rec := do(t, apiRouter(core), http.MethodPost, "/predictions", req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			e := decodeAPIError(t, rec)
			assert.Equal(t, tt.wantCode, e.Code)
			if tt.wantCode == domain.CodeInternal {
				assert.Equal(t, handler.ErrMsgInternal, e.Error, "internal details stay in the logs")
			}
		})
	}
}

func TestHandleSubmitPrediction_Success(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	req := domain.SubmitPredictionRequest{UserID: "telegram:1", MarketID: "KX-1", Choice: false}
	core.On("SubmitPrediction", mock.Anything, req).
		Return(&domain.Prediction{ID: 9, UserID: "telegram:1", MarketID: "KX-1", LeagueID: 1}, nil)

	rec := do(t, apiRouter(core), http.MethodPost, "/predictions", req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var p domain.Prediction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int64(9), p.ID)
}

func TestHandleGetCohort(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	core.On("GetCurrentCohort", mock.Anything).Return(nil, nil)

	rec := do(t, apiRouter(core), http.MethodGet, "/cohort", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp domain.CohortResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), resp.WeekStart)
	assert.NotNil(t, resp.Markets)
	assert.Contains(t, rec.Body.String(), `"markets":[]`)
}

func TestHandleGetPredictions(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	core.On("GetUserLeaguePredictions", mock.Anything, "telegram:1", int64(4), []string{"A", "B"}).
		Return(map[string]bool{"A": true}, nil)
	r := apiRouter(core)

	rec := do(t, r, http.MethodGet, "/predictions?user_id=telegram:1&league_id=4&market_id=A&market_id=B", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp domain.PicksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]bool{"A": true}, resp.Picks)

	// no markets asked, no lookup
	rec = do(t, r, http.MethodGet, "/predictions?user_id=telegram:1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/predictions", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/predictions?user_id=x&league_id=-3", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetLeaderboard_DefaultsAndCap(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	core.On("GetLeaderboard", mock.Anything, domain.DefaultLeagueID, domain.DefaultLeaderboardLimit).
		Return(&domain.Leaderboard{LeagueID: 1, Period: domain.PeriodAllTime}, nil).Once()
	core.On("GetWeeklyLeaderboard", mock.Anything, int64(3), domain.MaxLeaderboardLimit).
		Return(&domain.Leaderboard{LeagueID: 3, Period: domain.PeriodWeekly}, nil).Once()
	r := apiRouter(core)

	rec := do(t, r, http.MethodGet, "/leaderboard", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/leaderboard/weekly?league_id=3&limit=5000", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"period":"weekly"`)
}

func TestHandleGetUserStats(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	core.On("GetUserStats", mock.Anything, "discord:7").Return(nil, domain.ErrUserNotFound)

	rec := do(t, apiRouter(core), http.MethodGet, "/users/discord:7/stats", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.CodeUserNotFound, decodeAPIError(t, rec).Code)
}

func TestHandleLeagues(t *testing.T) {
	core := mocks.NewMockChatCore(t)
	core.On("ListUserLeagues", mock.Anything, "telegram:1").Return(nil, nil)
	core.On("GetLeague", mock.Anything, domain.LeagueRef{Name: "Office Pool"}).
		Return(&domain.League{ID: 4, Name: "Office Pool"}, nil)
	core.On("CreateLeague", mock.Anything, "Office Pool", "telegram:1").
		Return(nil, fmt.Errorf("%w: office pool", domain.ErrDuplicateName))
	core.On("JoinLeague", mock.Anything, "telegram:2", domain.LeagueRef{ID: 4}).
		Return(&domain.League{ID: 4, Name: "Office Pool", MemberCount: 2}, true, nil)
	r := apiRouter(core)

	rec := do(t, r, http.MethodGet, "/leagues?user_id=telegram:1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"leagues":[]}`, rec.Body.String())

	rec = do(t, r, http.MethodGet, "/leagues/lookup?name=Office+Pool", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/leagues/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/leagues", domain.CreateLeagueRequest{Name: "Office Pool", CreatorID: "telegram:1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.CodeDuplicateName, decodeAPIError(t, rec).Code)

	rec = do(t, r, http.MethodPost, "/leagues", domain.CreateLeagueRequest{Name: "ab", CreatorID: "telegram:1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/leagues/join", domain.JoinLeagueRequest{UserID: "telegram:2", LeagueID: 4})
	assert.Equal(t, http.StatusOK, rec.Code)
	var joined domain.JoinLeagueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &joined))
	assert.True(t, joined.Joined)
	assert.Equal(t, 2, joined.League.MemberCount)

	rec = do(t, r, http.MethodPost, "/leagues/join", domain.JoinLeagueRequest{UserID: "telegram:2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handler.ErrMsgLeagueRefRequired, decodeAPIError(t, rec).Error)
}
