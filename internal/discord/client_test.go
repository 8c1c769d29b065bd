package discord_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/discord"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *discord.APIClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := discord.NewAPIClient(srv.URL, "secret")
	c.RetryDelay = time.Millisecond
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAPIClient_RegisterUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, discord.PathRegisterUser, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(discord.HeaderAPIKey))

		var req domain.RegisterUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.RegisterUserRequest{Platform: "discord", PlatformUserID: "42", DisplayName: "ana"}, req)

		writeJSON(w, http.StatusOK, domain.User{ID: "discord:42", Platform: "discord", DisplayName: "ana"})
	})

	user, err := c.RegisterUser(context.Background(), "discord", "42", "ana")
	require.NoError(t, err)
	assert.Equal(t, "discord:42", user.ID)
}

func TestAPIClient_MapsErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		want   error
	}{
		{"market closed", http.StatusConflict, domain.CodeMarketClosed, domain.ErrMarketClosed},
		{"league not found", http.StatusNotFound, domain.CodeLeagueNotFound, domain.ErrLeagueNotFound},
		{"not member", http.StatusForbidden, domain.CodeNotMember, domain.ErrNotLeagueMember},
		{"invalid input", http.StatusBadRequest, domain.CodeInvalidInput, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, domain.APIError{Error: "nope", Code: tt.code})
			})

			_, err := c.SubmitPrediction(context.Background(), domain.SubmitPredictionRequest{UserID: "u", MarketID: "M"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestAPIClient_UnknownErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})

	_, err := c.GetCurrentCohort(context.Background())

	var statusErr *discord.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
	assert.Equal(t, "Unauthorized", statusErr.Message)
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(w, http.StatusServiceUnavailable, domain.APIError{Error: "busy", Code: domain.CodeStorageTimeout})
			return
		}
		writeJSON(w, http.StatusOK, domain.CohortResponse{Markets: []domain.Market{{ID: "A"}}})
	})

	markets, err := c.GetCurrentCohort(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPIClient_LastServerErrorIsDecoded(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, domain.APIError{Error: "busy", Code: domain.CodeStorageTimeout})
	})

	_, err := c.GetSystemStatus(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageTimeout)
	assert.Equal(t, int32(discord.DefaultAPIRetries+1), calls.Load())
}

func TestAPIClient_CreateLeagueIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, domain.APIError{Error: "boom", Code: domain.CodeInternal})
	})

	_, err := c.CreateLeague(context.Background(), "Office Pool", "discord:1")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAPIClient_ContextCancelStopsRetries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, domain.APIError{Error: "down"})
	})
	c.RetryDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.GetLeaderboard(ctx, 1, 10)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAPIClient_QueryEncoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case discord.PathPredictions:
			q := r.URL.Query()
			assert.Equal(t, "discord:1", q.Get("user_id"))
			assert.Equal(t, "3", q.Get("league_id"))
			assert.Equal(t, []string{"A", "B&C"}, q["market_id"])
			writeJSON(w, http.StatusOK, domain.PicksResponse{Picks: map[string]bool{"A": true}})
		case discord.PathLeagueLookup:
			assert.Equal(t, "Office Pool", r.URL.Query().Get("name"))
			writeJSON(w, http.StatusOK, domain.League{ID: 3, Name: "Office Pool"})
		case "/api/v1/users/discord:1/stats":
			writeJSON(w, http.StatusOK, domain.UserStats{UserID: "discord:1"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	picks, err := c.GetUserLeaguePredictions(ctx, "discord:1", 3, []string{"A", "B&C"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"A": true}, picks)

	league, err := c.GetLeague(ctx, domain.LeagueRef{Name: "Office Pool"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), league.ID)

	stats, err := c.GetUserStats(ctx, "discord:1")
	require.NoError(t, err)
	assert.Equal(t, "discord:1", stats.UserID)
}

func TestAPIClient_JoinLeague(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req domain.JoinLeagueRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.LeagueID)
		writeJSON(w, http.StatusOK, domain.JoinLeagueResponse{League: domain.League{ID: 7, Name: "Pals", MemberCount: 2}, Joined: true})
	})

	league, joined, err := c.JoinLeague(context.Background(), "discord:1", domain.LeagueRef{ID: 7})
	require.NoError(t, err)
	assert.True(t, joined)
	assert.Equal(t, 2, league.MemberCount)
}
