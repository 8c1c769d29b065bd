package server

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/handler"
	"github.com/osse101/PredictionLeague_Go/internal/sse"
	"github.com/osse101/PredictionLeague_Go/mocks"
)

type nopPool struct{}

func (nopPool) Ping(context.Context) error { return nil }
func (nopPool) Close()                     {}

const testKey = "k3y"

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockChatCore, *mocks.MockCohortService) {
	core := mocks.NewMockChatCore(t)
	cohorts := mocks.NewMockCohortService(t)
	api := handler.NewAPIHandler(core)
	admin := handler.NewAdminHandler(cohorts, mocks.NewMockUserService(t), nil)
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return NewRouter(testKey, nil, nopPool{}, api, admin, sse.Handler(hub)), core, cohorts
}

func TestRouter_Routes(t *testing.T) {
	r, core, cohorts := newTestRouter(t)
	core.On("GetLeaderboard", mock.Anything, domain.DefaultLeagueID, domain.DefaultLeaderboardLimit).
		Return(&domain.Leaderboard{LeagueID: 1, Period: domain.PeriodAllTime}, nil)
	core.On("GetUserStats", mock.Anything, "telegram:9").Return(&domain.UserStats{}, nil)
	cohorts.On("Resolve", mock.Anything, "KX-7", false).Return(&domain.SettlementResult{MarketID: "KX-7"}, nil)

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/v1/leaderboard", "", http.StatusOK},
		{http.MethodGet, "/api/v1/users/telegram:9/stats", "", http.StatusOK},
		{http.MethodPost, "/api/v1/admin/markets/KX-7/resolve", `{"outcome":false}`, http.StatusOK},
		{http.MethodPost, "/api/v1/admin/weekly-reset", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/readyz", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(HeaderAPIKey, testKey)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_EventStreamFlushesThroughMiddleware(t *testing.T) {
	r, _, _ := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events/stream", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, testKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "id: "), line)
}

func TestRouter_RequiresKey(t *testing.T) {
	r, _, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cohort", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestRouter_PropagatesRequestID(t *testing.T) {
	r, core, _ := newTestRouter(t)
	core.On("GetSystemStatus", mock.Anything).Return(&domain.SystemStatus{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	req.Header.Set(HeaderAPIKey, testKey)
	req.Header.Set(HeaderRequestID, "tg-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tg-123", rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cohort", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}
